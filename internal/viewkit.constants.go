package internal

// Key validation constants
const (
	// IdentifierPattern is the pattern data keys and helper names must match.
	IdentifierPattern = `^[A-Za-z_][A-Za-z0-9_]*$`
)

// Extension constants
const (
	ExtensionSeparator = "."
)

// Path list formatting
const (
	PathListOpen      = "["
	PathListClose     = "]"
	PathListSeparator = ", "
)

// String constants
const (
	StringValueEmpty = ""
)
