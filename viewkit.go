// Package viewkit provides a view manager that renders templates through
// swappable engine adapters.
//
// The Manager holds everything a render needs (template name, extension,
// search paths, engine options, view data and helpers) and hands it to an
// Adapter, which drives the actual template engine:
//
//	manager := viewkit.MustNew(
//	    viewkit.WithAdapter(viewkit.NewMustacheAdapter()),
//	    viewkit.WithPaths("./views"),
//	    viewkit.WithExtension("mustache"),
//	)
//	manager.SetTemplate("index")
//	_ = manager.Set("name", "Alice")
//	html, err := manager.Render(ctx)
//
// # Adapters
//
// Two adapters are built in and registered by engine name:
//
//	twig      TwigAdapter, Twig/Django-style syntax via pongo2
//	mustache  MustacheAdapter, Mustache syntax via cbroglie/mustache
//
// Select one directly with SetAdapter or by name with UseEngine. Custom engines
// implement Adapter (usually by embedding BaseAdapter) and may be registered
// with RegisterAdapter.
//
// # Search Paths
//
// Paths are scanned in order and the first directory containing
// <template><extension> wins. Duplicates are ignored:
//
//	manager.AddPaths([]string{"./views/default"})
//	manager.PrependPath("./views/theme") // theme overrides default
//
// # Data and Helpers
//
// Data keys and helper names must be identifiers (letters, digits and
// underscores, not starting with a digit). Helpers are objects that report
// their own name and are exposed to templates as globals:
//
//	_ = manager.AddHelper(viewkit.NewSanitizeHelper())
//
// # Error Handling
//
// Validation failures are returned immediately and match the sentinel errors
// (ErrInvalidKey, ErrDuplicateHelper, ErrUndefinedAdapter, ErrInvalidTemplate)
// with errors.Is. Any failure raised by the engine during Render is wrapped in
// a *RenderError, so callers handle one render error kind whichever adapter is
// active:
//
//	html, err := manager.Render(ctx)
//	var renderErr *viewkit.RenderError
//	if errors.As(err, &renderErr) {
//	    // renderErr.Cause is the engine's error
//	}
package viewkit
