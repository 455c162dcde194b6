package viewkit

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Helper is a named object exposed to templates as a global during render.
// Everything beyond the name is opaque to the Manager and interpreted by the
// wrapped engine (fields, methods, callables).
type Helper interface {
	Name() string
}

// SanitizeHelper exposes HTML sanitization to templates under the name
// "sanitize":
//
//	{{ sanitize.HTML(comment)|safe }}
type SanitizeHelper struct {
	ugcOnce    sync.Once
	ugc        *bluemonday.Policy
	strictOnce sync.Once
	strict     *bluemonday.Policy
}

// NewSanitizeHelper creates a sanitize helper.
func NewSanitizeHelper() *SanitizeHelper {
	return &SanitizeHelper{}
}

// Name implements Helper.
func (h *SanitizeHelper) Name() string {
	return HelperNameSanitize
}

// HTML keeps user-generated-content markup (links, formatting, lists) and
// strips everything else.
func (h *SanitizeHelper) HTML(raw string) string {
	h.ugcOnce.Do(func() {
		h.ugc = bluemonday.UGCPolicy()
	})
	return strings.TrimSpace(h.ugc.Sanitize(raw))
}

// Strict removes all markup.
func (h *SanitizeHelper) Strict(raw string) string {
	h.strictOnce.Do(func() {
		h.strict = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(h.strict.Sanitize(raw))
}
