// Package answers validates submitted puzzle answers. Handlers are keyed
// by puzzle type tag and plugged into an explicit registry, so tests can
// build isolated registries instead of sharing ambient globals.
package answers

import "strings"

// Handler normalizes and validates answers for one puzzle type.
type Handler interface {
	// Normalize canonicalizes a raw answer string.
	Normalize(s string) string

	// Validate reports whether the submitted answer matches the expected
	// one. Both arguments are raw; implementations normalize as needed.
	Validate(expected, submitted string) bool
}

// Registry maps puzzle type tags to their answer handlers.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register adds or replaces the handler for a type tag.
func (r *Registry) Register(tag string, h Handler) {
	if r == nil || tag == "" || h == nil {
		return
	}
	r.handlers[tag] = h
}

// Lookup returns the handler for a type tag.
func (r *Registry) Lookup(tag string) (Handler, bool) {
	if r == nil {
		return nil, false
	}
	h, found := r.handlers[tag]
	return h, found
}

// Check dispatches validation to the handler for the tag. An unknown tag
// never validates.
func (r *Registry) Check(tag, expected, submitted string) bool {
	h, found := r.Lookup(tag)
	if !found {
		return false
	}
	return h.Validate(expected, submitted)
}

// Reset removes every registered handler.
func (r *Registry) Reset() {
	if r == nil {
		return
	}
	r.handlers = make(map[string]Handler)
}

// Built-in puzzle type tags.
const (
	TypeSequence = "sequence"
	TypePattern  = "pattern"
)

// SequenceHandler matches code sequences exactly after trimming
// whitespace, so "1-2-3-4" is case- and spacing-sensitive inside the code.
type SequenceHandler struct{}

func (SequenceHandler) Normalize(s string) string {
	return strings.TrimSpace(s)
}

func (h SequenceHandler) Validate(expected, submitted string) bool {
	return h.Normalize(submitted) == h.Normalize(expected)
}

// PatternHandler matches directional patterns like "up-down-left-right",
// ignoring case and surrounding whitespace.
type PatternHandler struct{}

func (PatternHandler) Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (h PatternHandler) Validate(expected, submitted string) bool {
	return h.Normalize(submitted) == h.Normalize(expected)
}

// DefaultRegistry returns a registry with the built-in handlers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(TypeSequence, SequenceHandler{})
	r.Register(TypePattern, PatternHandler{})
	return r
}
