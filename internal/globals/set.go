// Package globals supplies spec.md §4.3's Global_Declared_Variable_Set:
// a handful of built-in presets (grounded on quick-lint-js's own
// quick-lint-js/global-variables.h data shape, and on the flattened
// dotted-name list evanw/esbuild's internal/config.knownGlobals uses for
// the same "what identifiers exist ambiently" concern) plus a YAML
// override loader for project-specific additions.
package globals

// Set implements analyzer.GlobalSet: a name is either undeclared, a
// read-only global, or a writable one.
type Set struct {
	vars map[string]bool // name -> writable
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{vars: make(map[string]bool)}
}

// Clone returns an independent copy, so a preset can be extended with
// overrides without mutating the shared preset value.
func (s *Set) Clone() *Set {
	clone := NewSet()
	for name, writable := range s.vars {
		clone.vars[name] = writable
	}
	return clone
}

func (s *Set) addReadonly(names ...string) {
	for _, name := range names {
		s.vars[name] = false
	}
}

func (s *Set) addWritable(names ...string) {
	for _, name := range names {
		s.vars[name] = true
	}
}

// Merge overlays other's entries onto s in place, other's writability
// winning on a name collision (an override file refining a preset).
func (s *Set) Merge(other *Set) {
	for name, writable := range other.vars {
		s.vars[name] = writable
	}
}

// IsDeclared reports whether name is present in the set at all.
func (s *Set) IsDeclared(name string) bool {
	_, ok := s.vars[name]
	return ok
}

// IsWritable reports whether name, if declared, may be assigned to.
// Per spec.md §4.3, an assignment to a declared-but-read-only global is
// Assignment_To_Const_Variable, not Use_Of_Undeclared_Variable.
func (s *Set) IsWritable(name string) bool {
	return s.vars[name]
}

// Len reports how many names the set declares (both namespaces
// combined into one, since JavaScript globals don't have a separate
// type namespace).
func (s *Set) Len() int { return len(s.vars) }
