package analyzer

// GlobalSet is the analyzer's view of spec.md §4.3's
// Global_Declared_Variable_Set: the last namespace consulted when a use
// doesn't resolve against any enclosing scope. internal/globals
// implements this over its preset/override data; tests can supply a
// trivial map-backed implementation.
type GlobalSet interface {
	IsDeclared(name string) bool
	IsWritable(name string) bool
}

// emptyGlobalSet is used when New is given a nil GlobalSet, so every use
// that escapes the module scope is reported rather than panicking on a
// nil interface.
type emptyGlobalSet struct{}

func (emptyGlobalSet) IsDeclared(string) bool { return false }
func (emptyGlobalSet) IsWritable(string) bool { return false }
