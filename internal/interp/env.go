package interp

import (
	"sort"
)

// Environment is the flat name-to-value table of one interpreter run.
// There is no nesting and no shadowing; let re-declares in place.
type Environment struct {
	values map[string]float64
}

// NewEnvironment creates an empty environment.
func NewEnvironment() *Environment {
	return &Environment{
		values: make(map[string]float64),
	}
}

// Define creates or overwrites a variable.
func (e *Environment) Define(name string, value float64) {
	e.values[name] = value
}

// Assign overwrites an existing variable. It reports false when the
// variable was never defined; assignment is not declaration.
func (e *Environment) Assign(name string, value float64) bool {
	if _, ok := e.values[name]; !ok {
		return false
	}
	e.values[name] = value
	return true
}

// Get looks up a variable.
func (e *Environment) Get(name string) (float64, bool) {
	value, ok := e.values[name]
	return value, ok
}

// Has reports whether a variable is defined.
func (e *Environment) Has(name string) bool {
	_, ok := e.values[name]
	return ok
}

// Names returns the defined variable names in sorted order.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.values))
	for name := range e.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of defined variables.
func (e *Environment) Len() int {
	return len(e.values)
}
