package main

type entry struct {
	declared TokenType // TokenInteger or TokenDouble
	value    Value
	set      bool
}

// NewEnvironment returns an empty environment.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]*entry)}
}

// Environment maps each declared identifier to its declared type and
// current value. HL is flat: there is one environment per run, no
// enclosing scopes, and entries live until the run ends.
type Environment struct {
	values map[string]*entry
}

// Declare registers a new identifier. Declaring the same name twice is
// a type error and leaves the existing entry untouched.
func (e *Environment) Declare(name string, declared TokenType, pos int) error {
	if _, ok := e.values[name]; ok {
		return errorAt(CategoryType, pos, "'%s' is already declared", name)
	}
	e.values[name] = &entry{declared: declared}
	return nil
}

// Assign stores a value under a declared identifier. An integer value
// assigned to a double variable widens; a double value assigned to an
// integer variable is rejected, narrowing is never implicit.
func (e *Environment) Assign(name string, value Value, pos int) error {
	ent, ok := e.values[name]
	if !ok {
		return errorAt(CategoryRuntime, pos, "assignment to undeclared variable '%s'", name)
	}
	switch ent.declared {
	case TokenInteger:
		if _, ok := value.(DoubleValue); ok {
			return errorAt(CategoryType, pos, "cannot assign double value to integer variable '%s'", name)
		}
	case TokenDouble:
		value = asDouble(value)
	}
	ent.value = value
	ent.set = true
	return nil
}

// Read returns the current value of a declared, assigned identifier.
func (e *Environment) Read(name string, pos int) (Value, error) {
	ent, ok := e.values[name]
	if !ok {
		return nil, errorAt(CategoryRuntime, pos, "'%s' is not declared", name)
	}
	if !ent.set {
		return nil, errorAt(CategoryRuntime, pos, "'%s' is used before assignment", name)
	}
	return ent.value, nil
}
