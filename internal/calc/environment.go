package calc

// Environment maps variable names to their last assigned value. It also
// remembers the order in which names were first assigned.
type Environment struct {
	values map[string]int64
	names  []string
}

func NewEnvironment() *Environment {
	return &Environment{make(map[string]int64), nil}
}

// Define binds name to value, overwriting any previous binding.
func (env *Environment) Define(name string, value int64) {
	if _, ok := env.values[name]; !ok {
		env.names = append(env.names, name)
	}
	env.values[name] = value
}

// Get returns the value bound to name.
func (env *Environment) Get(name string) (int64, bool) {
	value, ok := env.values[name]
	return value, ok
}

// Names returns the bound names in first-assignment order.
func (env *Environment) Names() []string {
	names := make([]string, len(env.names))
	copy(names, env.names)
	return names
}

// Values returns a copy of the bindings.
func (env *Environment) Values() map[string]int64 {
	values := make(map[string]int64, len(env.values))
	for name, value := range env.values {
		values[name] = value
	}
	return values
}

func (env *Environment) Len() int {
	return len(env.names)
}
