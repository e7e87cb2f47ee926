package core

// Parameter describes a single tunable value exposed by a simulation.
type Parameter struct {
	Key   string
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of tunables exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterProvider is implemented by sims that can report their tunables.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}
