package intcode

// Run steps s until it halts or waits for input and returns that state. A
// state that is already stopped is returned as is. If an instruction fails,
// Run returns the last state that executed cleanly together with the error.
//
// A program that loops forever without halting or reading input makes Run
// loop forever too.
func Run(s State) (State, error) {
	for s.status == Running {
		next, err := Step(s)
		if err != nil {
			return s, err
		}
		s = next
	}
	return s, nil
}

// Resume queues inputs, runs, and returns the new state along with only the
// outputs produced during this call. Nothing already executed runs again.
func Resume(s State, inputs ...int64) (State, []int64, error) {
	seen := len(s.outputs)
	next, err := Run(s.WithInputs(inputs...))
	return next, next.Outputs()[seen:], err
}

// Start loads program and runs it with the given inputs.
func Start(program Program, capacity int, inputs ...int64) (State, error) {
	s, err := Load(program, capacity)
	if err != nil {
		return State{}, err
	}
	s, _, err = Resume(s, inputs...)
	return s, err
}

// Execute runs program in default sized memory and returns all outputs.
func Execute(program Program, inputs ...int64) ([]int64, error) {
	s, err := Start(program, DefaultCapacity, inputs...)
	if err != nil {
		return nil, err
	}
	return s.Outputs(), nil
}
