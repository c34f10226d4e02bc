package catalog

// Default returns a registry holding the full langkit catalogue.
func Default() *Registry {
	r := NewRegistry()
	for _, group := range [][]Check{
		numericChecks(),
		floatChecks(),
		ownershipChecks(),
		iteratorChecks(),
		textChecks(),
		summaryChecks(),
		parallelChecks(),
	} {
		if err := r.Register(group...); err != nil {
			// The catalogue is static; a duplicate here is a programming error.
			panic(err)
		}
	}
	return r
}
