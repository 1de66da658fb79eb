package modes

// Mode selects runtime behavior that differs between a deployed binary
// and a development or test run.
type Mode uint8

const (
	ModeProduction Mode = iota
	ModeDevelopment
)
