package core

// Environment represents the deployment environment of the service. The
// bot only distinguishes production from everything else: production gets
// structured JSON logging, all other values get the console writer.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

// String returns the string representation of the environment.
func (e Environment) String() string {
	return string(e)
}

// IsProduction reports whether the environment corresponds to production.
func (e Environment) IsProduction() bool {
	return e == Production
}

// ParseEnvironment normalises the provided value. Anything that is not
// production falls back to Development so the application can still start
// with sensible defaults.
func ParseEnvironment(v string) Environment {
	if Environment(v) == Production {
		return Production
	}
	return Development
}
