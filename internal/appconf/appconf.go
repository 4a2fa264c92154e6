package appconf

import "strings"

// Environment is the operating environment the application runs in.
type Environment int

const (
	Development Environment = iota
	Test
	Production
)

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// EnvFlagToEnvironment maps the -env flag value to an Environment.
// Unknown values fall back to Development.
func EnvFlagToEnvironment(envFlag string) Environment {
	switch strings.ToLower(strings.TrimSpace(envFlag)) {
	case "production":
		return Production
	case "test":
		return Test
	default:
		return Development
	}
}

// Config holds the application-level settings read from flags.
type Config struct {
	Port int
	Env  Environment
}
