package glox

import (
	"io"
	"time"
)

// Config holds configuration options for Lox execution.
type Config struct {
	// Output is the writer for print statements.
	// If nil, output is captured and returned from Run.
	Output io.Writer

	// Now supplies the current time for the clock native function.
	// If nil, time.Now is used. Injecting a fixed clock makes
	// clock-dependent programs deterministic in tests.
	Now func() time.Time
}

// applyDefaults fills in default values for unset Config fields.
func (c *Config) applyDefaults() {
	if c.Now == nil {
		c.Now = time.Now
	}
}
