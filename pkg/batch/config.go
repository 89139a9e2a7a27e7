package batch

import (
	"io"
	"os"
	"runtime"
)

// Config holds the parameters for a batch run.
type Config struct {
	Workers int
	Verbose bool
	Log     io.Writer // progress output, used only when Verbose
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Workers: runtime.NumCPU(),
		Verbose: false,
		Log:     os.Stderr,
	}
}

func (c Config) workers() int {
	if c.Workers <= 0 {
		return 1
	}
	return c.Workers
}

func (c Config) logf() io.Writer {
	if !c.Verbose || c.Log == nil {
		return io.Discard
	}
	return c.Log
}
