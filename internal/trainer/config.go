package trainer

import (
	"fmt"
	"runtime"

	"github.com/tictacnet/tictacnet/internal/ml"
)

// Config is the training policy. Training always runs the full number of
// epochs.
type Config struct {
	Epochs       int
	LearningRate float64
	ReportEvery  int
	Threads      int
}

func DefaultConfig() Config {
	return Config{
		Epochs:       100_000,
		LearningRate: 0.1,
		ReportEvery:  1000,
		Threads:      runtime.NumCPU(),
	}
}

// Validate checks the policy and fills in optional fields.
func (c *Config) Validate() error {
	if c.Epochs <= 0 {
		return fmt.Errorf("%w: epochs must be > 0 (got %d)", ml.ErrInvalidConfiguration, c.Epochs)
	}
	if c.LearningRate <= 0 {
		return fmt.Errorf("%w: learning rate must be > 0 (got %v)", ml.ErrInvalidConfiguration, c.LearningRate)
	}
	if c.ReportEvery <= 0 {
		c.ReportEvery = 1000
	}
	if c.Threads <= 0 {
		c.Threads = 1
	}
	return nil
}
