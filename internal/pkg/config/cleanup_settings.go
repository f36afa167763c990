package config

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// CleanupSettings configures the periodic orphan image sweep. An empty schedule disables it.
type CleanupSettings struct {
	Schedule string        `yaml:"schedule"`
	MinAge   time.Duration `yaml:"min_age"`
}

// Validate checks that the schedule, when set, is a standard five-field cron expression
func (s *CleanupSettings) Validate() error {
	if s.MinAge < 0 {
		return fmt.Errorf("min age must not be negative")
	}
	if s.Schedule == "" {
		return nil
	}
	if _, err := cron.ParseStandard(s.Schedule); err != nil {
		return fmt.Errorf("invalid cleanup schedule %q: %w", s.Schedule, err)
	}
	return nil
}
