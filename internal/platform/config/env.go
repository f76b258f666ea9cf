// Package config parses command configuration from the process environment.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv fills target's env-tagged fields, applying envDefault values for
// variables the environment does not set.
func ParseEnv(target any) error {
	if target == nil {
		return errors.New("config target is required")
	}
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
