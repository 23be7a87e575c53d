package configloader

import (
	"fmt"
	"os"
	"strconv"
)

// envVarPrefix is the prefix for all cascadec environment variables.
const envVarPrefix = "CASCADEC_"

// applyEnv overlays CASCADEC_* environment variables onto cfg.
func applyEnv(cfg *Config) error {
	if value, ok := envValue("DEBUG"); ok {
		debug, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%sDEBUG: %w", envVarPrefix, err)
		}

		cfg.Debug = debug
	}

	if value, ok := envValue("COLOR"); ok {
		cfg.Color = value
	}

	if value, ok := envValue("EMIT"); ok {
		cfg.Emit = value
	}

	if value, ok := envValue("OPTIMIZE"); ok {
		level, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%sOPTIMIZE: %w", envVarPrefix, err)
		}

		cfg.Optimize = level
	}

	if value, ok := envValue("OUTPUT"); ok {
		cfg.Output = value
	}

	if value, ok := envValue("TARGET"); ok {
		cfg.Target = value
	}

	if value, ok := envValue("JOBS"); ok {
		jobs, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%sJOBS: %w", envVarPrefix, err)
		}

		cfg.Jobs = jobs
	}

	return cfg.validate("environment")
}

func envValue(suffix string) (string, bool) {
	value := os.Getenv(envVarPrefix + suffix)
	return value, value != ""
}
