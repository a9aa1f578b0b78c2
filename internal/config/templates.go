package config

import (
	"fmt"
	"os"
)

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(plannerTemplate), 0o600)
}

const plannerTemplate = `name = "chrolis-planner"
addr = ":9300"
cors_origins = ["http://localhost:3000"]

# Units of the form fields: frequency in mHz|Hz, durations in us|ms|s.
[units]
frequency = "Hz"
total_duration = "s"
pulse_duration = "ms"
`
