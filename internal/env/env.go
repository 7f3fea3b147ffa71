// Package env loads environment variables from a .env file so endpoint API
// keys can stay out of the YAML config and out of version control.
package env

import (
	"os"
	"strings"
)

// Load reads KEY=VALUE lines from .env in the current directory and sets
// them with os.Setenv. A missing file is not an error; system environment
// variables still apply. Blank lines and #-comments are skipped, and
// surrounding quotes on values are stripped.
func Load() {
	data, err := os.ReadFile(".env")
	if err != nil {
		return
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Split on the first "=" so values may contain "=".
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.Trim(strings.TrimSpace(parts[1]), `"'`)
		os.Setenv(key, value)
	}
}
