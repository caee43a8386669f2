package config

import (
	"os"
	"regexp"
)

// envVarPattern matches ${VAR} and ${VAR:-default}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:-([^}]*))?\}`)

// substituteEnvVars replaces ${VAR} references with environment values.
// An empty variable counts as unset for the ${VAR:-default} form. References
// without a default that resolve to nothing are left in place and reported
// in the second return value.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	result := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		groups := envVarPattern.FindStringSubmatch(match)
		name, hasDefault, fallback := groups[1], groups[2] != "", groups[3]

		if value := os.Getenv(name); value != "" {
			return value
		}
		if hasDefault {
			return fallback
		}
		missing = append(missing, name)
		return match
	})
	return result, missing
}
