// Package interpolation expands ${NAME} and ${NAME:default} references to
// environment variables inside scene files.
package interpolation

import (
	"errors"
	"fmt"
	"os"
	"regexp"
)

var ErrUndefinedVariable = errors.New("environment variable not defined")

// Pattern for ${VAR_NAME} and ${VAR_NAME:default} syntax - captures colon explicitly
var envVarWithDefaultPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:)?([^}]*)\}`)

// LookupFunc resolves a variable name, like os.LookupEnv.
type LookupFunc func(name string) (string, bool)

// ExpandEnvVars expands references in input using the process environment.
func ExpandEnvVars(input string) (string, error) {
	return Expand(input, os.LookupEnv)
}

// Expand replaces every ${NAME} or ${NAME:default} in input. A set variable
// wins over the default, and ${NAME:} expands to an empty string when NAME is
// unset. A reference without a default to an unset variable is an error and is
// left in place.
func Expand(input string, lookup LookupFunc) (string, error) {
	if input == "" {
		return "", nil
	}

	var missing []error
	result := envVarWithDefaultPattern.ReplaceAllStringFunc(input, func(match string) string {
		// [full_match, name, colon, default]
		sub := envVarWithDefaultPattern.FindStringSubmatch(match)
		name, hasDefault, def := sub[1], sub[2] == ":", sub[3]

		if value, ok := lookup(name); ok {
			return value
		}
		if hasDefault {
			return def
		}
		missing = append(missing, fmt.Errorf("%w: %s", ErrUndefinedVariable, name))
		return match
	})

	return result, errors.Join(missing...)
}
