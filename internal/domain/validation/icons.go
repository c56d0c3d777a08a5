package validation

import "regexp"

var iconNameRE = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// IsIconName reports whether a string is shaped like a catalog icon
// name: lowercase alphanumeric segments separated by single hyphens.
// Shape only; registry membership is checked where the registry lives.
func IsIconName(value string) bool {
	return iconNameRE.MatchString(value)
}
