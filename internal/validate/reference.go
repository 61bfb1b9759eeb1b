package validate

import "regexp"

var referencePattern = regexp.MustCompile(`^BC-\d{4}-\d{6}$`)

// ValidateReference reports whether s looks like an order reference of the
// form BC-<year>-<6 digits>.
func ValidateReference(s string) bool {
	return referencePattern.MatchString(s)
}
