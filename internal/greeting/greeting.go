// Package greeting computes the final displayed greeting line.
package greeting

import (
	"regexp"
	"strings"
)

// fromPhrase matches a greeting that already names its sender: the word
// "from" at the start of the string or after whitespace, followed by at
// least one whitespace character.
var fromPhrase = regexp.MustCompile(`(?i)(^|\s)from\s+`)

// Compose returns the greeting to display. A greeting that already contains
// a "from" phrase is returned unchanged. Otherwise an attribution is
// appended: the sender when one was provided, the group name when not.
func Compose(raw, sender, groupName string) string {
	if fromPhrase.MatchString(raw) {
		return raw
	}
	name := strings.TrimSpace(sender)
	if name == "" {
		name = groupName
	}
	return raw + " — From " + name
}
