package screentext

import "strings"

// Marker is the placeholder token replaced by Format.
const Marker = "~1~"

// Format substitutes args, in order, into the occurrences of Marker in template.
// Occurrences beyond the last argument stay as literal marker text and surplus
// arguments are ignored. Substituted values are not scanned for markers.
func Format(template string, args ...string) string {
	if len(args) == 0 || !strings.Contains(template, Marker) {
		return template
	}

	var b strings.Builder
	b.Grow(len(template))

	rest := template
	for _, arg := range args {
		i := strings.Index(rest, Marker)
		if i < 0 {
			break
		}
		b.WriteString(rest[:i])
		b.WriteString(arg)
		rest = rest[i+len(Marker):]
	}
	b.WriteString(rest)

	return b.String()
}

// CountMarkers returns the number of non-overlapping markers in template.
func CountMarkers(template string) int {
	return strings.Count(template, Marker)
}
