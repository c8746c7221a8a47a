package catalog

import "strings"

// Anchor turns free text into a URL fragment: lower case, every run of
// characters outside [a-z0-9] collapsed to one hyphen, no hyphen at either
// end. Input with no letters or digits gives "".
func Anchor(name string) string {
	s := strings.ToLower(name)
	var b strings.Builder
	pending := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}

// TourAnchor prefers the last path segment of an authored link and falls
// back to Anchor(name).
func TourAnchor(link, name string) string {
	parts := strings.Split(link, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] != "" {
			return parts[i]
		}
	}
	return Anchor(name)
}
