package models

import "strings"

// DeriveAnchor turns a section title into a URL-friendly anchor id:
// lowercase, runs of non-alphanumeric characters collapsed to single
// hyphens, leading and trailing hyphens trimmed. Deterministic and
// idempotent, so re-deriving an already derived anchor is a no-op.
func DeriveAnchor(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	pendingHyphen := false
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if alnum {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		} else {
			pendingHyphen = true
		}
	}

	return b.String()
}
