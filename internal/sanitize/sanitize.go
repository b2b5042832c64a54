// Package sanitize escapes markup-significant characters in untrusted text.
//
// Escaped text is what gets persisted and what gets echoed back in responses,
// so a stored record can never carry reflectable markup. Escaping is not
// idempotent: re-escaping "&amp;" yields "&amp;amp;". Callers escape exactly
// once, at the validation boundary.
package sanitize

import "strings"

// replacer maps each markup-significant character to its entity form.
var replacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"`", "&#96;",
	"/", "&#x2F;",
	`\`, "&#x5C;",
)

// Escape returns s with markup-significant characters replaced by their
// entity-safe forms. Plain text passes through unchanged.
func Escape(s string) string {
	// Fast path: most titles and authors carry nothing to escape.
	if !strings.ContainsAny(s, "&<>\"'`/\\") {
		return s
	}
	return replacer.Replace(s)
}
