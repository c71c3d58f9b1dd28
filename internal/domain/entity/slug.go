package entity

import (
	"regexp"
	"strings"
)

// 空白は ASCII に限らず NBSP や全角スペースなども含む
const slugSpace = `\s\v\p{Z}\x{FEFF}`

var (
	slugStripRe  = regexp.MustCompile(`[^\w` + slugSpace + `-]`)
	slugSpaceRe  = regexp.MustCompile(`[` + slugSpace + `]+`)
	slugHyphenRe = regexp.MustCompile(`-{2,}`)
)

// DeriveSlug turns free text into a URL slug.
//
// The text is lowercased, every character other than [A-Za-z0-9_],
// whitespace (Unicode spaces included) or '-' is removed, whitespace runs
// become a single '-', hyphen runs collapse to one '-', and leading/trailing
// hyphens are trimmed.
// The result may be empty when text has no word characters.
// DeriveSlug(DeriveSlug(x)) == DeriveSlug(x).
func DeriveSlug(text string) string {
	s := strings.ToLower(text)
	s = slugStripRe.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = slugSpaceRe.ReplaceAllString(s, "-")
	s = slugHyphenRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ValidSlug reports whether s is already in canonical slug form.
func ValidSlug(s string) bool {
	return s != "" && DeriveSlug(s) == s
}
