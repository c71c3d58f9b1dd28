package pathutil

import (
	"regexp"
	"strings"
)

// route collapses matching request paths onto one metrics label.
type route struct {
	re    *regexp.Regexp
	label string
}

// 上から順に評価する
var routes = []route{
	{regexp.MustCompile(`^/ads/\d+$`), "/ads/:id"},
	{regexp.MustCompile(`^/ads/\d+/click$`), "/ads/:id/click"},
	// GET は slug、PUT/DELETE は数値 ID
	{regexp.MustCompile(`^/articles/[^/]+$`), "/articles/:key"},
	{regexp.MustCompile(`^/categories/[^/]+$`), "/categories/:key"},
	{regexp.MustCompile(`^/static/.+$`), "/static/*"},
}

// NormalizePath maps a request path to a bounded-cardinality label. The
// query string and one trailing slash are ignored; paths that match no
// route (/health, /auth/token, unknown URLs) are returned as is.
//
//	NormalizePath("/articles/budget-vote")  // "/articles/:key"
//	NormalizePath("/ads/7/click/")          // "/ads/:id/click"
//	NormalizePath("/health?full=1")         // "/health"
func NormalizePath(path string) string {
	path, _, _ = strings.Cut(path, "?")
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	for _, rt := range routes {
		if rt.re.MatchString(path) {
			return rt.label
		}
	}
	return path
}
