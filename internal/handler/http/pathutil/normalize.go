package pathutil

import (
	"regexp"
	"strings"
)

// Unmatched is the label used for paths that match no route.
const Unmatched = "unmatched"

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/api/articles/[^/]+/comments$`), Template: "/api/articles/{article_id}/comments"},
	{Pattern: regexp.MustCompile(`^/api/articles/[^/]+$`), Template: "/api/articles/{article_id}"},
	{Pattern: regexp.MustCompile(`^/api/comments/[^/]+$`), Template: "/api/comments/{comment_id}"},
	{Pattern: regexp.MustCompile(`^/api/users/[^/]+$`), Template: "/api/users/{username}"},
	{Pattern: regexp.MustCompile(`^/swagger(/.*)?$`), Template: "/swagger"},
}

var staticPaths = map[string]struct{}{
	"/api":          {},
	"/api/topics":   {},
	"/api/articles": {},
	"/api/users":    {},
	"/health":       {},
	"/ready":        {},
	"/live":         {},
	"/metrics":      {},
}

// NormalizePath maps a request path to a bounded set of metric labels.
// Paths carrying ids become route templates, known static paths pass
// through, and everything else collapses to Unmatched.
//
// Examples:
//
//	NormalizePath("/api/articles/123")          // "/api/articles/{article_id}"
//	NormalizePath("/api/articles/abc/comments") // "/api/articles/{article_id}/comments"
//	NormalizePath("/api/users/butter_bridge")   // "/api/users/{username}"
//	NormalizePath("/api/topics?x=1")            // "/api/topics"
//	NormalizePath("/api/nonsense/path")         // "unmatched"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	if _, ok := staticPaths[path]; ok {
		return path
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	return Unmatched
}

// GetExpectedCardinality returns the number of distinct labels NormalizePath can produce.
func GetExpectedCardinality() int {
	return len(pathPatterns) + len(staticPaths) + 1
}
