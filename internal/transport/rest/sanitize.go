package rest

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

// textPolicy strips all markup from respondent- and author-supplied text
// before it is echoed back in a response.
var textPolicy = bluemonday.StrictPolicy()

// sanitize strips markup but keeps the plain text verbatim. The policy also
// entity-escapes what it keeps; that is undone because encoding/json escapes
// <, > and & itself.
func sanitize(s string) string {
	return html.UnescapeString(textPolicy.Sanitize(s))
}

func sanitizePtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := sanitize(*s)
	return &v
}

func sanitizeAll(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = sanitize(s)
	}
	return out
}
