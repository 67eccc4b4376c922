package evidence

import (
	"regexp"
	"strings"
)

var entryStartPat = regexp.MustCompile(`@\w+\s*\{\s*([^,]+),`)

// ParseBibTeX reads the fields this package cares about out of a BibTeX
// export. It is not a general BibTeX parser: it assumes one level of brace
// nesting per field value, which is what Cochrane exports produce.
func ParseBibTeX(src string) []Review {
	locs := entryStartPat.FindAllStringSubmatchIndex(src, -1)
	reviews := make([]Review, 0, len(locs))
	for i, loc := range locs {
		end := len(src)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		body := src[loc[1]:end]
		rev := Review{
			Key:      strings.TrimSpace(src[loc[2]:loc[3]]),
			Title:    bibField(body, "title"),
			Abstract: bibField(body, "abstract"),
			Year:     bibField(body, "year"),
			URL:      bibField(body, "url"),
		}
		if rev.Key != "" {
			reviews = append(reviews, rev)
		}
	}
	return reviews
}

func bibField(body, name string) string {
	pat := regexp.MustCompile(`(?is)\b` + name + `\s*=\s*`)
	m := pat.FindStringIndex(body)
	if m == nil {
		return ""
	}
	rest := body[m[1]:]
	if rest == "" {
		return ""
	}
	switch rest[0] {
	case '{':
		return strings.TrimSpace(braceValue(rest))
	case '"':
		if end := strings.IndexByte(rest[1:], '"'); end >= 0 {
			return strings.TrimSpace(rest[1 : 1+end])
		}
	}
	// Bare value, terminated by comma or newline.
	if end := strings.IndexAny(rest, ",\n"); end >= 0 {
		return strings.TrimSpace(rest[:end])
	}
	return strings.TrimSpace(rest)
}

func braceValue(s string) string {
	depth := 0
	for i, ch := range s {
		switch ch {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[1:i]
			}
		}
	}
	return strings.TrimPrefix(s, "{")
}
