package retrieval

import (
	"regexp"
	"strings"
)

// MentionedText collects the sentences around every mention of keyword in
// text, concatenating matches until maxLen characters are gathered. It is a
// cheap, local fallback for when no retrieval sidecar is configured.
func MentionedText(keyword, text string, maxLen int) string {
	if keyword == "" || text == "" {
		return ""
	}
	if maxLen <= 0 {
		maxLen = 512
	}

	pattern := regexp.MustCompile(`([^.]+` + regexp.QuoteMeta(keyword) + `[^.]+)\.`)
	matches := pattern.FindAllStringSubmatch(text, -1)

	var b strings.Builder
	for _, m := range matches {
		b.WriteString(strings.ReplaceAll(m[1], "\n", ""))
		if b.Len() > maxLen {
			break
		}
	}
	return b.String()
}
