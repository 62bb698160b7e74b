package chat

import (
	"regexp"
	"strings"
)

var linkPattern = regexp.MustCompile(`\[([^\]]+)\]\((https?://[^)]+)\)`)

// Link is an inline markdown link found in a reply.
type Link struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// ExtractLinks separates [title](http-url) segments from the surrounding
// prose. Prose keeps every unmatched character in order and is not
// trimmed; links are returned in the order they appear.
func ExtractLinks(text string) (prose string, links []Link) {
	var b strings.Builder
	last := 0
	for _, m := range linkPattern.FindAllStringSubmatchIndex(text, -1) {
		b.WriteString(text[last:m[0]])
		links = append(links, Link{Title: text[m[2]:m[3]], URL: text[m[4]:m[5]]})
		last = m[1]
	}
	b.WriteString(text[last:])
	return b.String(), links
}
