package htmltext

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Excerpt reduces an HTML fragment to plain text with collapsed
// whitespace, cut at a word boundary to at most max runes. A max of
// zero or less means no limit. Returns "" for markup that carries no
// text.
func Excerpt(html string, max int) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	text := strings.Join(strings.Fields(doc.Text()), " ")
	if max <= 0 || len([]rune(text)) <= max {
		return text
	}

	runes := []rune(text)[:max]
	if i := strings.LastIndex(string(runes), " "); i > 0 {
		runes = []rune(string(runes)[:i])
	}
	return strings.TrimRight(string(runes), " .,;:") + "…"
}
