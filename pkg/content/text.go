package content

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

var (
	ugcPolicy    = bluemonday.UGCPolicy()
	blankLinesRe = regexp.MustCompile(`\n{2,}`)
	spacesRe     = regexp.MustCompile(`[ \t\r\f\v]+`)
)

const blockSelector = "p, h1, h2, h3, h4, h5, h6, li, blockquote, pre, tr, br, div"

// Sanitize removes scripts, styles and unsafe attributes from an HTML fragment
func Sanitize(fragment string) string {
	return ugcPolicy.Sanitize(fragment)
}

// PlainText converts an HTML fragment from a feed item into readable text.
// Block elements become line breaks, entities are decoded and whitespace is collapsed.
func PlainText(fragment string) string {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return ""
	}
	if !strings.ContainsAny(fragment, "<&") {
		return collapse(fragment)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(Sanitize(fragment)))
	if err != nil {
		return collapse(fragment)
	}
	doc.Find("script, style, iframe, noscript").Remove()
	doc.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})
	return collapse(doc.Text())
}

func collapse(text string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(spacesRe.ReplaceAllString(l, " "))
	}
	text = strings.Join(lines, "\n")
	return strings.TrimSpace(blankLinesRe.ReplaceAllString(text, "\n\n"))
}
