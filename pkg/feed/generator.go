package feed

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/umputun/feedrank/pkg/domain"
)

type rss struct {
	XMLName xml.Name    `xml:"rss"`
	Version string      `xml:"version,attr"`
	Atom    string      `xml:"xmlns:atom,attr"`
	Channel *rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string     `xml:"title"`
	Link          string     `xml:"link"`
	Description   string     `xml:"description"`
	AtomLink      *atomLink  `xml:"http://www.w3.org/2005/Atom link"`
	LastBuildDate string     `xml:"lastBuildDate"`
	Items         []*rssItem `xml:"item"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

type rssGUID struct {
	Value       string `xml:",chardata"`
	IsPermaLink bool   `xml:"isPermaLink,attr"`
}

type rssItem struct {
	Title       string  `xml:"title"`
	Link        string  `xml:"link"`
	GUID        rssGUID `xml:"guid"`
	Description string  `xml:"description"`
	PubDate     string  `xml:"pubDate"`
}

// Generator renders ranked articles as RSS 2.0 and feed subscriptions as OPML
type Generator struct {
	baseURL string
	now     func() time.Time
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL string) *Generator {
	return &Generator{baseURL: strings.TrimRight(baseURL, "/"), now: time.Now}
}

// GenerateRSS creates an RSS 2.0 document with the personalized feed of a user, in ranked order
func (g *Generator) GenerateRSS(articles []domain.ScoredArticle, userID string) (string, error) {
	items := make([]*rssItem, 0, len(articles))
	for _, a := range articles {
		items = append(items, g.toRSSItem(a))
	}

	doc := &rss{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &rssChannel{
			Title:         fmt.Sprintf("Feedrank - %s", userID),
			Link:          g.baseURL + "/",
			Description:   fmt.Sprintf("Personalized articles for %s", userID),
			AtomLink:      &atomLink{Href: fmt.Sprintf("%s/rss/%s", g.baseURL, userID), Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: g.now().UTC().Format(time.RFC1123Z),
			Items:         items,
		},
	}

	output, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}
	return xml.Header + string(output), nil
}

func (g *Generator) toRSSItem(sa domain.ScoredArticle) *rssItem {
	var desc strings.Builder
	desc.WriteString(sa.Article.Summary)
	if len(sa.Article.KeyFacts) > 0 {
		desc.WriteString("\n")
		for _, f := range sa.Article.KeyFacts {
			desc.WriteString("\n- " + f)
		}
	}
	desc.WriteString(fmt.Sprintf("\n\nScore: %.2f", sa.Scores.Final))

	return &rssItem{
		Title:       sa.Article.Title,
		Link:        sa.Article.SourceURL,
		GUID:        rssGUID{Value: sa.Article.ID},
		Description: desc.String(),
		PubDate:     sa.Article.EffectiveTime().UTC().Format(time.RFC1123Z),
	}
}

// GenerateOPML creates an OPML document listing the given feed URLs
func (g *Generator) GenerateOPML(feedURLs []string) (string, error) {
	type outline struct {
		Text   string `xml:"text,attr"`
		Type   string `xml:"type,attr"`
		XMLURL string `xml:"xmlUrl,attr"`
	}
	type opml struct {
		XMLName     xml.Name  `xml:"opml"`
		Version     string    `xml:"version,attr"`
		Title       string    `xml:"head>title"`
		DateCreated string    `xml:"head>dateCreated"`
		Outlines    []outline `xml:"body>outline"`
	}

	doc := opml{Version: "2.0", Title: "Feedrank Feed Subscriptions", DateCreated: g.now().UTC().Format(time.RFC1123Z)}
	for _, u := range feedURLs {
		doc.Outlines = append(doc.Outlines, outline{Text: u, Type: "rss", XMLURL: u})
	}

	output, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal OPML: %w", err)
	}
	return xml.Header + string(output), nil
}
