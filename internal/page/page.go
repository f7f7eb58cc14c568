// Package page builds the dashboard HTML skeleton that render instructions
// are applied to.
package page

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/ziadkadry99/distant-reading/internal/analysis"
	"github.com/ziadkadry99/distant-reading/internal/dom"
	"github.com/ziadkadry99/distant-reading/internal/render"
)

// LoadErrorMessage is shown when the analysis document could not be loaded.
const LoadErrorMessage = "Error loading analysis data. Please ensure analysis_results.json is in the same directory."

// Link is a navigation control or theme tab.
type Link struct {
	ID    string
	Label string
	Href  string
}

// Layout is everything the skeleton needs besides the data itself.
type Layout struct {
	Title      string
	Nav        []Link
	Themes     []Link
	Pair       render.Pair
	LeftTitle  string
	RightTitle string
	// Alert, when set, is shown once as a blocking alert and a banner.
	Alert string
	// Live enables the websocket client that applies instructions in place.
	Live bool
	// SocketPath is the websocket endpoint used when Live is set.
	SocketPath string
}

var tmpl = template.Must(template.New("page").Funcs(template.FuncMap{
	"navID":    render.NavID,
	"themeID":  render.ThemeTabID,
	"chartID":  render.SentimentChartID,
	"cloudID":  render.CompareCloudID,
	"kinds":    func() []string { return []string{"positive", "negative", "neutral"} },
	"label":    Label,
	"barID":    render.SentimentBarID,
	"valueID":  render.SentimentValueID,
	"styles":   func() template.CSS { return template.CSS(cssContent) },
	"clientJS": func() template.JS { return template.JS(jsContent) },
}).Parse(pageTemplate))

// Build executes the skeleton and parses it into a document.
func Build(l Layout) (*dom.Document, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, l); err != nil {
		return nil, fmt.Errorf("executing page template: %w", err)
	}
	return dom.Parse(&buf)
}

// NewLayout builds a layout for the given text ids, theme ids and pair.
// Navigation labels come from the document titles when available. href maps
// a navigation id (text id or "comparison") to a link target, themeHref maps
// a theme id; either may be nil.
func NewLayout(title string, doc *analysis.Document, texts, themes []string, pair render.Pair, href, themeHref func(string) string) Layout {
	l := Layout{
		Title:      title,
		Pair:       pair,
		LeftTitle:  textTitle(doc, pair.Left),
		RightTitle: textTitle(doc, pair.Right),
	}
	for _, id := range texts {
		l.Nav = append(l.Nav, Link{ID: id, Label: textTitle(doc, id), Href: linkOrEmpty(href, id)})
	}
	l.Nav = append(l.Nav, Link{ID: "comparison", Label: "Comparison", Href: linkOrEmpty(href, "comparison")})
	for _, id := range themes {
		l.Themes = append(l.Themes, Link{ID: id, Label: Label(id), Href: linkOrEmpty(themeHref, id)})
	}
	if doc == nil {
		l.Alert = LoadErrorMessage
	}
	return l
}

// Label turns an identifier into a display label: "state" -> "State".
func Label(id string) string {
	words := strings.FieldsFunc(id, func(r rune) bool { return r == '-' || r == '_' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func textTitle(doc *analysis.Document, id string) string {
	if doc != nil {
		if t, ok := doc.Texts[id]; ok && t.Title != "" {
			return t.Title
		}
	}
	return Label(id)
}

func linkOrEmpty(f func(string) string, id string) string {
	if f == nil {
		return "#"
	}
	return f(id)
}
