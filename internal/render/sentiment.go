package render

import "github.com/ziadkadry99/distant-reading/internal/analysis"

// SentimentBar is one proportional bar.
type SentimentBar struct {
	Kind  string // positive, negative or neutral
	Label string
	Width string // e.g. "30.0%"
}

// SentimentBars returns the positive, negative and neutral bars in that order.
func SentimentBars(s analysis.Sentiment) []SentimentBar {
	return []SentimentBar{
		{Kind: "positive", Label: "Positive", Width: Percent(s.Positive)},
		{Kind: "negative", Label: "Negative", Width: Percent(s.Negative)},
		{Kind: "neutral", Label: "Neutral", Width: Percent(s.Neutral)},
	}
}

// Sentiment updates the single-text sentiment panel.
func Sentiment(s analysis.Sentiment) []Instruction {
	var out []Instruction
	for _, b := range SentimentBars(s) {
		out = append(out,
			SetStyle(SentimentBarID(b.Kind), "width", b.Width),
			SetText(SentimentValueID(b.Kind), b.Width),
		)
	}
	return append(out,
		SetText(IDPolarity, Number(s.Polarity)),
		SetText(IDSubjectivity, Number(s.Subjectivity)),
	)
}

// SentimentChart rebuilds a self-contained sentiment chart inside a container.
func SentimentChart(containerID string, s analysis.Sentiment) []Instruction {
	out := []Instruction{Clear(containerID)}
	for _, b := range SentimentBars(s) {
		fill := &Node{
			Tag:   "div",
			Class: "chart-fill chart-fill-" + b.Kind,
			Style: []Decl{{Property: "width", Value: b.Width}},
		}
		out = append(out, Append(containerID, el("div", "chart-row", "",
			el("div", "chart-label", "", el("strong", "", b.Label+":"), el("span", "", " "+b.Width)),
			el("div", "chart-track", "", fill),
		)))
	}
	return append(out, Append(containerID, el("div", "chart-scores", "",
		el("div", "", "", el("strong", "", "Polarity:"), el("span", "", " "+Number(s.Polarity))),
		el("div", "", "", el("strong", "", "Subjectivity:"), el("span", "", " "+Number(s.Subjectivity))),
	)))
}
