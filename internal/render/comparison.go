package render

import (
	"fmt"
	"strings"

	"github.com/ziadkadry99/distant-reading/internal/analysis"
)

// Pair selects the two texts shown side by side in the comparison view.
type Pair struct {
	Left  string `json:"left" yaml:"left" koanf:"left"`
	Right string `json:"right" yaml:"right" koanf:"right"`
}

// DefaultPair is the comparison the dashboard was built around.
var DefaultPair = Pair{Left: "wells", Right: "dostoyevsky"}

// Metric is one row of the comparison table.
type Metric struct {
	Label string
	Left  string
	Right string
}

// ComparisonMetrics returns the nine comparison rows in their fixed order.
func ComparisonMetrics(left, right analysis.Text) []Metric {
	row := func(label string, f func(analysis.Text) string) Metric {
		return Metric{Label: label, Left: f(left), Right: f(right)}
	}
	return []Metric{
		row("Word Count", func(t analysis.Text) string { return Grouped(t.BasicStats.WordCount) }),
		row("Sentence Count", func(t analysis.Text) string { return Grouped(t.BasicStats.SentenceCount) }),
		row("Lexical Diversity", func(t analysis.Text) string { return Number(t.VocabularyRichness.LexicalDiversity) + "%" }),
		row("Type-Token Ratio", func(t analysis.Text) string { return Number(t.VocabularyRichness.TypeTokenRatio) }),
		row("Avg Sentence Length", func(t analysis.Text) string { return Number(t.SentenceComplexity.AverageSentenceLength) }),
		row("Flesch Reading Ease", func(t analysis.Text) string { return Number(t.Readability.FleschReadingEase) }),
		row("Sentiment Polarity", func(t analysis.Text) string { return Number(t.Sentiment.Polarity) }),
		row("Sentiment (Positive %)", func(t analysis.Text) string { return Percent(t.Sentiment.Positive) }),
		row("Sentiment (Negative %)", func(t analysis.Text) string { return Percent(t.Sentiment.Negative) }),
	}
}

// Comparison renders the comparison table, both sentiment charts and both
// word clouds. A missing text aborts the pass with no instructions.
func Comparison(doc *analysis.Document, pair Pair) ([]Instruction, error) {
	left, err := doc.Text(pair.Left)
	if err != nil {
		return nil, err
	}
	right, err := doc.Text(pair.Right)
	if err != nil {
		return nil, err
	}

	out := []Instruction{Clear(IDComparisonTableBody)}
	for _, m := range ComparisonMetrics(left, right) {
		out = append(out, Append(IDComparisonTableBody, el("tr", "", "",
			el("td", "", "", el("strong", "", m.Label)),
			el("td", "", m.Left),
			el("td", "", m.Right),
		)))
	}

	out = append(out, SentimentChart(SentimentChartID(pair.Left), left.Sentiment)...)
	out = append(out, SentimentChart(SentimentChartID(pair.Right), right.Sentiment)...)
	out = append(out, WordCloud(CompareCloudID(pair.Left), left.WordFrequencies)...)
	out = append(out, WordCloud(CompareCloudID(pair.Right), right.WordFrequencies)...)
	return out, nil
}

// ComparisonMarkdown renders the comparison table as a GitHub-flavoured
// markdown table headed by the two titles.
func ComparisonMarkdown(doc *analysis.Document, pair Pair) (string, error) {
	left, err := doc.Text(pair.Left)
	if err != nil {
		return "", err
	}
	right, err := doc.Text(pair.Right)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s vs. %s\n\n", left.Title, right.Title)
	fmt.Fprintf(&b, "| Metric | %s | %s |\n", mdCell(left.Title), mdCell(right.Title))
	b.WriteString("| --- | ---: | ---: |\n")
	for _, m := range ComparisonMetrics(left, right) {
		fmt.Fprintf(&b, "| **%s** | %s | %s |\n", mdCell(m.Label), mdCell(m.Left), mdCell(m.Right))
	}
	return b.String(), nil
}

func mdCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
