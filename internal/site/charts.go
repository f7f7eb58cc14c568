package site

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	svg "github.com/ajstarks/svgo"

	"github.com/ziadkadry99/distant-reading/internal/analysis"
	"github.com/ziadkadry99/distant-reading/internal/render"
)

const chartsDir = "charts"

const (
	chartWidth  = 420
	chartHeight = 150
	chartLabelW = 90
	chartTrackW = 240
	chartRowH   = 36
)

var chartColors = map[string]string{
	"positive": "#27ae60",
	"negative": "#c0392b",
	"neutral":  "#7f8c8d",
}

// ChartFile is the path of a text's sentiment chart relative to the site root.
func ChartFile(textID string) string {
	return chartsDir + "/" + textID + "-sentiment.svg"
}

func (g *SiteGenerator) writeChart(textID string) (err error) {
	text, err := g.Doc.Text(textID)
	if err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(g.OutputDir, filepath.FromSlash(ChartFile(textID))))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return SentimentSVG(f, text)
}

// stickyWriter remembers the first write error. svgo discards the errors of
// the writes it makes.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) Write(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err := s.w.Write(p)
	s.err = err
	return n, err
}

// SentimentSVG draws the three sentiment bars of a text with their
// percentages, the same bars the comparison view shows.
func SentimentSVG(w io.Writer, text analysis.Text) error {
	sw := &stickyWriter{w: w}
	canvas := svg.New(sw)
	canvas.Start(chartWidth, chartHeight)
	canvas.Rect(0, 0, chartWidth, chartHeight, "fill:#ffffff")
	canvas.Text(12, 22, text.Title, "fill:#2c3e50;font-size:14px;font-family:Georgia,serif;font-weight:bold")

	for i, b := range render.SentimentBars(text.Sentiment) {
		y := 36 + i*chartRowH
		width := int(math.Round(barValue(text.Sentiment, b.Kind) * chartTrackW))
		width = max(0, min(width, chartTrackW))

		canvas.Text(12, y+16, b.Label, "fill:#2c3e50;font-size:12px;font-family:sans-serif")
		canvas.Rect(chartLabelW, y+4, chartTrackW, 16, "fill:#ecf0f1")
		canvas.Rect(chartLabelW, y+4, width, 16, fmt.Sprintf("fill:%s", chartColors[b.Kind]))
		canvas.Text(chartLabelW+chartTrackW+8, y+16, b.Width, "fill:#2c3e50;font-size:12px;font-family:sans-serif")
	}

	canvas.End()
	return sw.err
}

func barValue(s analysis.Sentiment, kind string) float64 {
	switch kind {
	case "positive":
		return s.Positive
	case "negative":
		return s.Negative
	default:
		return s.Neutral
	}
}
