package site

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/ziadkadry99/distant-reading/internal/render"
)

// ReportFile is the comparison report written next to the pages.
const ReportFile = "report.html"

// reportData holds the data passed to the report template.
type reportData struct {
	Title   string
	Content template.HTML
	Charts  []string
}

var reportTmpl = template.Must(template.New("report").Parse(reportTemplate))

// newMarkdown returns the goldmark converter used for reports. Raw HTML in
// the source is not passed through.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
}

// writeReport converts the comparison markdown into report.html.
func (g *SiteGenerator) writeReport() (err error) {
	src, err := render.ComparisonMarkdown(g.Doc, g.Options.Pair)
	if err != nil {
		return err
	}

	var htmlBuf bytes.Buffer
	if err := newMarkdown().Convert([]byte(src), &htmlBuf); err != nil {
		return fmt.Errorf("converting markdown: %w", err)
	}

	data := reportData{
		Title:   g.Title,
		Content: template.HTML(htmlBuf.String()),
		Charts:  []string{ChartFile(g.Options.Pair.Left), ChartFile(g.Options.Pair.Right)},
	}

	f, err := os.Create(filepath.Join(g.OutputDir, ReportFile))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return reportTmpl.Execute(f, data)
}

const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>{{.Title}} - Comparison report</title>
  <style>
    body { font-family: Georgia, serif; max-width: 860px; margin: 2rem auto; color: #2c3e50; }
    table { border-collapse: collapse; width: 100%; }
    th, td { border-bottom: 1px solid #ddd; padding: 0.5rem; text-align: left; }
    .charts img { width: 48%; }
  </style>
</head>
<body>
  <p><a href="index.html">Back to dashboard</a></p>
  {{.Content}}
  <div class="charts">{{range .Charts}}<img src="{{.}}" alt="sentiment chart">{{end}}</div>
</body>
</html>
`
