package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ziadkadry99/distant-reading/internal/analysis"
	"github.com/ziadkadry99/distant-reading/internal/page"
	"github.com/ziadkadry99/distant-reading/internal/progress"
	"github.com/ziadkadry99/distant-reading/internal/view"
)

// ErrNoDocument is returned when generation is attempted without data.
var ErrNoDocument = errors.New("no analysis document to export")

// SiteGenerator exports the dashboard as a set of static HTML pages, one per
// selection, plus a comparison report, sentiment charts and the data file.
type SiteGenerator struct {
	Doc       *analysis.Document
	Options   view.Options
	OutputDir string
	Title     string

	// Reporter receives page progress; nil disables reporting.
	Reporter progress.Reporter
	Logger   *zap.Logger
	// Workers bounds concurrent page rendering; zero means GOMAXPROCS.
	Workers int
}

// NewSiteGenerator creates a SiteGenerator for the given document.
func NewSiteGenerator(doc *analysis.Document, opts view.Options, outputDir, title string) *SiteGenerator {
	return &SiteGenerator{
		Doc:       doc,
		Options:   opts,
		OutputDir: outputDir,
		Title:     title,
		Logger:    zap.NewNop(),
	}
}

// Page is one exported selection.
type Page struct {
	File  string
	State view.State
}

// Pages lists every exported page: each text with each theme, then the
// comparison page. The default selection is written to index.html.
func Pages(opts view.Options) []Page {
	var pages []Page
	for _, text := range opts.Texts {
		for _, theme := range opts.Themes {
			s := view.State{TextID: text, ThemeID: theme, Mode: view.ModeText}
			pages = append(pages, Page{File: PageFile(opts, s), State: s})
		}
	}
	s := view.State{TextID: opts.DefaultText, ThemeID: opts.DefaultTheme, Mode: view.ModeComparison}
	return append(pages, Page{File: PageFile(opts, s), State: s})
}

// PageFile names the file holding a selection.
func PageFile(opts view.Options, s view.State) string {
	switch {
	case s.Mode == view.ModeComparison:
		return "comparison.html"
	case s.TextID == opts.DefaultText && s.ThemeID == opts.DefaultTheme:
		return "index.html"
	case s.ThemeID == opts.DefaultTheme:
		return url.PathEscape(s.TextID) + ".html"
	default:
		return url.PathEscape(s.TextID) + "-" + url.PathEscape(s.ThemeID) + ".html"
	}
}

// Generate builds the full static site. Returns the number of dashboard pages generated.
func (g *SiteGenerator) Generate(ctx context.Context) (int, error) {
	if g.Doc == nil {
		return 0, ErrNoDocument
	}
	logger := g.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := os.MkdirAll(filepath.Join(g.OutputDir, chartsDir), 0o755); err != nil {
		return 0, err
	}

	pages := Pages(g.Options)
	if g.Reporter != nil {
		g.Reporter.Start(len(pages))
		defer g.Reporter.Finish()
	}

	workers := g.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	var done atomic.Int64
	for _, p := range pages {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			if err := g.renderPage(p); err != nil {
				return fmt.Errorf("rendering %s: %w", p.File, err)
			}
			n := done.Add(1)
			if g.Reporter != nil {
				g.Reporter.Update(int(n), p.File)
			}
			logger.Debug("Page written", zap.String("file", p.File))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}

	for _, id := range g.Options.Texts {
		if err := g.writeChart(id); err != nil {
			return 0, fmt.Errorf("writing chart for %s: %w", id, err)
		}
	}
	if err := g.writeReport(); err != nil {
		return 0, fmt.Errorf("writing report: %w", err)
	}

	data, err := g.Doc.Raw()
	if err != nil {
		return 0, fmt.Errorf("encoding data: %w", err)
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, analysis.DefaultPath), data, 0o644); err != nil {
		return 0, err
	}

	logger.Info("Site generated", zap.String("dir", g.OutputDir), zap.Int("pages", len(pages)))
	return len(pages), nil
}

// renderPage builds the skeleton for one selection, applies the controller's
// render pass to it and writes the result.
func (g *SiteGenerator) renderPage(p Page) error {
	layout := page.NewLayout(g.Title, g.Doc, g.Options.Texts, g.Options.Themes, g.Options.Pair,
		func(id string) string {
			if id == view.ComparisonID {
				return PageFile(g.Options, view.State{Mode: view.ModeComparison})
			}
			return PageFile(g.Options, view.State{TextID: id, ThemeID: p.State.ThemeID, Mode: view.ModeText})
		},
		func(id string) string {
			return PageFile(g.Options, view.State{TextID: p.State.TextID, ThemeID: id, Mode: view.ModeText})
		},
	)

	doc, err := page.Build(layout)
	if err != nil {
		return err
	}
	ctrl := view.NewController(g.Doc, g.Options)
	instructions, err := ctrl.Restore(p.State)
	if err != nil {
		return err
	}
	if err := doc.Apply(instructions...); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(g.OutputDir, p.File), buf.Bytes(), 0o644)
}
