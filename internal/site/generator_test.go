package site

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ziadkadry99/distant-reading/internal/analysis"
	"github.com/ziadkadry99/distant-reading/internal/dom"
	"github.com/ziadkadry99/distant-reading/internal/render"
	"github.com/ziadkadry99/distant-reading/internal/testutil"
	"github.com/ziadkadry99/distant-reading/internal/view"
)

type recordingReporter struct {
	mu      sync.Mutex
	total   int
	updates int
	done    bool
}

func (r *recordingReporter) Start(total int) { r.total = total }
func (r *recordingReporter) Update(int, string) {
	r.mu.Lock()
	r.updates++
	r.mu.Unlock()
}
func (r *recordingReporter) Finish() { r.done = true }

func TestPages(t *testing.T) {
	pages := Pages(view.DefaultOptions())
	require.Len(t, pages, 7)

	files := make([]string, len(pages))
	for i, p := range pages {
		files[i] = p.File
	}
	assert.Equal(t, []string{
		"index.html", "wells-utopia.html", "wells-state.html",
		"dostoyevsky.html", "dostoyevsky-utopia.html", "dostoyevsky-state.html",
		"comparison.html",
	}, files)
	assert.Equal(t, view.ModeComparison, pages[6].State.Mode)
}

func TestGenerate(t *testing.T) {
	out := t.TempDir()
	rep := &recordingReporter{}
	g := NewSiteGenerator(testutil.SampleDocument(), view.DefaultOptions(), out, "Distant Reading")
	g.Reporter = rep

	n, err := g.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Equal(t, 7, rep.total)
	assert.Equal(t, 7, rep.updates)
	assert.True(t, rep.done)

	for _, name := range []string{
		"index.html", "comparison.html", "dostoyevsky-utopia.html", ReportFile,
		"analysis_results.json", "charts/wells-sentiment.svg", "charts/dostoyevsky-sentiment.svg",
	} {
		_, err := os.Stat(filepath.Join(out, filepath.FromSlash(name)))
		assert.NoError(t, err, name)
	}
}

func TestGeneratedPageReflectsSelection(t *testing.T) {
	out := t.TempDir()
	g := NewSiteGenerator(testutil.SampleDocument(), view.DefaultOptions(), out, "Distant Reading")
	_, err := g.Generate(context.Background())
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(out, "dostoyevsky-utopia.html"))
	require.NoError(t, err)
	defer f.Close()
	doc, err := dom.Parse(f)
	require.NoError(t, err)

	count, _ := doc.Text(render.IDThemeCount)
	assert.Equal(t, "40", count)
	active, _ := doc.HasClass(render.NavID("dostoyevsky"), render.ClassActive)
	assert.True(t, active)

	tab, err := doc.ByID(render.ThemeTabID("state"))
	require.NoError(t, err)
	assert.Equal(t, "dostoyevsky-state.html", dom.Attr(tab, "href"))

	nav, err := doc.ByID(render.NavID("wells"))
	require.NoError(t, err)
	assert.Equal(t, "wells-utopia.html", dom.Attr(nav, "href"))
}

func TestGeneratedPagesEscapeText(t *testing.T) {
	out := t.TempDir()
	g := NewSiteGenerator(testutil.SampleDocument(), view.DefaultOptions(), out, "Distant Reading")
	_, err := g.Generate(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "&lt;common&gt;")
	assert.NotContains(t, string(data), "<common>")
}

func TestGenerateWithoutDocument(t *testing.T) {
	g := NewSiteGenerator(nil, view.DefaultOptions(), t.TempDir(), "T")
	_, err := g.Generate(context.Background())
	assert.ErrorIs(t, err, ErrNoDocument)
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := NewSiteGenerator(testutil.SampleDocument(), view.DefaultOptions(), t.TempDir(), "T")
	_, err := g.Generate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReport(t *testing.T) {
	out := t.TempDir()
	g := NewSiteGenerator(testutil.SampleDocument(), view.DefaultOptions(), out, "Distant Reading")
	_, err := g.Generate(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(out, ReportFile))
	require.NoError(t, err)
	html := string(data)
	assert.Contains(t, html, "<table>")
	assert.Equal(t, 9, strings.Count(html, "<strong>"), "one bold label per metric row")
	assert.Contains(t, html, `src="charts/wells-sentiment.svg"`)
}

func TestSentimentSVG(t *testing.T) {
	doc := testutil.SampleDocument()
	var buf bytes.Buffer
	require.NoError(t, SentimentSVG(&buf, doc.Texts["wells"]))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, "30.0%")
	assert.Contains(t, out, "20.0%")
	assert.Contains(t, out, "50.0%")
	// 0.3 of the 240px track.
	assert.Contains(t, out, `width="72"`)
}

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

func TestSentimentSVGReportsWriteError(t *testing.T) {
	diskFull := errors.New("disk full")
	err := SentimentSVG(failingWriter{err: diskFull}, testutil.SampleDocument().Texts["wells"])
	assert.ErrorIs(t, err, diskFull)
}

func TestExportedDataRoundTrips(t *testing.T) {
	src := testutil.ProducerJSON(t)
	doc, err := analysis.Parse(src)
	require.NoError(t, err)

	out := t.TempDir()
	_, err = NewSiteGenerator(doc, view.DefaultOptions(), out, "T").Generate(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(out, "analysis_results.json"))
	require.NoError(t, err)
	assert.Equal(t, string(src), string(data))

	var body map[string]any
	require.NoError(t, json.Unmarshal(data, &body))
	assert.Equal(t, map[string]any{}, body["comparison"])
	complexity := body["texts"].(map[string]any)["dostoyevsky"].(map[string]any)["sentence_complexity"].(map[string]any)
	assert.NotContains(t, complexity, "shortest_sentence")
	assert.Contains(t, string(data), `"compound": 0.0,`)
}

func TestWatchTriggersOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "analysis_results.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 1)
	errCh := make(chan error, 1)
	go func() {
		errCh <- Watch(ctx, path, 20*time.Millisecond, func() error {
			select {
			case changed <- struct{}{}:
			default:
			}
			return nil
		}, zap.NewNop())
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(`{"texts":{}}`), 0o644))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("onChange was not called")
	}

	cancel()
	require.NoError(t, <-errCh)
}
