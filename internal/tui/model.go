// Package tui is a terminal host for the dashboard. It applies the same
// render passes as the browser to an in-memory page and draws the result.
package tui

import (
	"errors"
	"slices"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/net/html"

	"github.com/ziadkadry99/distant-reading/internal/analysis"
	"github.com/ziadkadry99/distant-reading/internal/dom"
	"github.com/ziadkadry99/distant-reading/internal/page"
	"github.com/ziadkadry99/distant-reading/internal/render"
	"github.com/ziadkadry99/distant-reading/internal/view"
)

const barWidth = 30

// Model is the bubbletea model of the terminal dashboard.
type Model struct {
	ctrl   *view.Controller
	page   *dom.Document
	layout page.Layout
	opts   view.Options
	title  string

	width    int
	err      error
	quitting bool
}

// New builds the model and runs the initial render pass. A nil doc yields a
// model that only shows the load error.
func New(doc *analysis.Document, opts view.Options, title string) (*Model, error) {
	layout := page.NewLayout(title, doc, opts.Texts, opts.Themes, opts.Pair, nil, nil)
	p, err := page.Build(layout)
	if err != nil {
		return nil, err
	}
	m := &Model{
		ctrl:   view.NewController(doc, opts),
		page:   p,
		layout: layout,
		opts:   opts,
		title:  title,
		width:  100,
	}
	m.apply(m.ctrl.Init())
	return m, nil
}

// State returns the current selection.
func (m *Model) State() view.State { return m.ctrl.State() }

// Err returns the error of the last interaction, if any.
func (m *Model) Err() error { return m.err }

func (m *Model) apply(ins []render.Instruction, err error) {
	if err == nil {
		err = m.page.Apply(ins...)
	}
	m.err = err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		nav := m.opts.NavIDs()
		switch key := msg.String(); key {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab", "right", "l":
			m.selectText(nav[(m.navIndex()+1)%len(nav)])
		case "shift+tab", "left", "h":
			m.selectText(nav[(m.navIndex()+len(nav)-1)%len(nav)])
		case "t":
			m.cycleTheme(1)
		case "T":
			m.cycleTheme(-1)
		default:
			if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(nav) {
				m.selectText(nav[n-1])
			}
		}
	}
	return m, nil
}

func (m *Model) selectText(id string) { m.apply(m.ctrl.SelectText(id)) }

func (m *Model) cycleTheme(step int) {
	if len(m.opts.Themes) == 0 {
		return
	}
	i := slices.Index(m.opts.Themes, m.ctrl.State().ThemeID)
	n := len(m.opts.Themes)
	m.apply(m.ctrl.SelectTheme(m.opts.Themes[((i+step)%n+n)%n]))
}

func (m *Model) navIndex() int {
	s := m.ctrl.State()
	if s.Mode == view.ModeComparison {
		return len(m.opts.Texts)
	}
	return max(0, slices.Index(m.opts.Texts, s.TextID))
}

// View renders the model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("  ")
	b.WriteString(subtleStyle.Render("Analysis date: " + m.text(render.IDAnalysisDate)))
	b.WriteString("\n\n")

	if errors.Is(m.err, view.ErrNotLoaded) {
		b.WriteString(errorStyle.Render(page.LoadErrorMessage))
		b.WriteString("\n\n" + subtleStyle.Render("q quit") + "\n")
		return b.String()
	}

	b.WriteString(m.renderTabs(m.layout.Nav, render.NavID))
	b.WriteString("\n\n")

	if m.ctrl.State().Mode == view.ModeComparison {
		b.WriteString(m.renderComparison())
	} else {
		b.WriteString(m.renderText())
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()) + "\n")
	}
	b.WriteString(subtleStyle.Render("tab/←/→ switch text · 1-9 jump · t/T theme · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) renderTabs(links []page.Link, elementID func(string) string) string {
	tabs := make([]string, 0, len(links))
	for _, l := range links {
		if ok, _ := m.page.HasClass(elementID(l.ID), render.ClassActive); ok {
			tabs = append(tabs, activeTabStyle.Render(l.Label))
		} else {
			tabs = append(tabs, tabStyle.Render(l.Label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) renderText() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.text(render.IDTextTitle)) + " " + subtleStyle.Render(m.text(render.IDTextAuthor)) + "\n\n")

	b.WriteString(panel("Statistics",
		metric("Words", m.text(render.IDWordCount)),
		metric("Sentences", m.text(render.IDSentenceCount)),
		metric("Avg Sentence Length", m.text(render.IDAvgSentence)),
		metric("Lexical Diversity", m.text(render.IDLexicalDiversity)),
	))

	b.WriteString(panel("Most Frequent Words", m.renderCloud(render.IDWordCloud)))

	var sentiment []string
	for _, kind := range []string{"positive", "negative", "neutral"} {
		width, _ := m.page.Style(render.SentimentBarID(kind), "width")
		sentiment = append(sentiment, bar(kind, width, m.text(render.SentimentValueID(kind))))
	}
	sentiment = append(sentiment,
		metric("Polarity", m.text(render.IDPolarity)),
		metric("Subjectivity", m.text(render.IDSubjectivity)),
	)
	b.WriteString(panel("Sentiment", sentiment...))

	themes := []string{
		m.renderTabs(m.layout.Themes, render.ThemeTabID),
		metric("Occurrences", m.text(render.IDThemeCount)),
		metric("Density (per 1000 words)", m.text(render.IDThemeDensity)),
	}
	themes = append(themes, m.renderExamples()...)
	b.WriteString(panel("Thematic Analysis", themes...))

	b.WriteString(panel("Style",
		metric("Type-Token Ratio", m.text(render.IDTTR)),
		metric("Unique Words", m.text(render.IDUniqueWords)),
		metric("Avg Word Length", m.text(render.IDAvgWordLength)),
		metric("Avg Sentence Length", m.text(render.IDSentenceAvg)),
		metric("Shortest Sentence", m.text(render.IDSentenceMin)),
		metric("Longest Sentence", m.text(render.IDSentenceMax)),
		metric("Flesch Reading Ease", m.text(render.IDFleschEase)),
		metric("Flesch-Kincaid Grade", m.text(render.IDFleschGrade)),
	))
	return b.String()
}

func (m *Model) renderComparison() string {
	var b strings.Builder
	rows, _ := m.page.Elements(render.IDComparisonTableBody)
	header := labelStyle.Render("Metric") + lipgloss.NewStyle().Width(20).Bold(true).Render(m.layout.LeftTitle) +
		lipgloss.NewStyle().Bold(true).Render(m.layout.RightTitle)
	lines := []string{header}
	for _, row := range rows {
		var cells []string
		for c := row.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				cells = append(cells, dom.TextContent(c))
			}
		}
		if len(cells) == 3 {
			lines = append(lines, labelStyle.Render(cells[0])+
				lipgloss.NewStyle().Width(20).Render(cells[1])+cells[2])
		}
	}
	b.WriteString(panel("Comparison", lines...))
	b.WriteString(panel(m.layout.LeftTitle, m.renderCloud(render.CompareCloudID(m.opts.Pair.Left))))
	b.WriteString(panel(m.layout.RightTitle, m.renderCloud(render.CompareCloudID(m.opts.Pair.Right))))
	return b.String()
}

// renderCloud draws the words of a cloud container in their computed
// colours, emboldening the larger half.
func (m *Model) renderCloud(id string) string {
	items, _ := m.page.Elements(id)
	words := make([]string, 0, len(items))
	for _, n := range items {
		style := lipgloss.NewStyle().Foreground(hslColor(dom.StyleOf(n, "color")))
		if size, err := strconv.ParseFloat(strings.TrimSuffix(dom.StyleOf(n, "font-size"), "px"), 64); err == nil && size >= (render.MinFontSize+render.MaxFontSize)/2 {
			style = style.Bold(true)
		}
		words = append(words, style.Render(dom.TextContent(n)))
	}
	return lipgloss.NewStyle().Width(max(20, m.width-6)).Render(strings.Join(words, " "))
}

func (m *Model) renderExamples() []string {
	items, _ := m.page.Elements(render.IDThemeExamplesList)
	var out []string
	for _, n := range items {
		if dom.Attr(n, "class") != "example-item" {
			out = append(out, subtleStyle.Render(dom.TextContent(n)))
			continue
		}
		var keyword, sentence string
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch dom.Attr(c, "class") {
			case "example-keyword":
				keyword = dom.TextContent(c)
			case "example-sentence":
				sentence = dom.TextContent(c)
			}
		}
		out = append(out, headingStyle.Render(keyword)+" "+sentence)
	}
	return out
}

func (m *Model) text(id string) string {
	s, err := m.page.Text(id)
	if err != nil || s == "" {
		return "-"
	}
	return s
}

func panel(title string, lines ...string) string {
	return panelStyle.Render(headingStyle.Render(title)+"\n"+strings.Join(lines, "\n")) + "\n"
}

func metric(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}

// bar draws a sentiment bar from its CSS width ("30.0%").
func bar(kind, width, value string) string {
	pct, _ := strconv.ParseFloat(strings.TrimSuffix(width, "%"), 64)
	filled := max(0, min(barWidth, int(pct/100*barWidth+0.5)))
	fill := lipgloss.NewStyle().Foreground(barColors[kind]).Render(strings.Repeat("█", filled))
	rest := subtleStyle.Render(strings.Repeat("░", barWidth-filled))
	return labelStyle.Render(page.Label(kind)) + fill + rest + " " + value
}

// Run starts the terminal dashboard.
func Run(m *Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
