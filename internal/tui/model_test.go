package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/distant-reading/internal/page"
	"github.com/ziadkadry99/distant-reading/internal/testutil"
	"github.com/ziadkadry99/distant-reading/internal/view"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newModel(t *testing.T) *Model {
	t.Helper()
	m, err := New(testutil.SampleDocument(), view.DefaultOptions(), "Distant Reading")
	require.NoError(t, err)
	require.NoError(t, m.Err())
	return m
}

func TestInitialView(t *testing.T) {
	m := newModel(t)
	out := m.View()
	assert.Contains(t, out, "A Modern Utopia")
	assert.Contains(t, out, "by H. G. Wells")
	assert.Contains(t, out, "112,345")
	assert.Contains(t, out, "3/14/2025")
	assert.Contains(t, out, "utopia")
	assert.Contains(t, out, "30.0%")
}

func TestNavigation(t *testing.T) {
	m := newModel(t)

	m.Update(key("tab"))
	assert.Equal(t, "dostoyevsky", m.State().TextID)
	assert.Contains(t, m.View(), "Notes from the Underground")

	m.Update(key("tab"))
	assert.Equal(t, view.ModeComparison, m.State().Mode)
	assert.Equal(t, "dostoyevsky", m.State().TextID, "comparison keeps the current text")
	assert.Contains(t, m.View(), "Sentiment (Positive %)")

	m.Update(key("tab"))
	assert.Equal(t, view.ModeText, m.State().Mode)
	assert.Equal(t, "wells", m.State().TextID)

	m.Update(key("shift+tab"))
	assert.Equal(t, view.ModeComparison, m.State().Mode)

	m.Update(key("2"))
	assert.Equal(t, "dostoyevsky", m.State().TextID)
	assert.Equal(t, view.ModeText, m.State().Mode)
}

func TestThemeCycling(t *testing.T) {
	m := newModel(t)
	m.Update(key("2"))

	m.Update(key("t"))
	assert.Equal(t, "utopia", m.State().ThemeID)
	assert.Contains(t, m.View(), "reason")

	m.Update(key("T"))
	m.Update(key("T"))
	assert.Equal(t, "state", m.State().ThemeID)
}

func TestQuit(t *testing.T) {
	m := newModel(t)
	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}

func TestLoadError(t *testing.T) {
	m, err := New(nil, view.DefaultOptions(), "Distant Reading")
	require.NoError(t, err)
	assert.ErrorIs(t, m.Err(), view.ErrNotLoaded)
	assert.Contains(t, m.View(), page.LoadErrorMessage)

	m.Update(key("tab"))
	assert.ErrorIs(t, m.Err(), view.ErrNotLoaded)
}

func TestHSLColor(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#0000ff"), hslColor("hsl(240, 100%, 50%)"))
	assert.Equal(t, accentColor, hslColor("blue"))
}

func TestBar(t *testing.T) {
	out := bar("positive", "50.0%", "50.0%")
	assert.Contains(t, out, "Positive")
	assert.Contains(t, out, "50.0%")
}
