// Package view owns the selection state and turns user interactions into
// render passes.
package view

import (
	"errors"
	"fmt"
	"slices"

	"github.com/ziadkadry99/distant-reading/internal/analysis"
	"github.com/ziadkadry99/distant-reading/internal/render"
)

var (
	// ErrNotLoaded is returned by every interaction when the document failed to load.
	ErrNotLoaded = errors.New("analysis data not loaded")
	// ErrUnknownControl is returned for ids that no control on the page carries.
	ErrUnknownControl = errors.New("unknown control")
)

// Controller handles navigation and theme-tab interactions for one session.
// It is not safe for concurrent use; each session owns its own Controller.
type Controller struct {
	doc   *analysis.Document
	opts  Options
	state State
}

// NewController creates a Controller. doc may be nil when loading failed;
// the controller is still usable but every interaction reports ErrNotLoaded.
func NewController(doc *analysis.Document, opts Options) *Controller {
	return &Controller{
		doc:  doc,
		opts: opts,
		state: State{
			TextID:  opts.DefaultText,
			ThemeID: opts.DefaultTheme,
			Mode:    ModeText,
		},
	}
}

// State returns a copy of the current selection.
func (c *Controller) State() State { return c.state }

// Options returns the controls the controller was built for.
func (c *Controller) Options() Options { return c.opts }

// Init renders the initial page: the analysis date, the active controls and
// every panel for the default text.
func (c *Controller) Init() ([]render.Instruction, error) {
	if c.doc == nil {
		return nil, ErrNotLoaded
	}
	text, err := c.renderText(c.state.TextID, c.state.ThemeID)
	if err != nil {
		return nil, err
	}

	out := []render.Instruction{render.AnalysisDate(c.doc.Metadata)}
	out = append(out, c.activate(c.opts.NavIDs(), render.NavID, c.state.TextID)...)
	out = append(out, c.showView(ModeText)...)
	out = append(out, c.activate(c.opts.Themes, render.ThemeTabID, c.state.ThemeID)...)
	return append(out, text...), nil
}

// SelectText switches to a text, or to the comparison view for ComparisonID.
// Selecting the comparison keeps the current text id. On error the state is
// unchanged and no instructions are returned.
func (c *Controller) SelectText(id string) ([]render.Instruction, error) {
	if c.doc == nil {
		return nil, ErrNotLoaded
	}

	if id == ComparisonID {
		body, err := render.Comparison(c.doc, c.opts.Pair)
		if err != nil {
			return nil, err
		}
		c.state.Mode = ModeComparison

		out := c.activate(c.opts.NavIDs(), render.NavID, ComparisonID)
		out = append(out, c.showView(ModeComparison)...)
		return append(out, body...), nil
	}

	if !slices.Contains(c.opts.Texts, id) {
		return nil, fmt.Errorf("%w: text %q", ErrUnknownControl, id)
	}
	body, err := c.renderText(id, c.state.ThemeID)
	if err != nil {
		return nil, err
	}
	c.state.TextID = id
	c.state.Mode = ModeText

	out := c.activate(c.opts.NavIDs(), render.NavID, id)
	out = append(out, c.showView(ModeText)...)
	return append(out, body...), nil
}

// SelectTheme changes the theme and re-renders only the theme panel of the
// current text.
func (c *Controller) SelectTheme(id string) ([]render.Instruction, error) {
	if c.doc == nil {
		return nil, ErrNotLoaded
	}
	if !slices.Contains(c.opts.Themes, id) {
		return nil, fmt.Errorf("%w: theme %q", ErrUnknownControl, id)
	}
	theme, err := c.doc.Theme(c.state.TextID, id)
	if err != nil {
		return nil, err
	}
	c.state.ThemeID = id

	out := c.activate(c.opts.Themes, render.ThemeTabID, id)
	return append(out, render.Theme(theme)...), nil
}

func (c *Controller) renderText(textID, themeID string) ([]render.Instruction, error) {
	text, err := c.doc.Text(textID)
	if err != nil {
		return nil, err
	}
	theme, err := c.doc.Theme(textID, themeID)
	if err != nil {
		return nil, err
	}
	return render.Text(text, theme), nil
}

// activate leaves exactly one control of the group marked active.
func (c *Controller) activate(ids []string, elementID func(string) string, active string) []render.Instruction {
	out := make([]render.Instruction, 0, len(ids)+1)
	for _, id := range ids {
		out = append(out, render.RemoveClass(elementID(id), render.ClassActive))
	}
	return append(out, render.AddClass(elementID(active), render.ClassActive))
}

func (c *Controller) showView(m Mode) []render.Instruction {
	if m == ModeComparison {
		return []render.Instruction{
			render.RemoveClass(render.IDSingleTextView, render.ClassActive),
			render.AddClass(render.IDComparisonView, render.ClassActive),
		}
	}
	return []render.Instruction{
		render.RemoveClass(render.IDComparisonView, render.ClassActive),
		render.AddClass(render.IDSingleTextView, render.ClassActive),
	}
}

// Restore renders the initial page and then replays the interactions that
// lead to s. It is used when a session starts from a selection other than
// the defaults.
func (c *Controller) Restore(s State) ([]render.Instruction, error) {
	out, err := c.Init()
	if err != nil {
		return nil, err
	}

	// The text goes first so the theme is looked up in the requested text.
	steps := []func() ([]render.Instruction, error){}
	if s.TextID != "" && s.TextID != c.state.TextID {
		steps = append(steps, func() ([]render.Instruction, error) { return c.SelectText(s.TextID) })
	}
	if s.ThemeID != "" && s.ThemeID != c.state.ThemeID {
		steps = append(steps, func() ([]render.Instruction, error) { return c.SelectTheme(s.ThemeID) })
	}
	if s.Mode == ModeComparison {
		steps = append(steps, func() ([]render.Instruction, error) { return c.SelectText(ComparisonID) })
	}

	for _, step := range steps {
		more, err := step()
		if err != nil {
			return nil, err
		}
		out = append(out, more...)
	}
	return out, nil
}
