package view

import "github.com/ziadkadry99/distant-reading/internal/render"

// ComparisonID is the reserved navigation id of the comparison view.
const ComparisonID = "comparison"

// Mode is the visible view.
type Mode string

const (
	ModeText       Mode = "text"
	ModeComparison Mode = "comparison"
)

// State is the selection of one session. It lives as long as the session
// and is never persisted.
type State struct {
	TextID  string `json:"text_id"`
	ThemeID string `json:"theme_id"`
	Mode    Mode   `json:"mode"`
}

// Options describes the controls present on the page.
type Options struct {
	Texts        []string // navigation order, excluding the comparison control
	Themes       []string // theme tab order
	Pair         render.Pair
	DefaultText  string
	DefaultTheme string
}

// DefaultOptions matches the two-text dashboard.
func DefaultOptions() Options {
	return Options{
		Texts:        []string{"wells", "dostoyevsky"},
		Themes:       []string{"socialism", "utopia", "state"},
		Pair:         render.DefaultPair,
		DefaultText:  "wells",
		DefaultTheme: "socialism",
	}
}

// NavIDs returns every navigation id, the comparison control last.
func (o Options) NavIDs() []string {
	return append(append([]string(nil), o.Texts...), ComparisonID)
}
