package render

import (
	"strconv"

	"github.com/ziadkadry99/distant-reading/internal/analysis"
)

// EmptyThemeText replaces the example list when a theme has no examples.
const EmptyThemeText = "No examples found for this theme."

// Theme renders the theme panel for one text's theme result.
func Theme(th analysis.ThemeResult) []Instruction {
	out := []Instruction{
		SetText(IDThemeCount, strconv.Itoa(th.Count)),
		SetText(IDThemeDensity, Number(th.Density)),
		Clear(IDThemeExamplesList),
	}
	if len(th.Examples) == 0 {
		return append(out, Append(IDThemeExamplesList, el("p", "", EmptyThemeText)))
	}
	for _, ex := range th.Examples {
		out = append(out, Append(IDThemeExamplesList, el("div", "example-item", "",
			el("div", "example-keyword", ex.Keyword),
			el("p", "example-sentence", `"`+ex.Sentence+`"`),
		)))
	}
	return out
}
