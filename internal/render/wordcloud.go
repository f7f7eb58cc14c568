package render

import (
	"strconv"

	"github.com/ziadkadry99/distant-reading/internal/analysis"
)

const (
	MinFontSize = 12.0
	MaxFontSize = 48.0

	HueStart = 240.0 // blue
	HueSpan  = 60.0  // to purple

	MinSaturation  = 60.0
	SaturationSpan = 40.0
	Lightness      = 50.0

	// degenerateScale is the normalised count used when every count is
	// equal and no interpolation range exists.
	degenerateScale = 0.5
)

// EmptyWordCloudText is shown when there are no word frequencies.
const EmptyWordCloudText = "No word frequency data available"

// WordStyle is the computed presentation of one word-cloud entry.
type WordStyle struct {
	Word       string
	Count      int
	FontSize   float64
	Hue        float64
	Saturation float64
	Lightness  float64
}

// Title is the tooltip text of the word.
func (w WordStyle) Title() string {
	return `"` + w.Word + `" appears ` + strconv.Itoa(w.Count) + " times"
}

// Color is the CSS colour of the word.
func (w WordStyle) Color() string {
	return "hsl(" + Number(w.Hue) + ", " + Number(w.Saturation) + "%, " + Number(w.Lightness) + "%)"
}

// ScaleWords computes font size and colour for each entry, keeping the
// given order. Size and saturation follow the count; hue follows position.
func ScaleWords(freqs []analysis.WordFrequency) []WordStyle {
	if len(freqs) == 0 {
		return nil
	}

	minCount, maxCount := freqs[0].Count, freqs[0].Count
	for _, f := range freqs[1:] {
		minCount = min(minCount, f.Count)
		maxCount = max(maxCount, f.Count)
	}

	n := float64(len(freqs))
	styles := make([]WordStyle, len(freqs))
	for i, f := range freqs {
		scale := degenerateScale
		if maxCount != minCount {
			scale = float64(f.Count-minCount) / float64(maxCount-minCount)
		}
		styles[i] = WordStyle{
			Word:       f.Word,
			Count:      f.Count,
			FontSize:   MinFontSize + scale*(MaxFontSize-MinFontSize),
			Hue:        HueStart + (float64(i)/n)*HueSpan,
			Saturation: MinSaturation + scale*SaturationSpan,
			Lightness:  Lightness,
		}
	}
	return styles
}

// WordCloud clears the container and fills it with one span per word.
func WordCloud(containerID string, freqs []analysis.WordFrequency) []Instruction {
	if len(freqs) == 0 {
		return []Instruction{
			Clear(containerID),
			SetText(containerID, EmptyWordCloudText),
		}
	}

	out := []Instruction{Clear(containerID)}
	for _, w := range ScaleWords(freqs) {
		out = append(out, Append(containerID, &Node{
			Tag:   "span",
			Class: "word-item",
			Text:  w.Word,
			Title: w.Title(),
			Style: []Decl{
				{Property: "font-size", Value: Number(w.FontSize) + "px"},
				{Property: "color", Value: w.Color()},
			},
		}))
	}
	return out
}
