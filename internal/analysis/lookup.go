package analysis

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownText is returned when a text id is not a key of Document.Texts.
	ErrUnknownText = errors.New("unknown text")
	// ErrUnknownTheme is returned when a theme id is missing from a text's thematic analysis.
	ErrUnknownTheme = errors.New("unknown theme")
)

// Text returns the analysis for the given text id.
func (d *Document) Text(id string) (Text, error) {
	t, ok := d.Texts[id]
	if !ok {
		return Text{}, fmt.Errorf("%w: %q", ErrUnknownText, id)
	}
	return t, nil
}

// Theme returns the theme result for the given text and theme ids.
func (d *Document) Theme(textID, themeID string) (ThemeResult, error) {
	t, err := d.Text(textID)
	if err != nil {
		return ThemeResult{}, err
	}
	th, ok := t.ThematicAnalysis[themeID]
	if !ok {
		return ThemeResult{}, fmt.Errorf("%w: %q in text %q", ErrUnknownTheme, themeID, textID)
	}
	return th, nil
}

// Validate checks that every text id exists and that each of those texts
// carries every theme id. All problems are reported together.
func (d *Document) Validate(textIDs, themeIDs []string) error {
	var errs []error
	for _, id := range textIDs {
		t, ok := d.Texts[id]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownText, id))
			continue
		}
		for _, theme := range themeIDs {
			if _, ok := t.ThematicAnalysis[theme]; !ok {
				errs = append(errs, fmt.Errorf("%w: %q in text %q", ErrUnknownTheme, theme, id))
			}
		}
	}
	return errors.Join(errs...)
}
