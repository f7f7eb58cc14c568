// Package testutil provides analysis documents for tests.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/ziadkadry99/distant-reading/internal/analysis"
)

// SampleDocument returns a two-text document shaped like the producer's output.
// Each call returns a fresh copy that callers may modify.
func SampleDocument() *analysis.Document {
	return &analysis.Document{
		Metadata: analysis.Metadata{
			AnalysisDate:   "2025-03-14T09:26:53.589793",
			TextsAnalyzed:  2,
			StopWordsCount: 172,
		},
		Texts: map[string]analysis.Text{
			"wells": {
				ID:     "wells",
				Title:  "A Modern Utopia",
				Author: "H. G. Wells",
				BasicStats: analysis.BasicStats{
					WordCount:      112345,
					SentenceCount:  4321,
					CharacterCount: 640000,
				},
				WordFrequencies: []analysis.WordFrequency{
					{Word: "utopia", Count: 310},
					{Word: "world", Count: 250},
					{Word: "men", Count: 190},
					{Word: "life", Count: 120},
				},
				Sentiment: analysis.Sentiment{
					Positive: 0.3, Negative: 0.2, Neutral: 0.5,
					Compound: 0.0012, Polarity: 0.1, Subjectivity: 0.4,
				},
				ThematicAnalysis: map[string]analysis.ThemeResult{
					"socialism": {
						Count: 412, Density: 3.67,
						Examples: []analysis.ThemeExample{
							{Keyword: "socialist", Sentence: "The socialist state is a modern idea"},
							{Keyword: "property", Sentence: "Property is held in <common> trust"},
						},
					},
					"utopia": {
						Count: 880, Density: 7.83,
						Examples: []analysis.ThemeExample{
							{Keyword: "utopia", Sentence: "A Modern Utopia differs from the Utopias of the past"},
						},
					},
					"state": {Count: 530, Density: 4.72},
				},
				VocabularyRichness: analysis.VocabularyRichness{
					TotalWords: 112345, UniqueWords: 9876,
					TypeTokenRatio: 0.0879, LexicalDiversity: 8.79, AverageWordLength: 4.51,
				},
				SentenceComplexity: analysis.SentenceComplexity{
					TotalSentences: 4321, AverageSentenceLength: 26.0,
					SentenceLengthVariance: 310.5, ShortestSentence: 1, LongestSentence: 212,
				},
				Readability: analysis.Readability{FleschReadingEase: 55.12, FleschKincaidGrade: 12.4},
			},
			"dostoyevsky": {
				ID:     "dostoyevsky",
				Title:  "Notes from the Underground",
				Author: "Fyodor Dostoyevsky",
				BasicStats: analysis.BasicStats{
					WordCount:     43210,
					SentenceCount: 2100,
				},
				WordFrequencies: []analysis.WordFrequency{
					{Word: "man", Count: 140},
					{Word: "gentlemen", Count: 90},
				},
				Sentiment: analysis.Sentiment{
					Positive: 0.4567, Negative: 0.4433, Neutral: 0.1,
					Polarity: -0.123, Subjectivity: 0.0215,
				},
				ThematicAnalysis: map[string]analysis.ThemeResult{
					"socialism": {Count: 12, Density: 0.28},
					"utopia": {
						Count: 40, Density: 0.93,
						Examples: []analysis.ThemeExample{
							{Keyword: "reason", Sentence: "Reason is an excellent thing"},
						},
					},
					"state": {Count: 77, Density: 1.78},
				},
				VocabularyRichness: analysis.VocabularyRichness{
					UniqueWords: 5432, TypeTokenRatio: 0.1257, LexicalDiversity: 12.57, AverageWordLength: 4.2,
				},
				SentenceComplexity: analysis.SentenceComplexity{
					AverageSentenceLength: 20.58, ShortestSentence: 1, LongestSentence: 160,
				},
				Readability: analysis.Readability{FleschReadingEase: 68.3, FleschKincaidGrade: 8.91},
			},
		},
	}
}

// WriteDocument writes doc as JSON into a temp dir and returns the file path.
func WriteDocument(t testing.TB, doc *analysis.Document) string {
	t.Helper()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("marshalling fixture: %v", err)
	}
	path := filepath.Join(t.TempDir(), analysis.DefaultPath)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

// ProducerJSON returns SampleDocument encoded the way the producer writes
// edge cases: a neutral-fallback compound of 0.0, zero counters, an empty
// comparison object and a sentence_complexity block without shortest and
// longest sentence fields.
func ProducerJSON(t testing.TB) []byte {
	t.Helper()
	data, err := json.Marshal(SampleDocument())
	if err != nil {
		t.Fatalf("marshalling fixture: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatalf("decoding fixture: %v", err)
	}

	body["metadata"].(map[string]any)["stop_words_count"] = 0
	body["comparison"] = map[string]any{}

	texts := body["texts"].(map[string]any)
	wells := texts["wells"].(map[string]any)
	wells["sentiment"].(map[string]any)["compound"] = 0
	wells["basic_stats"].(map[string]any)["character_count"] = 0

	dostoyevsky := texts["dostoyevsky"].(map[string]any)
	complexity := dostoyevsky["sentence_complexity"].(map[string]any)
	delete(complexity, "shortest_sentence")
	delete(complexity, "longest_sentence")
	complexity["total_sentences"] = 0
	complexity["sentence_length_variance"] = 0

	out, err := json.MarshalIndent(body, "", "  ")
	if err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}
	return bytes.Replace(out, []byte(`"compound": 0,`), []byte(`"compound": 0.0,`), 1)
}
