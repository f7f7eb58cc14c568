package analysis

import (
	"fmt"
	"time"

	json "github.com/goccy/go-json"
)

// Document is the root of analysis_results.json.
type Document struct {
	Metadata   Metadata        `json:"metadata"`
	Texts      map[string]Text `json:"texts"`
	Comparison map[string]any  `json:"comparison,omitempty"`

	raw []byte
}

// Raw returns the bytes the document was parsed from, unchanged. A document
// built in code has no source bytes and is encoded instead.
func (d *Document) Raw() ([]byte, error) {
	if d.raw != nil {
		return d.raw, nil
	}
	return json.Marshal(d)
}

// Metadata describes the analysis run that produced the document.
type Metadata struct {
	AnalysisDate   string `json:"analysis_date"`
	TextsAnalyzed  int    `json:"texts_analyzed,omitempty"`
	StopWordsCount int    `json:"stop_words_count,omitempty"`
}

// dateLayouts are tried in order. The producer writes Python isoformat()
// timestamps, which carry no zone and optional microseconds.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// Date parses AnalysisDate.
func (m Metadata) Date() (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, m.AnalysisDate); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable analysis_date %q", m.AnalysisDate)
}

// Text is the per-text analysis record.
type Text struct {
	ID                 string                 `json:"id,omitempty"`
	Title              string                 `json:"title"`
	Author             string                 `json:"author"`
	BasicStats         BasicStats             `json:"basic_stats"`
	WordFrequencies    []WordFrequency        `json:"word_frequencies"`
	Sentiment          Sentiment              `json:"sentiment"`
	ThematicAnalysis   map[string]ThemeResult `json:"thematic_analysis"`
	VocabularyRichness VocabularyRichness     `json:"vocabulary_richness"`
	SentenceComplexity SentenceComplexity     `json:"sentence_complexity"`
	Readability        Readability            `json:"readability"`
}

type BasicStats struct {
	WordCount      int `json:"word_count"`
	SentenceCount  int `json:"sentence_count"`
	CharacterCount int `json:"character_count,omitempty"`
}

// WordFrequency is one entry of the ordered frequency list. The order is
// whatever the producer chose and is preserved.
type WordFrequency struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Sentiment holds proportions (positive, negative, neutral) that are expected
// to sum to about 1.0, plus scalar scores.
type Sentiment struct {
	Positive     float64 `json:"positive"`
	Negative     float64 `json:"negative"`
	Neutral      float64 `json:"neutral"`
	Compound     float64 `json:"compound,omitempty"`
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

type ThemeResult struct {
	Count    int            `json:"count"`
	Density  float64        `json:"density"`
	Examples []ThemeExample `json:"examples"`
}

type ThemeExample struct {
	Keyword  string `json:"keyword"`
	Sentence string `json:"sentence"`
}

type VocabularyRichness struct {
	TotalWords        int     `json:"total_words,omitempty"`
	UniqueWords       int     `json:"unique_words"`
	TypeTokenRatio    float64 `json:"type_token_ratio"`
	LexicalDiversity  float64 `json:"lexical_diversity"`
	AverageWordLength float64 `json:"average_word_length"`
}

type SentenceComplexity struct {
	TotalSentences         int     `json:"total_sentences,omitempty"`
	AverageSentenceLength  float64 `json:"average_sentence_length"`
	SentenceLengthVariance float64 `json:"sentence_length_variance,omitempty"`
	ShortestSentence       int     `json:"shortest_sentence"`
	LongestSentence        int     `json:"longest_sentence"`
}

type Readability struct {
	FleschReadingEase  float64 `json:"flesch_reading_ease"`
	FleschKincaidGrade float64 `json:"flesch_kincaid_grade"`
}
