package render

import (
	"strconv"

	"github.com/ziadkadry99/distant-reading/internal/analysis"
)

// Style fills the vocabulary, sentence complexity and readability fields.
// Values are copied as provided.
func Style(t analysis.Text) []Instruction {
	v, s, r := t.VocabularyRichness, t.SentenceComplexity, t.Readability
	return []Instruction{
		SetText(IDTTR, Number(v.TypeTokenRatio)),
		SetText(IDUniqueWords, Grouped(v.UniqueWords)),
		SetText(IDAvgWordLength, Number(v.AverageWordLength)),
		SetText(IDSentenceAvg, Number(s.AverageSentenceLength)),
		SetText(IDSentenceMin, strconv.Itoa(s.ShortestSentence)),
		SetText(IDSentenceMax, strconv.Itoa(s.LongestSentence)),
		SetText(IDFleschEase, Number(r.FleschReadingEase)),
		SetText(IDFleschGrade, Number(r.FleschKincaidGrade)),
	}
}

// Header fills the title, author and basic statistics of a text.
func Header(t analysis.Text) []Instruction {
	return []Instruction{
		SetText(IDTextTitle, t.Title),
		SetText(IDTextAuthor, "by "+t.Author),
		SetText(IDWordCount, Grouped(t.BasicStats.WordCount)),
		SetText(IDSentenceCount, Grouped(t.BasicStats.SentenceCount)),
		SetText(IDAvgSentence, Number(t.SentenceComplexity.AverageSentenceLength)),
		SetText(IDLexicalDiversity, Number(t.VocabularyRichness.LexicalDiversity)+"%"),
	}
}

// AnalysisDate sets the analysis date label. An unparseable date is shown
// as provided.
func AnalysisDate(m analysis.Metadata) Instruction {
	t, err := m.Date()
	if err != nil {
		return SetText(IDAnalysisDate, m.AnalysisDate)
	}
	return SetText(IDAnalysisDate, t.Format("1/2/2006"))
}

// Text renders every single-text panel for t with the given theme.
func Text(t analysis.Text, theme analysis.ThemeResult) []Instruction {
	var out []Instruction
	out = append(out, Header(t)...)
	out = append(out, WordCloud(IDWordCloud, t.WordFrequencies)...)
	out = append(out, Sentiment(t.Sentiment)...)
	out = append(out, Theme(theme)...)
	return append(out, Style(t)...)
}
