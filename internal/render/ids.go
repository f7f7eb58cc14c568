package render

// Element ids of the dashboard page. Hosts must provide every one of them;
// a missing id is a fatal lookup failure for the render pass.
const (
	IDAnalysisDate = "analysis-date"

	IDSingleTextView = "single-text-view"
	IDComparisonView = "comparison-view"

	IDTextTitle        = "text-title"
	IDTextAuthor       = "text-author"
	IDWordCount        = "word-count"
	IDSentenceCount    = "sentence-count"
	IDAvgSentence      = "avg-sentence"
	IDLexicalDiversity = "lexical-diversity"

	IDWordCloud = "wordcloud"

	IDPolarity     = "polarity"
	IDSubjectivity = "subjectivity"

	IDThemeCount        = "theme-count"
	IDThemeDensity      = "theme-density"
	IDThemeExamplesList = "theme-examples-list"

	IDTTR           = "ttr"
	IDUniqueWords   = "unique-words"
	IDAvgWordLength = "avg-word-length"
	IDSentenceAvg   = "sentence-avg"
	IDSentenceMin   = "sentence-min"
	IDSentenceMax   = "sentence-max"
	IDFleschEase    = "flesch-ease"
	IDFleschGrade   = "flesch-grade"

	IDComparisonTableBody = "comparison-table-body"
)

// ClassActive marks the selected nav control, theme tab and view.
const ClassActive = "active"

// NavID is the id of the navigation control for a text (or "comparison").
func NavID(textID string) string { return "nav-" + textID }

// ThemeTabID is the id of the tab for a theme.
func ThemeTabID(themeID string) string { return "theme-" + themeID }

// SentimentBarID and SentimentValueID address the single-text sentiment bars.
func SentimentBarID(kind string) string   { return "sentiment-" + kind }
func SentimentValueID(kind string) string { return "sentiment-" + kind + "-value" }

// SentimentChartID is the comparison-view sentiment container for a text.
func SentimentChartID(textID string) string { return textID + "-sentiment-chart" }

// CompareCloudID is the comparison-view word cloud container for a text.
func CompareCloudID(textID string) string { return textID + "-wordcloud-compare" }
