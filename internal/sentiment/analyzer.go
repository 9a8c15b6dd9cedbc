package sentiment

import "github.com/jonreiter/govader"

// Scores is the polarity output for one piece of text. Compound is the
// normalized summary score in [-1, 1]; the component scores describe the
// share of positive, negative and neutral content.
type Scores struct {
	Compound float64
	Positive float64
	Negative float64
	Neutral  float64
}

// Analyzer scores free text for polarity.
type Analyzer interface {
	PolarityScores(text string) Scores
}

// VaderAnalyzer wraps the govader implementation of the VADER lexicon
// model. It is stateless after construction and safe for concurrent use.
type VaderAnalyzer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderAnalyzer builds the lexicon once and returns a reusable handle.
func NewVaderAnalyzer() *VaderAnalyzer {
	return &VaderAnalyzer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// PolarityScores implements Analyzer.
func (v *VaderAnalyzer) PolarityScores(text string) Scores {
	s := v.analyzer.PolarityScores(text)
	return Scores{
		Compound: s.Compound,
		Positive: s.Positive,
		Negative: s.Negative,
		Neutral:  s.Neutral,
	}
}
