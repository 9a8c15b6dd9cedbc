package services

import (
	"sort"
	"strings"

	"github.com/archit2501/flavormetrics-restaurant-analytics/internal/models"
	"github.com/archit2501/flavormetrics-restaurant-analytics/internal/sentiment"
)

// Label thresholds on the compound score.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// maxReviewTextLen is the response truncation point for review text.
const maxReviewTextLen = 200

// aspectOrder fixes iteration order so tied themes rank deterministically.
var aspectOrder = []string{"food", "service", "ambiance", "value", "wait_time"}

// aspectKeywords is the fixed keyword table for aspect detection. A review
// mentions an aspect iff any keyword is a case-insensitive substring of its
// text.
var aspectKeywords = map[string][]string{
	"food":      {"food", "dish", "meal", "taste", "flavor", "menu", "portion"},
	"service":   {"service", "server", "waiter", "waitress", "staff", "attentive"},
	"ambiance":  {"ambiance", "atmosphere", "decor", "music", "noise", "lighting"},
	"value":     {"price", "value", "worth", "expensive", "cheap", "affordable"},
	"wait_time": {"wait", "time", "slow", "fast", "quick", "delayed"},
}

// SentimentService scores reviews through a delegated polarity analyzer and
// aggregates aspect-level themes.
type SentimentService struct {
	analyzer sentiment.Analyzer
}

// NewSentimentService creates a sentiment service around the given analyzer.
func NewSentimentService(analyzer sentiment.Analyzer) *SentimentService {
	return &SentimentService{analyzer: analyzer}
}

// Analyze scores every review in the batch. A mentioned aspect's sentiment
// is the review's overall compound score; there is no phrase-level
// attribution. An empty batch is not an error.
func (s *SentimentService) Analyze(req models.SentimentAnalysisRequest) (*models.SentimentAnalysisResponse, error) {
	analyzed := make([]models.AnalyzedReview, 0, len(req.Reviews))
	compounds := make([]float64, 0, len(req.Reviews))
	aspectScores := make(map[string][]float64, len(aspectOrder))
	var positive, negative, neutral int

	for _, review := range req.Reviews {
		text := review.Comment
		if text == "" {
			text = review.Text
		}

		scores := s.analyzer.PolarityScores(text)
		compounds = append(compounds, scores.Compound)

		label := sentimentLabel(scores.Compound)
		switch label {
		case "positive":
			positive++
		case "negative":
			negative++
		default:
			neutral++
		}

		lower := strings.ToLower(text)
		detected := make(map[string]float64)
		for _, aspect := range aspectOrder {
			if mentionsAny(lower, aspectKeywords[aspect]) {
				detected[aspect] = scores.Compound
				aspectScores[aspect] = append(aspectScores[aspect], scores.Compound)
			}
		}

		analyzed = append(analyzed, models.AnalyzedReview{
			ReviewID:        review.ID,
			Text:            truncate(text, maxReviewTextLen),
			Sentiment:       label,
			SentimentScore:  round(scores.Compound, 3),
			PositiveScore:   round(scores.Positive, 3),
			NegativeScore:   round(scores.Negative, 3),
			NeutralScore:    round(scores.Neutral, 3),
			AspectsDetected: detected,
		})
	}

	avg := mean(compounds)

	themes := make([]models.KeyTheme, 0, len(aspectOrder))
	for _, aspect := range aspectOrder {
		scores := aspectScores[aspect]
		if len(scores) == 0 {
			continue
		}
		aspectAvg := mean(scores)
		themes = append(themes, models.KeyTheme{
			Aspect:         aspect,
			MentionCount:   len(scores),
			AvgSentiment:   round(aspectAvg, 3),
			SentimentLabel: sentimentLabel(aspectAvg),
		})
	}
	sort.SliceStable(themes, func(i, j int) bool {
		return themes[i].MentionCount > themes[j].MentionCount
	})

	return &models.SentimentAnalysisResponse{
		AnalyzedReviews: analyzed,
		OverallSentiment: models.OverallSentiment{
			AverageScore:  round(avg, 3),
			Label:         sentimentLabel(avg),
			PositiveCount: positive,
			NegativeCount: negative,
			NeutralCount:  neutral,
			TotalReviews:  len(analyzed),
		},
		KeyThemes: themes,
	}, nil
}

// sentimentLabel buckets a compound score at the +/-0.05 thresholds.
func sentimentLabel(compound float64) string {
	switch {
	case compound >= positiveThreshold:
		return "positive"
	case compound <= negativeThreshold:
		return "negative"
	default:
		return "neutral"
	}
}

// mentionsAny reports whether any keyword occurs in the lowercased text.
func mentionsAny(lowerText string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowerText, kw) {
			return true
		}
	}
	return false
}

// truncate shortens text to limit characters, marking the cut with an
// ellipsis.
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
