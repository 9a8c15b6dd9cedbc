package services

import (
	"sort"

	"github.com/archit2501/flavormetrics-restaurant-analytics/internal/models"
)

// Pricing model constants.
const (
	// Assumed own-price elasticity of demand, fixed for the whole menu.
	priceElasticity = -1.5
	// Suggested prices never drop below a 30% markup over cost.
	minMarkupFactor = 1.3
)

const defaultMenuTarget = "profit"

// Quadrant labels and their recommended actions.
var quadrantActions = map[string]string{
	"Star":      "Maintain position, consider slight price increase",
	"Plowhorse": "Reduce portion size or increase price to improve margin",
	"Puzzle":    "Increase visibility, train staff to suggest",
	"Dog":       "Consider removing or complete redesign",
}

// MenuService classifies menu items into performance quadrants relative to
// the submitted batch and suggests pricing changes.
type MenuService struct{}

// NewMenuService creates a new menu classifier.
func NewMenuService() *MenuService {
	return &MenuService{}
}

// Optimize classifies every item in the batch. Classification is relative
// to the batch: each item's order share and margin are compared to the
// batch means, with the quadrant boundary at index 1 on both axes. An empty
// batch is not an error.
func (s *MenuService) Optimize(req models.MenuOptimizationRequest) (*models.MenuOptimizationResponse, error) {
	target := req.Target
	if target == "" {
		target = defaultMenuTarget
	}

	insights := models.MenuInsights{
		Target:         target,
		Stars:          []string{},
		Plowhorses:     []string{},
		Puzzles:        []string{},
		Dogs:           []string{},
		TopPerformers:  []models.MenuRecommendation{},
		NeedsAttention: []models.MenuRecommendation{},
	}
	if len(req.MenuItems) == 0 {
		return &models.MenuOptimizationResponse{
			Recommendations: []models.MenuRecommendation{},
			Insights:        insights,
		}, nil
	}

	var totalOrders float64
	margins := make([]float64, 0, len(req.MenuItems))
	for _, item := range req.MenuItems {
		totalOrders += item.OrderCount
		// Items without a positive price are excluded from the batch mean
		// but still classified, with margin 0.
		if item.Price > 0 {
			margins = append(margins, (item.Price-item.Cost)/item.Price)
		}
	}
	avgOrderShare := 1 / float64(len(req.MenuItems))
	avgProfitMargin := mean(margins)

	recommendations := make([]models.MenuRecommendation, 0, len(req.MenuItems))
	for _, item := range req.MenuItems {
		margin := 0.0
		if item.Price > 0 {
			margin = (item.Price - item.Cost) / item.Price
		}

		popularityIndex := 0.0
		if totalOrders > 0 {
			popularityIndex = (item.OrderCount / totalOrders) / avgOrderShare
		}
		profitabilityIndex := 0.0
		if avgProfitMargin > 0 {
			profitabilityIndex = margin / avgProfitMargin
		}

		quadrant := classify(popularityIndex, profitabilityIndex)
		switch quadrant {
		case "Star":
			insights.Stars = append(insights.Stars, item.Name)
		case "Plowhorse":
			insights.Plowhorses = append(insights.Plowhorses, item.Name)
		case "Puzzle":
			insights.Puzzles = append(insights.Puzzles, item.Name)
		case "Dog":
			insights.Dogs = append(insights.Dogs, item.Name)
		}

		optimalPrice := item.Cost / (1 + 1/priceElasticity)
		suggestedPrice := optimalPrice
		if floor := item.Cost * minMarkupFactor; floor > suggestedPrice {
			suggestedPrice = floor
		}
		// Profit delta assumes order volume is unaffected by the change.
		profitChange := ((suggestedPrice - item.Cost) - (item.Price - item.Cost)) * item.OrderCount

		recommendations = append(recommendations, models.MenuRecommendation{
			ItemID:               item.ID,
			ItemName:             item.Name,
			CurrentPrice:         item.Price,
			CurrentCost:          item.Cost,
			ProfitMargin:         round(margin*100, 1),
			PopularityIndex:      round(popularityIndex, 2),
			ProfitabilityIndex:   round(profitabilityIndex, 2),
			Classification:       quadrant,
			RecommendedAction:    quadrantActions[quadrant],
			SuggestedPrice:       round(suggestedPrice, 2),
			ExpectedProfitChange: round(profitChange, 2),
		})
	}

	insights.TotalItems = len(req.MenuItems)
	insights.AvgProfitMargin = round(avgProfitMargin*100, 1)
	insights.TopPerformers = topByIndexProduct(recommendations, 3, true)
	insights.NeedsAttention = topByIndexProduct(recommendations, 3, false)

	return &models.MenuOptimizationResponse{
		Recommendations: recommendations,
		Insights:        insights,
	}, nil
}

// classify assigns exactly one quadrant with the boundary at 1 on both
// axes, inclusive on the popular/profitable side.
func classify(popularityIndex, profitabilityIndex float64) string {
	popular := popularityIndex >= 1
	profitable := profitabilityIndex >= 1
	switch {
	case popular && profitable:
		return "Star"
	case popular:
		return "Plowhorse"
	case profitable:
		return "Puzzle"
	default:
		return "Dog"
	}
}

// topByIndexProduct returns up to limit recommendations ranked by the
// product of the two indices, best-first when descending.
func topByIndexProduct(recs []models.MenuRecommendation, limit int, descending bool) []models.MenuRecommendation {
	ranked := make([]models.MenuRecommendation, len(recs))
	copy(ranked, recs)
	sort.SliceStable(ranked, func(i, j int) bool {
		pi := ranked[i].PopularityIndex * ranked[i].ProfitabilityIndex
		pj := ranked[j].PopularityIndex * ranked[j].ProfitabilityIndex
		if descending {
			return pi > pj
		}
		return pi < pj
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
