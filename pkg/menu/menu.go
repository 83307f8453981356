// Package menu analyzes dish margins and positions the combo price against
// competitors.
package menu

import (
	"github.com/iwvelando/foodtruck-forecast/pkg/mathutil"
	"github.com/montanaflynn/stats"
)

// Item is a dish with its ingredient cost and suggested selling price.
type Item struct {
	Dish           string  `json:"dish" yaml:"dish"`
	Cost           float64 `json:"cost" yaml:"cost"`
	SuggestedPrice float64 `json:"suggestedPrice" yaml:"suggestedPrice"`
}

// ItemMargin is the margin analysis of one dish.
type ItemMargin struct {
	Item
	Margin          float64 `json:"margin"`
	FoodCostPercent float64 `json:"foodCostPercent"`
}

// Analyze computes the margin and food cost percentage of every dish, in input
// order. A dish with no price has a food cost percentage of 0.
func Analyze(items []Item) []ItemMargin {
	margins := make([]ItemMargin, 0, len(items))
	for _, item := range items {
		margins = append(margins, ItemMargin{
			Item:            item,
			Margin:          item.SuggestedPrice - item.Cost,
			FoodCostPercent: mathutil.CalculatePercentage(item.Cost, item.SuggestedPrice),
		})
	}
	return margins
}

// AverageFoodCostPercent is the unweighted mean food cost percentage across
// priced dishes. It returns false when no dish has a price.
func AverageFoodCostPercent(margins []ItemMargin) (float64, bool) {
	var pcts []float64
	for _, m := range margins {
		if m.SuggestedPrice != 0 {
			pcts = append(pcts, m.FoodCostPercent)
		}
	}
	mean, err := stats.Mean(pcts)
	if err != nil {
		return 0, false
	}
	return mean, true
}

// Competitor is a nearby vendor's combo price.
type Competitor struct {
	Restaurant string  `json:"restaurant" yaml:"restaurant"`
	ComboPrice float64 `json:"comboPrice" yaml:"comboPrice"`
}

// PricePosition compares a combo price to the competition.
type PricePosition struct {
	Available    bool    `json:"available"`
	Price        float64 `json:"price"`
	Average      float64 `json:"average"`
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	DeltaPercent float64 `json:"deltaPercent"`
}

// ComparePrice positions price against the competitors' combo prices.
// DeltaPercent is how far price sits above (positive) or below the average.
func ComparePrice(price float64, competitors []Competitor) PricePosition {
	position := PricePosition{Price: price}
	if len(competitors) == 0 {
		return position
	}

	prices := make(stats.Float64Data, 0, len(competitors))
	for _, c := range competitors {
		prices = append(prices, c.ComboPrice)
	}

	// Errors only arise from empty input, ruled out above.
	position.Average, _ = prices.Mean()
	position.Min, _ = prices.Min()
	position.Max, _ = prices.Max()
	position.DeltaPercent = mathutil.CalculatePercentage(price-position.Average, position.Average)
	position.Available = true
	return position
}
