package models

import (
	"encoding/json"
	"os"
)

// IncomeSettings holds the commission configuration. It is loaded once at
// startup and never mutated by the engines.
type IncomeSettings struct {
	UplineLevels   []float64        `json:"uplineLevels"`
	DownlineLevels []float64        `json:"downlineLevels"`
	ProductRates   []ProductRate    `json:"productRates"`
	RoleCommission map[Role]float64 `json:"roleCommissions"`
}

type ProductRate struct {
	Product string  `json:"product"`
	Rate    float64 `json:"rate"`
}

var levelPercentages = []float64{0.25, 0.20, 0.15, 0.10, 0.05, 0.05, 0.05, 0.05, 0.05, 0.05}

func DefaultIncomeSettings() *IncomeSettings {
	return &IncomeSettings{
		UplineLevels:   levelPercentages,
		DownlineLevels: levelPercentages,
		ProductRates: []ProductRate{
			{Product: "Shirt Stitching", Rate: 120},
			{Product: "Pant Stitching", Rate: 220},
			{Product: "Coat Stitching", Rate: 1200},
			{Product: "Shirt Cutting", Rate: 25},
			{Product: "Pant Cutting", Rate: 25},
			{Product: "Shirt Measurement", Rate: 20},
			{Product: "Pant Measurement", Rate: 30},
			{Product: "Shirt Finishing", Rate: 20},
			{Product: "Pant Finishing", Rate: 10},
			{Product: "Delivery", Rate: 10},
		},
		RoleCommission: map[Role]float64{
			RoleShowroom: 5,
			RoleMaterial: 9,
		},
	}
}

// LoadIncomeSettings reads overrides from the JSON file at path, falling back
// to the defaults when path is empty.
func LoadIncomeSettings(path string) (*IncomeSettings, error) {
	settings := DefaultIncomeSettings()
	if path == "" {
		return settings, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// RateFor looks up a product-rate entry ("Shirt Stitching", "Delivery", ...).
// Unlisted work carries no labor rate.
func (s *IncomeSettings) RateFor(product string) float64 {
	for _, r := range s.ProductRates {
		if r.Product == product {
			return r.Rate
		}
	}
	return 0
}

func (s *IncomeSettings) MaxLevels() int {
	if len(s.UplineLevels) < len(s.DownlineLevels) {
		return len(s.DownlineLevels)
	}
	return len(s.UplineLevels)
}
