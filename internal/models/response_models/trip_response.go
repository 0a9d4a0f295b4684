package response_models

import "github.com/shopspring/decimal"

type TripCostResponse struct {
	TripID      string              `json:"trip_id"`
	ItemCount   int                 `json:"item_count"`
	TotalCost   decimal.Decimal     `json:"total_cost"`
	TotalBudget decimal.NullDecimal `json:"total_budget"`
}
