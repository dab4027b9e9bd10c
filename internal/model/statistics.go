package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statistics counts cheques per status. Approved+Declined+Pending always equals Total.
type Statistics struct {
	Total    int `json:"total"`
	Approved int `json:"approved"`
	Declined int `json:"declined"`
	Pending  int `json:"pending"`
}

// Analytics is the finance dashboard summary derived from a cheque list
type Analytics struct {
	TotalAmount        decimal.Decimal `json:"total_amount"`
	MonthlyTotal       decimal.Decimal `json:"monthly_total"`
	MonthlyCount       int             `json:"monthly_count"`
	HighValueCount     int             `json:"high_value_count"`
	PrintedCount       int             `json:"printed_count"`
	AwaitingSignatures int             `json:"awaiting_signatures"`
	Month              time.Month      `json:"month"`
	Year               int             `json:"year"`
}

// StatisticsResponse bundles both views for the dashboard
type StatisticsResponse struct {
	Statistics  Statistics `json:"statistics"`
	Analytics   Analytics  `json:"analytics"`
	GeneratedAt time.Time  `json:"generated_at"`
}
