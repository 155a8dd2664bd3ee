package domain

import "github.com/shopspring/decimal"

// TreatmentRevenue is the per-treatment slice of a revenue report.
type TreatmentRevenue struct {
	Treatment TreatmentType
	Label     string
	Count     int64
	Total     decimal.Decimal
}

// RevenueReport aggregates transactions over a date range.
type RevenueReport struct {
	Total       decimal.Decimal
	Count       int64
	Average     decimal.Decimal
	ByTreatment []TreatmentRevenue
}
