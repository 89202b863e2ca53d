package domain

import (
	"github.com/shopspring/decimal"
)

// Tier is a subscription plan: a flat monthly price plus included usage per resource.
// A resource missing from Limits has no allowance.
type Tier struct {
	Name        string                       `json:"name"`
	DisplayName string                       `json:"display_name"`
	BasePrice   decimal.Decimal              `json:"base_price" swaggertype:"string" example:"99"`
	Limits      map[Resource]decimal.Decimal `json:"limits" swaggertype:"object,string"`
}

// Limit returns the included quantity of r.
func (t Tier) Limit(r Resource) decimal.Decimal {
	if v, ok := t.Limits[r]; ok && v.IsPositive() {
		return v
	}
	return decimal.Zero
}

// Rate is the price charged for every Per units beyond the allowance.
type Rate struct {
	Price decimal.Decimal `json:"price"`
	Per   decimal.Decimal `json:"per"`
	Unit  string          `json:"unit"`
}

// Cost prices qty units.
func (r Rate) Cost(qty decimal.Decimal) decimal.Decimal {
	if r.Per.IsZero() {
		return qty.Mul(r.Price)
	}
	return qty.Mul(r.Price).Div(r.Per)
}

// RateTable maps every resource to its overage rate.
type RateTable map[Resource]Rate

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func limits(maps, scans, sms, email, chars, gb int64) map[Resource]decimal.Decimal {
	return map[Resource]decimal.Decimal{
		ResourceHereMaps:   decimal.NewFromInt(maps),
		ResourceDocumentAI: decimal.NewFromInt(scans),
		ResourceSMS:        decimal.NewFromInt(sms),
		ResourceEmail:      decimal.NewFromInt(email),
		ResourceElevenLabs: decimal.NewFromInt(chars),
		ResourceStorageGB:  decimal.NewFromInt(gb),
	}
}

// DefaultTiers returns the built-in plan catalog, cheapest first.
func DefaultTiers() []Tier {
	return []Tier{
		{
			Name:        "starter",
			DisplayName: "Starter",
			BasePrice:   d("99.00"),
			Limits:      limits(5_000, 100, 500, 2_000, 10_000, 10),
		},
		{
			Name:        "professional",
			DisplayName: "Professional",
			BasePrice:   d("249.00"),
			Limits:      limits(25_000, 500, 2_000, 10_000, 50_000, 50),
		},
		{
			Name:        "enterprise",
			DisplayName: "Enterprise",
			BasePrice:   d("599.00"),
			Limits:      limits(100_000, 2_000, 10_000, 50_000, 200_000, 250),
		},
	}
}

// DefaultRates returns the built-in overage prices.
func DefaultRates() RateTable {
	return RateTable{
		ResourceHereMaps:   {Price: d("1.00"), Per: d("1000"), Unit: "transactions"},
		ResourceDocumentAI: {Price: d("0.10"), Per: d("1"), Unit: "scans"},
		ResourceSMS:        {Price: d("0.01"), Per: d("1"), Unit: "messages"},
		ResourceEmail:      {Price: d("1.00"), Per: d("1000"), Unit: "emails"},
		ResourceElevenLabs: {Price: d("0.03"), Per: d("100"), Unit: "characters"},
		ResourceStorageGB:  {Price: d("0.10"), Per: d("1"), Unit: "GB"},
	}
}
