package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AdminFeeMode controls how often the overage admin fee is charged.
type AdminFeeMode string

const (
	// AdminFeePerResource charges the fee once for every resource with overage.
	AdminFeePerResource AdminFeeMode = "per_resource"
	// AdminFeeFlatMonthly charges the fee once per bill when any resource has overage.
	AdminFeeFlatMonthly AdminFeeMode = "flat_monthly"
)

// ParseAdminFeeMode validates a configured mode.
func ParseAdminFeeMode(raw string) (AdminFeeMode, error) {
	switch m := AdminFeeMode(raw); m {
	case AdminFeePerResource, AdminFeeFlatMonthly:
		return m, nil
	default:
		return "", fmt.Errorf("unknown admin fee mode %q", raw)
	}
}

// AdminFee is the fixed charge added on top of per-unit overage.
type AdminFee struct {
	Amount decimal.Decimal
	Mode   AdminFeeMode
}

// Line is the overage breakdown for one resource.
type Line struct {
	Resource  Resource        `json:"resource"`
	Unit      string          `json:"unit"`
	Usage     decimal.Decimal `json:"usage" swaggertype:"string"`
	Limit     decimal.Decimal `json:"limit" swaggertype:"string"`
	Overage   decimal.Decimal `json:"overage" swaggertype:"string"`
	UsageCost decimal.Decimal `json:"usage_cost" swaggertype:"string"`
	AdminFee  decimal.Decimal `json:"admin_fee" swaggertype:"string"`
	Cost      decimal.Decimal `json:"cost" swaggertype:"string"`
}

// Bill is the charge for one billing period.
type Bill struct {
	Tier          string          `json:"tier"`
	Period        Period          `json:"period" swaggertype:"string" example:"2026-03"`
	BasePrice     decimal.Decimal `json:"base_price" swaggertype:"string"`
	Lines         []Line          `json:"lines"`
	AdminFeeTotal decimal.Decimal `json:"admin_fee_total" swaggertype:"string"`
	OverageTotal  decimal.Decimal `json:"overage_total" swaggertype:"string"`
	Total         decimal.Decimal `json:"total" swaggertype:"string"`
}

// Overage returns max(0, usage - limit). Negative inputs count as zero.
func Overage(usage, limit decimal.Decimal) decimal.Decimal {
	if usage.IsNegative() {
		usage = decimal.Zero
	}
	if limit.IsNegative() {
		limit = decimal.Zero
	}
	over := usage.Sub(limit)
	if over.IsPositive() {
		return over
	}
	return decimal.Zero
}

// Calculate prices the usage in counters against tier.
// Every resource in rates gets a line, in AllResources order. Per-unit costs are rounded
// to cents per line; OverageTotal includes admin fees; Total adds the tier's base price.
func Calculate(counters Counters, tier Tier, rates RateTable, fee AdminFee) Bill {
	bill := Bill{
		Tier:          tier.Name,
		BasePrice:     tier.BasePrice,
		AdminFeeTotal: decimal.Zero,
		OverageTotal:  decimal.Zero,
	}

	feeAmount := fee.Amount
	if feeAmount.IsNegative() {
		feeAmount = decimal.Zero
	}

	anyOverage := false
	for _, r := range resources {
		rate, ok := rates[r]
		if !ok {
			continue
		}

		line := Line{
			Resource:  r,
			Unit:      rate.Unit,
			Usage:     counters.Get(r),
			Limit:     tier.Limit(r),
			AdminFee:  decimal.Zero,
			UsageCost: decimal.Zero,
		}
		line.Overage = Overage(line.Usage, line.Limit)

		if line.Overage.IsPositive() {
			anyOverage = true
			line.UsageCost = rate.Cost(line.Overage).Round(2)
			if fee.Mode != AdminFeeFlatMonthly {
				line.AdminFee = feeAmount
			}
		}
		line.Cost = line.UsageCost.Add(line.AdminFee)

		bill.AdminFeeTotal = bill.AdminFeeTotal.Add(line.AdminFee)
		bill.OverageTotal = bill.OverageTotal.Add(line.Cost)
		bill.Lines = append(bill.Lines, line)
	}

	if fee.Mode == AdminFeeFlatMonthly && anyOverage {
		bill.AdminFeeTotal = feeAmount
		bill.OverageTotal = bill.OverageTotal.Add(feeAmount)
	}

	bill.Total = bill.BasePrice.Add(bill.OverageTotal)
	return bill
}
