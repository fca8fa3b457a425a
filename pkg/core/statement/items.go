// Package statement defines the canonical financial-statement model and the
// normalizer that reduces heterogeneous extraction output to it.
package statement

import "strings"

// Item is a canonical financial-statement line item key.
type Item string

// Canonical item vocabulary. Absence of a key in a Mapping means "unknown",
// never zero.
const (
	TotalAssets        Item = "total_assets"
	CurrentAssets      Item = "current_assets"
	TotalLiabilities   Item = "total_liabilities"
	CurrentLiabilities Item = "current_liabilities"
	Equity             Item = "equity"
	Cash               Item = "cash"
	Inventory          Item = "inventory"
	Receivables        Item = "receivables"
	Payables           Item = "payables"
	RetainedEarnings   Item = "retained_earnings"

	Revenue          Item = "revenue"
	COGS             Item = "cogs"
	GrossProfit      Item = "gross_profit"
	OperatingIncome  Item = "operating_income"
	OperatingExpense Item = "operating_expenses"
	EBIT             Item = "ebit"
	EBITDA           Item = "ebitda"
	NetIncome        Item = "net_income"
	InterestExpense  Item = "interest_expense"
	Depreciation     Item = "depreciation"
	Amortization     Item = "amortization"

	OperatingCashFlow Item = "operating_cash_flow"
	InvestingCashFlow Item = "investing_cash_flow"
	FinancingCashFlow Item = "financing_cash_flow"
	FreeCashFlow      Item = "free_cash_flow"
)

// aliases maps common line-item spellings onto the canonical vocabulary.
// Keys are compared after lowercasing and space->underscore folding.
var aliases = map[string]Item{
	"cost_of_goods_sold":   COGS,
	"cost_of_revenue":      COGS,
	"sales":                Revenue,
	"total_revenue":        Revenue,
	"net_sales":            Revenue,
	"net_profit":           NetIncome,
	"net_earnings":         NetIncome,
	"total_equity":         Equity,
	"shareholders_equity":  Equity,
	"stockholders_equity":  Equity,
	"shareholder_equity":   Equity,
	"accounts_receivable":  Receivables,
	"accounts_payable":     Payables,
	"inventories":          Inventory,
	"cash_and_equivalents": Cash,
	"cash_equivalents":     Cash,
	"operating_profit":     OperatingIncome,
	"operating_expense":    OperatingExpense,
	"cash_from_operations": OperatingCashFlow,
	"cash_from_investing":  InvestingCashFlow,
	"cash_from_financing":  FinancingCashFlow,
}

// Canonicalize folds an arbitrary line-item label into its canonical Item key.
// Unrecognized labels pass through folded; the ratio engine simply ignores
// keys it does not consume.
func Canonicalize(label string) Item {
	key := strings.ToLower(strings.TrimSpace(label))
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.ReplaceAll(key, "-", "_")
	if canon, ok := aliases[key]; ok {
		return canon
	}
	return Item(key)
}
