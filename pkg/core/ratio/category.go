package ratio

// Category is the closed enumeration of ratio categories. Using a tagged
// variant instead of string keys gives compile-time exhaustiveness when
// scoring and insight tables dispatch on it.
type Category int

const (
	Liquidity Category = iota
	Leverage
	Profitability
	Efficiency
	Valuation
	Growth
)

// Categories lists every category in fixed declaration order. Downstream
// min/max selections over this order are what make tie-breaking deterministic.
var Categories = [...]Category{Liquidity, Leverage, Profitability, Efficiency, Valuation, Growth}

// CoreCategories are the four categories that feed the overall health score.
var CoreCategories = [...]Category{Liquidity, Leverage, Profitability, Efficiency}

func (c Category) String() string {
	switch c {
	case Liquidity:
		return "liquidity"
	case Leverage:
		return "leverage"
	case Profitability:
		return "profitability"
	case Efficiency:
		return "efficiency"
	case Valuation:
		return "valuation"
	case Growth:
		return "growth"
	}
	return "unknown"
}

// Title is the display form used in insight and report text.
func (c Category) Title() string {
	switch c {
	case Liquidity:
		return "Liquidity"
	case Leverage:
		return "Leverage"
	case Profitability:
		return "Profitability"
	case Efficiency:
		return "Efficiency"
	case Valuation:
		return "Valuation"
	case Growth:
		return "Growth"
	}
	return "Unknown"
}
