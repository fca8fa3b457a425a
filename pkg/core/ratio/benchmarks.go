package ratio

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v2"
)

// Benchmark is the reference point a computed ratio is interpreted against.
type Benchmark struct {
	Target       float64 `yaml:"target" json:"target"`
	HigherBetter bool    `yaml:"higher_better" json:"higher_better"`
	Description  string  `yaml:"description,omitempty" json:"description,omitempty"`
}

// Profile is an immutable set of benchmarks, typically one per industry. It
// is passed into the engine at construction; nothing mutates it afterwards,
// so one profile can serve concurrent analyses.
type Profile struct {
	Name   string               `json:"name"`
	Ratios map[string]Benchmark `json:"ratios"`
}

// Benchmark returns the benchmark for a ratio name, falling back to the
// built-in defaults when the profile does not override it.
func (p Profile) Benchmark(name string) (Benchmark, bool) {
	if b, ok := p.Ratios[name]; ok {
		return b, true
	}
	b, ok := defaultBenchmarks[name]
	return b, ok
}

// defaultBenchmarks are the general-purpose reference values. Margins and
// return ratios are fractions, not percentages.
var defaultBenchmarks = map[string]Benchmark{
	"current_ratio":          {Target: 2.0, HigherBetter: true, Description: "Ability to pay short-term obligations"},
	"quick_ratio":            {Target: 1.0, HigherBetter: true, Description: "Liquidity without relying on inventory"},
	"cash_ratio":             {Target: 0.5, HigherBetter: true, Description: "Most conservative liquidity measure"},
	"debt_to_equity":         {Target: 1.0, HigherBetter: false, Description: "Financial leverage and risk"},
	"debt_ratio":             {Target: 0.5, HigherBetter: false, Description: "Proportion of assets financed by debt"},
	"interest_coverage":      {Target: 3.0, HigherBetter: true, Description: "Ability to service debt"},
	"gross_margin":           {Target: 0.40, HigherBetter: true, Description: "Profitability after direct costs"},
	"operating_margin":       {Target: 0.15, HigherBetter: true, Description: "Operating efficiency"},
	"net_margin":             {Target: 0.10, HigherBetter: true, Description: "Bottom-line profitability"},
	"roa":                    {Target: 0.05, HigherBetter: true, Description: "Asset utilization efficiency"},
	"roe":                    {Target: 0.15, HigherBetter: true, Description: "Shareholder return generation"},
	"asset_turnover":         {Target: 1.0, HigherBetter: true, Description: "Revenue generation per asset dollar"},
	"inventory_turnover":     {Target: 6.0, HigherBetter: true, Description: "Inventory management efficiency"},
	"days_sales_outstanding": {Target: 45.0, HigherBetter: false, Description: "Average collection period"},
}

// DefaultProfile returns the built-in general benchmark profile.
func DefaultProfile() Profile {
	return Profile{Name: "default", Ratios: map[string]Benchmark{}}
}

// builtinProfiles carry industry target overrides; any ratio not listed falls
// back to the defaults.
var builtinProfiles = map[string]map[string]float64{
	"manufacturing": {
		"current_ratio":  1.5,
		"quick_ratio":    0.9,
		"debt_to_equity": 0.8,
		"net_margin":     0.08,
		"roe":            0.12,
	},
	"retail": {
		"current_ratio":  1.2,
		"quick_ratio":    0.4,
		"debt_to_equity": 1.2,
		"net_margin":     0.05,
		"roe":            0.15,
	},
	"technology": {
		"current_ratio":  2.5,
		"quick_ratio":    2.0,
		"debt_to_equity": 0.3,
		"net_margin":     0.20,
		"roe":            0.25,
	},
}

// Profiles builds the full profile set: built-ins, optionally extended by a
// YAML file of the form `profiles: {industry: {ratio: target}}`. File entries
// override built-ins of the same name. Missing path just yields built-ins.
func Profiles(path string) (map[string]Profile, error) {
	overrides := map[string]map[string]float64{}
	for name, ratios := range builtinProfiles {
		overrides[name] = ratios
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read benchmark config: %w", err)
			}
		} else {
			var cfg struct {
				Profiles map[string]map[string]float64 `yaml:"profiles"`
			}
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse benchmark config: %w", err)
			}
			for name, ratios := range cfg.Profiles {
				overrides[name] = ratios
			}
		}
	}

	profiles := map[string]Profile{"default": DefaultProfile()}
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		ratios := make(map[string]Benchmark, len(overrides[name]))
		for r, target := range overrides[name] {
			b := defaultBenchmarks[r]
			b.Target = target
			if b.Description == "" {
				b.HigherBetter = true
			}
			ratios[r] = b
		}
		profiles[name] = Profile{Name: name, Ratios: ratios}
	}
	return profiles, nil
}

// Interpret renders the standard interpretation string for a ratio against
// its benchmark.
func Interpret(v Value, b Benchmark) string {
	f, ok := v.Float()
	if !ok {
		return "Insufficient data"
	}
	if b.HigherBetter {
		switch {
		case f >= b.Target*1.2:
			return "Excellent - significantly above benchmark"
		case f >= b.Target:
			return "Good - above benchmark"
		case f >= b.Target*0.8:
			return "Fair - near benchmark"
		default:
			return "Concerning - below benchmark"
		}
	}
	switch {
	case f <= b.Target*0.8:
		return "Excellent - significantly below benchmark"
	case f <= b.Target:
		return "Good - below benchmark"
	case f <= b.Target*1.2:
		return "Fair - near benchmark"
	default:
		return "Concerning - above benchmark"
	}
}
