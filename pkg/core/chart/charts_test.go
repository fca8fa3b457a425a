package chart

import (
	"math"
	"testing"

	"finanalyzer/pkg/core/ratio"
	"finanalyzer/pkg/core/statement"
)

func sampleRatios() *ratio.Set {
	m := statement.Mapping{
		statement.TotalAssets:        1000000,
		statement.TotalLiabilities:   400000,
		statement.Equity:             600000,
		statement.CurrentAssets:      400000,
		statement.CurrentLiabilities: 200000,
		statement.Inventory:          80000,
		statement.Cash:               100000,
		statement.Revenue:            1000000,
		statement.COGS:               600000,
		statement.OperatingIncome:    200000,
		statement.NetIncome:          120000,
	}
	return ratio.NewEngine(ratio.DefaultProfile()).Compute(m)
}

func TestBuildProducesFourCharts(t *testing.T) {
	charts := Build(sampleRatios())
	if len(charts) != 4 {
		t.Fatalf("expected 4 charts, got %d", len(charts))
	}
	types := []string{"radar", "bar", "gauge", "waterfall"}
	for i, want := range types {
		if charts[i].Type != want {
			t.Errorf("chart %d: expected type %s, got %s", i, want, charts[i].Type)
		}
	}
}

func TestLiquidityRadarValues(t *testing.T) {
	c := liquidityRadar(sampleRatios())
	vals := c.Data["values"].([]float64)
	if math.Abs(vals[0]-2.0) > 1e-9 {
		t.Errorf("current ratio in radar: expected 2.0, got %f", vals[0])
	}
	bench := c.Data["benchmarks"].([]float64)
	if bench[0] != 2.0 || bench[1] != 1.5 || bench[2] != 0.5 {
		t.Errorf("unexpected radar benchmarks: %v", bench)
	}
}

func TestMarginBarsArePercentages(t *testing.T) {
	c := marginBars(sampleRatios())
	vals := c.Data["values"].([]float64)
	// gross margin 0.4 -> 40, net margin 0.12 -> 12
	if math.Abs(vals[0]-40.0) > 1e-6 {
		t.Errorf("gross margin bar: expected 40, got %f", vals[0])
	}
	if math.Abs(vals[2]-12.0) > 1e-6 {
		t.Errorf("net margin bar: expected 12, got %f", vals[2])
	}
}

func TestLeverageGaugeZones(t *testing.T) {
	c := leverageGauge(sampleRatios())
	if v := c.Data["value"].(float64); math.Abs(v-0.6666666667) > 1e-6 {
		t.Errorf("gauge value: expected 0.6667, got %f", v)
	}
	zones := c.Data["zones"].([]map[string]interface{})
	if len(zones) != 3 {
		t.Fatalf("expected 3 gauge zones, got %d", len(zones))
	}
	if zones[0]["color"] != "green" || zones[2]["to"].(float64) != 3.0 {
		t.Errorf("unexpected zone layout: %v", zones)
	}
}

func TestDupontWaterfallMatchesROE(t *testing.T) {
	c := dupontWaterfall(sampleRatios())
	vals := c.Data["values"].([]float64)
	product := vals[0] * vals[1] * vals[2]
	roe := c.Data["roe"].(float64)
	if math.Abs(product-roe) > 1e-6 {
		t.Errorf("DuPont components %v should multiply to ROE %f, got %f", vals, roe, product)
	}
}

func TestMissingRatiosRenderAsZero(t *testing.T) {
	empty := ratio.NewEngine(ratio.DefaultProfile()).Compute(statement.Mapping{})
	for _, c := range Build(empty) {
		if vals, ok := c.Data["values"].([]float64); ok {
			for i, v := range vals {
				if v != 0 {
					t.Errorf("%s chart value %d: expected 0 for missing ratio, got %f", c.Type, i, v)
				}
			}
		}
	}
}
