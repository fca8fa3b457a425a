package trend

import (
	"testing"

	"finanalyzer/pkg/core/statement"
)

func TestDetectHealthySnapshot(t *testing.T) {
	a := Detect(statement.Mapping{
		statement.Revenue:           1000000,
		statement.NetIncome:         120000,
		statement.OperatingCashFlow: 150000,
	})

	if a.RevenueTrend != "Growing" {
		t.Errorf("revenue trend: expected Growing, got %s", a.RevenueTrend)
	}
	if a.ProfitTrend != "Positive" {
		t.Errorf("profit trend: expected Positive, got %s", a.ProfitTrend)
	}
	if a.CashFlowTrend != "Positive" {
		t.Errorf("cash flow trend: expected Positive, got %s", a.CashFlowTrend)
	}

	want := []string{
		"Current revenue: $1,000,000",
		"Profitable operations",
		"Strong cash generation relative to earnings",
	}
	if len(a.KeyObservations) != len(want) {
		t.Fatalf("expected %d observations, got %v", len(want), a.KeyObservations)
	}
	for i, obs := range want {
		if a.KeyObservations[i] != obs {
			t.Errorf("observation %d: expected %q, got %q", i, obs, a.KeyObservations[i])
		}
	}
}

func TestDetectLossMaking(t *testing.T) {
	a := Detect(statement.Mapping{
		statement.Revenue:           500000,
		statement.NetIncome:         -50000,
		statement.OperatingCashFlow: -60000,
	})

	if a.ProfitTrend != "Negative" {
		t.Errorf("profit trend: expected Negative, got %s", a.ProfitTrend)
	}
	if a.CashFlowTrend != "Negative" {
		t.Errorf("cash flow trend: expected Negative, got %s", a.CashFlowTrend)
	}

	found := false
	for _, obs := range a.KeyObservations {
		if obs == "Net loss reported" {
			found = true
		}
		if obs == "Strong cash generation relative to earnings" {
			t.Error("cash observation should not fire when OCF is below earnings")
		}
	}
	if !found {
		t.Error("expected the net loss observation")
	}
}

func TestDetectEmptyMapping(t *testing.T) {
	a := Detect(statement.Mapping{})

	if a.RevenueTrend != "Unknown" || a.ProfitTrend != "Unknown" || a.CashFlowTrend != "Unknown" {
		t.Errorf("empty snapshot should label all trends Unknown: %+v", a)
	}
	if len(a.KeyObservations) != 0 {
		t.Errorf("expected no observations, got %v", a.KeyObservations)
	}
}

func TestDetectZeroNetIncomeStaysUnknown(t *testing.T) {
	a := Detect(statement.Mapping{statement.NetIncome: 0})
	if a.ProfitTrend != "Unknown" {
		t.Errorf("breakeven should stay Unknown, got %s", a.ProfitTrend)
	}
}
