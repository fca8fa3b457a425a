// Package pipeline composes the analysis stages into one deterministic run:
// normalize -> ratios -> health, anomalies, trends -> insights -> charts.
package pipeline

import (
	"log"

	"finanalyzer/pkg/core/anomaly"
	"finanalyzer/pkg/core/chart"
	"finanalyzer/pkg/core/health"
	"finanalyzer/pkg/core/insight"
	"finanalyzer/pkg/core/ratio"
	"finanalyzer/pkg/core/statement"
	"finanalyzer/pkg/core/trend"
)

// Result is the complete output of one analysis run. It carries no run
// metadata (ids, timestamps), so identical input bundles marshal to
// byte-identical results.
type Result struct {
	Statement statement.Mapping `json:"statement"`
	Ratios    *ratio.Set        `json:"ratios"`
	Health    health.Report     `json:"health_score"`
	Anomalies []anomaly.Anomaly `json:"anomalies"`
	Insights  []insight.Insight `json:"insights"`
	Trends    trend.Analysis    `json:"trends"`
	Charts    []chart.Chart     `json:"charts"`
}

// Orchestrator wires the stages together. The ratio engine carries the
// industry benchmark profile; every other stage is stateless.
type Orchestrator struct {
	engine *ratio.Engine
}

// New creates an orchestrator bound to a benchmark profile.
func New(profile ratio.Profile) *Orchestrator {
	return &Orchestrator{engine: ratio.NewEngine(profile)}
}

// Engine exposes the orchestrator's ratio engine, mainly so callers can read
// back the active benchmark profile.
func (o *Orchestrator) Engine() *ratio.Engine { return o.engine }

// Run normalizes a raw bundle and analyzes it.
func (o *Orchestrator) Run(b *statement.Bundle) *Result {
	return o.RunMapping(statement.Normalize(b))
}

// RunMapping analyzes an already-normalized statement. Stages run in fixed
// order; downstream stages consume upstream outputs but never mutate them.
func (o *Orchestrator) RunMapping(m statement.Mapping) *Result {
	ratios := o.engine.Compute(m)
	scores := health.Score(ratios)
	anomalies := anomaly.Detect(ratios)
	trends := trend.Detect(m)
	insights := insight.Generate(ratios, scores, &trends)
	charts := chart.Build(ratios)

	log.Printf("[Pipeline] analyzed %d items: score=%.0f (%s), anomalies=%d, insights=%d",
		len(m), scores.Overall, scores.Rating, len(anomalies), len(insights))

	return &Result{
		Statement: m,
		Ratios:    ratios,
		Health:    scores,
		Anomalies: anomalies,
		Insights:  insights,
		Trends:    trends,
		Charts:    charts,
	}
}
