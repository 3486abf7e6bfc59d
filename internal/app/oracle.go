package app

import (
	"context"

	"venturehive/internal/domain/matching"
	"venturehive/internal/metrics"
)

// meteredOracle counts refine outcomes so fallback rates show up on the
// metrics endpoint without the scorer knowing about prometheus.
type meteredOracle struct {
	inner matching.ScoringOracle
}

func (m meteredOracle) Refine(ctx context.Context, startup matching.StartupProfile, investor matching.InvestorProfile, baseline matching.Result) (matching.Result, error) {
	res, err := m.inner.Refine(ctx, startup, investor, baseline)
	if err != nil {
		metrics.OracleCalls.WithLabelValues(metrics.OracleOutcomeFallback).Inc()
		return res, err
	}
	metrics.OracleCalls.WithLabelValues(metrics.OracleOutcomeRefined).Inc()
	return res, nil
}
