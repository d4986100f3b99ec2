package metrics

import (
	"sort"

	"grantwatch/internal/model"
)

// needsAttentionFloor is the fraction of target below which a metric drops
// from Needs Attention to At Risk. The thresholds are fixed design
// constants, not per-metric configuration.
const needsAttentionFloor = 0.75

// ScoreOutcomes computes achievement percentages and the three-tier status
// for every outcome metric, joined with its grant's name. A metric whose
// grant is missing from the dataset is a hard error. Results are ordered by
// descending achievement.
func ScoreOutcomes(metricsIn []model.OutcomeMetric, grants []model.Grant) ([]model.OutcomePerformance, error) {
	names := make(map[string]string, len(grants))
	for _, g := range grants {
		names[g.ID] = g.Name
	}

	perf := make([]model.OutcomePerformance, 0, len(metricsIn))
	for _, m := range metricsIn {
		name, ok := names[m.GrantID]
		if !ok {
			return nil, unknownGrantErr("outcome metric", m.ID, m.GrantID)
		}
		perf = append(perf, model.OutcomePerformance{
			GrantID:      m.GrantID,
			GrantName:    name,
			MetricName:   m.Name,
			TargetValue:  m.TargetValue,
			CurrentValue: m.CurrentValue,
			Achievement:  pctOf(m.CurrentValue, m.TargetValue),
			Unit:         m.Unit,
			Status:       classifyOutcome(m.CurrentValue, m.TargetValue),
		})
	}

	sort.SliceStable(perf, func(i, j int) bool {
		return perf[i].Achievement > perf[j].Achievement
	})

	return perf, nil
}

// classifyOutcome applies the fixed thresholds. Both comparisons are
// inclusive: exactly on target is On Track, exactly at 75% of target is
// Needs Attention.
func classifyOutcome(current, target float64) model.OutcomeStatus {
	switch {
	case current >= target:
		return model.OutcomeOnTrack
	case current >= target*needsAttentionFloor:
		return model.OutcomeNeedsAttention
	default:
		return model.OutcomeAtRisk
	}
}
