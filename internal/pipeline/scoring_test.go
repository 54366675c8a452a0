package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestEvolutionGate(t *testing.T) {
	base := evolutionGate{
		CanEvolve:    true,
		AvgScore:     floatPtr(0.7),
		ScoreCeiling: 0.95,
		NewScore:     0.9,
		Threshold:    0.05,
		SampleSize:   10,
		MinSamples:   5,
	}

	tests := []struct {
		name    string
		mutate  func(*evolutionGate)
		blocked bool
	}{
		{
			name:    "open when improvement exceeds threshold",
			mutate:  func(g *evolutionGate) {},
			blocked: false,
		},
		{
			name:    "static prompt never evolves",
			mutate:  func(g *evolutionGate) { g.CanEvolve = false },
			blocked: true,
		},
		{
			name:    "sample size below minimum",
			mutate:  func(g *evolutionGate) { g.SampleSize = 4 },
			blocked: true,
		},
		{
			name:    "average at ceiling suppresses evolution even with positive delta",
			mutate:  func(g *evolutionGate) { g.AvgScore = floatPtr(0.95); g.NewScore = 1.0 },
			blocked: true,
		},
		{
			name:    "improvement exactly at threshold is not enough",
			mutate:  func(g *evolutionGate) { g.NewScore = 0.75 },
			blocked: true,
		},
		{
			name:    "improvement just over threshold opens the gate",
			mutate:  func(g *evolutionGate) { g.NewScore = 0.76 },
			blocked: false,
		},
		{
			name:    "nil average treats prior performance as zero",
			mutate:  func(g *evolutionGate) { g.AvgScore = nil; g.NewScore = 0.2 },
			blocked: false,
		},
		{
			name:    "huge threshold disables evolution",
			mutate:  func(g *evolutionGate) { g.Threshold = 100 },
			blocked: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := base
			tt.mutate(&g)
			reason := g.blocked()
			if tt.blocked {
				assert.NotEmpty(t, reason)
			} else {
				assert.Empty(t, reason)
			}
		})
	}
}
