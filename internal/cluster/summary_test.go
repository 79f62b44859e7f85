package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	clusters := Surnames([]string{"Sharma", "sharme", "Thapa", "Xyzzqq", "Sharmaji"}, 80)
	s := Summarize(clusters)

	assert.Equal(t, len(clusters), s.Clusters)
	assert.Equal(t, 5, s.Variations)
	assert.Equal(t, s.Clusters, s.ByConfidence[High]+s.ByConfidence[Medium]+s.ByConfidence[Low])
	assert.Equal(t, 1, s.ByConfidence[Low])
	assert.Equal(t, 1, s.ByMainID[7])
	assert.InDelta(t, float64(s.Variations)/float64(s.Clusters), s.AverageSize(), 1e-9)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.Clusters)
	assert.Equal(t, 0.0, s.AverageSize())
	assert.Contains(t, s.ByConfidence, High)
}

func TestSweep(t *testing.T) {
	raw := []string{"Kalimpur", "Kalimpus", "Kalimpzs"}
	points := NewEngine(nil).Sweep(raw, []float64{70, 85, 95})
	require.Len(t, points, 3)

	assert.Equal(t, SweepPoint{Threshold: 70, Clusters: 1, Singletons: 0, Largest: 3, AverageSize: 3}, points[0])
	assert.Equal(t, SweepPoint{Threshold: 85, Clusters: 2, Singletons: 1, Largest: 2, AverageSize: 1.5}, points[1])
	assert.Equal(t, SweepPoint{Threshold: 95, Clusters: 3, Singletons: 3, Largest: 1, AverageSize: 1}, points[2])

	for i := 1; i < len(points); i++ {
		assert.GreaterOrEqual(t, points[i].Clusters, points[i-1].Clusters)
	}
}

func TestSweepEmpty(t *testing.T) {
	points := NewEngine(nil).Sweep(nil, []float64{85})
	require.Len(t, points, 1)
	assert.Equal(t, 0, points[0].Clusters)
	assert.Equal(t, 0.0, points[0].AverageSize)
}
