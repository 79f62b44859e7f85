package cluster

// Summary counts what a clustering run produced.
type Summary struct {
	Clusters     int                `json:"clusters"`
	Variations   int                `json:"variations"`
	ByConfidence map[Confidence]int `json:"by_confidence"`
	ByMainID     map[int]int        `json:"by_main_id"`
}

// Summarize tallies clusters by confidence and main category.
func Summarize(clusters []Cluster) Summary {
	s := Summary{
		Clusters:     len(clusters),
		ByConfidence: map[Confidence]int{High: 0, Medium: 0, Low: 0},
		ByMainID:     make(map[int]int),
	}
	for _, c := range clusters {
		s.Variations += len(c.Variations)
		s.ByConfidence[c.Confidence]++
		s.ByMainID[c.MainID]++
	}
	return s
}

// AverageSize is the mean number of variations per cluster.
func (s Summary) AverageSize() float64 {
	if s.Clusters == 0 {
		return 0
	}
	return float64(s.Variations) / float64(s.Clusters)
}

// SweepPoint is the outcome of grouping at one threshold.
type SweepPoint struct {
	Threshold   float64 `json:"threshold"`
	Clusters    int     `json:"clusters"`
	Singletons  int     `json:"singletons"`
	Largest     int     `json:"largest"`
	AverageSize float64 `json:"average_size"`
}

// Sweep groups raw once per threshold and reports how the grouping changes.
// Only the grouping pass runs; nothing is classified.
func (e *Engine) Sweep(raw []string, thresholds []float64) []SweepPoint {
	prepared := Prepare(raw)
	points := make([]SweepPoint, 0, len(thresholds))
	for _, th := range thresholds {
		groups := Group(prepared, th)
		p := SweepPoint{Threshold: th, Clusters: len(groups)}
		for _, g := range groups {
			if len(g) == 1 {
				p.Singletons++
			}
			if len(g) > p.Largest {
				p.Largest = len(g)
			}
		}
		if len(groups) > 0 {
			p.AverageSize = float64(len(prepared)) / float64(len(groups))
		}
		points = append(points, p)
	}
	return points
}
