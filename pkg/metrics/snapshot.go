package metrics

import (
	"fmt"
	"slices"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Sample is one aggregated metric value.
type Sample struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Snapshot gathers g and returns one Sample per church metric family, with
// counters summed across label sets. Histograms contribute a _count and a
// _sum sample. Samples are sorted by name.
func Snapshot(g prometheus.Gatherer) ([]Sample, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, fmt.Errorf("gathering metrics: %w", err)
	}

	var out []Sample
	for _, mf := range families {
		name := mf.GetName()
		if !strings.HasPrefix(name, Namespace+"_") {
			continue
		}
		switch mf.GetType() {
		case dto.MetricType_COUNTER:
			var total float64
			for _, m := range mf.GetMetric() {
				total += m.GetCounter().GetValue()
			}
			out = append(out, Sample{Name: name, Value: total})
		case dto.MetricType_HISTOGRAM:
			var count uint64
			var sum float64
			for _, m := range mf.GetMetric() {
				count += m.GetHistogram().GetSampleCount()
				sum += m.GetHistogram().GetSampleSum()
			}
			out = append(out,
				Sample{Name: name + "_count", Value: float64(count)},
				Sample{Name: name + "_sum", Value: sum})
		}
	}
	slices.SortFunc(out, func(a, b Sample) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}
