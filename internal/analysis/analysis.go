// Package analysis derives the exploratory views of the session dataset:
// channel filtering, three descriptive charts, and summary statistics. All
// computations are read-only over the dataset and recomputed on every
// render.
package analysis

import (
	"sort"
	"strconv"

	"github.com/Iamhimanshu008/DeepCSAT-Ecommerce/internal/dataset"
	"github.com/Iamhimanshu008/DeepCSAT-Ecommerce/pkg/types"
)

// SatisfactionThreshold is the minimum CSAT score counted as satisfied.
const SatisfactionThreshold = 4

// AllChannels is the filter value that passes the dataset through
// unfiltered.
const AllChannels = "All"

// Point is one bar of a chart.
type Point struct {
	Label string
	Value float64
}

// Chart is a computed data series ready for rendering.
type Chart struct {
	Title  string
	Points []Point
}

// ChartResult is a tagged optional chart: Chart is nil when the dataset
// lacks the columns the chart depends on, with MissingColumns naming them.
// A skipped chart is never an error.
type ChartResult struct {
	Chart          *Chart
	MissingColumns []string
}

// Skipped reports whether the chart was omitted.
func (r ChartResult) Skipped() bool {
	return r.Chart == nil
}

// ChannelOptions returns the filter choices: "All" plus the distinct
// channel values in first-appearance order.
func ChannelOptions(ds *dataset.Dataset) []string {
	return append([]string{AllChannels}, ds.Distinct(types.ColChannelName)...)
}

// FilterByChannel restricts the dataset to one channel value, or passes it
// through unchanged for "All". The session dataset is never mutated.
func FilterByChannel(ds *dataset.Dataset, channel string) *dataset.Dataset {
	if channel == "" || channel == AllChannels {
		return ds
	}
	return ds.FilterEqual(types.ColChannelName, channel)
}

// CSATDistribution counts rows per distinct CSAT score, scores ascending.
// Skipped when the score column is absent.
func CSATDistribution(ds *dataset.Dataset) ChartResult {
	if !ds.HasColumn(types.ColCSATScore) {
		return ChartResult{MissingColumns: []string{types.ColCSATScore}}
	}
	counts := map[float64]int{}
	for _, cell := range ds.Column(types.ColCSATScore) {
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			continue
		}
		counts[v]++
	}
	scores := make([]float64, 0, len(counts))
	for s := range counts {
		scores = append(scores, s)
	}
	sort.Float64s(scores)
	chart := &Chart{Title: "CSAT Score Distribution"}
	for _, s := range scores {
		chart.Points = append(chart.Points, Point{
			Label: strconv.FormatFloat(s, 'g', -1, 64),
			Value: float64(counts[s]),
		})
	}
	return ChartResult{Chart: chart}
}

// ResolutionVsCSAT plots the mean resolution time per CSAT score. It needs
// both timing columns and the score column; any absent one skips the chart
// with a visible warning.
func ResolutionVsCSAT(ds *dataset.Dataset) ChartResult {
	missing := missingColumns(ds, types.ColResolutionTime, types.ColHandlingTime, types.ColCSATScore)
	if len(missing) > 0 {
		return ChartResult{MissingColumns: missing}
	}
	return ChartResult{Chart: meanByGroup(ds, types.ColCSATScore, types.ColResolutionTime, "Avg Resolution Time vs CSAT")}
}

// CSATByChannel plots the mean CSAT score per support channel. Skipped with
// a warning when either column is absent.
func CSATByChannel(ds *dataset.Dataset) ChartResult {
	missing := missingColumns(ds, types.ColChannelName, types.ColCSATScore)
	if len(missing) > 0 {
		return ChartResult{MissingColumns: missing}
	}
	return ChartResult{Chart: meanByGroup(ds, types.ColChannelName, types.ColCSATScore, "CSAT by Support Channel")}
}

// Summary holds the descriptive statistics block. AvgCSAT and PctSatisfied
// are meaningful only when HasCSAT is true.
type Summary struct {
	TotalRecords int
	HasCSAT      bool
	AvgCSAT      float64
	PctSatisfied float64
}

// Summarize computes the summary statistics of the (possibly filtered)
// dataset. The mean ignores unparseable cells; the satisfied percentage is
// taken over all rows.
func Summarize(ds *dataset.Dataset) Summary {
	s := Summary{TotalRecords: ds.NumRows()}
	if !ds.HasColumn(types.ColCSATScore) {
		return s
	}
	s.HasCSAT = true
	scores, n := ds.FloatColumn(types.ColCSATScore)
	if n > 0 {
		sum := 0.0
		satisfied := 0
		for _, v := range scores {
			sum += v
			if v >= SatisfactionThreshold {
				satisfied++
			}
		}
		s.AvgCSAT = sum / float64(n)
		s.PctSatisfied = float64(satisfied) / float64(ds.NumRows()) * 100
	}
	return s
}

func missingColumns(ds *dataset.Dataset, names ...string) []string {
	var missing []string
	for _, name := range names {
		if !ds.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// meanByGroup averages valueCol per distinct groupCol value, groups in
// first-appearance order. Unparseable value cells are skipped; a group with
// no parseable values contributes a zero bar.
func meanByGroup(ds *dataset.Dataset, groupCol, valueCol, title string) *Chart {
	groupIdx := ds.ColumnIndex(groupCol)
	valueIdx := ds.ColumnIndex(valueCol)
	sums := map[string]float64{}
	counts := map[string]int{}
	order := make([]string, 0)
	for _, row := range ds.Rows {
		g := row[groupIdx]
		if _, seen := counts[g]; !seen {
			order = append(order, g)
			counts[g] = 0
		}
		v, err := strconv.ParseFloat(row[valueIdx], 64)
		if err != nil {
			continue
		}
		sums[g] += v
		counts[g]++
	}
	chart := &Chart{Title: title}
	for _, g := range order {
		mean := 0.0
		if counts[g] > 0 {
			mean = sums[g] / float64(counts[g])
		}
		chart.Points = append(chart.Points, Point{Label: g, Value: mean})
	}
	return chart
}
