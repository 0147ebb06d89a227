package aggregate

import (
	"math"
	"sort"
	"strconv"

	"salesboard/internal/core/facts"
	perr "salesboard/internal/platform/errors"
)

// DefaultBucketWidth is the revenue bucket width the dashboard uses
const DefaultBucketWidth = 200

// Bucket is one non empty histogram interval [Start, Start+width)
type Bucket struct {
	Name  string  `json:"name"`
	Start float64 `json:"start"`
	Value int     `json:"value"`
}

// Histogram counts facts per fixed width interval of the metric
// bucket start is floor(v/width)*width and only non empty buckets are emitted, ascending by start
func Histogram(rows []facts.Fact, metric facts.Metric, width float64) ([]Bucket, error) {
	if !(width > 0) || math.IsInf(width, 0) {
		return nil, perr.WithField(perr.InvalidArgf("bucket width must be positive, got %v", width), "bucketWidth")
	}

	idx := map[float64]int{}
	out := []Bucket{}
	for i := range rows {
		v := metric.Value(&rows[i])
		if math.IsNaN(v) {
			continue
		}
		start := math.Floor(v/width) * width
		j, ok := idx[start]
		if !ok {
			j = len(out)
			idx[start] = j
			out = append(out, Bucket{Name: bucketName(start, width), Start: start})
		}
		out[j].Value++
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out, nil
}

func bucketName(start, width float64) string {
	return formatNumber(start) + "-" + formatNumber(start+width)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
