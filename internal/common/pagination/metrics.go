package pagination

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"ncnews/internal/observability/metrics"
)

var (
	// RequestsTotal counts paginated list requests per resource and page range.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Name:      "pagination_requests_total",
			Help:      "Total number of paginated list requests",
		},
		[]string{"resource", "page_range"},
	)

	// TotalCount tracks the last total_count reported per resource.
	TotalCount = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: metrics.Namespace,
			Name:      "pagination_total_count",
			Help:      "Total rows matching the last list request",
		},
		[]string{"resource"},
	)
)

// RecordRequest records a list request. Unpaginated requests are not counted.
func RecordRequest(resource string, params Params) {
	if !params.Enabled() {
		return
	}
	RequestsTotal.WithLabelValues(resource, getPageRangeBucket(params.Page)).Inc()
}

// UpdateTotalCount records the total row count of a list request.
func UpdateTotalCount(resource string, count int64) {
	TotalCount.WithLabelValues(resource).Set(float64(count))
}

func getPageRangeBucket(page int) string {
	switch {
	case page <= 10:
		return "1-10"
	case page <= 50:
		return "11-50"
	case page <= 100:
		return "51-100"
	default:
		return "100+"
	}
}
