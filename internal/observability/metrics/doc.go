// Package metrics declares the service's Prometheus series under the
// ncnews namespace: HTTP traffic, repository latency and pool gauges,
// circuit breaker state, and write/error counters for articles and comments.
// Everything registers on the default registry served at /metrics.
//
//	start := time.Now()
//	article, err := repo.Get(ctx, id)
//	metrics.RecordDBQuery("article.get", time.Since(start), err)
package metrics
