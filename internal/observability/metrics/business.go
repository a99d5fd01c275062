package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Business metrics track writes and client-visible failures
var (
	// ArticlesCreatedTotal counts articles created through the API
	ArticlesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "articles_created_total",
			Help:      "Total number of articles created",
		},
	)

	// CommentsCreatedTotal counts comments posted through the API
	CommentsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "comments_created_total",
			Help:      "Total number of comments posted",
		},
	)

	// CommentsDeletedTotal counts comments removed through the API
	CommentsDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "comments_deleted_total",
			Help:      "Total number of comments deleted",
		},
	)

	// VotesAppliedTotal counts vote increments by resource
	VotesAppliedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "votes_applied_total",
			Help:      "Total number of vote increments applied",
		},
		[]string{"resource"},
	)

	// APIErrorsTotal counts error responses by the normalizer stage that produced them
	APIErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "api_errors_total",
			Help:      "Total number of error responses by normalizer stage and status",
		},
		[]string{"stage", "status"},
	)
)

// RecordArticleCreated records a successful article creation.
func RecordArticleCreated() {
	ArticlesCreatedTotal.Inc()
}

// RecordCommentCreated records a successful comment post.
func RecordCommentCreated() {
	CommentsCreatedTotal.Inc()
}

// RecordCommentDeleted records a successful comment deletion.
func RecordCommentDeleted() {
	CommentsDeletedTotal.Inc()
}

// RecordVote records a vote increment on resource ("article" or "comment").
func RecordVote(resource string) {
	VotesAppliedTotal.WithLabelValues(resource).Inc()
}

// RecordAPIError records an error response emitted by the given normalizer stage.
func RecordAPIError(stage, status string) {
	APIErrorsTotal.WithLabelValues(stage, status).Inc()
}
