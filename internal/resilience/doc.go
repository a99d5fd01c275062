// Package resilience groups the fault-tolerance helpers used around the database:
//
//   - circuitbreaker: a gobreaker-backed wrapper for the repositories' query interface
//   - retry: exponential backoff with jitter for the startup connection check
//
// Usage Example:
//
//	guarded := circuitbreaker.NewDB(sqlxDB)
//	articles := postgres.NewArticleRepo(guarded)
//
//	err := retry.Do(ctx, retry.StartupBackoff(), func(ctx context.Context) error {
//	    return db.PingContext(ctx)
//	})
package resilience
