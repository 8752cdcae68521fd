// Package requestctx carries per-request correlation values through context
// independent of the transport that produced them.
package requestctx

import "context"

// requestIDContextKey is the context key for request correlation ids.
type requestIDContextKey struct{}

// WithRequestID stores a request correlation id in context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, requestIDContextKey{}, requestID)
}

// RequestIDFromContext returns the request correlation id stored in context.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(requestIDContextKey{}).(string)
	return value
}
