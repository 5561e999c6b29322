package webformtags

import "context"

type contextKey int

const (
	sessionIDKey contextKey = iota
	clientDeliveryKey
)

// WithSessionID returns context carrying visitor session id
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// SessionIDFromContext returns visitor session id or empty string
func SessionIDFromContext(ctx context.Context) string {
	sessionID, _ := ctx.Value(sessionIDKey).(string)
	return sessionID
}

// WithClientDelivery marks context of a submission whose tags are returned to the browser directly
func WithClientDelivery(ctx context.Context) context.Context {
	return context.WithValue(ctx, clientDeliveryKey, true)
}

// IsClientDelivery reports whether tags of current submission are returned to the browser directly
func IsClientDelivery(ctx context.Context) bool {
	clientDelivery, _ := ctx.Value(clientDeliveryKey).(bool)
	return clientDelivery
}
