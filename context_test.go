package webformtags

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionIDContext(t *testing.T) {
	ctx := context.Background()
	require.Equal(t, "", SessionIDFromContext(ctx))

	ctx = WithSessionID(ctx, "session-1")
	require.Equal(t, "session-1", SessionIDFromContext(ctx))
}

func TestClientDeliveryContext(t *testing.T) {
	ctx := context.Background()
	require.False(t, IsClientDelivery(ctx))
	require.True(t, IsClientDelivery(WithClientDelivery(ctx)))
}
