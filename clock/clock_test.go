package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSystemClock(t *testing.T) {
	clock := NewSystemClock()
	before := time.Now().Unix()

	now := clock.NowUTC()
	require.Equal(t, time.UTC, now.Location())
	require.GreaterOrEqual(t, clock.NowUnix(), before)
	require.GreaterOrEqual(t, now.Unix(), before)
}
