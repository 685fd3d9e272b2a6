package statsbomb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeEventRoundTrip(t *testing.T) {
	t.Parallel()

	events, err := DecodeEvents(3825848, []byte(eventsJSON))
	require.NoError(t, err)

	for _, e := range events {
		raw, err := EncodeEvent(e)
		require.NoError(t, err)

		decoded, err := DecodeEvent(e.MatchID, raw)
		require.NoError(t, err)
		require.Equal(t, e, decoded, "event %s", e.ID)
	}
}
