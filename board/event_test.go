package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/targetring/board"
)

func TestEventKind_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, k := range []board.EventKind{
		board.EventNone,
		board.EventNewTargets,
		board.EventEliminate,
		board.EventTargetAdded,
		board.EventTargetRemoved,
		board.EventChangeTargetCount,
	} {
		got, err := board.ParseEventKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	assert.Equal(t, "CHANGE_NUM_TARGETS", board.EventChangeTargetCount.String())
	assert.Equal(t, "EventKind(99)", board.EventKind(99).String())

	_, err := board.ParseEventKind("REVIVE")
	assert.Error(t, err)
}
