package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorOpponent(t *testing.T) {
	tests := []struct {
		in   Color
		want Color
	}{
		{Black, White},
		{White, Black},
		{Empty, Empty},
	}
	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Opponent())
		})
	}

	// Then: applying it twice returns the original side
	assert.Equal(t, Black, Black.Opponent().Opponent())
}

func TestBoardPosString(t *testing.T) {
	assert.Equal(t, "a1", BoardPos{0, 0}.String())
	assert.Equal(t, "c4", BoardPos{2, 3}.String())
	assert.Equal(t, "h8", BoardPos{7, 7}.String())
	assert.Equal(t, "-", NoPos.String())
}

func TestNewBoardState(t *testing.T) {
	// When: a fresh snapshot is created
	state := NewBoardState(8)

	// Then: it is empty, playing, and Black is to move
	require.NotNil(t, state)
	assert.Equal(t, 8, state.Width())
	assert.Equal(t, 8, state.Height())
	assert.Equal(t, Black, state.PlayerToMove)
	assert.False(t, state.Finished())
	assert.Equal(t, NoPos, state.LastMove)
	assert.Equal(t, Empty, state.At(3, 3))
	assert.Equal(t, Empty, state.At(-1, 9))
}

func TestBoardStateIsLegal(t *testing.T) {
	state := NewBoardState(8)
	state.LegalMoves = []BoardPos{{2, 3}, {5, 4}}

	assert.True(t, state.IsLegal(2, 3))
	assert.True(t, state.IsLegal(5, 4))
	assert.False(t, state.IsLegal(3, 2))
}
