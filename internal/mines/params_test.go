package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		params  GameParams
		wantErr error
	}{
		{
			name:   "beginner",
			params: GameParams{Width: 9, Height: 9, MineCount: 10},
		},
		{
			name:   "intermediate",
			params: GameParams{Width: 16, Height: 16, MineCount: 40},
		},
		{
			name:   "expert",
			params: GameParams{Width: 30, Height: 16, MineCount: 99},
		},
		{
			name:   "zero mines",
			params: GameParams{Width: 5, Height: 5, MineCount: 0},
		},
		{
			name:   "single cell no mines",
			params: GameParams{Width: 1, Height: 1, MineCount: 0},
		},
		{
			name:   "max mines leaving an opening",
			params: GameParams{Width: 9, Height: 9, MineCount: 72},
		},
		{
			name:    "one mine too many",
			params:  GameParams{Width: 9, Height: 9, MineCount: 73},
			wantErr: ErrInvalidParams,
		},
		{
			name:    "mines fill the board",
			params:  GameParams{Width: 9, Height: 9, MineCount: 81},
			wantErr: ErrInvalidParams,
		},
		{
			name:    "single cell with a mine",
			params:  GameParams{Width: 1, Height: 1, MineCount: 1},
			wantErr: ErrInvalidParams,
		},
		{
			name:    "zero width",
			params:  GameParams{Width: 0, Height: 9, MineCount: 0},
			wantErr: ErrInvalidParams,
		},
		{
			name:    "negative height",
			params:  GameParams{Width: 9, Height: -1, MineCount: 0},
			wantErr: ErrInvalidParams,
		},
		{
			name:    "negative mine count",
			params:  GameParams{Width: 9, Height: 9, MineCount: -1},
			wantErr: ErrInvalidParams,
		},
		{
			name:    "2x2 cannot fit any mine",
			params:  GameParams{Width: 2, Height: 2, MineCount: 1},
			wantErr: ErrInvalidParams,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			err := test.params.Validate()
			if test.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, test.wantErr)
			}
		})
	}
}

func TestValidateIsRepeatable(t *testing.T) {
	t.Parallel()

	p := GameParams{Width: 9, Height: 9, MineCount: 10}
	require.NoError(t, p.Validate())
	require.NoError(t, p.Validate())
}

func TestInBounds(t *testing.T) {
	t.Parallel()

	p := GameParams{Width: 4, Height: 3}
	assert.True(t, p.InBounds(0, 0))
	assert.True(t, p.InBounds(3, 2))
	assert.False(t, p.InBounds(4, 2))
	assert.False(t, p.InBounds(3, 3))
	assert.False(t, p.InBounds(-1, 0))
	assert.False(t, p.InBounds(0, -1))
}
