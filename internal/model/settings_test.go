package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, 6, s.BoardSize)
	assert.Equal(t, 3, s.MaxMoves)
	require.NoError(t, s.Validate())
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		wantErr  bool
	}{
		{name: "smallest", settings: Settings{BoardSize: 6, MaxMoves: 1}},
		{name: "largest", settings: Settings{BoardSize: 16, MaxMoves: 5}},
		{name: "board too small", settings: Settings{BoardSize: 5, MaxMoves: 3}, wantErr: true},
		{name: "board too large", settings: Settings{BoardSize: 17, MaxMoves: 3}, wantErr: true},
		{name: "no moves", settings: Settings{BoardSize: 8, MaxMoves: 0}, wantErr: true},
		{name: "too many moves", settings: Settings{BoardSize: 8, MaxMoves: 6}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfiguration)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestSettings_WithersReturnCopies(t *testing.T) {
	base := DefaultSettings()

	bigger := base.WithBoardSize(10).WithMaxMoves(5)

	assert.Equal(t, DefaultSettings(), base)
	assert.Equal(t, Settings{BoardSize: 10, MaxMoves: 5}, bigger)
}
