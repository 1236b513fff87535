package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adaptermocks "github.com/mouse-blink/knightpath/internal/adapter/mocks"
	"github.com/mouse-blink/knightpath/internal/controller"
	controllermocks "github.com/mouse-blink/knightpath/internal/controller/mocks"
	m "github.com/mouse-blink/knightpath/internal/model"
)

func TestWorkflow_Find_DisplaysOutcomesInTargetOrder(t *testing.T) {
	// Arrange
	store := adaptermocks.NewMockSettingsStore(t)
	ui := controllermocks.NewMockUI(t)

	store.On("Load").Return(m.DefaultSettings(), nil)
	ui.On("DisplayOutcomes", mock.MatchedBy(func(outcomes []m.Outcome) bool {
		return len(outcomes) == 3 &&
			outcomes[0].Request.Target == m.NewCell(2, 1) &&
			outcomes[0].Status == m.StatusFound &&
			outcomes[1].Request.Target == m.NewCell(5, 5) &&
			outcomes[1].Status == m.StatusNoPathFound &&
			outcomes[2].Request.Target == m.NewCell(3, 3) &&
			len(outcomes[2].Paths) == 2
	})).Return(nil)

	wf := NewWorkflow(store, ui, NewSearcher())

	// Act
	err := wf.Find(context.Background(), FindArgs{
		Start:    m.NewCell(0, 0),
		Targets:  []m.Cell{m.NewCell(2, 1), m.NewCell(5, 5), m.NewCell(3, 3)},
		Parallel: 2,
	})

	// Assert
	require.NoError(t, err)
}

func TestWorkflow_Find_AppliesOverrides(t *testing.T) {
	store := adaptermocks.NewMockSettingsStore(t)
	ui := controllermocks.NewMockUI(t)

	store.On("Load").Return(m.DefaultSettings(), nil)
	ui.On("DisplayOutcomes", mock.MatchedBy(func(outcomes []m.Outcome) bool {
		req := outcomes[0].Request
		return req.Dimension == 8 && req.MaxDepth == 5 && outcomes[0].Status == m.StatusFound
	})).Return(nil)

	wf := NewWorkflow(store, ui, NewSearcher())

	err := wf.Find(context.Background(), FindArgs{
		Overrides: Overrides{BoardSize: 8, MaxMoves: 5},
		Start:     m.NewCell(0, 0),
		Targets:   []m.Cell{m.NewCell(6, 6)},
	})

	require.NoError(t, err)
}

func TestWorkflow_Find_RejectsBeforeSearching(t *testing.T) {
	tests := []struct {
		name string
		args FindArgs
		want error
	}{
		{
			name: "no targets",
			args: FindArgs{Start: m.NewCell(0, 0)},
			want: ErrInvalidConfiguration,
		},
		{
			name: "board too large",
			args: FindArgs{
				Overrides: Overrides{BoardSize: 17},
				Start:     m.NewCell(0, 0),
				Targets:   []m.Cell{m.NewCell(1, 2)},
			},
			want: ErrInvalidConfiguration,
		},
		{
			name: "second target off board",
			args: FindArgs{
				Start:   m.NewCell(0, 0),
				Targets: []m.Cell{m.NewCell(1, 2), m.NewCell(6, 6)},
			},
			want: ErrOutOfBounds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := adaptermocks.NewMockSettingsStore(t)
			store.On("Load").Return(m.DefaultSettings(), nil).Maybe()

			wf := NewWorkflow(store, controllermocks.NewMockUI(t), &manualSearcher{})

			err := wf.Find(context.Background(), tt.args)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestWorkflow_Find_CancelledContext(t *testing.T) {
	store := adaptermocks.NewMockSettingsStore(t)
	store.On("Load").Return(m.Settings{BoardSize: 16, MaxMoves: 5}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	wf := NewWorkflow(store, controllermocks.NewMockUI(t), NewSearcher())

	err := wf.Find(ctx, FindArgs{
		Start:   m.NewCell(0, 0),
		Targets: []m.Cell{m.NewCell(15, 15)},
	})

	require.ErrorIs(t, err, context.Canceled)
}

func TestWorkflow_Find_StoreError(t *testing.T) {
	loadErr := errors.New("disk on fire")

	store := adaptermocks.NewMockSettingsStore(t)
	store.On("Load").Return(m.Settings{}, loadErr)

	wf := NewWorkflow(store, controllermocks.NewMockUI(t), NewSearcher())

	err := wf.Find(context.Background(), FindArgs{Start: m.NewCell(0, 0), Targets: []m.Cell{m.NewCell(1, 2)}})
	require.ErrorIs(t, err, loadErr)
}

func TestWorkflow_Moves(t *testing.T) {
	store := adaptermocks.NewMockSettingsStore(t)
	ui := controllermocks.NewMockUI(t)

	store.On("Load").Return(m.DefaultSettings(), nil)
	ui.On("DisplayMoves", m.NewCell(0, 0), m.DefaultSettings(),
		[]m.Cell{m.NewCell(1, 2), m.NewCell(2, 1)}).Return(nil)

	wf := NewWorkflow(store, ui, NewSearcher())

	require.NoError(t, wf.Moves(MovesArgs{Cell: m.NewCell(0, 0)}))
}

func TestWorkflow_Moves_OffBoard(t *testing.T) {
	store := adaptermocks.NewMockSettingsStore(t)
	store.On("Load").Return(m.DefaultSettings(), nil)

	wf := NewWorkflow(store, controllermocks.NewMockUI(t), NewSearcher())

	err := wf.Moves(MovesArgs{Cell: m.NewCell(6, 0)})
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestWorkflow_Play_PassesSessionAndSaver(t *testing.T) {
	store := adaptermocks.NewMockSettingsStore(t)
	ui := controllermocks.NewMockUI(t)

	settings := m.Settings{BoardSize: 9, MaxMoves: 4}

	store.On("Load").Return(settings, nil)
	store.On("Save", m.Settings{BoardSize: 10, MaxMoves: 4}).Return(nil)
	ui.On("Play", mock.Anything, mock.Anything).Return(func(session controller.Session, save controller.SaveSettingsFunc) error {
		if session.Settings() != settings {
			return errors.New("session created with wrong settings")
		}

		return save(session.Settings().WithBoardSize(10))
	})

	wf := NewWorkflow(store, ui, NewSearcher())

	require.NoError(t, wf.Play(context.Background(), PlayArgs{}))
}

func TestWorkflow_ShowSettings(t *testing.T) {
	store := adaptermocks.NewMockSettingsStore(t)
	ui := controllermocks.NewMockUI(t)

	store.On("Load").Return(m.DefaultSettings(), nil)
	store.On("Location").Return("/tmp/settings.yaml")
	ui.On("DisplaySettings", m.DefaultSettings(), "/tmp/settings.yaml").Return(nil)

	wf := NewWorkflow(store, ui, NewSearcher())

	require.NoError(t, wf.ShowSettings())
}

func TestWorkflow_UpdateSettings_KeepsUnsetFields(t *testing.T) {
	store := adaptermocks.NewMockSettingsStore(t)
	ui := controllermocks.NewMockUI(t)

	want := m.Settings{BoardSize: 6, MaxMoves: 5}

	store.On("Load").Return(m.DefaultSettings(), nil)
	store.On("Save", want).Return(nil)
	store.On("Location").Return("/tmp/settings.yaml")
	ui.On("DisplaySettings", want, "/tmp/settings.yaml").Return(nil)

	wf := NewWorkflow(store, ui, NewSearcher())

	require.NoError(t, wf.UpdateSettings(SettingsArgs{Overrides: Overrides{MaxMoves: 5}}))
}

func TestWorkflow_UpdateSettings_RejectsOutOfRange(t *testing.T) {
	store := adaptermocks.NewMockSettingsStore(t)
	store.On("Load").Return(m.DefaultSettings(), nil)

	wf := NewWorkflow(store, controllermocks.NewMockUI(t), NewSearcher())

	err := wf.UpdateSettings(SettingsArgs{Overrides: Overrides{MaxMoves: 6}})
	require.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestWorkflow_ResetSettings(t *testing.T) {
	store := adaptermocks.NewMockSettingsStore(t)
	ui := controllermocks.NewMockUI(t)

	store.On("Save", m.DefaultSettings()).Return(nil)
	store.On("Location").Return("/tmp/settings.yaml")
	ui.On("DisplaySettings", m.DefaultSettings(), "/tmp/settings.yaml").Return(nil)

	wf := NewWorkflow(store, ui, NewSearcher())

	require.NoError(t, wf.ResetSettings())
}

func TestWorkflow_ResetSettings_SaveError(t *testing.T) {
	saveErr := errors.New("read-only filesystem")

	store := adaptermocks.NewMockSettingsStore(t)
	store.On("Save", m.DefaultSettings()).Return(saveErr)

	wf := NewWorkflow(store, controllermocks.NewMockUI(t), NewSearcher())

	err := wf.ResetSettings()
	assert.ErrorIs(t, err, saveErr)
}
