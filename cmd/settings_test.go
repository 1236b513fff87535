package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/knightpath/internal/domain"
)

func TestSettingsCmd_Show(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	mockWorkflow.On("ShowSettings").Return(nil)

	cmd, _ := newTestRootCmd(newSettingsCmd())
	cmd.SetArgs([]string{"settings"})

	require.NoError(t, cmd.Execute())
}

func TestSettingsCmd_Set(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	mockWorkflow.On("UpdateSettings", domain.SettingsArgs{
		Overrides: domain.Overrides{MaxMoves: 5},
	}).Return(nil)

	settingsSizeFlag, settingsMaxMovesFlag = 0, 0

	cmd, _ := newTestRootCmd(newSettingsCmd())
	cmd.SetArgs([]string{"settings", "set", "--max-moves", "5"})

	require.NoError(t, cmd.Execute())
}

func TestSettingsCmd_SetWithoutFlags(t *testing.T) {
	withMockWorkflow(t)

	cmd, _ := newTestRootCmd(newSettingsCmd())
	cmd.SetArgs([]string{"settings", "set"})

	require.ErrorIs(t, cmd.Execute(), errNothingToSet)
}

func TestSettingsCmd_Reset(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	mockWorkflow.On("ResetSettings").Return(nil)

	cmd, _ := newTestRootCmd(newSettingsCmd())
	cmd.SetArgs([]string{"settings", "reset"})

	require.NoError(t, cmd.Execute())
}
