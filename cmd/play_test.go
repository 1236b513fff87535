package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/knightpath/internal/controller"
	"github.com/mouse-blink/knightpath/internal/domain"
)

func TestPlayCmd_PassesOverrides(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	mockWorkflow.On("Play", mock.Anything, domain.PlayArgs{
		Overrides: domain.Overrides{BoardSize: 12, MaxMoves: 2},
	}).Return(nil)

	cmd, _ := newTestRootCmd(newPlayCmd())
	cmd.SetArgs([]string{"play", "-s", "12", "-m", "2"})

	require.NoError(t, cmd.Execute())
}

func TestPlayCmd_NonInteractive(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	mockWorkflow.On("Play", mock.Anything, mock.Anything).Return(controller.ErrNonInteractive)

	cmd, _ := newTestRootCmd(newPlayCmd())
	cmd.SetArgs([]string{"play"})

	require.ErrorIs(t, cmd.Execute(), controller.ErrNonInteractive)
}
