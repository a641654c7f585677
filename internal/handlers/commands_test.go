package handlers

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pzhuk/minefield/internal/mines"
	"github.com/pzhuk/minefield/internal/session"
)

func testSession(t *testing.T, params mines.GameParams) *session.Session {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	s, err := session.NewStore(time.Hour, log).Create(params)
	require.NoError(t, err)
	return s
}

func fixedSeed() uint64 { return 42 }

func TestExecuteCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		command string
		wantErr string
	}{
		{name: "ping", command: "g"},
		{name: "open", command: "o 4 4"},
		{name: "unknown command", command: "x 1 2", wantErr: "unknown command"},
		{name: "missing args", command: "o 4", wantErr: "takes 2 arguments"},
		{name: "extra args", command: "r 1", wantErr: "takes 0 arguments"},
		{name: "non-numeric x", command: "o a 4", wantErr: "first argument"},
		{name: "non-numeric y", command: "o 4 b", wantErr: "second argument"},
		{name: "out of bounds", command: "o 9 9", wantErr: "out of bounds"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			s := testSession(t, mines.GameParams{Width: 9, Height: 9, MineCount: 10})
			err := executeCommand(s, fixedSeed, test.command)
			if test.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, test.wantErr)
			}
		})
	}
}

func TestExecuteScript(t *testing.T) {
	t.Parallel()

	s := testSession(t, mines.GameParams{Width: 9, Height: 9, MineCount: 71})
	_, err := executeScript(s, fixedSeed, "o 4 4\nf 0 0\nf 0 0\nf 0 0")
	require.NoError(t, err)

	v := s.Snapshot()
	assert.Equal(t, session.StatusPlaying, v.Status)
	assert.Equal(t, 1, v.FlagCount)
}

func TestExecuteScriptReportsLine(t *testing.T) {
	t.Parallel()

	s := testSession(t, mines.GameParams{Width: 9, Height: 9, MineCount: 10})
	line, err := executeScript(s, fixedSeed, "g\ng\no ? ?")
	assert.Equal(t, 2, line)
	assert.Error(t, err)
}

func TestExecuteScriptStopsQuietlyOnGameOver(t *testing.T) {
	t.Parallel()

	// the first open wins the 1x1 board; the rest of the script must
	// not fail the batch
	s := testSession(t, mines.GameParams{Width: 1, Height: 1, MineCount: 0})
	_, err := executeScript(s, fixedSeed, "o 0 0\no 0 0\nf 0 0")
	require.NoError(t, err)
	assert.Equal(t, session.StatusWon, s.Snapshot().Status)
}

func TestCommandsResignAndReset(t *testing.T) {
	t.Parallel()

	s := testSession(t, mines.GameParams{Width: 9, Height: 9, MineCount: 10})
	require.NoError(t, executeCommand(s, fixedSeed, "o 4 4"))
	require.NoError(t, executeCommand(s, fixedSeed, "r"))
	assert.Equal(t, session.StatusLost, s.Snapshot().Status)

	require.NoError(t, executeCommand(s, fixedSeed, "n"))
	assert.Equal(t, session.StatusNew, s.Snapshot().Status)
}
