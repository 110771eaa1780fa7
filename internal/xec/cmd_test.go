package xec

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/scribe/internal/logtest"
	"go.abhg.dev/scribe/internal/xec/xectest"
	"go.uber.org/mock/gomock"
)

func run(cmd *Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Wait()
}

func TestCommand_inheritsStreams(t *testing.T) {
	cmd := Command(t.Context(), nil, "true")

	assert.NotNil(t, cmd.cmd.Stdin)
	assert.NotNil(t, cmd.cmd.Stdout)
	assert.NotNil(t, cmd.cmd.Stderr)
}

func TestCmd_Args(t *testing.T) {
	cmd := Command(t.Context(), logtest.New(t), "echo", "arg1", "arg2", "arg3")
	assert.Equal(t, "echo", cmd.Name())
	assert.Equal(t, []string{"arg1", "arg2", "arg3"}, cmd.Args())
}

func TestCmd_WithStdout(t *testing.T) {
	var buf bytes.Buffer
	cmd := Command(t.Context(), logtest.New(t), "echo", "hello", "world").
		WithStdout(&buf)

	require.NoError(t, run(cmd))
	assert.Equal(t, "hello world\n", buf.String())
}

func TestCmd_WithStderr(t *testing.T) {
	var buf bytes.Buffer
	cmd := Command(t.Context(), logtest.New(t), "sh", "-c", "echo 'stderr output' >&2").
		WithStderr(&buf)

	require.NoError(t, run(cmd))
	assert.Equal(t, "stderr output\n", buf.String())
}

func TestCmd_WithStdin(t *testing.T) {
	var buf bytes.Buffer
	cmd := Command(t.Context(), logtest.New(t), "cat").
		WithStdin(strings.NewReader("test input")).
		WithStdout(&buf)

	require.NoError(t, run(cmd))
	assert.Equal(t, "test input", buf.String())
}

func TestCmd_StartWait(t *testing.T) {
	ctx := t.Context()
	log := logtest.New(t)

	t.Run("Success", func(t *testing.T) {
		require.NoError(t, run(Command(ctx, log, "true")))
	})

	t.Run("ExitCode", func(t *testing.T) {
		err := run(Command(ctx, log, "sh", "-c", "exit 3"))
		require.Error(t, err)

		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 3, exitErr.ExitCode())
	})

	t.Run("NotFound", func(t *testing.T) {
		cmd := Command(ctx, log, "scribe-test-no-such-program")
		err := cmd.Start()
		require.Error(t, err)
		assert.ErrorIs(t, err, exec.ErrNotFound)
	})
}

func TestCmd_contextCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(t.Context(), 50*time.Millisecond)
	defer cancel()

	cmd := Command(ctx, logtest.New(t), "sleep", "60")
	require.NoError(t, cmd.Start())
	require.Error(t, cmd.Wait())
	assert.Error(t, ctx.Err())
}

func TestCmd_WithExecer(t *testing.T) {
	mockExecer := xectest.NewMockExecer(gomock.NewController(t))

	var started *exec.Cmd
	mockExecer.EXPECT().
		Start(gomock.Any()).
		DoAndReturn(func(cmd *exec.Cmd) error {
			started = cmd
			return nil
		})
	mockExecer.EXPECT().
		Wait(gomock.Any()).
		Return(nil)

	stdin := strings.NewReader("input")
	cmd := Command(t.Context(), logtest.New(t), "editor", "--wait", "file.md").
		WithExecer(mockExecer).
		WithStdin(stdin)
	require.NoError(t, run(cmd))

	require.NotNil(t, started)
	assert.Equal(t, []string{"editor", "--wait", "file.md"}, started.Args)
	assert.Same(t, stdin, started.Stdin)
}

func TestCmd_WithExecer_nil(t *testing.T) {
	cmd := Command(t.Context(), logtest.New(t), "true").WithExecer(nil)
	assert.Equal(t, DefaultExecer, cmd.execer())
	require.NoError(t, run(cmd))
}
