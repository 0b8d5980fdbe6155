package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/incinfo/cmd/incinfo/commands"
	"go.trai.ch/incinfo/internal/app"
	"go.trai.ch/incinfo/internal/build"
	"go.trai.ch/incinfo/internal/core/domain"
)

type mockApp struct {
	infoFunc  func(ctx context.Context, out io.Writer, opts app.InfoOptions) error
	listFunc  func(ctx context.Context, out io.Writer, opts app.ListOptions) error
	watchFunc func(ctx context.Context, out io.Writer, opts app.WatchOptions) error
	verbose   bool
	json      bool
}

func (m *mockApp) Info(ctx context.Context, out io.Writer, opts app.InfoOptions) error {
	if m.infoFunc != nil {
		return m.infoFunc(ctx, out, opts)
	}
	return nil
}

func (m *mockApp) List(ctx context.Context, out io.Writer, opts app.ListOptions) error {
	if m.listFunc != nil {
		return m.listFunc(ctx, out, opts)
	}
	return nil
}

func (m *mockApp) Watch(ctx context.Context, out io.Writer, opts app.WatchOptions) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, out, opts)
	}
	return nil
}

func (m *mockApp) SetLogMode(verbose, json bool) {
	m.verbose = verbose
	m.json = json
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(a)
	cli.SetArgs(args)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Info(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.InfoOptions
		mock := &mockApp{
			infoFunc: func(_ context.Context, _ io.Writer, opts app.InfoOptions) error {
				captured = opts
				return nil
			},
		}

		_, err := execute(t, mock, "info", "main.c",
			"--line", "3", "--recursive", "--unit", "Bytes", "--digits", "0", "--separator", "Space",
			"-I", "inc", "-I", "third_party", "--system-dir", "/usr/include", "--timeout", "250ms",
			"--verbose")
		require.NoError(t, err)

		assert.Equal(t, "main.c", captured.File)
		assert.Equal(t, 3, captured.Line)
		o := captured.Overrides
		require.NotNil(t, o.Recursive)
		assert.True(t, *o.Recursive)
		require.NotNil(t, o.SizeUnit)
		assert.Equal(t, domain.SizeUnitBytes, *o.SizeUnit)
		require.NotNil(t, o.DecimalDigits)
		assert.Equal(t, 0, *o.DecimalDigits)
		require.NotNil(t, o.Separator)
		assert.Equal(t, domain.SeparatorSpace, *o.Separator)
		require.NotNil(t, o.Timeout)
		assert.Equal(t, 250*time.Millisecond, *o.Timeout)
		assert.Equal(t, []string{"inc", "third_party"}, o.IncludeDirs)
		assert.Equal(t, []string{"/usr/include"}, o.SystemDirs)
		assert.True(t, mock.verbose)
		assert.False(t, mock.json)
	})

	t.Run("unset flags do not override", func(t *testing.T) {
		var captured app.InfoOptions
		mock := &mockApp{
			infoFunc: func(_ context.Context, _ io.Writer, opts app.InfoOptions) error {
				captured = opts
				return nil
			},
		}

		_, err := execute(t, mock, "info", "main.c", "--log-json")
		require.NoError(t, err)
		assert.Equal(t, app.InfoOptions{File: "main.c"}, captured)
		assert.True(t, mock.json)
	})

	t.Run("rejects bad settings", func(t *testing.T) {
		mock := &mockApp{
			infoFunc: func(context.Context, io.Writer, app.InfoOptions) error {
				panic("should not be called")
			},
		}

		_, err := execute(t, mock, "info", "main.c", "--unit", "GB")
		require.ErrorIs(t, err, domain.ErrInvalidSizeUnit)

		_, err = execute(t, mock, "info", "main.c", "--separator", "dot")
		require.ErrorIs(t, err, domain.ErrInvalidSeparator)

		_, err = execute(t, mock, "info", "main.c", "--digits", "-1")
		require.ErrorIs(t, err, domain.ErrInvalidDecimalDigits)
	})

	t.Run("requires a file", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "info")
		require.Error(t, err)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		mock := &mockApp{
			infoFunc: func(context.Context, io.Writer, app.InfoOptions) error {
				return errors.New("simulated error")
			},
		}
		_, err := execute(t, mock, "info", "main.c")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_List(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.ListOptions
		mock := &mockApp{
			listFunc: func(_ context.Context, _ io.Writer, opts app.ListOptions) error {
				captured = opts
				return nil
			},
		}

		_, err := execute(t, mock, "list", "main.c", "-l", "2", "-I", "inc")
		require.NoError(t, err)
		assert.Equal(t, "main.c", captured.File)
		assert.Equal(t, 2, captured.Line)
		assert.Equal(t, []string{"inc"}, captured.Overrides.IncludeDirs)
	})

	t.Run("requires --line", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "list", "main.c")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line")
	})

	t.Run("has no format flags", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "list", "main.c", "--line", "1", "--recursive")
		require.Error(t, err)
	})
}

func TestCommands_Watch(t *testing.T) {
	var captured app.WatchOptions
	mock := &mockApp{
		watchFunc: func(_ context.Context, _ io.Writer, opts app.WatchOptions) error {
			captured = opts
			return nil
		},
	}

	_, err := execute(t, mock, "watch", "main.c", "--recursive")
	require.NoError(t, err)
	assert.Equal(t, "main.c", captured.File)
	require.NotNil(t, captured.Overrides.Recursive)
	assert.True(t, *captured.Overrides.Recursive)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Equal(t, "incinfo version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n", out)

	out, err = execute(t, &mockApp{}, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "incinfo version "+build.Version)
}
