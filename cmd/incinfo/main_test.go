package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/incinfo/internal/app"
	"go.trai.ch/incinfo/internal/core/domain"
	"go.trai.ch/incinfo/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"incinfo": func() int {
			return run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, graftProvider)
		},
	}))
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata",
		Setup: func(env *testscript.Env) error {
			env.Setenv("NO_COLOR", "1")
			return nil
		},
	})
}

func provide(c *app.Components) ComponentProvider {
	return func(context.Context) (*app.Components, func(), error) {
		return c, func() {}, nil
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	application := app.New(
		mocks.NewMockConfigLoader(ctrl),
		mocks.NewMockDocumentStore(ctrl),
		mocks.NewMockIncludePathResolver(ctrl),
		nil,
		mocks.NewMockWatcher(ctrl),
		mocks.NewMockTelemetry(ctrl),
		mockLogger,
	)

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, stderr,
		provide(&app.Components{App: application, Logger: mockLogger}))

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "incinfo version")
	assert.Empty(t, stderr.String())
}

// TestRun_CommandError verifies that failures are logged and exit with 1.
func TestRun_CommandError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockDocs := mocks.NewMockDocumentStore(ctrl)
	mockPaths := mocks.NewMockIncludePathResolver(ctrl)

	mockLoader.EXPECT().Load("/work").Return(domain.DefaultConfiguration(), nil)
	mockPaths.EXPECT().Configure(gomock.Any())
	mockDocs.EXPECT().Canonicalize("missing.c").Return(domain.FileIdentity{}, domain.ErrCanonicalizeFailed)
	mockLogger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrCanonicalizeFailed)
	})

	application := app.New(mockLoader, mockDocs, mockPaths, nil, mocks.NewMockWatcher(ctrl), mocks.NewMockTelemetry(ctrl), mockLogger)

	exitCode := run(context.Background(), []string{"info", "missing.c"}, new(bytes.Buffer), new(bytes.Buffer),
		provide(&app.Components{App: application, Logger: mockLogger}),
		func(a *app.App) { a.WithWorkDir("/work") },
	)
	assert.Equal(t, 1, exitCode)
}

// TestRun_ProviderError verifies that initialization failures are written to stderr.
func TestRun_ProviderError(t *testing.T) {
	stderr := new(bytes.Buffer)
	provider := func(context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("graph failed")
	}

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)
	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "Error: graph failed\n", stderr.String())
}
