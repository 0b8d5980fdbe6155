package fs_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/incinfo/internal/adapters/fs"
)

// writeTree creates files (relative path -> content) below root.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o750))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	}
}

func TestWalker_WalkFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		".git/config":        "git config",
		".jj/repo":           "jj",
		"build/gen.h":        "",
		"src/main.c":         "",
		"src/util.h":         "",
		"src/proto/msg.pb.h": "",
		"include/lib/api.h":  "",
		"README.md":          "",
	})

	var got []string
	for p := range fs.NewWalker().WalkFiles(root, []string{"build", "**/*.pb.h"}) {
		rel, err := filepath.Rel(root, p)
		require.NoError(t, err)
		got = append(got, filepath.ToSlash(rel))
	}
	slices.Sort(got)

	assert.Equal(t, []string{
		"README.md",
		"include/lib/api.h",
		"src/main.c",
		"src/util.h",
	}, got)
}

func TestWalker_StopsEarly(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.h": "", "b.h": "", "c.h": ""})

	count := 0
	for range fs.NewWalker().WalkFiles(root, nil) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}
