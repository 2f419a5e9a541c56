package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/grugui/pkg/apps"
	"github.com/arthur-debert/grugui/pkg/core"
	"github.com/arthur-debert/grugui/pkg/errors"
	"github.com/arthur-debert/grugui/pkg/page"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan(t *testing.T) {
	files := Plan(page.Document{HTML: "<index>"}, []page.Document{
		{Name: "counter", HTML: "<c>", CSS: "c {}"},
		{Name: "plain", HTML: "<p>"},
	})

	var got []string
	for _, f := range files {
		got = append(got, f.Path)
	}
	assert.Equal(t, []string{"index.html", "counter.html", "counter.css", "plain.html"}, got)
	assert.Equal(t, "<index>", string(files[0].Content))
}

func TestBuild(t *testing.T) {
	eng, err := core.New()
	require.NoError(t, err)

	files, err := Build(eng, apps.Default(), page.Options{Title: "demo"})
	require.NoError(t, err)

	byPath := make(map[string]string)
	for _, f := range files {
		byPath[f.Path] = string(f.Content)
	}
	for _, name := range []string{"counter", "tictactoe", "todo"} {
		assert.Contains(t, byPath[IndexFile], `href="`+name+`.html"`)
		assert.Contains(t, byPath[name+".html"], `<link rel="stylesheet" href="`+name+`.css">`)
		assert.Contains(t, byPath[name+".html"], "<title>demo | "+name+"</title>")
		assert.NotEmpty(t, byPath[name+".css"])
	}
}

func TestSiteWritesFiles(t *testing.T) {
	dir := t.TempDir()
	files := []File{
		{Path: "index.html", Content: []byte("<p>index</p>")},
		{Path: "counter.css", Content: []byte("a {}")},
	}

	res, err := Site(context.Background(), dir, files, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"index.html", "counter.css"}, res.Written)
	assert.False(t, res.DryRun)

	content, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<p>index</p>", string(content))
	content, err = os.ReadFile(filepath.Join(dir, "counter.css"))
	require.NoError(t, err)
	assert.Equal(t, "a {}", string(content))
}

func TestSiteDryRun(t *testing.T) {
	dir := t.TempDir()

	res, err := Site(context.Background(), dir, []File{{Path: "index.html", Content: []byte("x")}}, Options{DryRun: true})
	require.NoError(t, err)
	assert.True(t, res.DryRun)
	assert.Equal(t, []string{"index.html"}, res.Written)

	_, err = os.Stat(filepath.Join(dir, "index.html"))
	assert.True(t, os.IsNotExist(err), "dry run must not write")
}

func TestSiteExistingFiles(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0644))
	files := []File{{Path: "index.html", Content: []byte("new")}}

	_, err := Site(context.Background(), dir, files, Options{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))

	_, err = Site(context.Background(), dir, files, Options{Force: true})
	require.NoError(t, err)
	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))
}

func TestSiteRejectsEscapingPaths(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"empty", ""},
		{"absolute", "/etc/passwd"},
		{"parent", "../outside.html"},
		{"dotdot", ".."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Site(context.Background(), t.TempDir(), []File{{Path: tt.path}}, Options{DryRun: true})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
		})
	}
}

func TestSiteEmpty(t *testing.T) {
	res, err := Site(context.Background(), t.TempDir(), nil, Options{})
	require.NoError(t, err)
	assert.Empty(t, res.Written)
}
