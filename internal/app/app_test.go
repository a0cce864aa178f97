package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/blackwell-systems/bookconnect/internal/browse"
	"github.com/blackwell-systems/bookconnect/internal/catalog"
	"github.com/blackwell-systems/bookconnect/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI with a throwaway config and returns what the
// command wrote to its output streams.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	base := []string{"--config", filepath.Join(t.TempDir(), "config.yml"), "--no-interactive", "--no-color"}
	root.SetArgs(append(base, args...))
	err := root.Execute()
	return out.String(), err
}

func TestList_FirstPage(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Books 1-36 of 40")
	assert.Contains(t, out, "Show more (4)")
	assert.Contains(t, out, "pride-and-prejudice")
}

func TestList_SecondPage(t *testing.T) {
	out, err := run(t, "list", "--page", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Books 37-40 of 40")
	assert.Contains(t, out, "Show more (0)")
	assert.NotContains(t, out, "pride-and-prejudice")
}

func TestList_PastLastPage(t *testing.T) {
	_, err := run(t, "list", "--page", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "past the last page (2)")

	_, err = run(t, "list", "--page", "0")
	assert.Error(t, err)
}

func TestList_JSON(t *testing.T) {
	out, err := run(t, "list", "--genre", "scifi", "--json")
	require.NoError(t, err)

	var res listResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 11, res.Total)
	assert.Equal(t, 11, res.Shown)
	assert.Equal(t, 0, res.Remaining)
	assert.Len(t, res.Books, 11)
	require.NotNil(t, res.Filter)
	assert.Equal(t, "scifi", res.Filter.Genre)
	assert.Equal(t, catalog.AllOption, res.Filter.Author)
	for _, b := range res.Books {
		assert.Contains(t, b.Genres, "Science Fiction")
	}
}

func TestList_FilterByName(t *testing.T) {
	out, err := run(t, "list", "--author", "h. g. wells", "--json")
	require.NoError(t, err)

	var res listResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 4, res.Total)
	for _, b := range res.Books {
		assert.Equal(t, "H. G. Wells", b.Author)
	}
}

func TestList_NoResults(t *testing.T) {
	out, err := run(t, "list", "--title", "no such book anywhere")
	require.NoError(t, err)
	assert.Contains(t, out, browse.NoResultsMessage)
	assert.Contains(t, out, "Show more (0)")
}

func TestList_UnknownGenre(t *testing.T) {
	_, err := run(t, "list", "--genre", "poetry")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown genre "poetry"`)
}

func TestBrowse_TextMode(t *testing.T) {
	out, err := run(t, "browse", "--genre", "mystery", "--author", "doyle")
	require.NoError(t, err)
	assert.Contains(t, out, "Books 1-3 of 3")
	assert.Contains(t, out, "Arthur Conan Doyle")
	assert.Contains(t, out, "Show more (0)")
}

func TestShow(t *testing.T) {
	out, err := run(t, "show", "pride-and-prejudice")
	require.NoError(t, err)
	assert.Contains(t, out, "Pride and Prejudice")
	assert.Contains(t, out, "Jane Austen (1813)")
	assert.Contains(t, out, "Classic, Romance")

	_, err = run(t, "show", "missing-book")
	require.Error(t, err)
	assert.True(t, errors.Is(err, catalog.ErrNotFound))
}

func TestShow_JSON(t *testing.T) {
	out, err := run(t, "show", "emma", "--json")
	require.NoError(t, err)

	var d browse.Detail
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, "Emma", d.Title)
	assert.Equal(t, "Jane Austen (1815)", d.Subtitle)
}

func TestGenres_JSON(t *testing.T) {
	out, err := run(t, "genres", "--json")
	require.NoError(t, err)

	var counts []optionCount
	require.NoError(t, json.Unmarshal([]byte(out), &counts))
	require.Len(t, counts, 8)
	assert.Equal(t, "Adventure", counts[0].Name)
	for _, c := range counts {
		if c.Key == "scifi" {
			assert.Equal(t, 11, c.Books)
		}
	}
}

func TestAuthors(t *testing.T) {
	out, err := run(t, "authors")
	require.NoError(t, err)
	assert.Contains(t, out, "wells")
	assert.Contains(t, out, "(4)")
	assert.NotContains(t, out, "All authors")
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "index.html")
	_, err := run(t, "export", "--genre", "horror", "--theme", "night", "--out", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `data-theme="night"`)
	assert.Contains(t, string(data), "Horror")

	_, err = run(t, "export", "--theme", "sepia", "--out", path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	_, err := run(t, "validate")
	assert.NoError(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(bad, []byte(`
authors: {a: "A"}
genres: {g: "G"}
books:
  - {id: x, title: "One", author: a, genres: [g], published: "2001"}
  - {id: x, title: "Two", author: b, genres: [g], published: "2002"}
`), 0644))

	out, err := run(t, "validate", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 problem(s) found")
	assert.Contains(t, out, "duplicate id")
	assert.Contains(t, out, `unknown author "b"`)
}

func TestCatalogFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
authors: {a: "Ann"}
genres: {g: "General"}
books:
  - {id: one, title: "First", author: a, genres: [g], published: "2001"}
`), 0644))

	out, err := run(t, "--catalog", path, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Books 1-1 of 1")

	_, err = run(t, "--catalog", filepath.Join(t.TempDir(), "missing.yml"), "list")
	assert.Error(t, err)
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	root := newRootCmd()
	root.SetArgs([]string{"--config", path, "config", "init"})
	require.NoError(t, root.Execute())
	assert.FileExists(t, path)

	root = newRootCmd()
	root.SetArgs([]string{"--config", path, "config", "init"})
	assert.Error(t, root.Execute(), "refuses to overwrite without --force")

	var out bytes.Buffer
	root = newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"--config", path, "config", "show"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "(built-in)")
	assert.Contains(t, out.String(), "36")
}

func TestVersion(t *testing.T) {
	SetVersion("1.2.3")
	defer SetVersion("dev")
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "bookconnect 1.2.3\n", out)
}

func TestResolveOption(t *testing.T) {
	c := &catalog.Catalogue{Genres: map[string]string{"sf": "Science Fiction", "fan": "Fantasy"}}
	opts := c.GenreOptions()

	tests := []struct {
		in   string
		want string
		err  bool
	}{
		{"", catalog.AllOption, false},
		{"all", catalog.AllOption, false},
		{"sf", "sf", false},
		{"science fiction", "sf", false},
		{"  Fantasy ", "fan", false},
		{"horror", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := resolveOption("genre", opts, tt.in)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnjoin(t *testing.T) {
	a, b, c := errors.New("a"), errors.New("b"), errors.New("c")
	joined := fmt.Errorf("wrapped: %w", errors.Join(a, errors.Join(b, c)))
	assert.Equal(t, []error{a, b, c}, unjoin(joined))
	assert.Equal(t, []error{a}, unjoin(a))
	assert.Nil(t, unjoin(nil))
}

func writeEmptyCatalogue(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "empty.yml")
	require.NoError(t, os.WriteFile(path, []byte("authors: {}\ngenres: {}\nbooks: []\n"), 0644))
	return path
}

func TestList_EmptyCatalogue(t *testing.T) {
	path := writeEmptyCatalogue(t)

	out, err := run(t, "--catalog", path, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No books in the catalogue.")
	assert.Contains(t, out, "Show more (0)")
	assert.NotContains(t, out, "Books 1-0")

	_, err = run(t, "--catalog", path, "list", "--page", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "past the last page (1)")
}

func TestBrowse_EmptyCatalogue(t *testing.T) {
	out, err := run(t, "--catalog", writeEmptyCatalogue(t), "browse")
	require.NoError(t, err)
	assert.Contains(t, out, "No books in the catalogue.")
	assert.NotContains(t, out, "Books 1-0")
}

func TestList_AllSelectorIsNotASearch(t *testing.T) {
	out, err := run(t, "list", "--genre", "All", "--author", "all", "--json")
	require.NoError(t, err)

	var res listResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Nil(t, res.Filter)
	assert.Equal(t, 40, res.Total)
}

func TestRedirectLogsForTUI(t *testing.T) {
	t.Cleanup(func() {
		closeLogging()
		logrus.SetOutput(io.Discard)
	})
	path := filepath.Join(t.TempDir(), "logs", "debug.log")

	require.NoError(t, setupLogging(config.LogConfig{Level: "info"}, true))
	assert.Same(t, os.Stderr, logrus.StandardLogger().Out)

	require.NoError(t, redirectLogsForTUI(path))
	assert.NotSame(t, os.Stderr, logrus.StandardLogger().Out)

	logrus.Info("filter submitted")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "filter submitted")
}

func TestRedirectLogsForTUI_LeavesOtherDestinations(t *testing.T) {
	t.Cleanup(func() {
		closeLogging()
		logrus.SetOutput(io.Discard)
	})
	unused := filepath.Join(t.TempDir(), "debug.log")

	require.NoError(t, setupLogging(config.LogConfig{Level: "info"}, false))
	require.NoError(t, redirectLogsForTUI(unused))
	assert.Equal(t, io.Discard, logrus.StandardLogger().Out)
	assert.NoFileExists(t, unused)

	logPath := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, setupLogging(config.LogConfig{Level: "info", File: logPath}, true))
	require.NoError(t, redirectLogsForTUI(unused))
	f, ok := logrus.StandardLogger().Out.(*os.File)
	require.True(t, ok)
	assert.Equal(t, logPath, f.Name())
	assert.NoFileExists(t, unused)
}
