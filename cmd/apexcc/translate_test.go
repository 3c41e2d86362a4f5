package main

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEnv() (*env, afero.Fs) {
	fs := afero.NewMemMapFs()
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &env{fs: fs, log: log}, fs
}

func writeFiles(t *testing.T, fs afero.Fs, files map[string]string) {
	t.Helper()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
}

func run(t *testing.T, e *env, args ...string) error {
	t.Helper()
	root := newRootCmd(e)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	return root.Execute()
}

func TestDiscover(t *testing.T) {
	t.Parallel()
	_, fs := testEnv()
	writeFiles(t, fs, map[string]string{
		"src/a.cls":            "public class A { }",
		"src/nested/b.trigger": "trigger B on Account (before insert) { }",
		"src/readme.md":        "docs",
		"src/c.txt":            "not apex",
	})

	files, err := discover(fs, []string{"src"}, []string{"**/*.cls", "**/*.trigger"})
	require.NoError(t, err)
	assert.Equal(t, []string{"src/a.cls", "src/nested/b.trigger"}, files)

	// a root that is itself a file bypasses the patterns
	files, err = discover(fs, []string{"src/readme.md"}, []string{"**/*.cls"})
	require.NoError(t, err)
	assert.Equal(t, []string{"src/readme.md"}, files)

	_, err = discover(fs, []string{"missing"}, []string{"**/*.cls"})
	assert.Error(t, err)
}

func TestTranslateWritesJSON(t *testing.T) {
	t.Parallel()
	e, fs := testEnv()
	writeFiles(t, fs, map[string]string{
		"src/A.cls":       "public class A { Integer n = 1; }",
		"src/B.trigger":   "trigger B on Account (after update) { update changed; }",
		"src/notes.md":    "skipped",
		"other/ignore.go": "package ignore",
	})

	require.NoError(t, run(t, e, "translate", "src", "--json-dir", "out"))

	data, err := afero.ReadFile(fs, "out/A.cls.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"@type":"CompilationUnit"`)
	assert.Contains(t, string(data), `"loc"`)

	data, err = afero.ReadFile(fs, "out/B.trigger.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"TriggerDeclaration"`)

	exists, err := afero.Exists(fs, "out/notes.md.json")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTranslateOmitLocations(t *testing.T) {
	t.Parallel()
	e, fs := testEnv()
	writeFiles(t, fs, map[string]string{"src/A.cls": "public class A { }"})

	require.NoError(t, run(t, e, "translate", "src", "--json-dir", "out", "--omit-locations"))

	data, err := afero.ReadFile(fs, "out/A.cls.json")
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"loc"`)
}

func TestTranslateCountsFailures(t *testing.T) {
	t.Parallel()
	e, fs := testEnv()
	writeFiles(t, fs, map[string]string{
		"src/Good.cls":  "public class Good { }",
		"src/Bad.cls":   "public class {",
		"src/Worse.cls": "public class Worse { Integer n = 2147483648; }",
		"src/Fine.cls":  "public class Fine { }",
		"src/Other.cls": "public class Other { }",
		"src/skip.xyz":  "irrelevant",
	})

	err := run(t, e, "translate", "src", "--json-dir", "out")
	require.Error(t, err)
	assert.ErrorContains(t, err, "2 of 5 files failed")

	// good files are still written
	exists, aerr := afero.Exists(fs, "out/Good.cls.json")
	require.NoError(t, aerr)
	assert.True(t, exists)
	exists, aerr = afero.Exists(fs, "out/Bad.cls.json")
	require.NoError(t, aerr)
	assert.False(t, exists)
}

func TestTranslateNoMatches(t *testing.T) {
	t.Parallel()
	e, fs := testEnv()
	require.NoError(t, fs.MkdirAll("src", 0o755))
	assert.NoError(t, run(t, e, "translate", "src"))
}

func TestTranslateConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("config supplies defaults", func(t *testing.T) {
		t.Parallel()
		e, fs := testEnv()
		writeFiles(t, fs, map[string]string{
			"src/A.cls":  "public class A { }",
			"apexcc.yml": "json_dir: fromconfig\nworkers: 2\n",
		})

		require.NoError(t, run(t, e, "translate", "src", "--config", "apexcc.yml"))
		exists, err := afero.Exists(fs, "fromconfig/A.cls.json")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("explicit flags win", func(t *testing.T) {
		t.Parallel()
		e, fs := testEnv()
		writeFiles(t, fs, map[string]string{
			"src/A.cls":  "public class A { }",
			"apexcc.yml": "json_dir: fromconfig\n",
		})

		require.NoError(t, run(t, e, "translate", "src", "--config", "apexcc.yml", "--json-dir", "fromflag"))
		exists, err := afero.Exists(fs, "fromflag/A.cls.json")
		require.NoError(t, err)
		assert.True(t, exists)
		exists, err = afero.Exists(fs, "fromconfig")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("missing config file", func(t *testing.T) {
		t.Parallel()
		e, fs := testEnv()
		writeFiles(t, fs, map[string]string{"src/A.cls": "public class A { }"})
		assert.Error(t, run(t, e, "translate", "src", "--config", "nope.yml"))
	})
}
