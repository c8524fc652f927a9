package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getchurch/church/pkg/config"
)

type result struct {
	code   int
	stdout string
	stderr string
}

// run executes the CLI with isolated config directories and environment.
func run(t *testing.T, env map[string]string, args ...string) result {
	t.Helper()
	return runIn(t, t.TempDir(), env, args...)
}

func runIn(t *testing.T, workDir string, env map[string]string, args ...string) result {
	t.Helper()
	if env == nil {
		env = map[string]string{}
	}
	cmd := newRootCmd(config.Loader{
		GlobalDir: filepath.Join(t.TempDir(), "global"),
		WorkDir:   workDir,
		Environ:   env,
	})
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(""))
	code := execute(cmd, args)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestGen_SingleField(t *testing.T) {
	res := run(t, nil, "gen", "food.fruit", "-n", "4")
	require.Equal(t, 0, res.code, res.stderr)

	got := lines(res.stdout)
	assert.Len(t, got, 4)
	for _, v := range got {
		assert.NotEmpty(t, v)
	}
}

func TestGen_SeedIsReproducible(t *testing.T) {
	args := []string{"gen", "--seed", "42", "-n", "5", "personal.full_name", "address.city"}
	first := run(t, nil, args...)
	second := run(t, nil, args...)

	require.Equal(t, 0, first.code, first.stderr)
	assert.Equal(t, first.stdout, second.stdout)
	assert.True(t, strings.HasPrefix(first.stdout, "PERSONAL.FULL_NAME"), first.stdout)
	assert.Len(t, lines(first.stdout), 6)
}

func TestGen_JSON(t *testing.T) {
	res := run(t, nil, "--json", "gen", "-l", "ru_ru", "-n", "2", "address.city", "text.word")
	require.Equal(t, 0, res.code, res.stderr)

	var records []map[string]string
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &records))
	require.Len(t, records, 2)
	for _, rec := range records {
		assert.NotEmpty(t, rec["address.city"])
		assert.NotEmpty(t, rec["text.word"])
	}
}

func TestGen_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown field", []string{"gen", "address.nowhere"}, `unknown field: "address.nowhere"`},
		{"unsupported locale", []string{"gen", "-l", "xx_xx", "address.city"}, `locale not supported: "xx_xx"`},
		{"no fields", []string{"gen"}, "requires at least 1 arg"},
		{"count out of range", []string{"gen", "-n", "0", "address.city"}, "count 0 is out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, nil, tt.args...)
			assert.Equal(t, 1, res.code)
			assert.Contains(t, res.stderr, "Error: ")
			assert.Contains(t, res.stderr, tt.wantErr)
			assert.Empty(t, res.stdout)
		})
	}
}

func TestGen_LocaleFromEnv(t *testing.T) {
	res := run(t, map[string]string{"CHURCH_LOCALE": "xx_xx"}, "gen", "address.city")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "xx_xx")

	res = run(t, map[string]string{"CHURCH_LOCALE": "xx_xx"}, "gen", "-l", "de_de", "address.city")
	assert.Equal(t, 0, res.code, "flag overrides env: %s", res.stderr)
}

func TestRender(t *testing.T) {
	res := run(t, nil, "render", "-n", "3", `{{sequence("id")}}:{{food.fruit}}`)
	require.Equal(t, 0, res.code, res.stderr)

	got := lines(res.stdout)
	require.Len(t, got, 3)
	for i, line := range got {
		assert.True(t, strings.HasPrefix(line, string(rune('1'+i))+":"), line)
	}
}

func TestRender_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.tmpl")
	require.NoError(t, os.WriteFile(path, []byte("Hi {{upper(\"x\")}}\n"), 0o644))

	res := run(t, nil, "render", "-f", path)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "Hi X\n", res.stdout)
}

func TestRender_UnknownExpression(t *testing.T) {
	res := run(t, nil, "render", "{{nope.nothing}}")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "unknown template expression")
}

func TestFields(t *testing.T) {
	res := run(t, nil, "fields", "address")
	require.Equal(t, 0, res.code, res.stderr)

	for _, f := range lines(res.stdout) {
		assert.True(t, strings.HasPrefix(f, "address."), f)
	}
	assert.Contains(t, res.stdout, "address.city\n")

	res = run(t, nil, "fields", "bogus")
	assert.Equal(t, 1, res.code)
}

func TestLocales_JSON(t *testing.T) {
	res := run(t, nil, "locales", "--json")
	require.Equal(t, 0, res.code, res.stderr)

	var infos []LocaleInfo
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &infos))

	byName := map[string]LocaleInfo{}
	for _, info := range infos {
		byName[info.Locale] = info
	}
	require.Contains(t, byName, "en_us")
	require.Contains(t, byName, "ru_ru")
	assert.True(t, byName["en_us"].Default)
	assert.False(t, byName["ru_ru"].Default)
	assert.Positive(t, byName["ru_ru"].Categories)
}

func TestCategories_Shared(t *testing.T) {
	res := run(t, nil, "categories", "-l", "ru_ru", "--json")
	require.Equal(t, 0, res.code, res.stderr)

	var infos []CategoryInfo
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &infos))

	byName := map[string]CategoryInfo{}
	for _, info := range infos {
		assert.Positive(t, info.Entries, info.Name)
		byName[info.Name] = info
	}
	assert.True(t, byName["useragents"].Shared, "useragents comes from en_us")
	assert.False(t, byName["cities"].Shared)
}

func TestNaughty(t *testing.T) {
	all := run(t, nil, "naughty", "--all", "--json")
	require.Equal(t, 0, all.code, all.stderr)

	var list []string
	require.NoError(t, json.Unmarshal([]byte(all.stdout), &list))
	assert.NotEmpty(t, list)

	some := run(t, nil, "naughty", "-n", "3", "--json")
	require.Equal(t, 0, some.code, some.stderr)
	var picked []string
	require.NoError(t, json.Unmarshal([]byte(some.stdout), &picked))
	assert.Len(t, picked, 3)
	for _, p := range picked {
		assert.Contains(t, list, p)
	}
}

func TestConfig_Sources(t *testing.T) {
	work := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(work, ".churchrc.yaml"), []byte("locale: de_de\n"), 0o644))

	res := runIn(t, work, map[string]string{"CHURCH_COUNT": "3"}, "config", "--seed", "9")
	require.Equal(t, 0, res.code, res.stderr)

	assert.Contains(t, res.stdout, "locale: de_de # local")
	assert.Contains(t, res.stdout, "count: 3 # env")
	assert.Contains(t, res.stdout, "seed: 9 # flag")
	assert.Contains(t, res.stdout, "logLevel: warn # default")
}

func TestConfig_JSON(t *testing.T) {
	res := run(t, nil, "config", "--json", "--log-level", "debug")
	require.Equal(t, 0, res.code, res.stderr)

	var out ConfigOutput
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &out))
	assert.Equal(t, "debug", out.Config.LogLevel)
	assert.Equal(t, config.SourceFlag, out.Sources[config.KeyLogLevel])
	assert.Equal(t, config.SourceFlag, out.Sources[config.KeyJSON])
	assert.Len(t, out.Files.Local, 2)
}

func TestConfig_InvalidFile(t *testing.T) {
	work := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(work, ".churchrc.yaml"), []byte("colour: red\n"), 0o644))

	res := runIn(t, work, nil, "config")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, ".churchrc.yaml")
	assert.Contains(t, res.stderr, "colour")
}

func TestVersion(t *testing.T) {
	res := run(t, nil, "version", "--json")
	require.Equal(t, 0, res.code, res.stderr)

	var v VersionOutput
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &v))
	assert.NotEmpty(t, v.Go)
	assert.NotEmpty(t, v.OS)
}

func TestStats(t *testing.T) {
	res := run(t, nil, "--stats", "gen", "-n", "3", "food.fruit")
	require.Equal(t, 0, res.code, res.stderr)

	assert.Contains(t, res.stderr, "METRIC")
	assert.Contains(t, res.stderr, "church_dataset_loads_total")
	assert.Contains(t, res.stderr, "church_dataset_cache_hits_total")
}

func TestDebugLogging(t *testing.T) {
	res := run(t, nil, "--log-level", "debug", "--log-format", "json", "gen", "food.fruit")
	require.Equal(t, 0, res.code, res.stderr)

	assert.Contains(t, res.stderr, `"msg":"configuration loaded"`)
}
