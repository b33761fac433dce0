package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maneuvergen/benchmark"
	"github.com/katalvlaran/maneuvergen/instance"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `logging:
  level: debug
  console: true
metrics:
  textfile: /tmp/gen.prom
benchmark:
  name: SMALL
  prefix: ""
  suffix: v2
  seeds: [7, 8]
  maneuver: {min: 2, max: 5}
  travel: {min: 3, max: 9}
  remote_rate: 0.25
  sets:
    - switches: [6, 8]
      teams: [2]
      precedence:
        - tag: S
          params: [2, 3]
        - tag: R
          params: [15]
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Console)
	assert.Equal(t, "/tmp/gen.prom", cfg.Metrics.Textfile)

	g := cfg.Benchmark
	assert.Equal(t, "SMALL", g.Name)
	assert.Empty(t, g.Prefix, "explicit empty prefix is kept")
	assert.Equal(t, "v2", g.Suffix)
	assert.Equal(t, []int64{7, 8}, g.Seeds)
	assert.Equal(t, instance.Range{Min: 2, Max: 5}, g.Maneuver)
	assert.Equal(t, instance.Range{Min: 3, Max: 9}, g.Travel)
	assert.Equal(t, 0.25, g.RemoteRate)
	require.Len(t, g.Sets, 1)
	assert.Equal(t, []int{6, 8}, g.Sets[0].Switches)
	assert.Equal(t, []benchmark.Family{{Tag: "S", Params: []int{2, 3}}, {Tag: "R", Params: []int{15}}}, g.Sets[0].Precedence)

	jobs, err := g.Jobs()
	require.NoError(t, err)
	assert.Len(t, jobs, 2*1*3*2)
	assert.Equal(t, "006-02-S-02-01-v2", jobs[0].Name)
}

func TestLoad_JSONDefaults(t *testing.T) {
	path := writeFile(t, "config.json", `{"benchmark": {"seeds": [1]}}`)
	cfg, err := Load(path)
	require.NoError(t, err)

	d := benchmark.DefaultGroup()
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, d.Name, cfg.Benchmark.Name)
	assert.Equal(t, d.Prefix, cfg.Benchmark.Prefix)
	assert.Equal(t, d.RemoteRate, cfg.Benchmark.RemoteRate)
	assert.Equal(t, d.Sets, cfg.Benchmark.Sets)
	assert.Equal(t, []int64{1}, cfg.Benchmark.Seeds)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeFile(t, "config.yaml", "logging:\n  level: info\n")
	t.Setenv("MG_LOGGING__LEVEL", "warn")
	t.Setenv("MG_BENCHMARK__PREFIX", "ENV")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "ENV", cfg.Benchmark.Prefix)
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("MG_METRICS__TEXTFILE", "out.prom")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "out.prom", cfg.Metrics.Textfile)
	assert.Equal(t, benchmark.DefaultGroup(), cfg.Benchmark)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(writeFile(t, "config.toml", "x = 1"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bad.yaml", "logging:\n  level: loud\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "tag.yaml", `benchmark:
  sets:
    - switches: [4]
      teams: [1]
      precedence:
        - tag: Z
          params: [1]
`))
	assert.ErrorIs(t, err, benchmark.ErrInvalidGroup)
}
