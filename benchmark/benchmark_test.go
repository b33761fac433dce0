package benchmark_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maneuvergen/benchmark"
	"github.com/katalvlaran/maneuvergen/instance"
	"github.com/katalvlaran/maneuvergen/metrics"
	"github.com/katalvlaran/maneuvergen/precedence"
)

func smallGroup() benchmark.Group {
	g := benchmark.DefaultGroup()
	g.Name = "TEST"
	g.Seeds = []int64{1, 3}
	g.Sets = []benchmark.Set{{
		Switches: []int{6},
		Teams:    []int{2},
		Precedence: []benchmark.Family{
			{Tag: benchmark.TagSequential, Params: []int{2}},
			{Tag: benchmark.TagRandom, Params: []int{10}},
		},
	}}
	return g
}

func TestInstanceName(t *testing.T) {
	assert.Equal(t, "ORCS-006-02-S-02-01", benchmark.InstanceName("ORCS", "", 6, 2, "S", 2, 0))
	assert.Equal(t, "125-20-R-20-03-x", benchmark.InstanceName("", "x", 125, 20, "R", 20, 2))
	assert.Equal(t, "P-1000-100-T-05-10", benchmark.InstanceName("P", "", 1000, 100, "T", 5, 9))
}

func TestSpecForTag(t *testing.T) {
	spec, err := benchmark.SpecForTag("R", 20)
	require.NoError(t, err)
	require.NotNil(t, spec.Density)
	assert.Equal(t, precedence.KindRandom, spec.Kind)
	assert.InDelta(t, 0.2, *spec.Density, 1e-15)

	for tag, kind := range map[string]precedence.Kind{
		"S": precedence.KindSequential, "T": precedence.KindIntree,
		"I": precedence.KindIndependent, "M": precedence.KindMixed, "t": precedence.KindIntree,
	} {
		spec, err = benchmark.SpecForTag(tag, 3)
		require.NoError(t, err)
		assert.Equal(t, kind, spec.Kind)
		require.NotNil(t, spec.Stages)
		assert.Equal(t, 3, *spec.Stages)
	}

	_, err = benchmark.SpecForTag("Q", 1)
	assert.ErrorIs(t, err, benchmark.ErrUnknownTag)
}

func TestDefaultGroup_Jobs(t *testing.T) {
	jobs, err := benchmark.DefaultGroup().Jobs()
	require.NoError(t, err)
	require.Len(t, jobs, 576)

	assert.Equal(t, "ORCS-006-02-S-02-01", jobs[0].Name)
	assert.Equal(t, "ORCS-006-02-S-02-02", jobs[1].Name)
	assert.Equal(t, int64(3), jobs[1].Config.Seed)
	assert.Equal(t, "ORCS-125-20-R-20-03", jobs[len(jobs)-1].Name)

	names := make(map[string]bool, len(jobs))
	for _, j := range jobs {
		assert.False(t, names[j.Name], "duplicate name %s", j.Name)
		names[j.Name] = true
		assert.True(t, j.Config.Triangular)
		assert.True(t, j.Config.IntegerOnly)
		assert.Equal(t, instance.Range{Min: 1, Max: 4}, j.Config.Maneuver)
		assert.Equal(t, instance.Range{Min: 7, Max: 14}, j.Config.Travel)
	}
}

func TestGroup_JobsErrors(t *testing.T) {
	t.Parallel()

	cases := map[string]func(*benchmark.Group){
		"no seeds":      func(g *benchmark.Group) { g.Seeds = nil },
		"no sets":       func(g *benchmark.Group) { g.Sets = nil },
		"empty set":     func(g *benchmark.Group) { g.Sets[0].Teams = nil },
		"bad tag":       func(g *benchmark.Group) { g.Sets[0].Precedence[0].Tag = "X" },
		"stages > n":    func(g *benchmark.Group) { g.Sets[0].Precedence[0].Params = []int{7} },
		"density > 100": func(g *benchmark.Group) { g.Sets[0].Precedence[1].Params = []int{150} },
	}
	for name, mutate := range cases {
		mutate := mutate
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			g := smallGroup()
			mutate(&g)
			_, err := g.Jobs()
			assert.ErrorIs(t, err, benchmark.ErrInvalidGroup)
		})
	}
}

func TestGroup_SetDefaults(t *testing.T) {
	g := benchmark.Group{Prefix: ""}
	g.SetDefaults()
	d := benchmark.DefaultGroup()
	assert.Equal(t, d.Name, g.Name)
	assert.Equal(t, d.Seeds, g.Seeds)
	assert.Equal(t, d.Sets, g.Sets)
	assert.Empty(t, g.Prefix)
	assert.Zero(t, g.RemoteRate)
}

func TestRunner_Run(t *testing.T) {
	dir := t.TempDir()
	rec, err := metrics.NewRecorder(nil)
	require.NoError(t, err)

	r := benchmark.NewRunner(benchmark.WithDOT(true), benchmark.WithRecorder(rec), benchmark.WithWorkers(2))
	sum, err := r.Run(context.Background(), smallGroup(), dir)
	require.NoError(t, err)

	require.Len(t, sum.Files, 4)
	assert.Equal(t, filepath.Join(dir, "files", "ORCS-006-02-S-02-01.txt"), sum.Files[0])
	assert.Equal(t, []string{"R", "S"}, sum.Tags())
	assert.Equal(t, 2, sum.ByTag["S"].Count)
	assert.GreaterOrEqual(t, sum.ByTag["R"].Min, 0.1)
	assert.LessOrEqual(t, sum.ByTag["R"].Min, sum.ByTag["R"].Mean)
	assert.LessOrEqual(t, sum.ByTag["R"].Mean, sum.ByTag["R"].Max)

	for _, path := range sum.Files {
		in, err := instance.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, 6, in.N())
		assert.Equal(t, 2, in.M())
		require.NoError(t, in.Validate(1e-9))
		require.NoError(t, in.CheckTriangular(0))

		base := filepath.Base(path)
		dot := filepath.Join(dir, "figures", base[:len(base)-len(".txt")]+".dot")
		_, err = os.Stat(dot)
		assert.NoError(t, err)
	}

	series, err := testutil.GatherAndCount(rec.Registry(), "maneuvergen_instances_total")
	require.NoError(t, err)
	assert.Equal(t, 2, series, "one series per precedence kind")
}

func TestRunner_Deterministic(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()
	r := benchmark.NewRunner()
	_, err := r.Run(context.Background(), smallGroup(), a)
	require.NoError(t, err)
	_, err = r.Run(context.Background(), smallGroup(), b)
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Join(a, "files"))
	require.NoError(t, err)
	require.Len(t, entries, 4)
	for _, e := range entries {
		x, err := os.ReadFile(filepath.Join(a, "files", e.Name()))
		require.NoError(t, err)
		y, err := os.ReadFile(filepath.Join(b, "files", e.Name()))
		require.NoError(t, err)
		assert.Equal(t, string(x), string(y), e.Name())
	}
	_, err = os.Stat(filepath.Join(a, "figures"))
	assert.True(t, os.IsNotExist(err), "figures only with WithDOT")
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sum, err := benchmark.NewRunner().Run(ctx, smallGroup(), t.TempDir())
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, sum)
	assert.Empty(t, sum.Files)
}

func TestRunner_InvalidGroupWritesNothing(t *testing.T) {
	dir := t.TempDir()
	g := smallGroup()
	g.Sets[0].Precedence[0].Params = []int{99}
	_, err := benchmark.NewRunner().Run(context.Background(), g, dir)
	assert.ErrorIs(t, err, benchmark.ErrInvalidGroup)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
