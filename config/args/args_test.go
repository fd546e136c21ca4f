package args

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTrainFlags(t *testing.T, arguments ...string) *pflag.FlagSet {
	t.Helper()

	fs := pflag.NewFlagSet("train", pflag.ContinueOnError)
	fs.Int("env.device", -1, "the ID of a GPU to use")
	fs.Float64("lr", 0.01, "learning rate")
	fs.Bool("debug", false, "debug mode")
	fs.String("run.name", "", "run name")
	fs.Duration("timeout", time.Minute, "timeout")
	fs.StringSlice("tags", nil, "tags")

	require.NoError(t, fs.Parse(arguments))

	return fs
}

func TestFromFlagSet_UnsetFlagsAreNil(t *testing.T) {
	t.Parallel()

	result := FromFlagSet(newTrainFlags(t))

	assert.Equal(t, map[string]any{
		"env.device": nil,
		"lr":         nil,
		"debug":      nil,
		"run.name":   nil,
		"timeout":    nil,
		"tags":       nil,
	}, result)
}

func TestFromFlagSet_ChangedFlags(t *testing.T) {
	t.Parallel()

	fs := newTrainFlags(t,
		"--env.device=0",
		"--lr=0.5",
		"--debug",
		"--run.name=baseline",
		"--timeout=90s",
		"--tags=a,b",
	)

	result := FromFlagSet(fs)

	assert.Equal(t, 0, result["env.device"])
	assert.InDelta(t, 0.5, result["lr"], 0.00001)
	assert.Equal(t, true, result["debug"])
	assert.Equal(t, "baseline", result["run.name"])
	assert.Equal(t, 90*time.Second, result["timeout"])
	assert.Equal(t, []string{"a", "b"}, result["tags"])
}

func TestFromFlagSet_WithDefaults(t *testing.T) {
	t.Parallel()

	result := FromFlagSet(newTrainFlags(t, "--lr=0.1"), WithDefaults())

	assert.Equal(t, -1, result["env.device"])
	assert.InDelta(t, 0.1, result["lr"], 0.00001)
	assert.Equal(t, false, result["debug"])
}

func TestFromFlagSet_WithSkip(t *testing.T) {
	t.Parallel()

	result := FromFlagSet(newTrainFlags(t, "--debug"), WithSkip("debug", "timeout"))

	assert.NotContains(t, result, "debug")
	assert.NotContains(t, result, "timeout")
	assert.Contains(t, result, "lr")
}

type customValue struct {
	value string
}

func (c *customValue) String() string { return c.value }

func (c *customValue) Set(v string) error {
	c.value = v

	return nil
}

func (c *customValue) Type() string { return "custom" }

func TestFromFlagSet_UnknownTypeUsesString(t *testing.T) {
	t.Parallel()

	fs := pflag.NewFlagSet("train", pflag.ContinueOnError)
	fs.Var(&customValue{}, "mode", "mode")

	require.NoError(t, fs.Parse([]string{"--mode=fast"}))

	assert.Equal(t, map[string]any{"mode": "fast"}, FromFlagSet(fs))
}

func TestParseAssignments(t *testing.T) {
	t.Parallel()

	result, err := ParseAssignments([]string{
		"env.device=0",
		"lr=0.5",
		"run.name=baseline",
		"debug=true",
		"seed=",
		"env.device=1",
		" spaced =x",
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"env.device": uint64(1),
		"lr":         0.5,
		"run.name":   "baseline",
		"debug":      true,
		"seed":       nil,
		"spaced":     "x",
	}, result)
}

func TestParseAssignments_Invalid(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		assignment string
	}{
		{name: "missing equals", assignment: "env.device"},
		{name: "empty key", assignment: "=1"},
		{name: "blank key", assignment: "  =1"},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			result, err := ParseAssignments([]string{testCase.assignment})

			require.ErrorIs(t, err, ErrInvalidAssignment)
			assert.Nil(t, result)
		})
	}
}
