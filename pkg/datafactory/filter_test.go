package datafactory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchTriggerName(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    bool
	}{
		{"anything", "*", true},
		{"", "*", true},
		{"exact-name", "exact-name", true},
		{"exact-name", "exact", false},
		{"exact-name", "name", false},
		{"abcX", "abc?", true},
		{"abc", "abc?", false},
		{"abcXY", "abc?", false},
		{"t-nightly-load", "t-*", true},
		{"x-nightly-load", "t-*", false},
		{"Trigger", "trigger", false}, // case-sensitive
		{"t-a-b", "t-*-b", true},
	}
	for _, tt := range tests {
		got, err := MatchTriggerName(tt.name, tt.pattern)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "match(%q, %q)", tt.name, tt.pattern)
	}
}

func TestMatchTriggerNameSelfMatch(t *testing.T) {
	for _, name := range []string{"t-a", "nightly_load", "Trigger.7"} {
		got, err := MatchTriggerName(name, name)
		require.NoError(t, err)
		assert.True(t, got, "match(%q, %q)", name, name)
	}
}

func TestFilterTriggerNamesPreservesOrderAndDuplicates(t *testing.T) {
	names := []string{"t-b", "x-c", "t-a", "t-b", "t-a"}

	matched, err := FilterTriggerNames(names, "t-*")
	require.NoError(t, err)
	assert.Equal(t, []string{"t-b", "t-a", "t-b", "t-a"}, matched)
}

func TestFilterTriggerNamesInvalidPattern(t *testing.T) {
	_, err := FilterTriggerNames([]string{"t-a"}, "t-[")
	assert.Error(t, err)
}

func TestBuildJobsDeduplicatesAndTagsState(t *testing.T) {
	names := []string{"t-a", "t-b", "x-c", "t-a"}

	jobs, err := BuildJobs(names, "t-*", StateStarted)
	require.NoError(t, err)
	assert.Equal(t, []ToggleJob{
		{TriggerName: "t-a", DesiredState: StateStarted},
		{TriggerName: "t-b", DesiredState: StateStarted},
	}, jobs)
}

func TestBuildJobsNoMatches(t *testing.T) {
	jobs, err := BuildJobs([]string{"x-c"}, "t-*", StateStopped)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}
