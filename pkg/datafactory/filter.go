package datafactory

import (
	"fmt"

	"github.com/gobwas/glob"
)

// TriggerState is the desired activation state for a trigger.
type TriggerState string

const (
	StateStarted TriggerState = "Started"
	StateStopped TriggerState = "Stopped"
)

// MatchTriggerName reports whether name matches the wildcard pattern.
// `*` matches any run of characters, `?` a single character; a pattern
// without wildcards is an exact match. Matching is case-sensitive.
func MatchTriggerName(name, pattern string) (bool, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return false, fmt.Errorf("invalid trigger filter %q: %w", pattern, err)
	}
	return g.Match(name), nil
}

// FilterTriggerNames selects the names matching pattern, preserving
// the order and multiplicity of the input.
func FilterTriggerNames(names []string, pattern string) ([]string, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid trigger filter %q: %w", pattern, err)
	}

	var matched []string
	for _, name := range names {
		if g.Match(name) {
			matched = append(matched, name)
		}
	}
	return matched, nil
}

// BuildJobs derives one toggle job per matching trigger name, tagged
// with the run's single desired state. A name listed more than once
// yields only one job.
func BuildJobs(names []string, pattern string, state TriggerState) ([]ToggleJob, error) {
	matched, err := FilterTriggerNames(names, pattern)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(matched))
	jobs := make([]ToggleJob, 0, len(matched))
	for _, name := range matched {
		if seen[name] {
			continue
		}
		seen[name] = true
		jobs = append(jobs, ToggleJob{TriggerName: name, DesiredState: state})
	}
	return jobs, nil
}
