package datafactory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// ToggleJob is one trigger to move to the desired state.
type ToggleJob struct {
	TriggerName  string
	DesiredState TriggerState
}

// ToggleResult is the outcome of a single toggle call.
type ToggleResult struct {
	Job ToggleJob
	Err error
}

// ToggleError wraps a failed toggle call. Both non-200 responses and
// transport errors surface through the same wrapper, carrying the
// underlying message.
type ToggleError struct {
	Trigger string
	State   TriggerState
	Err     error
}

func (e *ToggleError) Error() string {
	return fmt.Sprintf("failed to move trigger %s to state %s: %v", e.Trigger, e.State, e.Err)
}

func (e *ToggleError) Unwrap() error {
	return e.Err
}

// ToggleAll runs one toggle call per job with at most throttle calls in
// flight, and returns the collected per-job results. When
// continueOnError is false the first failure stops new jobs from
// starting (in-flight calls finish) and is returned as the run error;
// otherwise failures are logged as warnings and only reflected in the
// results.
func (c *Client) ToggleAll(ctx context.Context, jobs []ToggleJob, throttle int, continueOnError bool) ([]ToggleResult, error) {
	if len(jobs) == 0 {
		return nil, nil
	}
	if throttle < 1 {
		throttle = 1
	}
	if throttle > len(jobs) {
		throttle = len(jobs)
	}

	// gate only stops new jobs from being dispatched; the calls
	// themselves run on the caller's context so in-flight work is
	// allowed to finish.
	gate, cancel := context.WithCancel(context.Background())
	defer cancel()

	jobCh := make(chan ToggleJob)
	resultCh := make(chan ToggleResult)

	go func() {
		defer close(jobCh)
		for _, job := range jobs {
			select {
			case jobCh <- job:
			case <-gate.Done():
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < throttle; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobCh {
				if gate.Err() != nil {
					return
				}
				err := c.toggle(ctx, job)
				if err != nil && !continueOnError {
					cancel()
				}
				resultCh <- ToggleResult{Job: job, Err: err}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	results := make([]ToggleResult, 0, len(jobs))
	for result := range resultCh {
		if result.Err != nil {
			c.logger.Warn("Trigger toggle failed",
				slog.String("trigger", result.Job.TriggerName),
				slog.String("state", string(result.Job.DesiredState)),
				slog.String("error", result.Err.Error()))
		} else {
			c.logger.Info("Trigger toggled",
				slog.String("trigger", result.Job.TriggerName),
				slog.String("state", string(result.Job.DesiredState)))
		}
		results = append(results, result)
	}

	if !continueOnError {
		for _, result := range results {
			if result.Err != nil {
				return results, result.Err
			}
		}
	}
	return results, nil
}

// FailedCount reduces collected results to the number of failures.
func FailedCount(results []ToggleResult) int {
	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
		}
	}
	return failed
}

func (c *Client) toggle(ctx context.Context, job ToggleJob) error {
	var err error
	switch job.DesiredState {
	case StateStarted:
		poller, startErr := c.triggers.BeginStart(ctx, c.locator.ResourceGroup, c.locator.FactoryName, job.TriggerName, nil)
		err = startErr
		if err == nil {
			_, err = poller.PollUntilDone(ctx, nil)
		}
	case StateStopped:
		poller, stopErr := c.triggers.BeginStop(ctx, c.locator.ResourceGroup, c.locator.FactoryName, job.TriggerName, nil)
		err = stopErr
		if err == nil {
			_, err = poller.PollUntilDone(ctx, nil)
		}
	default:
		err = fmt.Errorf("unknown desired state %q", job.DesiredState)
	}

	if err != nil {
		return &ToggleError{Trigger: job.TriggerName, State: job.DesiredState, Err: err}
	}
	return nil
}
