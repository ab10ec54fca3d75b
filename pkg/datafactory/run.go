package datafactory

import (
	"context"
	"log/slog"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/factoryops/adftrigger/internal/helpers"
	"github.com/factoryops/adftrigger/internal/logs"
	"github.com/google/uuid"
)

// Outcome is the externally observable result of a run.
type Outcome int

const (
	Succeeded Outcome = iota
	SucceededWithIssues
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Succeeded:
		return "succeeded"
	case SucceededWithIssues:
		return "succeeded with issues"
	default:
		return "failed"
	}
}

// Params configures a single toggle run.
type Params struct {
	Locator         ResourceLocator
	Filter          string
	DesiredState    TriggerState
	ContinueOnError bool
	Throttle        int

	// ClientOptions overrides the ARM client options, letting tests
	// swap the transport.
	ClientOptions *arm.ClientOptions
}

// Run executes the whole flow: check the factory exists, list and
// filter its triggers, and toggle every match to the desired state.
// Toggles already applied are never rolled back.
func Run(ctx context.Context, cred azcore.TokenCredential, params Params) (Outcome, error) {
	logger := logs.ConsoleLogger().With(
		slog.String("run_id", uuid.NewString()),
		slog.String("factory", params.Locator.FactoryName))

	if sub, err := helpers.GetSubscriptionDetails(ctx, cred, params.Locator.SubscriptionID, params.ClientOptions); err != nil {
		logger.Debug("Could not resolve subscription details", slog.String("error", err.Error()))
	} else {
		logger.Info("Using subscription " + helpers.SubscriptionLabel(sub))
	}

	client, err := NewClient(cred, params.Locator, params.ClientOptions)
	if err != nil {
		return Failed, err
	}

	if err := client.CheckFactory(ctx); err != nil {
		return Failed, err
	}

	names, err := client.ListTriggers(ctx)
	if err != nil {
		return Failed, err
	}

	jobs, err := BuildJobs(names, params.Filter, params.DesiredState)
	if err != nil {
		return Failed, err
	}
	if len(jobs) == 0 {
		logger.Warn("No triggers matched the filter", slog.String("filter", params.Filter))
		return Succeeded, nil
	}
	logger.Info("Toggling triggers",
		slog.Int("matched", len(jobs)),
		slog.Int("listed", len(names)),
		slog.String("state", string(params.DesiredState)))

	results, err := client.ToggleAll(ctx, jobs, params.Throttle, params.ContinueOnError)
	if err != nil {
		return Failed, err
	}

	if failed := FailedCount(results); failed > 0 {
		logger.Warn("Some triggers could not be toggled",
			slog.Int("failed", failed),
			slog.Int("total", len(jobs)))
		return SucceededWithIssues, nil
	}
	return Succeeded, nil
}
