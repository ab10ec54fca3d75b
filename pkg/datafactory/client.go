package datafactory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/datafactory/armdatafactory/v9"
	"github.com/factoryops/adftrigger/internal/logs"
)

// ErrFactoryNotFound indicates the existence check got a 404 back.
var ErrFactoryNotFound = errors.New("data factory not found")

// ResourceLocator identifies the target data factory. Immutable after
// construction and shared read-only across concurrent trigger calls.
type ResourceLocator struct {
	SubscriptionID string
	ResourceGroup  string
	FactoryName    string
}

// Client wraps the factory and trigger clients for one locator.
type Client struct {
	locator   ResourceLocator
	factories *armdatafactory.FactoriesClient
	triggers  *armdatafactory.TriggersClient
	logger    *slog.Logger
}

// NewClient creates a Data Factory client for the given locator.
func NewClient(cred azcore.TokenCredential, locator ResourceLocator, options *arm.ClientOptions) (*Client, error) {
	opts := arm.ClientOptions{}
	if options != nil {
		opts = *options
	}
	// A failed call is skipped or fatal, never retried.
	opts.Retry.MaxRetries = -1

	factories, err := armdatafactory.NewFactoriesClient(locator.SubscriptionID, cred, &opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create factories client: %w", err)
	}

	triggers, err := armdatafactory.NewTriggersClient(locator.SubscriptionID, cred, &opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create triggers client: %w", err)
	}

	return &Client{
		locator:   locator,
		factories: factories,
		triggers:  triggers,
		logger:    logs.ConsoleLogger(),
	}, nil
}

// CheckFactory verifies the target data factory exists. Any outcome
// other than a 200 is fatal; listing and toggling must not run against
// a missing or inaccessible factory.
func (c *Client) CheckFactory(ctx context.Context) error {
	resp, err := c.factories.Get(ctx, c.locator.ResourceGroup, c.locator.FactoryName, nil)
	if err != nil {
		var respErr *azcore.ResponseError
		if errors.As(err, &respErr) && respErr.StatusCode == 404 {
			return fmt.Errorf("%w: %s in resource group %s", ErrFactoryNotFound, c.locator.FactoryName, c.locator.ResourceGroup)
		}
		return fmt.Errorf("failed to get data factory %s: %w", c.locator.FactoryName, err)
	}

	location := "unknown"
	if resp.Location != nil {
		location = *resp.Location
	}
	c.logger.Debug("Found data factory",
		slog.String("factory", c.locator.FactoryName),
		slog.String("location", location))
	return nil
}

// ListTriggers returns the names of every trigger in the factory,
// following pagination until the continuation link is exhausted.
func (c *Client) ListTriggers(ctx context.Context) ([]string, error) {
	var names []string
	pager := c.triggers.NewListByFactoryPager(c.locator.ResourceGroup, c.locator.FactoryName, nil)

	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list triggers for %s: %w", c.locator.FactoryName, err)
		}

		for _, trigger := range page.Value {
			if trigger.Name == nil {
				continue
			}
			names = append(names, *trigger.Name)
		}
	}

	c.logger.Debug("Listed triggers",
		slog.String("factory", c.locator.FactoryName),
		slog.Int("count", len(names)))
	return names, nil
}
