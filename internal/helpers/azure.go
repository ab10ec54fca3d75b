package helpers

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
)

// Credential schemes accepted by NewCredential.
const (
	AuthSchemeDefault          = "default"
	AuthSchemeServicePrincipal = "spn"
	AuthSchemeManagedIdentity  = "msi"
)

// CredentialConfig selects how the run authenticates against ARM.
type CredentialConfig struct {
	Scheme       string
	TenantID     string
	ClientID     string
	ClientSecret string
}

// NewCredential builds a token credential for the requested scheme.
// Credential acquisition errors are fatal to the run and never retried.
func NewCredential(cfg CredentialConfig) (azcore.TokenCredential, error) {
	switch cfg.Scheme {
	case AuthSchemeServicePrincipal:
		if cfg.TenantID == "" || cfg.ClientID == "" || cfg.ClientSecret == "" {
			return nil, fmt.Errorf("service principal authentication requires tenant, client-id and client-secret")
		}
		cred, err := azidentity.NewClientSecretCredential(cfg.TenantID, cfg.ClientID, cfg.ClientSecret, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to get service principal credentials: %w", err)
		}
		return cred, nil

	case AuthSchemeManagedIdentity:
		opts := &azidentity.ManagedIdentityCredentialOptions{}
		if cfg.ClientID != "" {
			// User-assigned identity
			opts.ID = azidentity.ClientID(cfg.ClientID)
		}
		cred, err := azidentity.NewManagedIdentityCredential(opts)
		if err != nil {
			return nil, fmt.Errorf("failed to get managed identity credentials: %w", err)
		}
		return cred, nil

	case AuthSchemeDefault, "":
		cred, err := azidentity.NewDefaultAzureCredential(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to get Azure credentials: %w", err)
		}
		return cred, nil

	default:
		return nil, fmt.Errorf("unknown credential scheme %q", cfg.Scheme)
	}
}

// GetSubscriptionDetails gets details about an Azure subscription
func GetSubscriptionDetails(ctx context.Context, cred azcore.TokenCredential, subscriptionID string, options *arm.ClientOptions) (*armsubscriptions.ClientGetResponse, error) {
	subsClient, err := armsubscriptions.NewClient(cred, options)
	if err != nil {
		return nil, fmt.Errorf("failed to create subscriptions client: %w", err)
	}

	sub, err := subsClient.Get(ctx, subscriptionID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription details: %w", err)
	}

	return &sub, nil
}

// SubscriptionLabel renders a subscription response as "name (id)" for logs.
func SubscriptionLabel(sub *armsubscriptions.ClientGetResponse) string {
	name := "Unknown"
	if sub.DisplayName != nil {
		name = *sub.DisplayName
	}
	id := "Unknown"
	if sub.SubscriptionID != nil {
		id = *sub.SubscriptionID
	}
	return fmt.Sprintf("%s (%s)", name, id)
}
