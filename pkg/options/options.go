package options

import (
	"regexp"

	"github.com/factoryops/adftrigger/internal/helpers"
	"github.com/factoryops/adftrigger/pkg/types"
)

var SubscriptionOpt = types.Option{
	Name:        "subscription",
	Short:       "s",
	Description: "Azure subscription ID",
	Required:    true,
	Type:        types.String,
	Value:       "",
	ValueFormat: regexp.MustCompile("^[0-9A-Fa-f]{8}-([0-9A-Fa-f]{4}-){3}[0-9A-Fa-f]{12}$"),
}

var ResourceGroupOpt = types.Option{
	Name:        "resource-group",
	Short:       "g",
	Description: "Resource group containing the data factory",
	Required:    true,
	Type:        types.String,
	Value:       "",
}

var FactoryOpt = types.Option{
	Name:        "factory",
	Description: "Name of the data factory",
	Required:    true,
	Type:        types.String,
	Value:       "",
}

var FilterOpt = types.Option{
	Name:        "filter",
	Short:       "f",
	Description: "Trigger name filter; supports * and ? wildcards",
	Required:    false,
	Type:        types.String,
	Value:       "*",
}

var ContinueOnErrorOpt = types.Option{
	Name:        "continue-on-error",
	Description: "Keep toggling remaining triggers when one fails",
	Required:    false,
	Type:        types.Bool,
	Value:       "false",
}

var ThrottleOpt = types.Option{
	Name:        "throttle",
	Short:       "t",
	Description: "Maximum number of concurrent trigger calls",
	Required:    false,
	Type:        types.Int,
	Value:       "5", // Default to 5 concurrent calls
}

var AuthSchemeOpt = types.Option{
	Name:        "auth",
	Description: "Credential scheme to authenticate with",
	Required:    false,
	Type:        types.String,
	Value:       helpers.AuthSchemeDefault,
	ValueList: []string{
		helpers.AuthSchemeDefault,
		helpers.AuthSchemeServicePrincipal,
		helpers.AuthSchemeManagedIdentity,
	},
}

var TenantOpt = types.Option{
	Name:        "tenant",
	Description: "Tenant ID for service principal authentication",
	Required:    false,
	Type:        types.String,
	Value:       "",
}

var ClientIDOpt = types.Option{
	Name:        "client-id",
	Description: "Client ID for service principal or user-assigned managed identity",
	Required:    false,
	Type:        types.String,
	Value:       "",
}

var ClientSecretOpt = types.Option{
	Name:        "client-secret",
	Description: "Client secret for service principal authentication",
	Required:    false,
	Type:        types.String,
	Value:       "",
	Sensitive:   true,
}
