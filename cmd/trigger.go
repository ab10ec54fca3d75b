package cmd

import (
	"context"
	"os"
	"strconv"

	"github.com/factoryops/adftrigger/internal/helpers"
	"github.com/factoryops/adftrigger/internal/message"
	"github.com/factoryops/adftrigger/pkg/datafactory"
	o "github.com/factoryops/adftrigger/pkg/options"
	"github.com/factoryops/adftrigger/pkg/types"
	"github.com/spf13/cobra"
)

var triggerOptions = []*types.Option{
	&o.SubscriptionOpt,
	&o.ResourceGroupOpt,
	&o.FactoryOpt,
	&o.FilterOpt,
	&o.ContinueOnErrorOpt,
	&o.ThrottleOpt,
	&o.AuthSchemeOpt,
	&o.TenantOpt,
	&o.ClientIDOpt,
	&o.ClientSecretOpt,
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start every trigger matching the name filter",
	Run: func(cmd *cobra.Command, args []string) {
		runToggle(cmd, datafactory.StateStarted)
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop every trigger matching the name filter",
	Run: func(cmd *cobra.Command, args []string) {
		runToggle(cmd, datafactory.StateStopped)
	},
}

func init() {
	options2Flags(triggerOptions, startCmd.Flags())
	options2Flags(triggerOptions, stopCmd.Flags())
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
}

func runToggle(cmd *cobra.Command, state datafactory.TriggerState) {
	opts := getOptsFromCmd(cmd, triggerOptions)
	if err := o.ValidateOptions(opts); err != nil {
		message.Error("%v", err)
		os.Exit(1)
	}

	cred, err := helpers.NewCredential(helpers.CredentialConfig{
		Scheme:       o.GetOptionByName(o.AuthSchemeOpt.Name, opts).Value,
		TenantID:     o.GetOptionByName(o.TenantOpt.Name, opts).Value,
		ClientID:     o.GetOptionByName(o.ClientIDOpt.Name, opts).Value,
		ClientSecret: o.GetOptionByName(o.ClientSecretOpt.Name, opts).Value,
	})
	if err != nil {
		message.Error("%v", err)
		os.Exit(1)
	}

	continueOnError, _ := strconv.ParseBool(o.GetOptionByName(o.ContinueOnErrorOpt.Name, opts).Value)
	throttle, _ := strconv.Atoi(o.GetOptionByName(o.ThrottleOpt.Name, opts).Value)

	params := datafactory.Params{
		Locator: datafactory.ResourceLocator{
			SubscriptionID: o.GetOptionByName(o.SubscriptionOpt.Name, opts).Value,
			ResourceGroup:  o.GetOptionByName(o.ResourceGroupOpt.Name, opts).Value,
			FactoryName:    o.GetOptionByName(o.FactoryOpt.Name, opts).Value,
		},
		Filter:          o.GetOptionByName(o.FilterOpt.Name, opts).Value,
		DesiredState:    state,
		ContinueOnError: continueOnError,
		Throttle:        throttle,
	}

	message.Header()
	message.Section("%s triggers in %s", cmd.Use, message.Emphasize(params.Locator.FactoryName))

	outcome, err := datafactory.Run(context.Background(), cred, params)
	switch outcome {
	case datafactory.Succeeded:
		message.Success("All matching triggers are now %s", state)
	case datafactory.SucceededWithIssues:
		message.Warning("Completed with issues: some triggers could not be toggled")
		os.Exit(2)
	default:
		message.Error("%v", err)
		os.Exit(1)
	}
}
