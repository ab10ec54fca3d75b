package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/factoryops/adftrigger/internal/logs"
	"github.com/factoryops/adftrigger/internal/message"
	"github.com/factoryops/adftrigger/pkg/types"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	quiet   bool
	noColor bool
	debug   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "adftrigger",
	Short: "adftrigger starts and stops Azure Data Factory triggers in bulk.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logs.Configure(debug, noColor)
		message.SetQuiet(quiet)
		message.SetNoColor(noColor)
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
		os.Exit(1)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.adftrigger.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress informational messages")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".adftrigger" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".adftrigger")
	}

	viper.SetEnvPrefix("ADFTRIGGER")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func options2Flags(options []*types.Option, flags *pflag.FlagSet) {
	for _, option := range options {
		option2Flag(option, flags)
	}
}

func option2Flag(option *types.Option, flags *pflag.FlagSet) {
	switch option.Type {
	case types.String:
		flags.StringP(option.Name, option.Short, option.Value, option.Description)
	case types.Bool:
		value, _ := strconv.ParseBool(option.Value) // Convert string to bool
		flags.BoolP(option.Name, option.Short, value, option.Description)
	case types.Int:
		intValue, _ := strconv.Atoi(option.Value) // Convert string to int
		flags.IntP(option.Name, option.Short, intValue, option.Description)
	}
	// Required options are enforced by options.ValidateOptions after the
	// viper/env fallback had its chance to fill them in.
}

func getOptsFromCmd(cmd *cobra.Command, defined []*types.Option) []*types.Option {
	opts := []*types.Option{}
	for _, def := range defined {
		opt := *def
		switch opt.Type {
		case types.String:
			opt.Value, _ = cmd.Flags().GetString(opt.Name)
		case types.Bool:
			value, _ := cmd.Flags().GetBool(opt.Name)
			opt.Value = strconv.FormatBool(value)
		case types.Int:
			value, _ := cmd.Flags().GetInt(opt.Name)
			opt.Value = strconv.Itoa(value)
		}

		// Flags win; unset flags fall back to the config file or an
		// ADFTRIGGER_* environment variable.
		if !cmd.Flags().Changed(opt.Name) && viper.IsSet(opt.Name) {
			opt.Value = viper.GetString(opt.Name)
		}
		opts = append(opts, &opt)
	}
	return opts
}
