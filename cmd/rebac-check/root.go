// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"strings"

	"github.com/kopexa-grc/rebac/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "rebac-check",
	Short: "Run ad-hoc relationship-based access checks against a fixture",
	Long: `rebac-check loads a JSON or YAML fixture (relation configs, condition
definitions, and tuples) into an in-memory store and runs checks against
it, for exercising an authorization model without standing up a database.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.Set(viper.GetString("log_level"))
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.rebac-check.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (error, warn, info, debug, trace)")
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(listObjectsCmd)

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".rebac-check")
		viper.AddConfigPath("$HOME")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("REBAC_CHECK")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}
