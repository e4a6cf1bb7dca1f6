// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the issuefeed CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the issuefeed CLI.
var rootCmd = &cobra.Command{
	Use:   "issuefeed",
	Short: "RSS feed generator for the Scientific American latest issue",
	Long: `issuefeed scrapes the Scientific American latest-issue page through a
FlareSolverr instance, extracts the embedded article data, and writes the
result as an RSS 2.0 feed.

The normal entry point is "issuefeed run", which performs the whole
pipeline. The fetch, extract, and render subcommands expose the individual
stages for debugging: fetch saves the raw page HTML, extract turns saved
HTML into a normalized article snapshot, and render turns a snapshot into
the feed document.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./issuefeed.yaml or ~/.config/issuefeed/config.yaml)")
}

func initConfig() {
	// A local .env may carry FLARESOLVERR_URL; load it before viper
	// reads the environment.
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("issuefeed")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "issuefeed"))
		}
	}

	viper.SetEnvPrefix("ISSUEFEED")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.BindEnv("fetch.solver_url", "FLARESOLVERR_URL")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
