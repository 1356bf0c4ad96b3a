// Package cmd is for command line interactions with the read utilities
package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "vsearch",
	Short: `Process collections of sequencing reads with per-base qualities.
Subsample reads by abundance, inspect quality encodings, join read pairs`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// settings defaults, overridable via a settings file or env vars
func init() {
	viper.SetDefault("fasta-width", 0)
	viper.SetDefault("fastq-tail", 4)
	viper.SetDefault("join-padgap", "NNNNNNNN")
	viper.SetDefault("join-padgapq", "IIIIIIII")
	viper.AutomaticEnv()
}
