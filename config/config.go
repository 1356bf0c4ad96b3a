// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config is the root-level settings struct: defaults set in /cmd and
// optionally overridden by a settings file or environment variables
type Config struct {
	// characters per FASTA sequence line, 0 for unwrapped output
	FastaWidth int `mapstructure:"fasta-width"`

	// minimum quality tail length counted by the chars command
	FastqTail int `mapstructure:"fastq-tail"`

	// sequence inserted between joined read pairs
	JoinPadGap string `mapstructure:"join-padgap"`

	// quality string covering the pad, same length as join-padgap
	JoinPadGapQ string `mapstructure:"join-padgapq"`
}

// New returns a Config populated from Viper settings
func New() *Config {
	c := &Config{}

	if err := viper.Unmarshal(c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	return c
}
