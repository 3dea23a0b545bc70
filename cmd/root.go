package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zchutly/rights-finder/internal/matching"
	"github.com/zchutly/rights-finder/internal/validation"
)

const (
	app = "rights-finder"
)

type Config struct {
	Catalog    string            `mapstructure:"catalog"`
	Matching   *matching.Config  `mapstructure:"matching"`
	Validation *validation.Rules `mapstructure:"validation"`
	Filters    *FiltersConfig    `mapstructure:"filters"`
	Server     *ServerConfig     `mapstructure:"server"`
}

type FiltersConfig struct {
	Disabled []string `mapstructure:"disabled"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "rights-finder is a cli for matching a personal profile against a catalog of government benefits",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("catalog", "RIGHTS_CATALOG"); err != nil {
		log.Fatalf("binding RIGHTS_CATALOG environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is rights-finder.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// A missing config file is fine; defaults cover everything but the
	// catalog path. A malformed one is not.
	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}
	if config.Matching == nil {
		defaults := matching.DefaultConfig()
		config.Matching = &defaults
	}
	if config.Validation == nil {
		defaults := validation.DefaultRules()
		config.Validation = &defaults
	}

	return config, nil
}
