package cmd

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/oahshtsua/lab/bst/internal/config"
)

const dotenvFile = ".env.local"

var userConfig = config.Default()

var RootCmd = &cobra.Command{
	Use:   "bst",
	Short: "binary search tree playground",
	Long:  "build, query and edit an integer binary search tree",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()

		if configFile := viper.GetString("config"); configFile != "" {
			var err error
			if cfg, err = config.LoadConfig(configFile); err != nil {
				return err
			}
		}

		if err := cfg.Merge(viper.GetViper()); err != nil {
			return errors.Wrap(err, "invalid configuration")
		}

		if cfg.Debug {
			log.SetLevel(log.DebugLevel)
		}

		log.WithFields(log.Fields{
			"journal": cfg.Journal,
			"style":   cfg.Style,
		}).Debug("configuration loaded")

		userConfig = cfg
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "debug flag")
	RootCmd.PersistentFlags().String("config", "", "config file")
	RootCmd.PersistentFlags().String("journal", "", "JSON lines file recording tree operations")
	RootCmd.PersistentFlags().String("style", "ascii", "tree rendering style: ascii, rounded or list")
	RootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
}

func Execute() {
	if _, err := os.Stat(dotenvFile); err == nil {
		if err := godotenv.Load(dotenvFile); err != nil {
			log.WithError(err).Error("error loading dotenv file")
			return
		}
	}

	viper.SetEnvPrefix("bst")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Enable environment variable binding, the env vars are not overloaded yet.
	viper.AutomaticEnv()

	if err := viper.BindPFlags(RootCmd.PersistentFlags()); err != nil {
		log.WithError(err).Errorf("failed to bind persistent flags. please check the flag settings.")
	}

	log.SetFormatter(&prefixed.TextFormatter{})

	if err := RootCmd.Execute(); err != nil {
		log.WithError(err).Fatalf("cannot execute command")
	}
}
