package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"kudu/core"
	"kudu/pkg/config"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "kuduabi",
		Short: "transcode ABI documents and built-in scalars between JSON, binary, and hex",
	}
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if _, err := config.LoadFromEnv(); err != nil {
			// no config file is not fatal: defaults already cover every field.
			logrus.WithError(err).Debug("config load")
		}
		lv, err := logrus.ParseLevel(config.AppConfig.Logging.Level)
		if err != nil {
			lv = logrus.InfoLevel
		}
		logrus.SetLevel(lv)
		core.StrictSymbolDecode = config.AppConfig.Codec.StrictSymbolDecode
		return nil
	}

	rootCmd.AddCommand(abiCmd())
	rootCmd.AddCommand(scalarCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
