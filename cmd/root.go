package cmd

import (
	"fmt"
	"os"

	"github.com/airplusnepal/site/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile  string
	settings config.Settings
	logger   = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "airplus",
	Short: "AirPlus Nepal - trekking and tour site",
	Long:  `Serves the AirPlus Nepal site from the content under information/ and pages/, or exports it as static files.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		settings, err = config.LoadSettings(cfgFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("dev") {
			settings.Dev, _ = cmd.Flags().GetBool("dev")
		}
		if dir, _ := cmd.Flags().GetString("site-dir"); dir != "" {
			settings.SiteDir = dir
		}

		logger, err = NewLogger(settings.Dev)
		if err != nil {
			return err
		}
		zap.ReplaceGlobals(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./config.yaml)")
	rootCmd.PersistentFlags().String("site-dir", "", "directory holding manifest.yaml, templates and content")
	rootCmd.PersistentFlags().Bool("dev", false, "human readable debug logging")
}
