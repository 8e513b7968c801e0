package cmd

import (
	"learnpath_backend/internal/config"
	"learnpath_backend/pkg/logger"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "learnpath",
	Short: "Learning path assessment backend",
	Long:  "learnpath serves course ratings, saved assessment answers, answer review and job recommendations.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "configs", "Directory holding config.yaml")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(recommendCmd)
}

func configDir(cmd *cobra.Command) string {
	dir, _ := cmd.Flags().GetString("config")
	if dir == "" {
		return "configs"
	}
	return dir
}

// loadConfig reads the configuration and starts the global logger.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(configDir(cmd))
	if err != nil {
		return nil, err
	}
	logger.InitLogger(cfg)
	return cfg, nil
}
