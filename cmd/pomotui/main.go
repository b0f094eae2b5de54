package main

import (
	"fmt"
	"os"

	"github.com/fentz26/pomotui/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pomotui",
	Short: "pomotui - a Pomodoro timer for the terminal",
	Long: `pomotui cycles through work intervals, short breaks and long breaks,
with configurable lengths and an in-memory task list.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

var (
	configPath string
	fps        int
	logFile    string
	logLevel   string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.pomotui/config.yaml)")
	rootCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "clock refreshes per second")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads --config, or the home config when the flag is unset.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadConfig(configPath)
	}
	return config.LoadConfigFromHome()
}
