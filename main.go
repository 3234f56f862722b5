package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configFile string
	rootCmd    = &cobra.Command{
		Use:   "slashgrid",
		Short: "Axis label sets and gridline layout for charts",
		Long: `slashgrid computes evenly spaced, duplicate free axis labels for a numeric
range, formats them with thousands and decimal separators, and lays out
gridlines and ticks for a chart.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (yaml, toml or json)")
	rootCmd.AddCommand(labelsCmd, renderCmd, watchCmd)
}

// setupLogging routes logrus to debug.log when DEBUG is set. The returned
// func closes the log file.
func setupLogging() (func(), error) {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if len(os.Getenv("DEBUG")) == 0 {
		logrus.SetLevel(logrus.WarnLevel)
		return func() {}, nil
	}

	f, err := tea.LogToFile("debug.log", "debug")
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	logrus.SetOutput(f)
	logrus.SetLevel(logrus.DebugLevel)
	return func() { f.Close() }, nil
}

func main() {
	closeLog, err := setupLogging()
	if err != nil {
		fmt.Println("fatal:", err)
		os.Exit(1)
	}

	err = rootCmd.Execute()
	closeLog()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
