package main

import (
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/liesim/internal/viz"
)

var (
	dataDir    string
	theme      string
	groupName  string
	fallback   string
	fromGroup  string
	toGroup    string
	algebra    string
	configFile string
	preset     string
	stepper    string
	dt         float64
	duration   float64
	rotvec     []float64
	position   []float64
	omega      []float64
	velocity   []float64
	series     string
	outPath    string
)

// main registers the commands and starts the rotation explorer when none is given.
func main() {
	rootCmd := &cobra.Command{
		Use:   "liesim",
		Short: "lie group toolkit and attitude simulator",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			viz.SetTheme(theme)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunExplorer(r3.Vec{})
		},
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".liesim", "data directory")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "cyberpunk", "color theme")

	rootCmd.AddCommand(algebraCommands()...)
	rootCmd.AddCommand(runCommands()...)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

