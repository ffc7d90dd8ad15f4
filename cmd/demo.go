package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kilianp07/crewsched/pkg/export"
	"github.com/kilianp07/crewsched/simulator"
)

var (
	demoCrew   int
	demoEvents int
	demoSeed   int64
	demoDays   int
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Generate a synthetic snapshot for testing the analyzer",
	RunE:  generateDemo,
}

func init() {
	demoCmd.Flags().IntVar(&demoCrew, "crew", 10, "number of crew members")
	demoCmd.Flags().IntVar(&demoEvents, "events", 40, "number of events")
	demoCmd.Flags().Int64Var(&demoSeed, "seed", 1, "random seed")
	demoCmd.Flags().IntVar(&demoDays, "days", 5, "calendar days covered")
	rootCmd.AddCommand(demoCmd)
}

func generateDemo(cmd *cobra.Command, args []string) error {
	snap := simulator.Generate(simulator.Config{
		CrewSize:   demoCrew,
		EventCount: demoEvents,
		Seed:       demoSeed,
		Days:       demoDays,
	})
	return export.WriteJSON(cmd.OutOrStdout(), snap)
}
