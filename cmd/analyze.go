package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kilianp07/crewsched/core/model"
	"github.com/kilianp07/crewsched/core/schedule"
	"github.com/kilianp07/crewsched/pkg/export"
)

var (
	analyzeFormat string
	analyzeOut    string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <snapshot.json>",
	Short: "Run a schedule analysis on a snapshot file",
	Args:  cobra.ExactArgs(1),
	RunE:  analyzeSnapshot,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "json", "output format: json, conflicts-csv or utilization-csv")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(analyzeCmd)
}

// snapshotFile mirrors the API request payload.
type snapshotFile struct {
	Events      []model.ScheduleEvent `json:"events"`
	Crew        []model.CrewMember    `json:"crew"`
	Constraints *schedule.Constraints `json:"constraints,omitempty"`
}

func analyzeSnapshot(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}
	var snap snapshotFile
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("parse snapshot: %w", err)
	}

	analysis := schedule.AnalyzeSchedule(snap.Events, snap.Crew, snap.Constraints)

	out := cmd.OutOrStdout()
	if analyzeOut != "" {
		f, err := os.Create(analyzeOut)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch analyzeFormat {
	case "json":
		return export.WriteJSON(out, struct {
			model.ScheduleAnalysis
			Summary schedule.FleetSummary `json:"summary"`
		}{analysis, schedule.Summarize(analysis.CrewUtilization)})
	case "conflicts-csv":
		return export.WriteConflictsCSV(out, analysis.Conflicts)
	case "utilization-csv":
		return export.WriteUtilizationCSV(out, analysis.CrewUtilization)
	default:
		return fmt.Errorf("unsupported format: %s", analyzeFormat)
	}
}
