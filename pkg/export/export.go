// Package export writes analysis results to JSON or CSV.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/kilianp07/crewsched/core/model"
)

// WriteJSON encodes v to w as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteConflictsCSV writes the conflict list to w in CSV format.
func WriteConflictsCSV(w io.Writer, conflicts []model.ScheduleConflict) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"type", "severity", "event_id", "crew_member_id", "crew_member_name", "description"}); err != nil {
		return err
	}
	for _, c := range conflicts {
		rec := []string{
			string(c.Type),
			string(c.Severity),
			c.EventID,
			c.CrewMemberID,
			c.CrewMemberName,
			c.Description,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteUtilizationCSV writes per-crew utilization to w in CSV format.
func WriteUtilizationCSV(w io.Writer, utilization []model.CrewUtilization) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"crew_member_id", "crew_member_name", "scheduled_hours", "available_hours", "utilization_percent", "status"}); err != nil {
		return err
	}
	for _, u := range utilization {
		rec := []string{
			u.CrewMemberID,
			u.CrewMemberName,
			strconv.FormatFloat(u.ScheduledHours, 'f', -1, 64),
			strconv.FormatFloat(u.AvailableHours, 'f', -1, 64),
			strconv.Itoa(u.UtilizationPercent),
			string(u.Status),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
