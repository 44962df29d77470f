package analyzer

import (
	"github.com/noah-isme/schedule-engine/internal/domain"
	"github.com/noah-isme/schedule-engine/internal/models"
)

// Report is the full set of conflict-graph analysis results for one
// produced schedule (spec.md §4.6).
type Report struct {
	TotalConflicts      int
	RoomUtilization     float64
	FacultyLoad         map[string]int
	ChromaticLowerBound int
	Suggestions         []string
}

// Analyze builds the conflict graph over entries and computes every
// metric spec.md §4.6 names.
func Analyze(entries []models.ScheduleEntry, es domain.EntitySet) Report {
	graph := Build(entries)
	utilization := RoomUtilization(entries, es)
	load := FacultyLoad(entries)

	return Report{
		TotalConflicts:      graph.EdgeCount(),
		RoomUtilization:     utilization,
		FacultyLoad:         load,
		ChromaticLowerBound: graph.ChromaticLowerBound(),
		Suggestions:         Suggestions(entries, es, utilization, load),
	}
}
