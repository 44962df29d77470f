// Package dto holds the JSON boundary shapes for the engine's single
// exported operation, generate(config, entities) -> GenerationResult.
package dto

import (
	"github.com/noah-isme/schedule-engine/internal/models"
)

// GenerateConfig is the recognized option set from spec.md §6. Unknown
// input fields are ignored by encoding/json by default; missing required
// fields are reported by validator before solving begins.
type GenerateConfig struct {
	SolverType      string   `json:"solver_type" validate:"omitempty,oneof=csp greedy hybrid"`
	MaxTimeSeconds  int      `json:"max_time_seconds" validate:"omitempty,min=1"`
	Optimize        bool     `json:"optimize"`
	SelectedCourses []string `json:"selected_courses,omitempty"`
	SelectedFaculty []string `json:"selected_faculty,omitempty"`
	SelectedBatches []string `json:"selected_batches,omitempty"`
}

// EntitySet is the wire shape of the four entity collections in spec.md §3.
type EntitySet struct {
	Courses    []models.Course    `json:"courses" validate:"dive"`
	Faculty    []models.Faculty   `json:"faculty" validate:"dive"`
	Classrooms []models.Classroom `json:"classrooms" validate:"dive"`
}

// GenerateRequest bundles config and entities for the boundary call.
type GenerateRequest struct {
	Config   GenerateConfig `json:"config"`
	Entities EntitySet      `json:"entities"`
}

// Statistics is the stable statistics block of GenerationResult.
type Statistics struct {
	SolverUsed            string  `json:"solver_used"`
	GenerationTimeSeconds float64 `json:"generation_time_seconds"`
	TotalEntries          int     `json:"total_entries"`
	Unscheduled           int     `json:"unscheduled"`
	Conflicts             int     `json:"conflicts"`
	OptimizationScore     float64 `json:"optimization_score"`
	TimedOut              bool    `json:"timed_out"`
}

// Analysis mirrors the conflict-graph analyzer's report, present iff
// config.Optimize is true.
type Analysis struct {
	TotalConflicts      int            `json:"total_conflicts"`
	RoomUtilization     float64        `json:"room_utilization"`
	FacultyLoad         map[string]int `json:"faculty_load"`
	ChromaticLowerBound int            `json:"chromatic_lower_bound"`
	Suggestions         []string       `json:"suggestions"`
}

// GenerationResult is the single return value of generate(config,
// entities).
type GenerationResult struct {
	Success    bool             `json:"success"`
	Schedule   *models.Schedule `json:"schedule,omitempty"`
	Statistics Statistics       `json:"statistics"`
	Analysis   *Analysis        `json:"analysis,omitempty"`
	Error      string           `json:"error,omitempty"`
}
