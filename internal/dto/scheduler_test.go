package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRequestUnmarshalIgnoresUnknownFields(t *testing.T) {
	raw := `{
		"config": {"solver_type": "csp", "max_time_seconds": 5, "extra_unused_field": 123},
		"entities": {"courses": [], "faculty": [], "classrooms": []}
	}`
	var req GenerateRequest
	require.NoError(t, json.Unmarshal([]byte(raw), &req))
	assert.Equal(t, "csp", req.Config.SolverType)
	assert.Equal(t, 5, req.Config.MaxTimeSeconds)
}

func TestGenerationResultOmitsAbsentFields(t *testing.T) {
	result := GenerationResult{Success: false, Error: "no_courses_selected"}
	raw, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"statistics":{"solver_used":"","generation_time_seconds":0,"total_entries":0,"unscheduled":0,"conflicts":0,"optimization_score":0,"timed_out":false},"error":"no_courses_selected"}`, string(raw))
}
