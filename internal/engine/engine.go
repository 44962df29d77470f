// Package engine implements the single entry point spec.md §6 names:
// generate(config, entities) -> GenerationResult. It wires the domain
// generator, constraint checker, solvers, and conflict analyzer together
// and is the only package cmd/scheduler calls into.
package engine

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/schedule-engine/internal/analyzer"
	"github.com/noah-isme/schedule-engine/internal/constraint"
	"github.com/noah-isme/schedule-engine/internal/domain"
	"github.com/noah-isme/schedule-engine/internal/dto"
	"github.com/noah-isme/schedule-engine/internal/models"
	"github.com/noah-isme/schedule-engine/internal/solver"
	appErrors "github.com/noah-isme/schedule-engine/pkg/errors"
	"github.com/noah-isme/schedule-engine/pkg/metrics"
)

// Engine runs generation requests against a structural validator, the
// three solvers, and the conflict analyzer.
type Engine struct {
	logger   *zap.Logger
	metrics  *metrics.Registry
	validate *validator.Validate
	clock    func() time.Time
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithMetrics attaches a metrics registry; nil-safe if omitted.
func WithMetrics(m *metrics.Registry) Option {
	return func(e *Engine) { e.metrics = m }
}

// New builds an Engine. logger may be nil (a no-op logger is used).
func New(logger *zap.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{logger: logger, validate: validator.New(), clock: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generate is spec.md §6's generate(config, entities) -> GenerationResult.
func (e *Engine) Generate(req dto.GenerateRequest) dto.GenerationResult {
	runID := uuid.NewString()
	log := e.logger.With(zap.String("run_id", runID))

	if err := e.validate.Struct(req); err != nil {
		log.Warn("validation_failed", zap.Error(err))
		return failure(appErrors.ErrValidation.Code)
	}
	if errs := validateEntities(req.Entities); len(errs) > 0 {
		log.Warn("entity_validation_failed", zap.Strings("errors", errs))
		return failure(appErrors.ErrValidation.Code)
	}

	solverKind, maxSeconds, optimize := resolveConfig(req.Config)

	es := domain.NewEntitySet(req.Entities.Courses, req.Entities.Faculty, req.Entities.Classrooms)
	projected := es.Project(req.Config.SelectedCourses, req.Config.SelectedFaculty, req.Config.SelectedBatches)

	hasSelection := len(req.Config.SelectedCourses) > 0 || len(req.Config.SelectedBatches) > 0
	if len(projected.Courses) == 0 {
		if hasSelection || len(es.Courses) > 0 {
			return failure(appErrors.ErrNoCoursesSelected.Code)
		}
		return dto.GenerationResult{
			Success:  true,
			Schedule: &models.Schedule{},
		}
	}
	if len(projected.Faculty) == 0 {
		return failure(appErrors.ErrNoFacultySelected.Code)
	}

	variables := projected.Requirements()
	domains, err := domain.BuildDomains(projected)
	if err != nil {
		if emptyErr, ok := err.(*domain.EmptyDomainError); ok {
			log.Info("empty_domain", zap.String("course_id", emptyErr.CourseID))
			return failure(appErrors.EmptyDomain(emptyErr.CourseID).Code)
		}
		normalized := appErrors.FromError(err)
		log.Error("domain_build_failed", zap.Error(normalized))
		return failure(normalized.Code)
	}

	start := e.clock()
	deadline := start.Add(time.Duration(maxSeconds) * time.Second)

	result, used := e.solve(solverKind, projected, variables, domains, deadline)
	elapsed := e.clock().Sub(start)

	e.observeMetrics(used, result, elapsed)

	schedule := models.Schedule{Entries: result.Entries}
	checker := constraint.New(projected)
	violations := checker.Violations(schedule.Entries)
	if len(violations) > 0 {
		log.Error("invariant_violation_at_output", zap.Error(constraint.AggregateError(violations)))
		return failure(appErrors.ErrInternal.Code)
	}

	conflicts := analyzer.Build(schedule.Entries).EdgeCount()
	score := solver.OptimizationScore(schedule.Entries, variables, projected, conflicts)
	schedule.Summary = models.ScheduleSummary{
		TotalSessionsScheduled: len(schedule.Entries),
		Unscheduled:            len(variables) - len(schedule.Entries),
		OptimizationScore:      score,
		Conflicts:              conflicts,
	}

	out := dto.GenerationResult{
		Success:  true,
		Schedule: &schedule,
		Statistics: dto.Statistics{
			SolverUsed:            string(used),
			GenerationTimeSeconds: elapsed.Seconds(),
			TotalEntries:          len(schedule.Entries),
			Unscheduled:           schedule.Summary.Unscheduled,
			Conflicts:             conflicts,
			OptimizationScore:     score,
			TimedOut:              result.TimedOut,
		},
	}
	if optimize {
		report := analyzer.Analyze(schedule.Entries, projected)
		out.Analysis = &dto.Analysis{
			TotalConflicts:      report.TotalConflicts,
			RoomUtilization:     report.RoomUtilization,
			FacultyLoad:         report.FacultyLoad,
			ChromaticLowerBound: report.ChromaticLowerBound,
			Suggestions:         report.Suggestions,
		}
	}
	return out
}

func (e *Engine) solve(kind models.SolverKind, es domain.EntitySet, variables []models.SessionRequirement, domains map[string][]models.Triple, deadline time.Time) (solver.Result, models.SolverKind) {
	switch kind {
	case models.SolverCSP:
		return solver.NewCSP(es, e.logger).Solve(variables, domains, deadline), models.SolverCSP
	case models.SolverGreedy:
		return solver.NewGreedy(es, e.logger).Solve(variables, domains, deadline), models.SolverGreedy
	default:
		return solver.NewHybrid(es, e.logger).Solve(variables, domains, deadline)
	}
}

func (e *Engine) observeMetrics(used models.SolverKind, result solver.Result, elapsed time.Duration) {
	if e.metrics == nil {
		return
	}
	e.metrics.ObserveGeneration(string(used), string(result.Outcome), elapsed)
	if result.TimedOut {
		e.metrics.ObserveTimeout(string(used))
	}
	e.metrics.AddBacktracks(result.Backtracks)
}

func resolveConfig(cfg dto.GenerateConfig) (models.SolverKind, int, bool) {
	kind := models.SolverHybrid
	switch cfg.SolverType {
	case "csp":
		kind = models.SolverCSP
	case "greedy":
		kind = models.SolverGreedy
	}
	maxSeconds := cfg.MaxTimeSeconds
	if maxSeconds <= 0 {
		maxSeconds = 30
	}
	return kind, maxSeconds, cfg.Optimize
}

func failure(code string) dto.GenerationResult {
	return dto.GenerationResult{Success: false, Error: code}
}

// validateEntities runs each entity's own structural Validate(), which
// catches malformed input (I5-I8's preconditions) that struct tags alone
// can't express, per spec.md §7's validation-error taxonomy.
func validateEntities(entities dto.EntitySet) []string {
	var errs []string
	for _, c := range entities.Courses {
		errs = append(errs, c.Validate()...)
	}
	for _, f := range entities.Faculty {
		errs = append(errs, f.Validate()...)
	}
	for _, r := range entities.Classrooms {
		errs = append(errs, r.Validate()...)
	}
	return errs
}
