package matching

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DocumentSource resolves document identifiers to parsed documents. It is
// the only potentially blocking collaborator the engine talks to;
// implementations report unresolvable ids with ErrNotFound.
type DocumentSource interface {
	ResumeByID(ctx context.Context, id uuid.UUID) (*ParsedResume, error)
	JobDescriptionByID(ctx context.Context, id uuid.UUID) (*ParsedJobDescription, error)
}

// Engine is the public entry point of the matcher. It is stateless per
// invocation: all shared state (vocabulary, catalog, weights) is read-only
// after construction, so concurrent Match calls need no coordination.
type Engine struct {
	source        DocumentSource
	extractor     *Extractor
	scorer        *Scorer
	suggester     *SuggestionEngine
	weights       Weights
	lookupTimeout time.Duration
	log           *zap.Logger
}

// DefaultLookupTimeout bounds storage lookups in the validating stage.
const DefaultLookupTimeout = 5 * time.Second

type EngineParams struct {
	Source          DocumentSource
	Vocabulary      *Vocabulary
	Catalog         Catalog
	Weights         Weights
	SuggestionLimit int
	LookupTimeout   time.Duration
	Logger          *zap.Logger
}

func NewEngine(params EngineParams) (*Engine, error) {
	scorer, err := NewScorer(params.Weights)
	if err != nil {
		return nil, err
	}
	if params.Vocabulary == nil {
		params.Vocabulary = NewVocabulary(nil)
	}
	if params.Catalog == nil {
		params.Catalog = DefaultCatalog()
	}
	if params.LookupTimeout <= 0 {
		params.LookupTimeout = DefaultLookupTimeout
	}
	if params.Logger == nil {
		params.Logger = zap.NewNop()
	}
	return &Engine{
		source:        params.Source,
		extractor:     NewExtractor(params.Vocabulary),
		scorer:        scorer,
		suggester:     NewSuggestionEngine(params.Catalog, params.SuggestionLimit),
		weights:       params.Weights,
		lookupTimeout: params.LookupTimeout,
		log:           params.Logger,
	}, nil
}

// Match runs the full pipeline: validating, extracting, scoring,
// analyzing, assembling. It returns exactly one of: a complete immutable
// MatchResult, or a StageError naming the stage that failed. The
// computation is pure and deterministic, so callers may retry freely.
func (e *Engine) Match(ctx context.Context, resumeID, jobID uuid.UUID) (*MatchResult, error) {
	resume, job, err := e.validate(ctx, resumeID, jobID)
	if err != nil {
		return nil, err
	}

	resumeFeatures, err := e.extractor.ExtractResume(resume)
	if err != nil {
		return nil, stageErr(StageExtracting, err)
	}
	jobRequirement, err := e.extractor.ExtractJob(job)
	if err != nil {
		return nil, stageErr(StageExtracting, err)
	}

	breakdown, err := e.scorer.Score(resumeFeatures, jobRequirement)
	if err != nil {
		return nil, stageErr(StageScoring, err)
	}

	missing := MissingSkills(jobRequirement, breakdown.SkillScores, e.weights)

	result := e.assemble(breakdown, missing)

	e.log.Debug("match completed",
		zap.String("resume_id", resumeID.String()),
		zap.String("job_id", jobID.String()),
		zap.Float64("overall_score", result.OverallScore),
		zap.Int("missing_skills", len(result.MissingSkills)),
	)
	return result, nil
}

// validate resolves both identifiers under the lookup timeout. A timeout
// maps to ErrTimeout here, never to a partial result.
func (e *Engine) validate(ctx context.Context, resumeID, jobID uuid.UUID) (*ParsedResume, *ParsedJobDescription, error) {
	ctx, cancel := context.WithTimeout(ctx, e.lookupTimeout)
	defer cancel()

	resume, err := e.source.ResumeByID(ctx, resumeID)
	if err != nil {
		return nil, nil, stageErr(StageValidating, lookupErr("resume", err))
	}

	job, err := e.source.JobDescriptionByID(ctx, jobID)
	if err != nil {
		return nil, nil, stageErr(StageValidating, lookupErr("job description", err))
	}

	return resume, job, nil
}

func (e *Engine) assemble(breakdown *ScoreBreakdown, missing []SkillID) *MatchResult {
	suggestions, resources := e.suggester.Suggest(breakdown, missing)

	skillScores := make(map[string]float64, len(breakdown.SkillScores))
	for id, score := range breakdown.SkillScores {
		skillScores[string(id)] = score
	}

	missingSkills := make([]string, len(missing))
	for i, id := range missing {
		missingSkills[i] = string(id)
	}

	return &MatchResult{
		OverallScore:           breakdown.Overall,
		SkillsScore:            breakdown.Skills,
		ExperienceScore:        breakdown.Experience,
		EducationScore:         breakdown.Education,
		SkillScores:            skillScores,
		MissingSkills:          missingSkills,
		ImprovementSuggestions: suggestions,
		LearningResources:      resources,
	}
}

// lookupErr tags which document kind failed to resolve and maps a blown
// deadline to ErrTimeout.
func lookupErr(kind string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s lookup: %w", kind, ErrTimeout)
	}
	return fmt.Errorf("%s lookup: %w", kind, err)
}
