package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"jobfit/matching-api/internal/matching"
	"jobfit/matching-api/internal/repositories"
)

// documentSource adapts the persistence layer to the engine's
// DocumentSource contract, translating repository not-found errors into
// the engine's taxonomy.
type documentSource struct {
	resumeRepo repositories.ResumeRepository
	jobRepo    repositories.JobDescriptionRepository
}

func NewDocumentSource(
	resumeRepo repositories.ResumeRepository,
	jobRepo repositories.JobDescriptionRepository,
) matching.DocumentSource {
	return &documentSource{
		resumeRepo: resumeRepo,
		jobRepo:    jobRepo,
	}
}

// ResumeByID implements matching.DocumentSource.
func (s *documentSource) ResumeByID(ctx context.Context, id uuid.UUID) (*matching.ParsedResume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resume, err := s.resumeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("resume %s: %w", id, matching.ErrNotFound)
		}
		return nil, err
	}

	return resume.Parsed(), nil
}

// JobDescriptionByID implements matching.DocumentSource.
func (s *documentSource) JobDescriptionByID(ctx context.Context, id uuid.UUID) (*matching.ParsedJobDescription, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("job description %s: %w", id, matching.ErrNotFound)
		}
		return nil, err
	}

	return job.Parsed(), nil
}
