package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/toybridge/toybridge-api/internal/domain"
	"github.com/toybridge/toybridge-api/internal/pkg/identifier"
	"github.com/toybridge/toybridge-api/internal/repository"
	"github.com/toybridge/toybridge-api/internal/sheet"
)

var (
	ErrSchoolNotFound   = repository.ErrSchoolNotFound
	ErrSchoolCodeExists = repository.ErrSchoolCodeExists
)

type SchoolRepository interface {
	Create(ctx context.Context, school domain.School) (domain.School, error)
	FindByID(ctx context.Context, id string) (domain.School, error)
	FindAll(ctx context.Context, filter domain.SchoolFilter) ([]domain.School, error)
	Update(ctx context.Context, school domain.School) (domain.School, error)
	Delete(ctx context.Context, id string) (domain.School, error)
}

// RegistrationSource yields unprocessed registration-sheet rows and
// marks them consumed. Marking is not atomic with the database insert;
// ImportFromSheet tolerates replays of rows whose insert landed but
// whose mark did not.
type RegistrationSource interface {
	PendingRows() ([]sheet.RegistrationRow, error)
	MarkCompleted(rowIndex int) error
}

type SchoolService struct {
	repo   SchoolRepository
	source RegistrationSource
}

func NewSchoolService(repo SchoolRepository, source RegistrationSource) *SchoolService {
	return &SchoolService{
		repo:   repo,
		source: source,
	}
}

// ImportFromSheet pulls every pending registration row into the
// database and marks each imported row completed. Returns the number
// of schools actually inserted; duplicate codes are skipped but still
// marked, which makes the import safe to re-run.
func (s *SchoolService) ImportFromSheet(ctx context.Context) (int, error) {
	rows, err := s.source.PendingRows()
	if err != nil {
		return 0, fmt.Errorf("s.source.PendingRows -> %w", err)
	}

	imported := 0
	for _, row := range rows {
		_, err = s.repo.Create(ctx, row.School)
		if err != nil && !errors.Is(err, ErrSchoolCodeExists) {
			return imported, fmt.Errorf("s.repo.Create -> %w", err)
		}
		if err == nil {
			imported++
		} else {
			zap.L().Warn("school already imported, marking sheet row completed",
				zap.String("code", row.School.Code),
				zap.Int("row", row.RowIndex))
		}

		if err = s.source.MarkCompleted(row.RowIndex); err != nil {
			return imported, fmt.Errorf("s.source.MarkCompleted -> %w", err)
		}
	}

	return imported, nil
}

func (s *SchoolService) GetSchool(ctx context.Context, id string) (domain.School, error) {
	if err := identifier.Validate(id, "school"); err != nil {
		return domain.School{}, err
	}

	school, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.School{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return school, nil
}

func (s *SchoolService) GetSchools(ctx context.Context, filter domain.SchoolFilter) ([]domain.School, error) {
	schools, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return schools, nil
}

func (s *SchoolService) UpdateSchool(ctx context.Context, school domain.School) (domain.School, error) {
	if err := identifier.Validate(school.ID, "school"); err != nil {
		return domain.School{}, err
	}

	updated, err := s.repo.Update(ctx, school)
	if err != nil {
		return domain.School{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *SchoolService) DeleteSchool(ctx context.Context, id string) (domain.School, error) {
	if err := identifier.Validate(id, "school"); err != nil {
		return domain.School{}, err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return domain.School{}, fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return deleted, nil
}
