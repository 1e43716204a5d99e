package repository

import (
	"context"
	"fmt"

	"github.com/toybridge/toybridge-api/internal/domain"
	"github.com/toybridge/toybridge-api/internal/repository/dao"
)

var (
	ErrSchoolNotFound   = dao.ErrSchoolNotFound
	ErrSchoolCodeExists = dao.ErrSchoolCodeExists
)

type SchoolDAO interface {
	Insert(ctx context.Context, school dao.School) (dao.School, error)
	FindByID(ctx context.Context, id string) (dao.School, error)
	FindAll(ctx context.Context, filter dao.SchoolFilter) ([]dao.School, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	Update(ctx context.Context, school dao.School) (dao.School, error)
	Delete(ctx context.Context, id string) (dao.School, error)
}

type SchoolRepository struct {
	dao SchoolDAO
}

func NewSchoolRepository(dao SchoolDAO) *SchoolRepository {
	return &SchoolRepository{
		dao: dao,
	}
}

func (r *SchoolRepository) Create(ctx context.Context, school domain.School) (domain.School, error) {
	created, err := r.dao.Insert(ctx, schoolDomainToDAO(school))
	if err != nil {
		return domain.School{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return schoolDAOToDomain(created), nil
}

func (r *SchoolRepository) FindByID(ctx context.Context, id string) (domain.School, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.School{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return schoolDAOToDomain(found), nil
}

func (r *SchoolRepository) FindAll(ctx context.Context, filter domain.SchoolFilter) ([]domain.School, error) {
	found, err := r.dao.FindAll(ctx, dao.SchoolFilter{
		Code:      filter.Code,
		Name:      filter.Name,
		SortByAsc: filter.SortByAsc,
	})
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	schools := make([]domain.School, 0, len(found))
	for _, s := range found {
		schools = append(schools, schoolDAOToDomain(s))
	}

	return schools, nil
}

func (r *SchoolRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	exists, err := r.dao.CodeExists(ctx, code)
	if err != nil {
		return false, fmt.Errorf("r.dao.CodeExists -> %w", err)
	}

	return exists, nil
}

func (r *SchoolRepository) Update(ctx context.Context, school domain.School) (domain.School, error) {
	updated, err := r.dao.Update(ctx, schoolDomainToDAO(school))
	if err != nil {
		return domain.School{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return schoolDAOToDomain(updated), nil
}

func (r *SchoolRepository) Delete(ctx context.Context, id string) (domain.School, error) {
	deleted, err := r.dao.Delete(ctx, id)
	if err != nil {
		return domain.School{}, fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return schoolDAOToDomain(deleted), nil
}

func schoolDomainToDAO(s domain.School) dao.School {
	return dao.School{
		ID:                     s.ID,
		Code:                   s.Code,
		Timestamp:              s.Timestamp,
		Name:                   s.Name,
		Board:                  s.Board,
		InstitutionType:        s.InstitutionType,
		Village:                s.Village,
		District:               s.District,
		State:                  s.State,
		FullAddress:            s.FullAddress,
		PrincipalName:          s.PrincipalName,
		PrincipalContact:       s.PrincipalContact,
		CoordinatorName:        s.CoordinatorName,
		CoordinatorContact:     s.CoordinatorContact,
		HasCupboard:            s.HasCupboard,
		HasLibraryRoom:         s.HasLibraryRoom,
		LibraryPictures:        s.LibraryPictures,
		CupboardPictures:       s.CupboardPictures,
		StudentsBalwadiClass1:  s.StudentsBalwadiClass1,
		StudentsClass2To4:      s.StudentsClass2To4,
		StudentsClass5AndAbove: s.StudentsClass5AndAbove,
		ReferredBy:             s.ReferredBy,
	}
}

func schoolDAOToDomain(s dao.School) domain.School {
	return domain.School{
		ID:                     s.ID,
		Code:                   s.Code,
		Timestamp:              s.Timestamp,
		Name:                   s.Name,
		Board:                  s.Board,
		InstitutionType:        s.InstitutionType,
		Village:                s.Village,
		District:               s.District,
		State:                  s.State,
		FullAddress:            s.FullAddress,
		PrincipalName:          s.PrincipalName,
		PrincipalContact:       s.PrincipalContact,
		CoordinatorName:        s.CoordinatorName,
		CoordinatorContact:     s.CoordinatorContact,
		HasCupboard:            s.HasCupboard,
		HasLibraryRoom:         s.HasLibraryRoom,
		LibraryPictures:        s.LibraryPictures,
		CupboardPictures:       s.CupboardPictures,
		StudentsBalwadiClass1:  s.StudentsBalwadiClass1,
		StudentsClass2To4:      s.StudentsClass2To4,
		StudentsClass5AndAbove: s.StudentsClass5AndAbove,
		ReferredBy:             s.ReferredBy,
		CreatedAt:              s.CreatedAt,
		UpdatedAt:              s.UpdatedAt,
	}
}
