package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/toybridge/toybridge-api/internal/pkg/identifier"
)

var (
	ErrSchoolNotFound   = errors.New("school not found")
	ErrSchoolCodeExists = errors.New("school code already exists")
)

type School struct {
	ID   string `gorm:"primaryKey;size:16"`
	Code string `gorm:"uniqueIndex;not null"`

	Timestamp              *string
	Name                   *string
	Board                  *string
	InstitutionType        *string
	Village                *string
	District               *string
	State                  *string
	FullAddress            *string
	PrincipalName          *string
	PrincipalContact       *string
	CoordinatorName        *string
	CoordinatorContact     *string
	HasCupboard            *string
	HasLibraryRoom         *string
	LibraryPictures        *string
	CupboardPictures       *string
	StudentsBalwadiClass1  *string
	StudentsClass2To4      *string
	StudentsClass5AndAbove *string
	ReferredBy             *string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// SchoolFilter narrows FindAll. Empty strings mean no filtering.
type SchoolFilter struct {
	Code      string
	Name      string
	SortByAsc bool
}

type SchoolDAO struct {
	db *gorm.DB
}

func NewSchoolDAO(db *gorm.DB) *SchoolDAO {
	return &SchoolDAO{
		db: db,
	}
}

func (d *SchoolDAO) Insert(ctx context.Context, school School) (School, error) {
	if school.ID == "" {
		school.ID = identifier.New()
	}

	result := d.db.WithContext(ctx).Create(&school)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return School{}, ErrSchoolCodeExists
		}

		return School{}, result.Error
	}

	return school, nil
}

func (d *SchoolDAO) FindByID(ctx context.Context, id string) (School, error) {
	var school School
	result := d.db.WithContext(ctx).Where("id = ?", id).Take(&school)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return School{}, ErrSchoolNotFound
		}

		return School{}, result.Error
	}

	return school, nil
}

func (d *SchoolDAO) FindAll(ctx context.Context, filter SchoolFilter) ([]School, error) {
	query := d.db.WithContext(ctx).Model(&School{})

	if filter.Code != "" {
		query = query.Where("code ILIKE ?", "%"+filter.Code+"%")
	}
	if filter.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.SortByAsc {
		query = query.Order("timestamp ASC")
	}

	var schools []School
	result := query.Find(&schools)
	if result.Error != nil {
		return nil, result.Error
	}

	return schools, nil
}

func (d *SchoolDAO) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	result := d.db.WithContext(ctx).Model(&School{}).Where("code = ?", code).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (d *SchoolDAO) Update(ctx context.Context, school School) (School, error) {
	result := d.db.WithContext(ctx).
		Model(&School{}).
		Where("id = ?", school.ID).
		Select("code", "timestamp", "name", "board", "institution_type", "village",
			"district", "state", "full_address", "principal_name", "principal_contact",
			"coordinator_name", "coordinator_contact", "has_cupboard", "has_library_room",
			"library_pictures", "cupboard_pictures", "students_balwadi_class1",
			"students_class2_to4", "students_class5_and_above", "referred_by").
		Updates(&school)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return School{}, ErrSchoolCodeExists
		}

		return School{}, result.Error
	}
	if result.RowsAffected == 0 {
		return School{}, ErrSchoolNotFound
	}

	return d.FindByID(ctx, school.ID)
}

func (d *SchoolDAO) Delete(ctx context.Context, id string) (School, error) {
	school, err := d.FindByID(ctx, id)
	if err != nil {
		return School{}, err
	}

	result := d.db.WithContext(ctx).Delete(&School{}, "id = ?", id)
	if result.Error != nil {
		return School{}, result.Error
	}

	return school, nil
}
