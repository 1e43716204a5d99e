package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toybridge/toybridge-api/internal/domain"
	"github.com/toybridge/toybridge-api/internal/pkg/identifier"
	"github.com/toybridge/toybridge-api/internal/repository"
	"github.com/toybridge/toybridge-api/internal/sheet"
)

type fakeSchoolRepo struct {
	byCode map[string]domain.School
	byID   map[string]domain.School
}

func newFakeSchoolRepo() *fakeSchoolRepo {
	return &fakeSchoolRepo{
		byCode: map[string]domain.School{},
		byID:   map[string]domain.School{},
	}
}

func (f *fakeSchoolRepo) Create(_ context.Context, school domain.School) (domain.School, error) {
	if _, ok := f.byCode[school.Code]; ok {
		return domain.School{}, repository.ErrSchoolCodeExists
	}
	school.ID = identifier.New()
	f.byCode[school.Code] = school
	f.byID[school.ID] = school
	return school, nil
}

func (f *fakeSchoolRepo) FindByID(_ context.Context, id string) (domain.School, error) {
	school, ok := f.byID[id]
	if !ok {
		return domain.School{}, repository.ErrSchoolNotFound
	}
	return school, nil
}

func (f *fakeSchoolRepo) FindAll(_ context.Context, _ domain.SchoolFilter) ([]domain.School, error) {
	var schools []domain.School
	for _, school := range f.byID {
		schools = append(schools, school)
	}
	return schools, nil
}

func (f *fakeSchoolRepo) Update(_ context.Context, school domain.School) (domain.School, error) {
	if _, ok := f.byID[school.ID]; !ok {
		return domain.School{}, repository.ErrSchoolNotFound
	}
	f.byID[school.ID] = school
	return school, nil
}

func (f *fakeSchoolRepo) Delete(_ context.Context, id string) (domain.School, error) {
	school, ok := f.byID[id]
	if !ok {
		return domain.School{}, repository.ErrSchoolNotFound
	}
	delete(f.byID, id)
	delete(f.byCode, school.Code)
	return school, nil
}

type fakeRegistrationSource struct {
	rows   []sheet.RegistrationRow
	marked []int
}

func (f *fakeRegistrationSource) PendingRows() ([]sheet.RegistrationRow, error) {
	var pending []sheet.RegistrationRow
	for _, row := range f.rows {
		if !f.isMarked(row.RowIndex) {
			pending = append(pending, row)
		}
	}
	return pending, nil
}

func (f *fakeRegistrationSource) MarkCompleted(rowIndex int) error {
	f.marked = append(f.marked, rowIndex)
	return nil
}

func (f *fakeRegistrationSource) isMarked(rowIndex int) bool {
	for _, marked := range f.marked {
		if marked == rowIndex {
			return true
		}
	}
	return false
}

func TestSchoolService_ImportFromSheet(t *testing.T) {
	source := &fakeRegistrationSource{rows: []sheet.RegistrationRow{
		{RowIndex: 2, School: domain.School{Code: "SCH-1"}},
		{RowIndex: 3, School: domain.School{Code: "SCH-2"}},
	}}
	repo := newFakeSchoolRepo()
	svc := NewSchoolService(repo, source)

	imported, err := svc.ImportFromSheet(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, imported)
	assert.Equal(t, []int{2, 3}, source.marked)

	// Marked rows are gone; nothing to do the second time.
	imported, err = svc.ImportFromSheet(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, imported)
}

func TestSchoolService_ImportFromSheet_ReplayedRow(t *testing.T) {
	// Simulates a crash after insert but before the sheet mark: the row
	// comes back pending with a code that already exists.
	source := &fakeRegistrationSource{rows: []sheet.RegistrationRow{
		{RowIndex: 2, School: domain.School{Code: "SCH-1"}},
	}}
	repo := newFakeSchoolRepo()
	_, err := repo.Create(context.Background(), domain.School{Code: "SCH-1"})
	require.NoError(t, err)

	svc := NewSchoolService(repo, source)

	imported, err := svc.ImportFromSheet(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, imported)
	assert.Equal(t, []int{2}, source.marked)
}

func TestSchoolService_GetSchool_InvalidID(t *testing.T) {
	svc := NewSchoolService(newFakeSchoolRepo(), &fakeRegistrationSource{})

	_, err := svc.GetSchool(context.Background(), "nope")
	var invalidErr *identifier.InvalidError
	assert.ErrorAs(t, err, &invalidErr)
}

func TestSchoolService_GetSchool_NotFound(t *testing.T) {
	svc := NewSchoolService(newFakeSchoolRepo(), &fakeRegistrationSource{})

	_, err := svc.GetSchool(context.Background(), "b000000000000001")
	assert.ErrorIs(t, err, ErrSchoolNotFound)
}
