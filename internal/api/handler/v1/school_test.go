package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toybridge/toybridge-api/internal/domain"
)

type stubSchoolService struct {
	filter domain.SchoolFilter
}

func (s *stubSchoolService) ImportFromSheet(_ context.Context) (int, error) {
	return 0, nil
}

func (s *stubSchoolService) GetSchool(_ context.Context, id string) (domain.School, error) {
	return domain.School{ID: id}, nil
}

func (s *stubSchoolService) GetSchools(_ context.Context, filter domain.SchoolFilter) ([]domain.School, error) {
	s.filter = filter
	return nil, nil
}

func (s *stubSchoolService) UpdateSchool(_ context.Context, school domain.School) (domain.School, error) {
	return school, nil
}

func (s *stubSchoolService) DeleteSchool(_ context.Context, id string) (domain.School, error) {
	return domain.School{ID: id}, nil
}

func newSchoolRouter(svc *stubSchoolService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewSchoolHandler(svc)
	router.GET("/school", handler.HandleGetSchools)
	return router
}

func TestHandleGetSchools_FilterParams(t *testing.T) {
	svc := &stubSchoolService{}
	router := newSchoolRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/school?code=BLR-1&name=Green&sortByAsc=true", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "BLR-1", svc.filter.Code)
	assert.Equal(t, "Green", svc.filter.Name)
	assert.True(t, svc.filter.SortByAsc)
}

func TestHandleGetSchools_LongNameParam(t *testing.T) {
	svc := &stubSchoolService{}
	router := newSchoolRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/school?nameOfSchoolInstitution=Green", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "Green", svc.filter.Name)
	assert.False(t, svc.filter.SortByAsc)
}
