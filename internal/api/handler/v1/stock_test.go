package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toybridge/toybridge-api/internal/domain"
	"github.com/toybridge/toybridge-api/internal/repository"
)

type stubStockService struct {
	available int
	removeErr error
	entries   []domain.StockEntry
	checked   []domain.StockLine
}

func (s *stubStockService) GetAvailable(_ context.Context, _ string) (int, error) {
	return s.available, nil
}

func (s *stubStockService) GetEntries(_ context.Context) ([]domain.StockEntry, error) {
	return s.entries, nil
}

func (s *stubStockService) Assign(_ context.Context, toyID string, quantity int) (domain.StockEntry, bool, error) {
	return domain.StockEntry{ToyID: toyID, Quantity: quantity}, true, nil
}

func (s *stubStockService) AddMany(_ context.Context, _ string, _ []domain.StockLine) error {
	return nil
}

func (s *stubStockService) RemoveMany(_ context.Context, _ []domain.StockLine) error {
	return s.removeErr
}

func (s *stubStockService) CheckAvailability(_ context.Context, lines []domain.StockLine) ([]domain.Shortfall, error) {
	s.checked = lines
	return nil, nil
}

func (s *stubStockService) DeleteEntry(_ context.Context, _ string) error {
	return nil
}

func newStockRouter(svc *stubStockService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewStockHandler(svc)
	router.GET("/stock/:toyID", handler.HandleGetAvailable)
	router.POST("/stock/remove", handler.HandleRemoveStock)
	router.POST("/stock/check-available", handler.HandleCheckAvailability)
	return router
}

func TestHandleGetAvailable(t *testing.T) {
	router := newStockRouter(&stubStockService{available: 4})

	req := httptest.NewRequest(http.MethodGet, "/stock/a000000000000001", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"toyId":"a000000000000001","availableQuantity":4}`, resp.Body.String())
}

func TestHandleRemoveStock_Shortfall(t *testing.T) {
	router := newStockRouter(&stubStockService{
		removeErr: &repository.InsufficientStockError{
			ToyID:     "a000000000000001",
			Available: 1,
			Requested: 3,
		},
	})

	body := `{"toys":[{"toyId":"a000000000000001","quantity":3}]}`
	req := httptest.NewRequest(http.MethodPost, "/stock/remove", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), `"toyId":"a000000000000001"`)
	assert.Contains(t, resp.Body.String(), `"availableQuantity":1`)
	assert.Contains(t, resp.Body.String(), `"requestedQuantity":3`)
}

func TestHandleRemoveStock_Success(t *testing.T) {
	router := newStockRouter(&stubStockService{})

	body := `{"toys":[{"toyId":"a000000000000001","quantity":2}]}`
	req := httptest.NewRequest(http.MethodPost, "/stock/remove", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"message":"Stock removed successfully"}`, resp.Body.String())
}

func TestHandleCheckAvailability_CartKeys(t *testing.T) {
	svc := &stubStockService{}
	router := newStockRouter(svc)

	body := `{"cart":[{"toyId":"a000000000000001","quantity":2}]}`
	req := httptest.NewRequest(http.MethodPost, "/stock/check-available", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"available":true}`, resp.Body.String())

	require.Len(t, svc.checked, 1)
	assert.Equal(t, "a000000000000001", svc.checked[0].ToyID)
	assert.Equal(t, 2, svc.checked[0].Quantity)
}
