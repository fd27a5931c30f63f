package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "finsense/internal/errors"
	"finsense/internal/models"
	"finsense/internal/services"
	"finsense/internal/uuid"
)

// --- mock budget service ---

type mockBudgetService struct {
	listBudgetsFn  func(userID string, asOf time.Time) ([]services.BudgetStatus, error)
	upsertBudgetFn func(userID, categoryID string, amount float64) (*models.Budget, bool, error)
}

func (m *mockBudgetService) ListBudgets(userID string, asOf time.Time) ([]services.BudgetStatus, error) {
	if m.listBudgetsFn != nil {
		return m.listBudgetsFn(userID, asOf)
	}
	return []services.BudgetStatus{}, nil
}

func (m *mockBudgetService) UpsertBudget(userID, categoryID string, amount float64) (*models.Budget, bool, error) {
	if m.upsertBudgetFn != nil {
		return m.upsertBudgetFn(userID, categoryID, amount)
	}
	return &models.Budget{}, true, nil
}

var _ services.BudgetServicer = (*mockBudgetService)(nil)

func setupBudgetRouter(handler *BudgetHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.GET("/budgets", handler.GetBudgets)
	auth.POST("/budgets", handler.UpsertBudget)
	return r
}

func TestBudgetHandler_UpsertBudget(t *testing.T) {
	t.Run("returns 201 when a budget is created", func(t *testing.T) {
		svc := &mockBudgetService{
			upsertBudgetFn: func(userID, categoryID string, amount float64) (*models.Budget, bool, error) {
				return &models.Budget{
					Base:       models.Base{ID: uuid.New()},
					OwnerID:    userID,
					CategoryID: categoryID,
					Amount:     amount,
					Period:     models.BudgetPeriodMonth,
				}, true, nil
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(svc))

		rec := doRequest(r, "POST", "/budgets", `{"category_id":"cat-1","amount":1000}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		budget := result["budget"].(map[string]interface{})
		if budget["amount"].(float64) != 1000 {
			t.Errorf("expected amount 1000, got %v", budget["amount"])
		}
	})

	t.Run("returns 200 when an existing cap is updated", func(t *testing.T) {
		svc := &mockBudgetService{
			upsertBudgetFn: func(userID, categoryID string, amount float64) (*models.Budget, bool, error) {
				return &models.Budget{Amount: amount}, false, nil
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(svc))

		rec := doRequest(r, "POST", "/budgets", `{"category_id":"cat-1","amount":2500}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 400 on a non-positive amount", func(t *testing.T) {
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}))

		rec := doRequest(r, "POST", "/budgets", `{"category_id":"cat-1","amount":0}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 404 on an unknown category", func(t *testing.T) {
		svc := &mockBudgetService{
			upsertBudgetFn: func(string, string, float64) (*models.Budget, bool, error) {
				return nil, false, apperrors.ErrCategoryNotFound
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(svc))

		rec := doRequest(r, "POST", "/budgets", `{"category_id":"missing","amount":100}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestBudgetHandler_GetBudgets(t *testing.T) {
	t.Run("returns budgets with progress", func(t *testing.T) {
		svc := &mockBudgetService{
			listBudgetsFn: func(userID string, asOf time.Time) ([]services.BudgetStatus, error) {
				return []services.BudgetStatus{
					{
						Budget:     models.Budget{Base: models.Base{ID: uuid.New()}, OwnerID: userID, Amount: 1000},
						Spent:      400,
						Percentage: 40,
						Status:     "ok",
					},
				}, nil
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(svc))

		rec := doRequest(r, "GET", "/budgets", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		budgets := result["budgets"].([]interface{})
		if len(budgets) != 1 {
			t.Fatalf("expected 1 budget, got %d", len(budgets))
		}
		status := budgets[0].(map[string]interface{})
		if status["spent"].(float64) != 400 || status["status"] != "ok" {
			t.Errorf("unexpected status payload: %v", status)
		}
	})
}
