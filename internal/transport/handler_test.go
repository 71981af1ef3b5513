package transport

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Alexey-Stp/race-day-nutrition-planner/internal/models"
)

type mockPlannerService struct {
	mock.Mock
}

func (m *mockPlannerService) GeneratePlan(race models.RaceProfile, athlete models.AthleteProfile, products []models.Product, caffeineEnabled bool) (models.PlanResult, error) {
	args := m.Called(race, athlete, products, caffeineEnabled)
	return args.Get(0).(models.PlanResult), args.Error(1)
}

func validRequestBody() PlanRequest {
	return PlanRequest{
		Race:    models.RaceProfile{SportType: models.SportRun, DurationHours: 4, Temperature: models.TemperatureModerate, Intensity: models.IntensityModerate},
		Athlete: models.AthleteProfile{WeightKg: 70},
		Products: []models.Product{
			{Name: "Energy Gel", ProductType: models.ProductGel, CarbsG: 25, Texture: models.TextureGel},
		},
		CaffeineEnabled: true,
	}
}

func TestCreatePlan_Success(t *testing.T) {
	e := echo.New()
	mockService := new(mockPlannerService)
	handler := &Handler{service: mockService, validator: validator.New()}

	reqBody := validRequestBody()
	wantPlan := models.PlanResult{PlanID: "plan-123", Events: nil, Warnings: nil, Errors: nil}
	mockService.On("GeneratePlan", reqBody.Race, reqBody.Athlete, reqBody.Products, reqBody.CaffeineEnabled).Return(wantPlan, nil)

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/v1/plans", bytes.NewReader(bodyBytes))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if assert.NoError(t, handler.CreatePlan(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp PlanResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "success", resp.Status)
		assert.Equal(t, "plan-123", resp.Plan.PlanID)
	}
	mockService.AssertExpectations(t)
}

func TestCreatePlan_RejectsMissingProducts(t *testing.T) {
	e := echo.New()
	mockService := new(mockPlannerService)
	handler := &Handler{service: mockService, validator: validator.New()}

	reqBody := validRequestBody()
	reqBody.Products = nil

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/v1/plans", bytes.NewReader(bodyBytes))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if assert.NoError(t, handler.CreatePlan(c)) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
	mockService.AssertNotCalled(t, "GeneratePlan")
}

func TestCreatePlan_PropagatesServiceError(t *testing.T) {
	e := echo.New()
	mockService := new(mockPlannerService)
	handler := &Handler{service: mockService, validator: validator.New()}

	reqBody := validRequestBody()
	mockService.On("GeneratePlan", reqBody.Race, reqBody.Athlete, reqBody.Products, reqBody.CaffeineEnabled).
		Return(models.PlanResult{}, assert.AnError)

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/v1/plans", bytes.NewReader(bodyBytes))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if assert.NoError(t, handler.CreatePlan(c)) {
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	}
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	handler := &Handler{validator: validator.New()}

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if assert.NoError(t, handler.HealthCheck(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}
