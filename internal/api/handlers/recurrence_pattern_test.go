package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"coffee-shop-backend/internal/api/handlers"
	"coffee-shop-backend/internal/database/models"
	apperrors "coffee-shop-backend/internal/errors"
	"coffee-shop-backend/internal/mocks"
	"coffee-shop-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// RecurrencePatternHandlerTestSuite defines the test suite for RecurrencePatternHandler
type RecurrencePatternHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockRecurrencePatternServiceInterface
	router      *gin.Engine
}

func (suite *RecurrencePatternHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockRecurrencePatternServiceInterface(suite.ctrl)
	h := handlers.NewRecurrencePatternHandler(suite.mockService)

	suite.router = gin.New()
	suite.router.GET("/recurrence-patterns", h.ListRecurrencePatterns)
	suite.router.POST("/recurrence-patterns", h.CreateRecurrencePattern)
	suite.router.GET("/recurrence-patterns/:id", h.GetRecurrencePattern)
	suite.router.PUT("/recurrence-patterns/:id", h.UpdateRecurrencePattern)
	suite.router.DELETE("/recurrence-patterns/:id", h.DeleteRecurrencePattern)
}

func (suite *RecurrencePatternHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RecurrencePatternHandlerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *RecurrencePatternHandlerTestSuite) TestCreate() {
	day := "MONDAY"
	suite.mockService.EXPECT().Create(&service.RecurrencePatternRequest{Type: "WEEKLY", DayOfWeek: &day}).
		Return(&service.RecurrencePatternResponse{ID: uuid.New(), Type: models.RecurrenceWeekly, DayOfWeek: &day}, nil)

	w := suite.do(http.MethodPost, "/recurrence-patterns", `{"type":"WEEKLY","day_of_week":"MONDAY"}`)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	assert.Contains(suite.T(), w.Body.String(), `"day_of_week":"MONDAY"`)
}

func (suite *RecurrencePatternHandlerTestSuite) TestCreate_Duplicate() {
	suite.mockService.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrRecurrencePatternExists)

	w := suite.do(http.MethodPost, "/recurrence-patterns", `{"type":"DAILY","interval_days":1}`)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *RecurrencePatternHandlerTestSuite) TestDelete_InUse() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(id).Return(apperrors.ErrRecurrencePatternInUse)

	w := suite.do(http.MethodDelete, "/recurrence-patterns/"+id.String(), "")

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "referenced by work schedules")
}

func (suite *RecurrencePatternHandlerTestSuite) TestDelete_Success() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(id).Return(nil)

	w := suite.do(http.MethodDelete, "/recurrence-patterns/"+id.String(), "")

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *RecurrencePatternHandlerTestSuite) TestGet_NotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().GetByID(id).Return(nil, apperrors.ErrRecurrencePatternNotFound)

	w := suite.do(http.MethodGet, "/recurrence-patterns/"+id.String(), "")

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *RecurrencePatternHandlerTestSuite) TestUpdate_Validation() {
	id := uuid.New()
	suite.mockService.EXPECT().Update(id, gomock.Any()).Return(nil, apperrors.NewValidationError("type", "must be DAILY or WEEKLY"))

	w := suite.do(http.MethodPut, "/recurrence-patterns/"+id.String(), `{"type":"HOURLY"}`)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *RecurrencePatternHandlerTestSuite) TestList() {
	suite.mockService.EXPECT().GetAll().Return([]service.RecurrencePatternResponse{{Type: models.RecurrenceDaily}}, nil)

	w := suite.do(http.MethodGet, "/recurrence-patterns", "")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func TestRecurrencePatternHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RecurrencePatternHandlerTestSuite))
}
