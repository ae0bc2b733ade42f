package service_test

import (
	"testing"

	"coffee-shop-backend/internal/database/models"
	apperrors "coffee-shop-backend/internal/errors"
	"coffee-shop-backend/internal/mocks"
	"coffee-shop-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// RecurrencePatternServiceTestSuite defines the test suite for RecurrencePatternService
type RecurrencePatternServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockRepo          *mocks.MockRecurrencePatternRepositoryInterface
	mockWorkSchedules *mocks.MockWorkScheduleRepositoryInterface
	service           *service.RecurrencePatternService
}

func (suite *RecurrencePatternServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockRecurrencePatternRepositoryInterface(suite.ctrl)
	suite.mockWorkSchedules = mocks.NewMockWorkScheduleRepositoryInterface(suite.ctrl)
	suite.service = service.NewRecurrencePatternService(suite.mockRepo, suite.mockWorkSchedules, validator.New())
}

func (suite *RecurrencePatternServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RecurrencePatternServiceTestSuite) TestCreate_WeeklyNormalizesDay() {
	mon := "mon"
	suite.mockRepo.EXPECT().
		FindByRule(models.RecurrenceWeekly, gomock.Nil(), gomock.Any()).
		DoAndReturn(func(_ models.RecurrenceType, _ *int, day *string) (*models.RecurrencePattern, error) {
			suite.Equal("MONDAY", *day)
			return nil, gorm.ErrRecordNotFound
		})
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.service.Create(&service.RecurrencePatternRequest{Type: "weekly", DayOfWeek: &mon})

	suite.Require().NoError(err)
	suite.Equal(models.RecurrenceWeekly, resp.Type)
	suite.Equal("MONDAY", *resp.DayOfWeek)
	suite.Nil(resp.IntervalDays)
}

func (suite *RecurrencePatternServiceTestSuite) TestCreate_DailyDropsDay() {
	interval := 2
	tue := "TUESDAY"
	suite.mockRepo.EXPECT().FindByRule(models.RecurrenceDaily, &interval, gomock.Nil()).Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.service.Create(&service.RecurrencePatternRequest{Type: "DAILY", IntervalDays: &interval, DayOfWeek: &tue})

	suite.Require().NoError(err)
	suite.Equal(2, *resp.IntervalDays)
	suite.Nil(resp.DayOfWeek)
}

func (suite *RecurrencePatternServiceTestSuite) TestCreate_Duplicate() {
	interval := 1
	suite.mockRepo.EXPECT().FindByRule(models.RecurrenceDaily, &interval, gomock.Nil()).
		Return(&models.RecurrencePattern{BaseModel: models.BaseModel{ID: uuid.New()}}, nil)

	_, err := suite.service.Create(&service.RecurrencePatternRequest{Type: "DAILY", IntervalDays: &interval})

	suite.ErrorIs(err, apperrors.ErrRecurrencePatternExists)
}

func (suite *RecurrencePatternServiceTestSuite) TestCreate_Invalid() {
	zero := 0
	bad := "someday"
	tests := []struct {
		name string
		req  service.RecurrencePatternRequest
	}{
		{"missing type", service.RecurrencePatternRequest{}},
		{"unknown type", service.RecurrencePatternRequest{Type: "MONTHLY"}},
		{"daily without interval", service.RecurrencePatternRequest{Type: "DAILY"}},
		{"daily zero interval", service.RecurrencePatternRequest{Type: "DAILY", IntervalDays: &zero}},
		{"weekly without day", service.RecurrencePatternRequest{Type: "WEEKLY"}},
		{"weekly bad day", service.RecurrencePatternRequest{Type: "WEEKLY", DayOfWeek: &bad}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.Create(&tt.req)
			suite.True(apperrors.IsValidation(err), "got %v", err)
		})
	}
}

func (suite *RecurrencePatternServiceTestSuite) TestUpdate_SameRuleIsNotDuplicate() {
	id := uuid.New()
	interval := 3
	suite.mockRepo.EXPECT().GetByID(id).Return(&models.RecurrencePattern{BaseModel: models.BaseModel{ID: id}, Type: models.RecurrenceDaily, IntervalDays: &interval}, nil)
	suite.mockRepo.EXPECT().FindByRule(models.RecurrenceDaily, &interval, gomock.Nil()).
		Return(&models.RecurrencePattern{BaseModel: models.BaseModel{ID: id}}, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

	resp, err := suite.service.Update(id, &service.RecurrencePatternRequest{Type: "DAILY", IntervalDays: &interval})

	suite.Require().NoError(err)
	suite.Equal(id, resp.ID)
}

func (suite *RecurrencePatternServiceTestSuite) TestDelete_InUse() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(&models.RecurrencePattern{BaseModel: models.BaseModel{ID: id}}, nil)
	suite.mockWorkSchedules.EXPECT().CountByRecurrencePatternID(id).Return(int64(2), nil)
	suite.mockRepo.EXPECT().Delete(gomock.Any()).Times(0)

	err := suite.service.Delete(id)

	suite.ErrorIs(err, apperrors.ErrRecurrencePatternInUse)
	suite.True(apperrors.IsConflict(err))
}

func (suite *RecurrencePatternServiceTestSuite) TestDelete_Unused() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(&models.RecurrencePattern{BaseModel: models.BaseModel{ID: id}}, nil)
	suite.mockWorkSchedules.EXPECT().CountByRecurrencePatternID(id).Return(int64(0), nil)
	suite.mockRepo.EXPECT().Delete(id).Return(nil)

	suite.NoError(suite.service.Delete(id))
}

func (suite *RecurrencePatternServiceTestSuite) TestGetByID_NotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.GetByID(id)

	suite.ErrorIs(err, apperrors.ErrRecurrencePatternNotFound)
}

func TestRecurrencePatternServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecurrencePatternServiceTestSuite))
}
