//go:build integration
// +build integration

package repository

import (
	"testing"

	"coffee-shop-backend/internal/database/models"
	"coffee-shop-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// RecurrencePatternRepositoryTestSuite tests the RecurrencePatternRepository
type RecurrencePatternRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repos         Repositories
	factories     *testutils.FactorySet
}

func (suite *RecurrencePatternRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repos = NewRepositories(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *RecurrencePatternRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *RecurrencePatternRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *RecurrencePatternRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *RecurrencePatternRepositoryTestSuite) TestFindByRule() {
	daily := suite.factories.RecurrencePattern.Daily(2)
	weekly := suite.factories.RecurrencePattern.Weekly("MONDAY")
	suite.Require().NoError(suite.repos.RecurrencePatterns.Create(daily))
	suite.Require().NoError(suite.repos.RecurrencePatterns.Create(weekly))

	interval := 2
	found, err := suite.repos.RecurrencePatterns.FindByRule(models.RecurrenceDaily, &interval, nil)
	suite.NoError(err)
	suite.Equal(daily.ID, found.ID)

	day := "MONDAY"
	found, err = suite.repos.RecurrencePatterns.FindByRule(models.RecurrenceWeekly, nil, &day)
	suite.NoError(err)
	suite.Equal(weekly.ID, found.ID)

	other := 3
	_, err = suite.repos.RecurrencePatterns.FindByRule(models.RecurrenceDaily, &other, nil)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	all, err := suite.repos.RecurrencePatterns.GetAll()
	suite.NoError(err)
	suite.Len(all, 2)
}

func (suite *RecurrencePatternRepositoryTestSuite) TestUniqueRule() {
	suite.Require().NoError(suite.repos.RecurrencePatterns.Create(suite.factories.RecurrencePattern.Weekly("FRIDAY")))
	suite.Error(suite.repos.RecurrencePatterns.Create(suite.factories.RecurrencePattern.Weekly("FRIDAY")))
}

func (suite *RecurrencePatternRepositoryTestSuite) TestCountByRecurrencePatternID() {
	admin := suite.factories.User.Admin()
	suite.Require().NoError(suite.repos.Users.Create(admin))
	pattern := suite.factories.RecurrencePattern.Daily(1)
	suite.Require().NoError(suite.repos.RecurrencePatterns.Create(pattern))

	schedule := suite.factories.WorkSchedule.Create(admin.ID)
	schedule.RecurrencePatternID = &pattern.ID
	suite.Require().NoError(suite.repos.WorkSchedules.Create(schedule))

	count, err := suite.repos.WorkSchedules.CountByRecurrencePatternID(pattern.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)

	loaded, err := suite.repos.WorkSchedules.GetByID(schedule.ID)
	suite.NoError(err)
	suite.Require().NotNil(loaded.RecurrencePattern)
	suite.Equal(models.RecurrenceDaily, loaded.RecurrencePattern.Type)
}

func TestRecurrencePatternRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RecurrencePatternRepositoryTestSuite))
}
