//go:build integration
// +build integration

package repository

import (
	"testing"

	"coffee-shop-backend/internal/database/models"
	"coffee-shop-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// ShiftRepositoryTestSuite tests the ShiftRepository
type ShiftRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ShiftRepository
	factories     *testutils.FactorySet
	db            Repositories
}

func (suite *ShiftRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewShiftRepository(suite.baseTestSuite.DB)
	suite.db = NewRepositories(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *ShiftRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *ShiftRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *ShiftRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ShiftRepositoryTestSuite) position(name string) *models.Position {
	p := &models.Position{Name: name}
	suite.Require().NoError(suite.baseTestSuite.DB.Create(p).Error)
	return p
}

func (suite *ShiftRepositoryTestSuite) TestCreateWithRulesAndReplace() {
	barista := suite.position("Barista")
	cashier := suite.position("Cashier")

	shift := suite.factories.Shift.Create()
	shift.PositionRules = []models.ShiftPositionRule{
		{PositionID: barista.ID, Allowed: true, RequiredCount: 2},
		{PositionID: cashier.ID, Allowed: true, RequiredCount: 1},
	}
	suite.Require().NoError(suite.repo.Create(shift))

	loaded, err := suite.repo.GetByID(shift.ID)
	suite.NoError(err)
	suite.Len(loaded.PositionRules, 2)

	loaded.EndTime = "13:00"
	loaded.PositionRules = []models.ShiftPositionRule{{PositionID: barista.ID, Allowed: true, RequiredCount: 3}}
	suite.NoError(suite.repo.Update(loaded))

	reloaded, err := suite.repo.GetByID(shift.ID)
	suite.NoError(err)
	suite.Equal("13:00", reloaded.EndTime)
	suite.Require().Len(reloaded.PositionRules, 1)
	suite.Equal(3, reloaded.PositionRules[0].RequiredCount)
}

func (suite *ShiftRepositoryTestSuite) TestGetAllActiveOnly() {
	active := suite.factories.Shift.WithHours("06:00", "10:00")
	inactive := suite.factories.Shift.WithHours("18:00", "22:00")
	suite.Require().NoError(suite.repo.Create(active))
	suite.Require().NoError(suite.repo.Create(inactive))
	suite.Require().NoError(suite.baseTestSuite.DB.Model(inactive).Update("active", false).Error)

	all, err := suite.repo.GetAll(false)
	suite.NoError(err)
	suite.Len(all, 2)
	suite.Equal("06:00", all[0].StartTime)

	onlyActive, err := suite.repo.GetAll(true)
	suite.NoError(err)
	suite.Len(onlyActive, 1)

	byName, err := suite.repo.GetByName(active.Name)
	suite.NoError(err)
	suite.Equal(active.ID, byName.ID)
}

func (suite *ShiftRepositoryTestSuite) TestDeleteReferencedShiftFails() {
	admin := suite.factories.User.Admin()
	suite.Require().NoError(suite.db.Users.Create(admin))
	shift := suite.factories.Shift.Create()
	suite.Require().NoError(suite.repo.Create(shift))
	suite.Require().NoError(suite.db.EmployeeShifts.Create(
		suite.factories.EmployeeShift.Create(shift.ID, testutils.Date(2024, 1, 1), admin.ID)))

	suite.Error(suite.repo.Delete(shift.ID))
}

func TestShiftRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftRepositoryTestSuite))
}
