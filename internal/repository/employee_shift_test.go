//go:build integration
// +build integration

package repository

import (
	"errors"
	"testing"
	"time"

	"coffee-shop-backend/internal/database/models"
	"coffee-shop-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// EmployeeShiftRepositoryTestSuite tests occurrences together with their work schedules
type EmployeeShiftRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repos         Repositories
	factories     *testutils.FactorySet

	admin *models.User
	shift *models.Shift
}

func (suite *EmployeeShiftRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repos = NewRepositories(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *EmployeeShiftRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *EmployeeShiftRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.admin = suite.factories.User.Admin()
	suite.Require().NoError(suite.repos.Users.Create(suite.admin))
	suite.shift = suite.factories.Shift.Create()
	suite.Require().NoError(suite.repos.Shifts.Create(suite.shift))
}

func (suite *EmployeeShiftRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *EmployeeShiftRepositoryTestSuite) occurrence(date time.Time, scheduleID *uuid.UUID) *models.EmployeeShift {
	es := suite.factories.EmployeeShift.Create(suite.shift.ID, date, suite.admin.ID)
	es.WorkScheduleID = scheduleID
	suite.Require().NoError(suite.repos.EmployeeShifts.Create(es))
	return es
}

func (suite *EmployeeShiftRepositoryTestSuite) TestDateQueries() {
	d1 := testutils.Date(2024, time.January, 1)
	d2 := testutils.Date(2024, time.January, 2)
	suite.occurrence(d1, nil)
	suite.occurrence(d1, nil)
	suite.occurrence(d2, nil)

	onDay, err := suite.repos.EmployeeShifts.GetByDate(d1)
	suite.NoError(err)
	suite.Len(onDay, 2)

	exists, err := suite.repos.EmployeeShifts.ExistsByDate(d2)
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repos.EmployeeShifts.ExistsByDate(testutils.Date(2024, time.January, 3))
	suite.NoError(err)
	suite.False(exists)

	inRange, err := suite.repos.EmployeeShifts.GetByDateRange(d1, d2)
	suite.NoError(err)
	suite.Len(inRange, 3)
	suite.NotNil(inRange[0].Shift)
	suite.Equal(suite.shift.Name, inRange[0].Shift.Name)

	count, err := suite.repos.EmployeeShifts.CountByShiftID(suite.shift.ID)
	suite.NoError(err)
	suite.Equal(int64(3), count)
}

func (suite *EmployeeShiftRepositoryTestSuite) TestUnlinkAndDelete() {
	schedule := suite.factories.WorkSchedule.Create(suite.admin.ID)
	suite.Require().NoError(suite.repos.WorkSchedules.Create(schedule))

	past := suite.occurrence(testutils.Date(2024, time.January, 1), &schedule.ID)
	future := suite.occurrence(testutils.Date(2024, time.January, 5), &schedule.ID)

	linked, err := suite.repos.EmployeeShifts.GetByWorkScheduleID(schedule.ID)
	suite.NoError(err)
	suite.Len(linked, 2)

	suite.NoError(suite.repos.EmployeeShifts.Unlink(past.ID))
	suite.NoError(suite.repos.EmployeeShifts.Delete(future.ID))

	count, err := suite.repos.EmployeeShifts.CountByWorkScheduleID(schedule.ID)
	suite.NoError(err)
	suite.Zero(count)

	kept, err := suite.repos.EmployeeShifts.GetByDate(past.ShiftDate)
	suite.NoError(err)
	suite.Require().Len(kept, 1)
	suite.Nil(kept[0].WorkScheduleID)

	suite.NoError(suite.repos.WorkSchedules.Delete(schedule.ID))
	_, err = suite.repos.WorkSchedules.GetByID(schedule.ID)
	suite.Error(err)
}

func (suite *EmployeeShiftRepositoryTestSuite) TestDeletingScheduleSetsReferenceNull() {
	schedule := suite.factories.WorkSchedule.Create(suite.admin.ID)
	suite.Require().NoError(suite.repos.WorkSchedules.Create(schedule))
	es := suite.occurrence(testutils.Date(2024, time.January, 2), &schedule.ID)

	suite.NoError(suite.repos.WorkSchedules.Delete(schedule.ID))

	rows, err := suite.repos.EmployeeShifts.GetByDate(es.ShiftDate)
	suite.NoError(err)
	suite.Require().Len(rows, 1)
	suite.Nil(rows[0].WorkScheduleID)
}

func (suite *EmployeeShiftRepositoryTestSuite) TestWorkSchedulePagination() {
	for i := 0; i < 3; i++ {
		schedule := suite.factories.WorkSchedule.Create(suite.admin.ID)
		schedule.StartDate = schedule.StartDate.AddDate(0, i, 0)
		schedule.EndDate = schedule.EndDate.AddDate(0, i, 0)
		suite.Require().NoError(suite.repos.WorkSchedules.Create(schedule))
	}

	page, total, err := suite.repos.WorkSchedules.GetAll(2, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Require().Len(page, 2)
	suite.True(page[0].StartDate.After(page[1].StartDate))

	rest, _, err := suite.repos.WorkSchedules.GetAll(2, 2)
	suite.NoError(err)
	suite.Len(rest, 1)
}

func (suite *EmployeeShiftRepositoryTestSuite) TestFailedRowDoesNotAbortTransaction() {
	transactor := NewTransactor(suite.baseTestSuite.DB)
	date := testutils.Date(2024, time.February, 1)

	err := transactor.RunInTransaction(func(repos Repositories) error {
		bad := suite.factories.EmployeeShift.Create(uuid.New(), date, suite.admin.ID) // unknown shift
		if err := repos.EmployeeShifts.Create(bad); err == nil {
			return errors.New("expected foreign key violation")
		}
		return repos.EmployeeShifts.Create(suite.factories.EmployeeShift.Create(suite.shift.ID, date, suite.admin.ID))
	})
	suite.NoError(err)

	rows, err := suite.repos.EmployeeShifts.GetByDate(date)
	suite.NoError(err)
	suite.Len(rows, 1)
}

func (suite *EmployeeShiftRepositoryTestSuite) TestTransactionRollsBack() {
	transactor := NewTransactor(suite.baseTestSuite.DB)
	date := testutils.Date(2024, time.March, 1)

	err := transactor.RunInTransaction(func(repos Repositories) error {
		if err := repos.EmployeeShifts.Create(suite.factories.EmployeeShift.Create(suite.shift.ID, date, suite.admin.ID)); err != nil {
			return err
		}
		return errors.New("boom")
	})
	suite.Error(err)

	exists, err := suite.repos.EmployeeShifts.ExistsByDate(date)
	suite.NoError(err)
	suite.False(exists)
}

func TestEmployeeShiftRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeShiftRepositoryTestSuite))
}
