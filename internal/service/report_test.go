package service_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"coffee-shop-backend/internal/database/models"
	apperrors "coffee-shop-backend/internal/errors"
	"coffee-shop-backend/internal/mocks"
	"coffee-shop-backend/internal/report"
	"coffee-shop-backend/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

// ReportServiceTestSuite defines the test suite for ReportService
type ReportServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockPayments *mocks.MockPaymentRepositoryInterface
	service      *service.ReportService
	loc          *time.Location
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPayments = mocks.NewMockPaymentRepositoryInterface(suite.ctrl)
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	suite.Require().NoError(err)
	suite.loc = loc
	suite.service = service.NewReportService(suite.mockPayments, loc)
}

func (suite *ReportServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ReportServiceTestSuite) paid(amount string, at time.Time) models.Payment {
	return models.Payment{
		OrderID: uuid.New(),
		Amount:  decimal.RequireFromString(amount),
		Status:  models.PaymentPaid,
		PaidAt:  &at,
	}
}

func (suite *ReportServiceTestSuite) TestRevenue_BoundsAreLocalDays() {
	suite.mockPayments.EXPECT().GetPaidBetween(gomock.Any(), gomock.Any()).
		DoAndReturn(func(from, to *time.Time) ([]models.Payment, error) {
			suite.Require().NotNil(from)
			suite.Require().NotNil(to)
			suite.True(from.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, suite.loc)))
			suite.True(to.Equal(time.Date(2024, 4, 1, 0, 0, 0, 0, suite.loc)))
			return []models.Payment{
				suite.paid("100.00", time.Date(2024, 1, 5, 10, 0, 0, 0, suite.loc)),
				suite.paid("50.00", time.Date(2024, 3, 31, 23, 0, 0, 0, suite.loc)),
			}, nil
		})

	resp, err := suite.service.Revenue(&service.RevenueReportRequest{View: "M", From: "2024-01-01", To: "2024-03-31"})

	suite.Require().NoError(err)
	suite.Equal(report.Monthly, resp.Meta.View)
	suite.Equal("2024-01-01", resp.Meta.From)
	suite.Equal("2024-03-31", resp.Meta.To)
	suite.Equal(2, resp.Meta.Count)
	suite.Equal("2024-01-01", resp.Data[0].BucketStart)
	suite.Equal("2024-03-01", resp.Data[1].BucketStart)
}

func (suite *ReportServiceTestSuite) TestRevenue_OpenBoundsAndLatestBuckets() {
	suite.mockPayments.EXPECT().GetPaidBetween(gomock.Nil(), gomock.Nil()).Return([]models.Payment{
		suite.paid("10", time.Date(2024, 1, 1, 12, 0, 0, 0, suite.loc)),
		suite.paid("20", time.Date(2024, 1, 2, 12, 0, 0, 0, suite.loc)),
		suite.paid("30", time.Date(2024, 1, 3, 12, 0, 0, 0, suite.loc)),
	}, nil)

	resp, err := suite.service.Revenue(&service.RevenueReportRequest{View: "daily", Buckets: 2})

	suite.Require().NoError(err)
	suite.Empty(resp.Meta.From)
	suite.Equal(2, resp.Meta.Count)
	suite.Equal("2024-01-02", resp.Data[0].BucketStart)
	suite.Equal("2024-01-03", resp.Data[1].BucketStart)
}

func (suite *ReportServiceTestSuite) TestRevenue_InvalidInput() {
	_, err := suite.service.Revenue(&service.RevenueReportRequest{From: "2024/01/01"})
	suite.True(apperrors.IsValidation(err))

	_, err = suite.service.Revenue(&service.RevenueReportRequest{From: "2024-02-01", To: "2024-01-01"})
	suite.True(apperrors.IsValidation(err))
}

func (suite *ReportServiceTestSuite) TestRevenue_RepositoryError() {
	suite.mockPayments.EXPECT().GetPaidBetween(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

	_, err := suite.service.Revenue(&service.RevenueReportRequest{})

	suite.Error(err)
	suite.False(apperrors.IsValidation(err))
}

func (suite *ReportServiceTestSuite) TestExportRevenue_WritesWorkbook() {
	suite.mockPayments.EXPECT().GetPaidBetween(gomock.Any(), gomock.Any()).Return([]models.Payment{
		suite.paid("12.50", time.Date(2024, 5, 1, 9, 0, 0, 0, suite.loc)),
		suite.paid("7.50", time.Date(2024, 5, 1, 11, 0, 0, 0, suite.loc)),
	}, nil)

	var buf bytes.Buffer
	err := suite.service.ExportRevenue(&service.RevenueReportRequest{View: "yearly"}, &buf)
	suite.Require().NoError(err)

	f, err := excelize.OpenReader(&buf)
	suite.Require().NoError(err)
	defer f.Close()

	rows, err := f.GetRows("Revenue")
	suite.Require().NoError(err)
	suite.Require().Len(rows, 3)
	suite.Equal("Bucket start", rows[0][0])
	suite.Equal("2024-01-01", rows[1][0])
	suite.Equal("20", rows[1][1])
	suite.Equal("2", rows[1][2])
	suite.Equal("Total", rows[2][0])
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
