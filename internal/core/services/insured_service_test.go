package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/policyzen/policyzen_app/internal/apperrors"
	"github.com/policyzen/policyzen_app/internal/core/domain"
	portssvc "github.com/policyzen/policyzen_app/internal/core/ports/services"
	"github.com/policyzen/policyzen_app/internal/core/services"
	"github.com/policyzen/policyzen_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type InsuredServiceTestSuite struct {
	suite.Suite
	mockInsuredRepo *MockInsuredRecordRepository
	mockCompanyRepo *MockCompanyRepository
	service         portssvc.InsuredSvcFacade

	company domain.Company
	userID  string
}

func (suite *InsuredServiceTestSuite) SetupTest() {
	suite.mockInsuredRepo = new(MockInsuredRecordRepository)
	suite.mockCompanyRepo = new(MockCompanyRepository)
	suite.service = services.NewInsuredServiceImpl(suite.mockInsuredRepo, suite.mockCompanyRepo)

	suite.company = domain.Company{CompanyID: uuid.NewString(), Name: "Oceanic Shipping Ltd"}
	suite.userID = uuid.NewString()
}

func (suite *InsuredServiceTestSuite) TestCreateEmployee_Success() {
	ctx := context.Background()
	req := dto.CreateEmployeeRequest{
		CompanyID:   suite.company.CompanyID,
		Name:        "Asha Nair",
		Email:       "asha@oceanic.example",
		Designation: "Deck Officer",
	}

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.company.CompanyID).
		Return(&suite.company, nil).Once()
	suite.mockInsuredRepo.On("SaveEmployee", ctx, mock.MatchedBy(func(e domain.Employee) bool {
		return e.EmployeeID != "" &&
			e.CompanyID == suite.company.CompanyID &&
			e.Name == req.Name &&
			e.CreatedBy == suite.userID &&
			e.LastUpdatedBy == suite.userID
	})).Return(nil).Once()

	employee, err := suite.service.CreateEmployee(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(employee)
	suite.Equal(req.Email, employee.Email)
	suite.Equal(req.Designation, employee.Designation)
	suite.mockInsuredRepo.AssertExpectations(suite.T())
	suite.mockCompanyRepo.AssertExpectations(suite.T())
}

func (suite *InsuredServiceTestSuite) TestCreateEmployee_UnknownCompany() {
	ctx := context.Background()
	notFound := apperrors.NewAppError(404, "Company not found", nil)

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, "missing").
		Return(nil, notFound).Once()

	employee, err := suite.service.CreateEmployee(ctx, dto.CreateEmployeeRequest{
		CompanyID: "missing",
		Name:      "Asha Nair",
	}, suite.userID)

	suite.Require().ErrorIs(err, notFound)
	suite.Nil(employee)
	suite.mockInsuredRepo.AssertNotCalled(suite.T(), "SaveEmployee", mock.Anything, mock.Anything)
}

func (suite *InsuredServiceTestSuite) TestCreateVessel_Success() {
	ctx := context.Background()
	req := dto.CreateVesselRequest{
		CompanyID:          suite.company.CompanyID,
		Name:               "MV Coral Crest",
		RegistrationNumber: "IMO-9876543",
		VesselType:         "BULK_CARRIER",
	}

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.company.CompanyID).
		Return(&suite.company, nil).Once()
	suite.mockInsuredRepo.On("SaveVessel", ctx, mock.MatchedBy(func(v domain.Vessel) bool {
		return v.VesselID != "" &&
			v.RegistrationNumber == req.RegistrationNumber &&
			v.VesselType == req.VesselType
	})).Return(nil).Once()

	vessel, err := suite.service.CreateVessel(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(req.Name, vessel.Name)
	suite.mockInsuredRepo.AssertExpectations(suite.T())
}

func (suite *InsuredServiceTestSuite) TestCreateVehicle_SaveFailureIsReturned() {
	ctx := context.Background()
	dbErr := apperrors.NewAppError(500, "Failed to save vehicle", nil)

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.company.CompanyID).
		Return(&suite.company, nil).Once()
	suite.mockInsuredRepo.On("SaveVehicle", ctx, mock.Anything).
		Return(dbErr).Once()

	vehicle, err := suite.service.CreateVehicle(ctx, dto.CreateVehicleRequest{
		CompanyID: suite.company.CompanyID,
		Make:      "Tata",
		Model:     "Prima 2830",
	}, suite.userID)

	suite.Require().ErrorIs(err, dbErr)
	suite.Nil(vehicle)
}

func (suite *InsuredServiceTestSuite) TestGetVesselByID() {
	ctx := context.Background()
	want := &domain.Vessel{VesselID: uuid.NewString(), Name: "MV Coral Crest"}

	suite.mockInsuredRepo.On("FindVesselByID", ctx, want.VesselID).
		Return(want, nil).Once()

	got, err := suite.service.GetVesselByID(ctx, want.VesselID)

	suite.Require().NoError(err)
	suite.Equal(want, got)
}

func TestInsuredServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InsuredServiceTestSuite))
}
