package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/apperrors"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
	portssvc "github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/ports/services"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/services"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/dto"
)

type ExpenseServiceTestSuite struct {
	suite.Suite
	mockExpenseRepo *MockExpenseRepository
	mockProjectRepo *MockProjectRepository
	mockOrgRepo     *MockOrganizationRepository
	service         portssvc.ExpenseSvcFacade

	userID  string
	profile *domain.Profile
	project *domain.Project
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockProjectRepo = new(MockProjectRepository)
	suite.mockOrgRepo = new(MockOrganizationRepository)

	authorizer := services.NewAuthorizerService(suite.mockOrgRepo)
	suite.service = services.NewExpenseService(suite.mockExpenseRepo, suite.mockProjectRepo, authorizer)

	suite.userID = uuid.NewString()
	suite.profile = &domain.Profile{
		ProfileID:      uuid.NewString(),
		UserID:         suite.userID,
		OrganizationID: uuid.NewString(),
		Role:           domain.RoleAccountant,
	}
	suite.mockOrgRepo.FindProfileByUserIDFn = func(ctx context.Context, userID string) (*domain.Profile, error) {
		return suite.profile, nil
	}

	suite.project = &domain.Project{
		ProjectID:      uuid.NewString(),
		OrganizationID: suite.profile.OrganizationID,
	}
	suite.mockProjectRepo.FindProjectByIDFn = func(ctx context.Context, projectID string) (*domain.Project, error) {
		return suite.project, nil
	}
}

// Without a manual override the tax amount derives from rate times amount.
func (suite *ExpenseServiceTestSuite) TestCreateExpense_DerivesTaxAmount() {
	ctx := context.Background()

	var saved domain.Expense
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Expense)
		}).
		Return(nil).Once()

	taxRate := decimal.RequireFromString("0.0825")
	req := dto.CreateExpenseRequest{
		ProjectID:   suite.project.ProjectID,
		Description: "Lumber delivery",
		Amount:      decimal.RequireFromString("200.00"),
		Category:    "materials",
		ExpenseDate: time.Now(),
		TaxRate:     &taxRate,
	}

	expense, err := suite.service.CreateExpense(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(expense)
	suite.Require().NotNil(expense.TaxAmount)
	suite.True(expense.TaxAmount.Equal(decimal.RequireFromString("16.50")))
	suite.Equal(suite.profile.ProfileID, saved.CreatedBy)
	suite.Equal(suite.project.OrganizationID, saved.OrganizationID)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_ManualOverrideKeepsGivenTax() {
	ctx := context.Background()

	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).
		Return(nil).Once()

	taxRate := decimal.RequireFromString("0.0825")
	taxAmount := decimal.RequireFromString("12.00")
	req := dto.CreateExpenseRequest{
		ProjectID:         suite.project.ProjectID,
		Description:       "Lumber delivery",
		Amount:            decimal.RequireFromString("200.00"),
		Category:          "materials",
		ExpenseDate:       time.Now(),
		TaxRate:           &taxRate,
		TaxAmount:         &taxAmount,
		ManualTaxOverride: true,
	}

	expense, err := suite.service.CreateExpense(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(expense.TaxAmount)
	suite.True(expense.TaxAmount.Equal(taxAmount))
}

// A vendor from another organization cannot be attached to an expense.
func (suite *ExpenseServiceTestSuite) TestCreateExpense_CrossOrganizationVendorIsNotFound() {
	ctx := context.Background()

	foreignVendor := &domain.Vendor{
		VendorID:       uuid.NewString(),
		OrganizationID: uuid.NewString(),
		Name:           "Outside Supplies",
	}
	suite.mockExpenseRepo.FindVendorByIDFn = func(ctx context.Context, vendorID string) (*domain.Vendor, error) {
		return foreignVendor, nil
	}

	req := dto.CreateExpenseRequest{
		ProjectID:   suite.project.ProjectID,
		Description: "Lumber delivery",
		Amount:      decimal.RequireFromString("200.00"),
		Category:    "materials",
		ExpenseDate: time.Now(),
		VendorID:    &foreignVendor.VendorID,
	}

	expense, err := suite.service.CreateExpense(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SaveExpense")
}

func (suite *ExpenseServiceTestSuite) TestCreateCategory_DuplicateNameConflicts() {
	ctx := context.Background()

	suite.mockExpenseRepo.On("SaveCategory", ctx, mock.AnythingOfType("domain.ExpenseCategory")).
		Return(apperrors.ErrDuplicate).Once()

	category, err := suite.service.CreateCategory(ctx, suite.userID, dto.CreateExpenseCategoryRequest{Name: "Materials"})

	suite.Require().Error(err)
	suite.Nil(category)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

// Only the creator or a manager may remove an expense.
func (suite *ExpenseServiceTestSuite) TestDeleteExpense_NonCreatorAccountantForbidden() {
	ctx := context.Background()

	expense := &domain.Expense{
		ExpenseID:      uuid.NewString(),
		OrganizationID: suite.profile.OrganizationID,
		CreatedBy:      uuid.NewString(),
	}
	suite.mockExpenseRepo.FindExpenseByIDFn = func(ctx context.Context, expenseID string) (*domain.Expense, error) {
		return expense, nil
	}

	err := suite.service.DeleteExpense(ctx, suite.userID, expense.ExpenseID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "DeleteExpense")
}

func (suite *ExpenseServiceTestSuite) TestGetVendorByID_CrossOrganizationIsNotFound() {
	ctx := context.Background()

	foreignVendor := &domain.Vendor{
		VendorID:       uuid.NewString(),
		OrganizationID: uuid.NewString(),
	}
	suite.mockExpenseRepo.FindVendorByIDFn = func(ctx context.Context, vendorID string) (*domain.Vendor, error) {
		return foreignVendor, nil
	}

	vendor, err := suite.service.GetVendorByID(ctx, suite.userID, foreignVendor.VendorID)

	suite.Require().Error(err)
	suite.Nil(vendor)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// Vendor rows take a manager role to mutate; the accountant default profile
// can read them but not delete them.
func (suite *ExpenseServiceTestSuite) TestDeleteVendor_AccountantForbidden() {
	ctx := context.Background()

	vendor := &domain.Vendor{
		VendorID:       uuid.NewString(),
		OrganizationID: suite.profile.OrganizationID,
		Name:           "Steel Supplies",
	}
	suite.mockExpenseRepo.FindVendorByIDFn = func(ctx context.Context, vendorID string) (*domain.Vendor, error) {
		return vendor, nil
	}

	err := suite.service.DeleteVendor(ctx, suite.userID, vendor.VendorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "DeleteVendor")
}

func (suite *ExpenseServiceTestSuite) TestUpdateVendor_DesignerForbidden() {
	ctx := context.Background()
	suite.profile.Role = domain.RoleDesigner

	vendor := &domain.Vendor{
		VendorID:       uuid.NewString(),
		OrganizationID: suite.profile.OrganizationID,
		Name:           "Steel Supplies",
	}
	suite.mockExpenseRepo.FindVendorByIDFn = func(ctx context.Context, vendorID string) (*domain.Vendor, error) {
		return vendor, nil
	}

	name := "Steel & Rebar Supplies"
	updated, err := suite.service.UpdateVendor(ctx, suite.userID, vendor.VendorID, dto.UpdateVendorRequest{Name: &name})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "UpdateVendor")
}

// A pm can update a vendor; the manager check admits it.
func (suite *ExpenseServiceTestSuite) TestUpdateVendor_PMAllowed() {
	ctx := context.Background()
	suite.profile.Role = domain.RolePM

	vendor := &domain.Vendor{
		VendorID:       uuid.NewString(),
		OrganizationID: suite.profile.OrganizationID,
		Name:           "Steel Supplies",
	}
	suite.mockExpenseRepo.FindVendorByIDFn = func(ctx context.Context, vendorID string) (*domain.Vendor, error) {
		return vendor, nil
	}
	suite.mockExpenseRepo.On("UpdateVendor", ctx, mock.AnythingOfType("domain.Vendor")).
		Return(nil).Once()

	name := "Steel & Rebar Supplies"
	updated, err := suite.service.UpdateVendor(ctx, suite.userID, vendor.VendorID, dto.UpdateVendorRequest{Name: &name})

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.Equal(name, updated.Name)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestDeleteCategory_AccountantForbidden() {
	ctx := context.Background()

	category := &domain.ExpenseCategory{
		CategoryID:     uuid.NewString(),
		OrganizationID: suite.profile.OrganizationID,
		Name:           "Materials",
	}
	suite.mockExpenseRepo.FindCategoryByIDFn = func(ctx context.Context, categoryID string) (*domain.ExpenseCategory, error) {
		return category, nil
	}

	err := suite.service.DeleteCategory(ctx, suite.userID, category.CategoryID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "DeleteCategory")
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
