package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/apperrors"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
	portsrepo "github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/ports/repositories"
	portssvc "github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/ports/services"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/dto"
)

// expenseService implements the ExpenseSvcFacade interface
type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
	projectRepo portsrepo.ProjectRepositoryFacade
}

// NewExpenseService creates a new expense service with the provided dependencies
func NewExpenseService(
	expenseRepo portsrepo.ExpenseRepositoryFacade,
	projectRepo portsrepo.ProjectRepositoryFacade,
	authorizer portssvc.AuthorizerSvcFacade,
) portssvc.ExpenseSvcFacade {
	return &expenseService{
		BaseService: BaseService{Authorizer: authorizer},
		expenseRepo: expenseRepo,
		projectRepo: projectRepo,
	}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// findVisibleExpense loads an expense and checks tenant membership.
func (s *expenseService) findVisibleExpense(ctx context.Context, userID, expenseID string) (*domain.Expense, *domain.Profile, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, nil, err
	}
	profile, err := s.Authorizer.RequireMember(ctx, userID, expense.OrganizationID)
	if err != nil {
		return nil, nil, err
	}
	return expense, profile, nil
}

// GetExpenseByID retrieves an expense visible to the caller
func (s *expenseService) GetExpenseByID(ctx context.Context, userID, expenseID string) (*domain.Expense, error) {
	expense, _, err := s.findVisibleExpense(ctx, userID, expenseID)
	return expense, err
}

// ListExpenses lists the caller's organization's expenses, optionally
// filtered to one project.
func (s *expenseService) ListExpenses(ctx context.Context, userID string, projectID *string) ([]domain.Expense, error) {
	profile, err := s.Authorizer.ResolveProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.ListExpensesByOrganization(ctx, profile.OrganizationID, projectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses",
			slog.String("organization_id", profile.OrganizationID))
		return nil, err
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

// CreateExpense records a project expense in the caller's organization
func (s *expenseService) CreateExpense(ctx context.Context, userID string, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}
	profile, err := s.Authorizer.RequireMember(ctx, userID, project.OrganizationID)
	if err != nil {
		return nil, err
	}

	if req.VendorID != nil {
		vendor, err := s.expenseRepo.FindVendorByID(ctx, *req.VendorID)
		if err != nil {
			return nil, err
		}
		if vendor.OrganizationID != project.OrganizationID {
			return nil, apperrors.ErrNotFound
		}
	}

	now := time.Now()
	expense := domain.Expense{
		ExpenseID:         uuid.NewString(),
		ProjectID:         req.ProjectID,
		OrganizationID:    project.OrganizationID,
		Description:       req.Description,
		Amount:            req.Amount,
		Category:          req.Category,
		ExpenseDate:       req.ExpenseDate,
		VendorID:          req.VendorID,
		TaxRate:           req.TaxRate,
		TaxAmount:         req.TaxAmount,
		ManualTaxOverride: req.ManualTaxOverride,
		CreatedBy:         profile.ProfileID,
		AuditFields:       domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	// Derive the tax amount from the rate unless the caller overrode it.
	if !expense.ManualTaxOverride && expense.TaxRate != nil && expense.TaxAmount == nil {
		taxAmount := expense.Amount.Mul(*expense.TaxRate)
		expense.TaxAmount = &taxAmount
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("expense_id", expense.ExpenseID))
		return nil, err
	}

	s.LogInfo(ctx, "Expense recorded",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("project_id", expense.ProjectID))
	return &expense, nil
}

// UpdateExpense updates an expense. Creator or managers only.
func (s *expenseService) UpdateExpense(ctx context.Context, userID, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	expense, profile, err := s.findVisibleExpense(ctx, userID, expenseID)
	if err != nil {
		return nil, err
	}
	if expense.CreatedBy != profile.ProfileID && !profile.IsManager() {
		return nil, apperrors.NewForbiddenError("only the expense creator or a manager may modify this expense")
	}

	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.Amount != nil {
		expense.Amount = *req.Amount
	}
	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.ExpenseDate != nil {
		expense.ExpenseDate = *req.ExpenseDate
	}
	if req.VendorID != nil {
		vendor, err := s.expenseRepo.FindVendorByID(ctx, *req.VendorID)
		if err != nil {
			return nil, err
		}
		if vendor.OrganizationID != expense.OrganizationID {
			return nil, apperrors.ErrNotFound
		}
		expense.VendorID = req.VendorID
	}
	if req.TaxRate != nil {
		expense.TaxRate = req.TaxRate
	}
	if req.TaxAmount != nil {
		expense.TaxAmount = req.TaxAmount
	}
	if req.ManualTaxOverride != nil {
		expense.ManualTaxOverride = *req.ManualTaxOverride
	}
	if !expense.ManualTaxOverride && expense.TaxRate != nil && req.TaxAmount == nil {
		taxAmount := expense.Amount.Mul(*expense.TaxRate)
		expense.TaxAmount = &taxAmount
	}
	expense.UpdatedAt = time.Now()

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		s.LogError(ctx, err, "Failed to update expense", slog.String("expense_id", expenseID))
		return nil, err
	}
	return expense, nil
}

// DeleteExpense removes an expense. Creator or managers only.
func (s *expenseService) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	expense, profile, err := s.findVisibleExpense(ctx, userID, expenseID)
	if err != nil {
		return err
	}
	if expense.CreatedBy != profile.ProfileID && !profile.IsManager() {
		return apperrors.NewForbiddenError("only the expense creator or a manager may delete this expense")
	}

	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete expense", slog.String("expense_id", expenseID))
		}
		return err
	}
	return nil
}

// --- Categories ---

// ListCategories lists the caller's organization's expense categories
func (s *expenseService) ListCategories(ctx context.Context, userID string) ([]domain.ExpenseCategory, error) {
	profile, err := s.Authorizer.ResolveProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	categories, err := s.expenseRepo.ListCategoriesByOrganization(ctx, profile.OrganizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expense categories",
			slog.String("organization_id", profile.OrganizationID))
		return nil, err
	}
	if categories == nil {
		return []domain.ExpenseCategory{}, nil
	}
	return categories, nil
}

// CreateCategory adds an expense category lookup row
func (s *expenseService) CreateCategory(ctx context.Context, userID string, req dto.CreateExpenseCategoryRequest) (*domain.ExpenseCategory, error) {
	profile, err := s.Authorizer.ResolveProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	category := domain.ExpenseCategory{
		CategoryID:     uuid.NewString(),
		OrganizationID: profile.OrganizationID,
		Name:           req.Name,
		Description:    req.Description,
		AuditFields:    domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.expenseRepo.SaveCategory(ctx, category); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("category name already exists")
		}
		s.LogError(ctx, err, "Failed to save expense category",
			slog.String("category_id", category.CategoryID))
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes an expense category
func (s *expenseService) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	category, err := s.expenseRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if _, err := s.Authorizer.RequireManager(ctx, userID, category.OrganizationID); err != nil {
		return err
	}

	if err := s.expenseRepo.DeleteCategory(ctx, categoryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete expense category",
				slog.String("category_id", categoryID))
		}
		return err
	}
	return nil
}

// --- Vendors ---

// ListVendors lists the caller's organization's vendors
func (s *expenseService) ListVendors(ctx context.Context, userID string) ([]domain.Vendor, error) {
	profile, err := s.Authorizer.ResolveProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	vendors, err := s.expenseRepo.ListVendorsByOrganization(ctx, profile.OrganizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list vendors",
			slog.String("organization_id", profile.OrganizationID))
		return nil, err
	}
	if vendors == nil {
		return []domain.Vendor{}, nil
	}
	return vendors, nil
}

// GetVendorByID retrieves a vendor visible to the caller
func (s *expenseService) GetVendorByID(ctx context.Context, userID, vendorID string) (*domain.Vendor, error) {
	vendor, err := s.expenseRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if _, err := s.Authorizer.RequireMember(ctx, userID, vendor.OrganizationID); err != nil {
		return nil, err
	}
	return vendor, nil
}

// CreateVendor adds a vendor to the caller's organization
func (s *expenseService) CreateVendor(ctx context.Context, userID string, req dto.CreateVendorRequest) (*domain.Vendor, error) {
	profile, err := s.Authorizer.ResolveProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.DefaultCategoryID != nil {
		category, err := s.expenseRepo.FindCategoryByID(ctx, *req.DefaultCategoryID)
		if err != nil {
			return nil, err
		}
		if category.OrganizationID != profile.OrganizationID {
			return nil, apperrors.ErrNotFound
		}
	}

	now := time.Now()
	vendor := domain.Vendor{
		VendorID:          uuid.NewString(),
		OrganizationID:    profile.OrganizationID,
		Name:              req.Name,
		ContactEmail:      req.ContactEmail,
		ContactPhone:      req.ContactPhone,
		DefaultCategoryID: req.DefaultCategoryID,
		AuditFields:       domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.expenseRepo.SaveVendor(ctx, vendor); err != nil {
		s.LogError(ctx, err, "Failed to save vendor", slog.String("vendor_id", vendor.VendorID))
		return nil, err
	}
	return &vendor, nil
}

// findManagedVendor loads a vendor and checks the caller holds a manager role
// in its organization.
func (s *expenseService) findManagedVendor(ctx context.Context, userID, vendorID string) (*domain.Vendor, error) {
	vendor, err := s.expenseRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if _, err := s.Authorizer.RequireManager(ctx, userID, vendor.OrganizationID); err != nil {
		return nil, err
	}
	return vendor, nil
}

// UpdateVendor updates a vendor
func (s *expenseService) UpdateVendor(ctx context.Context, userID, vendorID string, req dto.UpdateVendorRequest) (*domain.Vendor, error) {
	vendor, err := s.findManagedVendor(ctx, userID, vendorID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		vendor.Name = *req.Name
	}
	if req.ContactEmail != nil {
		vendor.ContactEmail = req.ContactEmail
	}
	if req.ContactPhone != nil {
		vendor.ContactPhone = req.ContactPhone
	}
	if req.DefaultCategoryID != nil {
		category, err := s.expenseRepo.FindCategoryByID(ctx, *req.DefaultCategoryID)
		if err != nil {
			return nil, err
		}
		if category.OrganizationID != vendor.OrganizationID {
			return nil, apperrors.ErrNotFound
		}
		vendor.DefaultCategoryID = req.DefaultCategoryID
	}
	vendor.UpdatedAt = time.Now()

	if err := s.expenseRepo.UpdateVendor(ctx, *vendor); err != nil {
		s.LogError(ctx, err, "Failed to update vendor", slog.String("vendor_id", vendorID))
		return nil, err
	}
	return vendor, nil
}

// DeleteVendor removes a vendor
func (s *expenseService) DeleteVendor(ctx context.Context, userID, vendorID string) error {
	if _, err := s.findManagedVendor(ctx, userID, vendorID); err != nil {
		return err
	}
	if err := s.expenseRepo.DeleteVendor(ctx, vendorID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete vendor", slog.String("vendor_id", vendorID))
		}
		return err
	}
	return nil
}
