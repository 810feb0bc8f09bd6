package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"

	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/platform/msgraph"
)

// Shared mocks for the service test suites. All suites live in one package, so
// every repository gets exactly one mock type here.

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
	FindUserByIDFn       func(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmailFn    func(ctx context.Context, email string) (*domain.User, error)
	UpdateRefreshTokenFn func(ctx context.Context, userID string, tokenHash *string, expiry *time.Time) error
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.FindUserByIDFn != nil {
		return m.FindUserByIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindUserByEmailFn != nil {
		return m.FindUserByEmailFn(ctx, email)
	}
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, tokenHash *string, expiry *time.Time) error {
	if m.UpdateRefreshTokenFn != nil {
		return m.UpdateRefreshTokenFn(ctx, userID, tokenHash, expiry)
	}
	args := m.Called(ctx, userID, tokenHash, expiry)
	return args.Error(0)
}

// --- Mock OrganizationRepository ---

type MockOrganizationRepository struct {
	mock.Mock
	ProvisionSignupFn            func(ctx context.Context, user domain.User, org domain.Organization, profile domain.Profile) error
	FindOrganizationByIDFn       func(ctx context.Context, organizationID string) (*domain.Organization, error)
	FindProfileByUserIDFn        func(ctx context.Context, userID string) (*domain.Profile, error)
	FindProfileByIDFn            func(ctx context.Context, profileID string) (*domain.Profile, error)
	ListProfilesByOrganizationFn func(ctx context.Context, organizationID string) ([]domain.Profile, error)
}

func (m *MockOrganizationRepository) ProvisionSignup(ctx context.Context, user domain.User, org domain.Organization, profile domain.Profile) error {
	if m.ProvisionSignupFn != nil {
		return m.ProvisionSignupFn(ctx, user, org, profile)
	}
	args := m.Called(ctx, user, org, profile)
	return args.Error(0)
}

func (m *MockOrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	if m.FindOrganizationByIDFn != nil {
		return m.FindOrganizationByIDFn(ctx, organizationID)
	}
	args := m.Called(ctx, organizationID)
	var org *domain.Organization
	if args.Get(0) != nil {
		org = args.Get(0).(*domain.Organization)
	}
	return org, args.Error(1)
}

func (m *MockOrganizationRepository) UpdateOrganization(ctx context.Context, org domain.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

func (m *MockOrganizationRepository) DeleteOrganization(ctx context.Context, organizationID string) error {
	args := m.Called(ctx, organizationID)
	return args.Error(0)
}

func (m *MockOrganizationRepository) FindProfileByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	if m.FindProfileByUserIDFn != nil {
		return m.FindProfileByUserIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var profile *domain.Profile
	if args.Get(0) != nil {
		profile = args.Get(0).(*domain.Profile)
	}
	return profile, args.Error(1)
}

func (m *MockOrganizationRepository) FindProfileByID(ctx context.Context, profileID string) (*domain.Profile, error) {
	if m.FindProfileByIDFn != nil {
		return m.FindProfileByIDFn(ctx, profileID)
	}
	args := m.Called(ctx, profileID)
	var profile *domain.Profile
	if args.Get(0) != nil {
		profile = args.Get(0).(*domain.Profile)
	}
	return profile, args.Error(1)
}

func (m *MockOrganizationRepository) ListProfilesByOrganization(ctx context.Context, organizationID string) ([]domain.Profile, error) {
	if m.ListProfilesByOrganizationFn != nil {
		return m.ListProfilesByOrganizationFn(ctx, organizationID)
	}
	args := m.Called(ctx, organizationID)
	var profiles []domain.Profile
	if args.Get(0) != nil {
		profiles = args.Get(0).([]domain.Profile)
	}
	return profiles, args.Error(1)
}

func (m *MockOrganizationRepository) UpdateProfileRole(ctx context.Context, profileID string, role domain.ProfileRole) error {
	args := m.Called(ctx, profileID, role)
	return args.Error(0)
}

// --- Mock ProjectRepository ---

type MockProjectRepository struct {
	mock.Mock
	FindProjectByIDFn            func(ctx context.Context, projectID string) (*domain.Project, error)
	ListProjectsByOrganizationFn func(ctx context.Context, organizationID string, status *domain.ProjectStatus, limit int, nextToken *string) ([]domain.Project, *string, error)
	FindOrCreateByClientAndNameFn func(ctx context.Context, candidate domain.Project) (*domain.Project, bool, error)
}

func (m *MockProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	if m.FindProjectByIDFn != nil {
		return m.FindProjectByIDFn(ctx, projectID)
	}
	args := m.Called(ctx, projectID)
	var project *domain.Project
	if args.Get(0) != nil {
		project = args.Get(0).(*domain.Project)
	}
	return project, args.Error(1)
}

func (m *MockProjectRepository) ListProjectsByOrganization(ctx context.Context, organizationID string, status *domain.ProjectStatus, limit int, nextToken *string) ([]domain.Project, *string, error) {
	if m.ListProjectsByOrganizationFn != nil {
		return m.ListProjectsByOrganizationFn(ctx, organizationID, status, limit, nextToken)
	}
	args := m.Called(ctx, organizationID, status, limit, nextToken)
	var projects []domain.Project
	if args.Get(0) != nil {
		projects = args.Get(0).([]domain.Project)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return projects, token, args.Error(2)
}

func (m *MockProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) DeleteProject(ctx context.Context, projectID string) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *MockProjectRepository) FindOrCreateByClientAndName(ctx context.Context, candidate domain.Project) (*domain.Project, bool, error) {
	if m.FindOrCreateByClientAndNameFn != nil {
		return m.FindOrCreateByClientAndNameFn(ctx, candidate)
	}
	args := m.Called(ctx, candidate)
	var project *domain.Project
	if args.Get(0) != nil {
		project = args.Get(0).(*domain.Project)
	}
	return project, args.Bool(1), args.Error(2)
}

// --- Mock TaskRepository ---

type MockTaskRepository struct {
	mock.Mock
	FindTaskByIDFn       func(ctx context.Context, taskID string) (*domain.Task, error)
	FindAssignmentByIDFn func(ctx context.Context, assignmentID string) (*domain.TaskAssignment, error)
}

func (m *MockTaskRepository) SaveTask(ctx context.Context, task domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) FindTaskByID(ctx context.Context, taskID string) (*domain.Task, error) {
	if m.FindTaskByIDFn != nil {
		return m.FindTaskByIDFn(ctx, taskID)
	}
	args := m.Called(ctx, taskID)
	var task *domain.Task
	if args.Get(0) != nil {
		task = args.Get(0).(*domain.Task)
	}
	return task, args.Error(1)
}

func (m *MockTaskRepository) ListTasksByProject(ctx context.Context, projectID string) ([]domain.Task, error) {
	args := m.Called(ctx, projectID)
	var tasks []domain.Task
	if args.Get(0) != nil {
		tasks = args.Get(0).([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *MockTaskRepository) UpdateTask(ctx context.Context, task domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) DeleteTask(ctx context.Context, taskID string) error {
	args := m.Called(ctx, taskID)
	return args.Error(0)
}

func (m *MockTaskRepository) SaveAssignment(ctx context.Context, assignment domain.TaskAssignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

func (m *MockTaskRepository) FindAssignmentByID(ctx context.Context, assignmentID string) (*domain.TaskAssignment, error) {
	if m.FindAssignmentByIDFn != nil {
		return m.FindAssignmentByIDFn(ctx, assignmentID)
	}
	args := m.Called(ctx, assignmentID)
	var assignment *domain.TaskAssignment
	if args.Get(0) != nil {
		assignment = args.Get(0).(*domain.TaskAssignment)
	}
	return assignment, args.Error(1)
}

func (m *MockTaskRepository) ListAssignmentsByTask(ctx context.Context, taskID string) ([]domain.TaskAssignment, error) {
	args := m.Called(ctx, taskID)
	var assignments []domain.TaskAssignment
	if args.Get(0) != nil {
		assignments = args.Get(0).([]domain.TaskAssignment)
	}
	return assignments, args.Error(1)
}

func (m *MockTaskRepository) UpdateAssignment(ctx context.Context, assignment domain.TaskAssignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

func (m *MockTaskRepository) DeleteAssignment(ctx context.Context, assignmentID string) error {
	args := m.Called(ctx, assignmentID)
	return args.Error(0)
}

// --- Mock InvoiceRepository ---

type MockInvoiceRepository struct {
	mock.Mock
	FindServiceByIDFn           func(ctx context.Context, serviceID string) (*domain.Service, error)
	FindInvoiceByIDFn           func(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	FindItemByIDFn              func(ctx context.Context, itemID string) (*domain.InvoiceItem, error)
	FindPaymentByIDFn           func(ctx context.Context, paymentID string) (*domain.Payment, error)
	SavePaymentAndRecalculateFn func(ctx context.Context, payment domain.Payment) (*domain.Invoice, error)
}

func (m *MockInvoiceRepository) SaveService(ctx context.Context, service domain.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error) {
	if m.FindServiceByIDFn != nil {
		return m.FindServiceByIDFn(ctx, serviceID)
	}
	args := m.Called(ctx, serviceID)
	var service *domain.Service
	if args.Get(0) != nil {
		service = args.Get(0).(*domain.Service)
	}
	return service, args.Error(1)
}

func (m *MockInvoiceRepository) ListServicesByProject(ctx context.Context, projectID string) ([]domain.Service, error) {
	args := m.Called(ctx, projectID)
	var services []domain.Service
	if args.Get(0) != nil {
		services = args.Get(0).([]domain.Service)
	}
	return services, args.Error(1)
}

func (m *MockInvoiceRepository) UpdateService(ctx context.Context, service domain.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteService(ctx context.Context, serviceID string) error {
	args := m.Called(ctx, serviceID)
	return args.Error(0)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	if m.FindInvoiceByIDFn != nil {
		return m.FindInvoiceByIDFn(ctx, invoiceID)
	}
	args := m.Called(ctx, invoiceID)
	var invoice *domain.Invoice
	if args.Get(0) != nil {
		invoice = args.Get(0).(*domain.Invoice)
	}
	return invoice, args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoicesByProject(ctx context.Context, projectID string) ([]domain.Invoice, error) {
	args := m.Called(ctx, projectID)
	var invoices []domain.Invoice
	if args.Get(0) != nil {
		invoices = args.Get(0).([]domain.Invoice)
	}
	return invoices, args.Error(1)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	args := m.Called(ctx, invoiceID)
	return args.Error(0)
}

func (m *MockInvoiceRepository) SaveItem(ctx context.Context, item domain.InvoiceItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindItemByID(ctx context.Context, itemID string) (*domain.InvoiceItem, error) {
	if m.FindItemByIDFn != nil {
		return m.FindItemByIDFn(ctx, itemID)
	}
	args := m.Called(ctx, itemID)
	var item *domain.InvoiceItem
	if args.Get(0) != nil {
		item = args.Get(0).(*domain.InvoiceItem)
	}
	return item, args.Error(1)
}

func (m *MockInvoiceRepository) ListItemsByInvoice(ctx context.Context, invoiceID string) ([]domain.InvoiceItem, error) {
	args := m.Called(ctx, invoiceID)
	var items []domain.InvoiceItem
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.InvoiceItem)
	}
	return items, args.Error(1)
}

func (m *MockInvoiceRepository) UpdateItem(ctx context.Context, item domain.InvoiceItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteItem(ctx context.Context, itemID string) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	if m.FindPaymentByIDFn != nil {
		return m.FindPaymentByIDFn(ctx, paymentID)
	}
	args := m.Called(ctx, paymentID)
	var payment *domain.Payment
	if args.Get(0) != nil {
		payment = args.Get(0).(*domain.Payment)
	}
	return payment, args.Error(1)
}

func (m *MockInvoiceRepository) ListPaymentsByInvoice(ctx context.Context, invoiceID string) ([]domain.Payment, error) {
	args := m.Called(ctx, invoiceID)
	var payments []domain.Payment
	if args.Get(0) != nil {
		payments = args.Get(0).([]domain.Payment)
	}
	return payments, args.Error(1)
}

func (m *MockInvoiceRepository) SavePaymentAndRecalculate(ctx context.Context, payment domain.Payment) (*domain.Invoice, error) {
	if m.SavePaymentAndRecalculateFn != nil {
		return m.SavePaymentAndRecalculateFn(ctx, payment)
	}
	args := m.Called(ctx, payment)
	var invoice *domain.Invoice
	if args.Get(0) != nil {
		invoice = args.Get(0).(*domain.Invoice)
	}
	return invoice, args.Error(1)
}

func (m *MockInvoiceRepository) UpdatePaymentAndRecalculate(ctx context.Context, payment domain.Payment) (*domain.Invoice, error) {
	args := m.Called(ctx, payment)
	var invoice *domain.Invoice
	if args.Get(0) != nil {
		invoice = args.Get(0).(*domain.Invoice)
	}
	return invoice, args.Error(1)
}

func (m *MockInvoiceRepository) DeletePaymentAndRecalculate(ctx context.Context, paymentID, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, paymentID, invoiceID)
	var invoice *domain.Invoice
	if args.Get(0) != nil {
		invoice = args.Get(0).(*domain.Invoice)
	}
	return invoice, args.Error(1)
}

// --- Mock ExpenseRepository ---

type MockExpenseRepository struct {
	mock.Mock
	FindExpenseByIDFn  func(ctx context.Context, expenseID string) (*domain.Expense, error)
	FindVendorByIDFn   func(ctx context.Context, vendorID string) (*domain.Vendor, error)
	FindCategoryByIDFn func(ctx context.Context, categoryID string) (*domain.ExpenseCategory, error)
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	if m.FindExpenseByIDFn != nil {
		return m.FindExpenseByIDFn(ctx, expenseID)
	}
	args := m.Called(ctx, expenseID)
	var expense *domain.Expense
	if args.Get(0) != nil {
		expense = args.Get(0).(*domain.Expense)
	}
	return expense, args.Error(1)
}

func (m *MockExpenseRepository) ListExpensesByOrganization(ctx context.Context, organizationID string, projectID *string) ([]domain.Expense, error) {
	args := m.Called(ctx, organizationID, projectID)
	var expenses []domain.Expense
	if args.Get(0) != nil {
		expenses = args.Get(0).([]domain.Expense)
	}
	return expenses, args.Error(1)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}

func (m *MockExpenseRepository) SaveCategory(ctx context.Context, category domain.ExpenseCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockExpenseRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.ExpenseCategory, error) {
	if m.FindCategoryByIDFn != nil {
		return m.FindCategoryByIDFn(ctx, categoryID)
	}
	args := m.Called(ctx, categoryID)
	var category *domain.ExpenseCategory
	if args.Get(0) != nil {
		category = args.Get(0).(*domain.ExpenseCategory)
	}
	return category, args.Error(1)
}

func (m *MockExpenseRepository) ListCategoriesByOrganization(ctx context.Context, organizationID string) ([]domain.ExpenseCategory, error) {
	args := m.Called(ctx, organizationID)
	var categories []domain.ExpenseCategory
	if args.Get(0) != nil {
		categories = args.Get(0).([]domain.ExpenseCategory)
	}
	return categories, args.Error(1)
}

func (m *MockExpenseRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

func (m *MockExpenseRepository) SaveVendor(ctx context.Context, vendor domain.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockExpenseRepository) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	if m.FindVendorByIDFn != nil {
		return m.FindVendorByIDFn(ctx, vendorID)
	}
	args := m.Called(ctx, vendorID)
	var vendor *domain.Vendor
	if args.Get(0) != nil {
		vendor = args.Get(0).(*domain.Vendor)
	}
	return vendor, args.Error(1)
}

func (m *MockExpenseRepository) ListVendorsByOrganization(ctx context.Context, organizationID string) ([]domain.Vendor, error) {
	args := m.Called(ctx, organizationID)
	var vendors []domain.Vendor
	if args.Get(0) != nil {
		vendors = args.Get(0).([]domain.Vendor)
	}
	return vendors, args.Error(1)
}

func (m *MockExpenseRepository) UpdateVendor(ctx context.Context, vendor domain.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteVendor(ctx context.Context, vendorID string) error {
	args := m.Called(ctx, vendorID)
	return args.Error(0)
}

// --- Mock DocumentRepository ---

type MockDocumentRepository struct {
	mock.Mock
	FindDocumentByIDFn func(ctx context.Context, documentID string) (*domain.Document, error)
}

func (m *MockDocumentRepository) SaveDocument(ctx context.Context, document domain.Document) error {
	args := m.Called(ctx, document)
	return args.Error(0)
}

func (m *MockDocumentRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	if m.FindDocumentByIDFn != nil {
		return m.FindDocumentByIDFn(ctx, documentID)
	}
	args := m.Called(ctx, documentID)
	var document *domain.Document
	if args.Get(0) != nil {
		document = args.Get(0).(*domain.Document)
	}
	return document, args.Error(1)
}

func (m *MockDocumentRepository) ListDocumentsByProject(ctx context.Context, projectID string, kind domain.DocumentKind) ([]domain.Document, error) {
	args := m.Called(ctx, projectID, kind)
	var documents []domain.Document
	if args.Get(0) != nil {
		documents = args.Get(0).([]domain.Document)
	}
	return documents, args.Error(1)
}

func (m *MockDocumentRepository) UpdateDocument(ctx context.Context, document domain.Document) error {
	args := m.Called(ctx, document)
	return args.Error(0)
}

func (m *MockDocumentRepository) DeleteDocument(ctx context.Context, documentID string) error {
	args := m.Called(ctx, documentID)
	return args.Error(0)
}

// --- Mock OneDriveRepository ---

type MockOneDriveRepository struct {
	mock.Mock
	FindConnectionByOrganizationFn func(ctx context.Context, organizationID string) (*domain.OneDriveConnection, error)
	UpsertFileFn                   func(ctx context.Context, file domain.OneDriveFile) error
}

func (m *MockOneDriveRepository) SaveConnection(ctx context.Context, conn domain.OneDriveConnection) error {
	args := m.Called(ctx, conn)
	return args.Error(0)
}

func (m *MockOneDriveRepository) FindConnectionByOrganization(ctx context.Context, organizationID string) (*domain.OneDriveConnection, error) {
	if m.FindConnectionByOrganizationFn != nil {
		return m.FindConnectionByOrganizationFn(ctx, organizationID)
	}
	args := m.Called(ctx, organizationID)
	var conn *domain.OneDriveConnection
	if args.Get(0) != nil {
		conn = args.Get(0).(*domain.OneDriveConnection)
	}
	return conn, args.Error(1)
}

func (m *MockOneDriveRepository) UpdateConnectionTokens(ctx context.Context, connectionID, accessToken, refreshToken string, expiry time.Time) error {
	args := m.Called(ctx, connectionID, accessToken, refreshToken, expiry)
	return args.Error(0)
}

func (m *MockOneDriveRepository) UpdateLastSyncAt(ctx context.Context, connectionID string, syncedAt time.Time) error {
	args := m.Called(ctx, connectionID, syncedAt)
	return args.Error(0)
}

func (m *MockOneDriveRepository) DeleteConnection(ctx context.Context, connectionID string) error {
	args := m.Called(ctx, connectionID)
	return args.Error(0)
}

func (m *MockOneDriveRepository) UpsertFile(ctx context.Context, file domain.OneDriveFile) error {
	if m.UpsertFileFn != nil {
		return m.UpsertFileFn(ctx, file)
	}
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *MockOneDriveRepository) FindFileByRemoteID(ctx context.Context, connectionID, remoteFileID string) (*domain.OneDriveFile, error) {
	args := m.Called(ctx, connectionID, remoteFileID)
	var file *domain.OneDriveFile
	if args.Get(0) != nil {
		file = args.Get(0).(*domain.OneDriveFile)
	}
	return file, args.Error(1)
}

func (m *MockOneDriveRepository) ListFilesByOrganization(ctx context.Context, organizationID string) ([]domain.OneDriveFile, error) {
	args := m.Called(ctx, organizationID)
	var files []domain.OneDriveFile
	if args.Get(0) != nil {
		files = args.Get(0).([]domain.OneDriveFile)
	}
	return files, args.Error(1)
}

func (m *MockOneDriveRepository) DeleteFilesByConnection(ctx context.Context, connectionID string) error {
	args := m.Called(ctx, connectionID)
	return args.Error(0)
}

// --- Mock ObjectStore ---

type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Upload(ctx context.Context, key string, contentType string, body []byte) error {
	args := m.Called(ctx, key, contentType, body)
	return args.Error(0)
}

func (m *MockObjectStore) PresignedGetURL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// --- Mock Graph client ---

type MockGraphClient struct {
	mock.Mock
	TokenSourceFn      func(ctx context.Context, token *oauth2.Token) oauth2.TokenSource
	ListRootChildrenFn func(ctx context.Context, token *oauth2.Token) ([]msgraph.DriveItem, error)
}

func (m *MockGraphClient) AuthCodeURL(state string) string {
	args := m.Called(state)
	return args.String(0)
}

func (m *MockGraphClient) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	var token *oauth2.Token
	if args.Get(0) != nil {
		token = args.Get(0).(*oauth2.Token)
	}
	return token, args.Error(1)
}

func (m *MockGraphClient) TokenSource(ctx context.Context, token *oauth2.Token) oauth2.TokenSource {
	if m.TokenSourceFn != nil {
		return m.TokenSourceFn(ctx, token)
	}
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(oauth2.TokenSource)
}

func (m *MockGraphClient) GetUserEmail(ctx context.Context, token *oauth2.Token) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

func (m *MockGraphClient) ListRootChildren(ctx context.Context, token *oauth2.Token) ([]msgraph.DriveItem, error) {
	if m.ListRootChildrenFn != nil {
		return m.ListRootChildrenFn(ctx, token)
	}
	args := m.Called(ctx, token)
	var items []msgraph.DriveItem
	if args.Get(0) != nil {
		items = args.Get(0).([]msgraph.DriveItem)
	}
	return items, args.Error(1)
}
