package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This allows for easy dependency injection into the service layer.
type RepositoryProvider struct {
	UserRepo     UserRepositoryFacade
	OrgRepo      OrganizationRepositoryFacade
	ProjectRepo  ProjectRepositoryFacade
	TaskRepo     TaskRepositoryFacade
	InvoiceRepo  InvoiceRepositoryFacade
	ExpenseRepo  ExpenseRepositoryFacade
	DocumentRepo DocumentRepositoryFacade
	OneDriveRepo OneDriveRepositoryFacade
}
