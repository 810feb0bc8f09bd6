package services

import (
	portsrepo "github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/ports/repositories"
	portssvc "github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/ports/services"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/platform/config"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/platform/msgraph"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/platform/storage"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	store storage.ObjectStore,
	graph msgraph.Client,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The authorizer comes first since every organization-scoped service
	// depends on it.
	container.Authorizer = NewAuthorizerService(repos.OrgRepo)

	container.User = NewUserService(repos.UserRepo, repos.OrgRepo)
	container.Token = NewTokenService(cfg, container.User)

	container.Organization = NewOrganizationService(repos.OrgRepo, container.Authorizer)
	container.Project = NewProjectService(repos.ProjectRepo, container.Authorizer)
	container.Task = NewTaskService(repos.TaskRepo, repos.ProjectRepo, repos.OrgRepo, container.Authorizer)
	container.Billing = NewBillingService(repos.InvoiceRepo, repos.ProjectRepo, container.Authorizer)
	container.Expense = NewExpenseService(repos.ExpenseRepo, repos.ProjectRepo, container.Authorizer)
	container.Document = NewDocumentService(repos.DocumentRepo, repos.ProjectRepo, store, container.Authorizer)
	container.OneDrive = NewOneDriveService(repos.OneDriveRepo, repos.ProjectRepo, graph, container.Authorizer)

	return container
}
