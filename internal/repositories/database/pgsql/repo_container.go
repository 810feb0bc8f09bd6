package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository to one shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:     newPgxUserRepository(dbPool),
		OrgRepo:      newPgxOrganizationRepository(dbPool),
		ProjectRepo:  newPgxProjectRepository(dbPool),
		TaskRepo:     newPgxTaskRepository(dbPool),
		InvoiceRepo:  newPgxInvoiceRepository(dbPool),
		ExpenseRepo:  newPgxExpenseRepository(dbPool),
		DocumentRepo: newPgxDocumentRepository(dbPool),
		OneDriveRepo: newPgxOneDriveRepository(dbPool),
	}
}
