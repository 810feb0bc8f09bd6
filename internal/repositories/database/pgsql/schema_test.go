package pgsql_test

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The schema encodes the deletion semantics the services rely on: child rows
// follow their parent out, while rows that reference a creator profile block
// the profile's removal on its own. These tests pin the migration so a
// careless edit can't silently change either.

func readInitMigration(t *testing.T) string {
	t.Helper()
	sql, err := os.ReadFile("../../../../migrations/000001_init.up.sql")
	require.NoError(t, err, "init migration must exist")
	return string(sql)
}

func TestInitMigration_EveryForeignKeyDeclaresDeleteBehavior(t *testing.T) {
	sql := readInitMigration(t)

	refs := regexp.MustCompile(`(?i)REFERENCES\s+\w+\([^)]+\)(\s+ON DELETE (CASCADE|SET NULL|NO ACTION))?`).FindAllString(sql, -1)
	require.NotEmpty(t, refs)
	for _, ref := range refs {
		assert.Regexp(t, `(?i)ON DELETE (CASCADE|SET NULL|NO ACTION)`, ref,
			"foreign key without an explicit delete action: %s", ref)
	}
}

func TestInitMigration_TenantRowsCascadeFromOrganization(t *testing.T) {
	sql := readInitMigration(t)

	childTables := []string{
		"profiles", "projects", "tasks", "services", "invoices",
		"expense_categories", "vendors", "expenses", "documents",
		"onedrive_connections", "onedrive_files",
	}
	for _, table := range childTables {
		stmt := tableDefinition(t, sql, table)
		assert.Contains(t, stmt, "REFERENCES organizations(organization_id) ON DELETE CASCADE",
			"table %s must cascade from its organization", table)
	}
}

// Creator references must use NO ACTION rather than RESTRICT. Both block a
// standalone profile delete, but RESTRICT is checked immediately per row, which
// would abort an organization delete as soon as the profiles cascade fires
// while projects and invoices still reference them. NO ACTION defers the check
// to the end of the statement, by which point the cascade has removed every
// referencing row, so DELETE FROM organizations succeeds in one statement.
func TestInitMigration_CreatorReferencesSurviveOrganizationCascade(t *testing.T) {
	sql := readInitMigration(t)

	for _, table := range []string{"projects", "tasks", "invoices", "expenses"} {
		stmt := tableDefinition(t, sql, table)
		assert.Contains(t, stmt, "created_by TEXT NOT NULL REFERENCES profiles(profile_id) ON DELETE NO ACTION",
			"table %s creator reference must be declared NO ACTION", table)
		assert.NotContains(t, stmt, "ON DELETE RESTRICT",
			"table %s must not use an immediately-checked delete action", table)
	}

	documents := tableDefinition(t, sql, "documents")
	assert.Contains(t, documents, "uploaded_by TEXT NOT NULL REFERENCES profiles(profile_id) ON DELETE NO ACTION")
	assert.NotContains(t, documents, "ON DELETE RESTRICT")
}

func TestInitMigration_UniquenessConstraints(t *testing.T) {
	sql := readInitMigration(t)

	assert.Contains(t, tableDefinition(t, sql, "users"), "email TEXT NOT NULL UNIQUE")
	assert.Contains(t, tableDefinition(t, sql, "profiles"), "user_id TEXT NOT NULL UNIQUE")
	assert.Contains(t, tableDefinition(t, sql, "task_assignments"), "UNIQUE (task_id, profile_id, date_worked)")
	assert.Contains(t, tableDefinition(t, sql, "invoices"), "UNIQUE (organization_id, invoice_number)")
	assert.Contains(t, tableDefinition(t, sql, "expense_categories"), "UNIQUE (organization_id, name)")
	assert.Contains(t, tableDefinition(t, sql, "onedrive_files"), "UNIQUE (connection_id, remote_file_id)")
	assert.Contains(t, tableDefinition(t, sql, "onedrive_connections"), "organization_id TEXT NOT NULL UNIQUE")
}

func TestInitMigration_PaymentAmountsArePositive(t *testing.T) {
	sql := readInitMigration(t)

	assert.Contains(t, tableDefinition(t, sql, "payments"), "CHECK (amount > 0)")
}

func TestInitMigration_DownMigrationDropsEveryTable(t *testing.T) {
	up := readInitMigration(t)
	down, err := os.ReadFile("../../../../migrations/000001_init.down.sql")
	require.NoError(t, err)

	created := regexp.MustCompile(`(?i)CREATE TABLE (\w+)`).FindAllStringSubmatch(up, -1)
	require.NotEmpty(t, created)
	for _, match := range created {
		assert.Contains(t, string(down), "DROP TABLE IF EXISTS "+match[1],
			"down migration must drop %s", match[1])
	}
}

// tableDefinition extracts a single CREATE TABLE statement from the migration.
func tableDefinition(t *testing.T, sql, table string) string {
	t.Helper()
	start := strings.Index(sql, "CREATE TABLE "+table+" (")
	require.GreaterOrEqual(t, start, 0, "no CREATE TABLE statement for %s", table)
	end := strings.Index(sql[start:], ";")
	require.Greater(t, end, 0)
	return sql[start : start+end]
}
