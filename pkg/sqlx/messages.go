package sqlx

const (
	starting  = "starting"
	finished  = "finished"
	success   = "success"
	committed = "committed"

	failedToStartTransaction = "failed-to-start-transaction"
	failedToCommit           = "failed-to-commit"
	failedToRollback         = "failed-to-rollback"

	failedToCreateTable           = "failed-to-create-table"
	failedToApplyMigration        = "failed-to-apply-migration"
	failedToParseAppliedMigration = "failed-to-parse-applied-migration"
	failedToQueryMigrations       = "failed-to-query-migrations"
	retrievedAppliedMigrations    = "retrieved-applied-migrations"
	skippedAppliedMigration       = "skipped-applied-migration"

	migrationCountMismatch = "migration-count-mismatch"
	migrationNotFound      = "migration-not-found"
	migrationMismatch      = "migration-mismatch"
)
