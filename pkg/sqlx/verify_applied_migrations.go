package sqlx

import (
	"context"

	"github.com/Nynra/pyserver-tools/pkg/logx"
)

func VerifyAppliedMigrations(
	ctx context.Context,
	logger logx.Logger,
	conn *DB,
	tableName string,
	migrations []Migration,
) (bool, error) {
	retrieveLogger := logger.WithName("retrieve-applied-migrations")
	appliedMigrations, err := RetrieveAppliedMigrations(ctx, retrieveLogger, conn, tableName)
	if err != nil {
		return false, err
	}

	if len(migrations) != len(appliedMigrations) {
		logger.Info(migrationCountMismatch)
		return false, nil
	}

	for i, migration := range migrations {
		appliedMigration, exists := appliedMigrations[i]
		if !exists {
			logger.Info(migrationNotFound, logx.Data{
				Key:   "name",
				Value: migration.Name,
			})
			return false, nil
		}

		if migration.Name != appliedMigration.Name {
			logger.Info(migrationMismatch, logx.Data{
				Key:   "expected_name",
				Value: migration.Name,
			}, logx.Data{
				Key:   "applied_name",
				Value: appliedMigration.Name,
			})
			return false, nil
		}
	}

	logger.Debug(success)
	return true, nil
}
