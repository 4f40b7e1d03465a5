package migrations

import (
	"context"

	"github.com/Nynra/pyserver-tools/pkg/logx"
	"github.com/Nynra/pyserver-tools/pkg/sqlx"
)

var createPermissionsTable = `
CREATE TABLE IF NOT EXISTS auth_permission
(
  id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
  uuid BINARY(16) NOT NULL UNIQUE,
  codename VARCHAR(255) NOT NULL UNIQUE,
  name VARCHAR(255) NOT NULL
)
`

var deletePermissionsTable = `DROP TABLE auth_permission`

func CreatePermissionsTableUp(ctx context.Context, logger logx.Logger, tx *sqlx.Tx) error {
	logger = logger.WithName("create-permissions-table")
	logger.Debug(starting)
	defer logger.Debug(finished)

	_, err := tx.ExecContext(ctx, createPermissionsTable)

	return err
}

func CreatePermissionsTableDown(ctx context.Context, logger logx.Logger, tx *sqlx.Tx) error {
	logger = logger.WithName("create-permissions-table")
	logger.Debug(starting)
	defer logger.Debug(finished)

	_, err := tx.ExecContext(ctx, deletePermissionsTable)

	return err
}
