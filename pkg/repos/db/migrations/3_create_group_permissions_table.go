package migrations

import (
	"context"

	"github.com/Nynra/pyserver-tools/pkg/logx"
	"github.com/Nynra/pyserver-tools/pkg/sqlx"
)

var createGroupPermissionsTable = `
CREATE TABLE IF NOT EXISTS group_permission
(
  id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
  group_id BIGINT NOT NULL,
  permission_id BIGINT NOT NULL
)
`

var groupPermissionsGroupForeignKey = `
ALTER TABLE
	group_permission
ADD CONSTRAINT
	group_permission_group_fkey
FOREIGN KEY(group_id) REFERENCES auth_group(id)
ON DELETE CASCADE
`

var groupPermissionsPermissionForeignKey = `
ALTER TABLE
	group_permission
ADD CONSTRAINT
	group_permission_permission_fkey
FOREIGN KEY(permission_id) REFERENCES auth_permission(id)
ON DELETE CASCADE
`

var uniqueGroupPermissionsConstraint = `
ALTER TABLE
	group_permission
ADD UNIQUE INDEX
	unique_group_permission (group_id, permission_id)
`

var deleteGroupPermissionsTable = `DROP TABLE group_permission`

func CreateGroupPermissionsTableUp(ctx context.Context, logger logx.Logger, tx *sqlx.Tx) error {
	logger = logger.WithName("create-group-permissions-table")
	logger.Debug(starting)
	defer logger.Debug(finished)

	for _, stmt := range []string{
		createGroupPermissionsTable,
		groupPermissionsGroupForeignKey,
		groupPermissionsPermissionForeignKey,
		uniqueGroupPermissionsConstraint,
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	return nil
}

func CreateGroupPermissionsTableDown(ctx context.Context, logger logx.Logger, tx *sqlx.Tx) error {
	logger = logger.WithName("create-group-permissions-table")
	logger.Debug(starting)
	defer logger.Debug(finished)

	_, err := tx.ExecContext(ctx, deleteGroupPermissionsTable)

	return err
}
