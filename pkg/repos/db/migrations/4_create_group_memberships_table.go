package migrations

import (
	"context"

	"github.com/Nynra/pyserver-tools/pkg/logx"
	"github.com/Nynra/pyserver-tools/pkg/sqlx"
)

var createGroupMembershipsTable = `
CREATE TABLE IF NOT EXISTS group_membership
(
  id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
  group_id BIGINT NOT NULL,
  user_id VARCHAR(255) NOT NULL
)
`

var groupMembershipsGroupForeignKey = `
ALTER TABLE
	group_membership
ADD CONSTRAINT
	group_membership_group_fkey
FOREIGN KEY(group_id) REFERENCES auth_group(id)
ON DELETE CASCADE
`

var uniqueGroupMembershipsConstraint = `
ALTER TABLE
	group_membership
ADD UNIQUE INDEX
	unique_group_membership (group_id, user_id)
`

var deleteGroupMembershipsTable = `DROP TABLE group_membership`

func CreateGroupMembershipsTableUp(ctx context.Context, logger logx.Logger, tx *sqlx.Tx) error {
	logger = logger.WithName("create-group-memberships-table")
	logger.Debug(starting)
	defer logger.Debug(finished)

	for _, stmt := range []string{
		createGroupMembershipsTable,
		groupMembershipsGroupForeignKey,
		uniqueGroupMembershipsConstraint,
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	return nil
}

func CreateGroupMembershipsTableDown(ctx context.Context, logger logx.Logger, tx *sqlx.Tx) error {
	logger = logger.WithName("create-group-memberships-table")
	logger.Debug(starting)
	defer logger.Debug(finished)

	_, err := tx.ExecContext(ctx, deleteGroupMembershipsTable)

	return err
}
