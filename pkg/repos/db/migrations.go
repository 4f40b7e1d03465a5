package db

import (
	"github.com/Nynra/pyserver-tools/pkg/repos/db/migrations"
	"github.com/Nynra/pyserver-tools/pkg/sqlx"
)

var MigrationsTableName = "pyserver_tools_migrations"

var Migrations = []sqlx.Migration{
	{
		Name: "create_groups_table",
		Up:   migrations.CreateGroupsTableUp,
		Down: migrations.CreateGroupsTableDown,
	},
	{
		Name: "create_permissions_table",
		Up:   migrations.CreatePermissionsTableUp,
		Down: migrations.CreatePermissionsTableDown,
	},
	{
		Name: "create_group_permissions_table",
		Up:   migrations.CreateGroupPermissionsTableUp,
		Down: migrations.CreateGroupPermissionsTableDown,
	},
	{
		Name: "create_group_memberships_table",
		Up:   migrations.CreateGroupMembershipsTableUp,
		Down: migrations.CreateGroupMembershipsTableDown,
	},
}
