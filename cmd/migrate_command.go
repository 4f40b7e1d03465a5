package cmd

import (
	"context"

	"github.com/Nynra/pyserver-tools/cmd/flags"
	"github.com/Nynra/pyserver-tools/pkg/repos/db"
	"github.com/Nynra/pyserver-tools/pkg/sqlx"
)

// MigrateCommand brings the SQL schema up to date and verifies the applied
// migrations afterwards.
type MigrateCommand struct {
	Logger flags.LagerFlag

	MigrationsTableName string `long:"migrations-table-name" description:"Name of the table which holds migration information (default: pyserver_tools_migrations)"`

	SQL flags.DBFlag `group:"SQL" namespace:"sql"`
}

// TableName is the migrations table the command applies into, falling back
// to the canonical table name when the flag was not given.
func (cmd MigrateCommand) TableName() string {
	if cmd.MigrationsTableName != "" {
		return cmd.MigrationsTableName
	}

	return db.MigrationsTableName
}

func (cmd MigrateCommand) Execute([]string) error {
	logger := cmd.Logger.Logger("pyserver-tools").WithName("migrate")

	conn, err := cmd.SQL.Connect(logger)
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx := context.Background()
	tableName := cmd.TableName()

	err = sqlx.ApplyMigrations(ctx, logger, conn, tableName, db.Migrations)
	if err != nil {
		return err
	}

	verified, err := sqlx.VerifyAppliedMigrations(ctx, logger, conn, tableName, db.Migrations)
	if err != nil {
		return err
	}
	if !verified {
		return ErrMigrationsOutOfSync
	}

	return nil
}
