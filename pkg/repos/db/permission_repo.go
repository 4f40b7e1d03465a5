package db

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/go-sql-driver/mysql"
	uuid "github.com/satori/go.uuid"

	"github.com/Nynra/pyserver-tools/pkg/groupauth"
	"github.com/Nynra/pyserver-tools/pkg/logx"
	"github.com/Nynra/pyserver-tools/pkg/repos"
)

func (s *Store) CreatePermission(
	ctx context.Context,
	logger logx.Logger,
	perm groupauth.Permission,
) error {
	_, err := createPermission(ctx, logger.WithName("data-service"), s.conn.Conn, perm)

	return err
}

func (s *Store) FindPermission(
	ctx context.Context,
	logger logx.Logger,
	query repos.FindPermissionQuery,
) (groupauth.Permission, error) {
	p, err := findPermission(ctx, logger.WithName("data-service"), s.conn.Conn, query.Codename)
	if err != nil {
		return groupauth.Permission{}, err
	}

	return p.Permission, nil
}

func createPermission(
	ctx context.Context,
	logger logx.Logger,
	conn squirrel.BaseRunner,
	perm groupauth.Permission,
) (permission, error) {
	logger = logger.WithName("create-permission")
	u := uuid.NewV4().Bytes()

	result, err := squirrel.Insert("auth_permission").
		Columns("uuid", "codename", "name").
		Values(u, perm.Codename, perm.Name).
		RunWith(conn).
		ExecContext(ctx)

	switch e := err.(type) {
	case nil:
		permissionID, err2 := result.LastInsertId()
		if err2 != nil {
			logger.Error(failedToRetrieveID, err2)
			return permission{}, err2
		}

		return permission{
			ID:         id(permissionID),
			Permission: perm,
		}, nil
	case *mysql.MySQLError:
		if e.Number == MySQLErrorCodeDuplicateKey {
			logger.Debug(errPermissionAlreadyExists)
			return permission{}, groupauth.ErrPermissionAlreadyExists
		}

		logger.Error(failedToCreatePermission, err)
		return permission{}, err
	default:
		logger.Error(failedToCreatePermission, err)
		return permission{}, err
	}
}

func findPermission(
	ctx context.Context,
	logger logx.Logger,
	conn squirrel.BaseRunner,
	codename string,
) (permission, error) {
	logger = logger.WithName("find-permission")

	var (
		permissionID int64
		name         string
	)

	err := squirrel.Select("id", "name").
		From("auth_permission").
		Where(squirrel.Eq{
			"codename": codename,
		}).
		RunWith(conn).
		ScanContext(ctx, &permissionID, &name)

	switch err {
	case nil:
		return permission{
			ID: id(permissionID),
			Permission: groupauth.Permission{
				Codename: codename,
				Name:     name,
			},
		}, nil
	case sql.ErrNoRows:
		logger.Debug(errPermissionNotFound)
		return permission{}, groupauth.ErrPermissionNotFound
	default:
		logger.Error(failedToFindPermission, err)
		return permission{}, err
	}
}

// ensurePermission resolves the permission row for a codename, creating it
// when the registry does not know it yet.
func ensurePermission(
	ctx context.Context,
	logger logx.Logger,
	conn squirrel.BaseRunner,
	perm groupauth.Permission,
) (permission, error) {
	p, err := createPermission(ctx, logger, conn, perm)
	if err == nil {
		return p, nil
	}
	if err != groupauth.ErrPermissionAlreadyExists {
		return permission{}, err
	}

	return findPermission(ctx, logger, conn, perm.Codename)
}
