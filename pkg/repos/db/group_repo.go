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
	"github.com/Nynra/pyserver-tools/pkg/sqlx"
)

func (s *Store) CreateGroup(
	ctx context.Context,
	logger logx.Logger,
	name string,
	permissions ...groupauth.Permission,
) (g groupauth.Group, err error) {
	logger = logger.WithName("data-service")

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		logger.Error(failedToStartTransaction, err)
		return
	}

	defer func() {
		if commitErr := sqlx.Commit(logger, tx, err); commitErr != nil {
			err = commitErr
		}
	}()

	var g2 group
	g2, err = createGroupAndAssignPermissions(ctx, logger, tx, name, permissions...)
	if err != nil {
		return
	}
	g = g2.Group

	return
}

func (s *Store) FindGroup(
	ctx context.Context,
	logger logx.Logger,
	query repos.FindGroupQuery,
) (groupauth.Group, error) {
	g, err := findGroup(ctx, logger.WithName("data-service"), s.conn, query.GroupName)
	if err != nil {
		return groupauth.Group{}, err
	}

	return g.Group, nil
}

func (s *Store) DeleteGroup(
	ctx context.Context,
	logger logx.Logger,
	name string,
) error {
	return deleteGroup(ctx, logger.WithName("data-service"), s.conn, name)
}

func (s *Store) ListGroupPermissions(
	ctx context.Context,
	logger logx.Logger,
	query repos.ListGroupPermissionsQuery,
) ([]groupauth.Permission, error) {
	p, err := listGroupPermissions(ctx, logger.WithName("data-service"), s.conn, query.GroupName)
	if err != nil {
		return nil, err
	}

	var permissions []groupauth.Permission
	for _, perm := range p {
		permissions = append(permissions, perm.Permission)
	}

	return permissions, nil
}

func (s *Store) AssignPermission(
	ctx context.Context,
	logger logx.Logger,
	groupName string,
	perm groupauth.Permission,
) (err error) {
	logger = logger.WithName("data-service")

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		logger.Error(failedToStartTransaction, err)
		return
	}

	defer func() {
		if commitErr := sqlx.Commit(logger, tx, err); commitErr != nil {
			err = commitErr
		}
	}()

	err = assignPermission(ctx, logger, tx, groupName, perm)

	return
}

func (s *Store) ClearPermissions(
	ctx context.Context,
	logger logx.Logger,
	groupName string,
) error {
	logger = logger.WithName("data-service").WithName("clear-permissions")

	g, err := findGroup(ctx, logger, s.conn, groupName)
	if err != nil {
		return err
	}

	_, err = squirrel.Delete("group_permission").
		Where(squirrel.Eq{
			"group_id": g.ID,
		}).
		RunWith(s.conn.Conn).
		ExecContext(ctx)
	if err != nil {
		logger.Error(failedToClearPermissions, err)
		return err
	}

	return nil
}

func createGroupAndAssignPermissions(
	ctx context.Context,
	logger logx.Logger,
	tx *sqlx.Tx,
	name string,
	permissions ...groupauth.Permission,
) (group, error) {
	g, err := createGroup(ctx, logger, tx, name)
	if err != nil {
		return group{}, err
	}

	for _, perm := range permissions {
		p, err := ensurePermission(ctx, logger, tx, perm)
		if err != nil {
			return group{}, err
		}

		err = linkPermission(ctx, logger, tx, g.ID, p.ID)
		if err != nil {
			return group{}, err
		}
	}

	return g, nil
}

func createGroup(
	ctx context.Context,
	logger logx.Logger,
	conn squirrel.BaseRunner,
	name string,
) (group, error) {
	logger = logger.WithName("create-group")
	u := uuid.NewV4().Bytes()

	result, err := squirrel.Insert("auth_group").
		Columns("uuid", "name").
		Values(u, name).
		RunWith(conn).
		ExecContext(ctx)

	switch e := err.(type) {
	case nil:
		groupID, err2 := result.LastInsertId()
		if err2 != nil {
			logger.Error(failedToRetrieveID, err2)
			return group{}, err2
		}

		return group{
			ID: id(groupID),
			Group: groupauth.Group{
				Name: name,
			},
		}, nil
	case *mysql.MySQLError:
		if e.Number == MySQLErrorCodeDuplicateKey {
			logger.Debug(errGroupAlreadyExists)
			return group{}, groupauth.ErrGroupAlreadyExists
		}

		logger.Error(failedToCreateGroup, err)
		return group{}, err
	default:
		logger.Error(failedToCreateGroup, err)
		return group{}, err
	}
}

func findGroup(
	ctx context.Context,
	logger logx.Logger,
	conn squirrel.BaseRunner,
	name string,
) (group, error) {
	logger = logger.WithName("find-group")

	var (
		groupID   int64
		groupName string
	)

	err := squirrel.Select("id", "name").
		From("auth_group").
		Where(squirrel.Eq{
			"name": name,
		}).
		RunWith(conn).
		ScanContext(ctx, &groupID, &groupName)

	switch err {
	case nil:
		return group{
			ID: id(groupID),
			Group: groupauth.Group{
				Name: groupName,
			},
		}, nil
	case sql.ErrNoRows:
		logger.Debug(errGroupNotFound)
		return group{}, groupauth.ErrGroupNotFound
	default:
		logger.Error(failedToFindGroup, err)
		return group{}, err
	}
}

func deleteGroup(
	ctx context.Context,
	logger logx.Logger,
	conn squirrel.BaseRunner,
	name string,
) error {
	logger = logger.WithName("delete-group")

	result, err := squirrel.Delete("auth_group").
		Where(squirrel.Eq{
			"name": name,
		}).
		RunWith(conn).
		ExecContext(ctx)

	switch err {
	case nil:
		n, err2 := result.RowsAffected()
		if err2 != nil {
			logger.Error(failedToCountRowsAffected, err2)
			return err2
		}

		if n == 0 {
			logger.Debug(errGroupNotFound)
			return groupauth.ErrGroupNotFound
		}

		return nil
	case sql.ErrNoRows:
		logger.Debug(errGroupNotFound)
		return groupauth.ErrGroupNotFound
	default:
		logger.Error(failedToDeleteGroup, err)
		return err
	}
}

func listGroupPermissions(
	ctx context.Context,
	logger logx.Logger,
	conn squirrel.BaseRunner,
	groupName string,
) ([]permission, error) {
	logger = logger.WithName("list-group-permissions")

	g, err := findGroup(ctx, logger, conn, groupName)
	if err != nil {
		return nil, err
	}

	rows, err := squirrel.Select("p.id", "p.codename", "p.name").
		From("auth_permission p").
		Join("group_permission gp ON gp.permission_id = p.id").
		Where(squirrel.Eq{
			"gp.group_id": g.ID,
		}).
		RunWith(conn).
		QueryContext(ctx)
	if err != nil {
		logger.Error(failedToListGroupPermissions, err)
		return nil, err
	}
	defer rows.Close()

	var permissions []permission
	for rows.Next() {
		var (
			permissionID int64
			codename     string
			name         string
		)
		if err = rows.Scan(&permissionID, &codename, &name); err != nil {
			logger.Error(failedToListGroupPermissions, err)
			return nil, err
		}

		permissions = append(permissions, permission{
			ID: id(permissionID),
			Permission: groupauth.Permission{
				Codename: codename,
				Name:     name,
			},
		})
	}

	if err = rows.Err(); err != nil {
		logger.Error(failedToListGroupPermissions, err)
		return nil, err
	}

	return permissions, nil
}

func assignPermission(
	ctx context.Context,
	logger logx.Logger,
	tx *sqlx.Tx,
	groupName string,
	perm groupauth.Permission,
) error {
	g, err := findGroup(ctx, logger, tx, groupName)
	if err != nil {
		return err
	}

	p, err := ensurePermission(ctx, logger, tx, perm)
	if err != nil {
		return err
	}

	return linkPermission(ctx, logger, tx, g.ID, p.ID)
}

func linkPermission(
	ctx context.Context,
	logger logx.Logger,
	conn squirrel.BaseRunner,
	groupID id,
	permissionID id,
) error {
	logger = logger.WithName("link-permission")

	_, err := squirrel.Insert("group_permission").
		Columns("group_id", "permission_id").
		Values(groupID, permissionID).
		RunWith(conn).
		ExecContext(ctx)

	switch e := err.(type) {
	case nil:
		return nil
	case *mysql.MySQLError:
		if e.Number == MySQLErrorCodeDuplicateKey {
			logger.Debug(errPermissionAlreadyExists)
			return groupauth.ErrPermissionAlreadyExists
		}

		logger.Error(failedToAssignPermission, err)
		return err
	default:
		logger.Error(failedToAssignPermission, err)
		return err
	}
}
