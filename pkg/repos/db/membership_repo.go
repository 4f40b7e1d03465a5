package db

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/go-sql-driver/mysql"

	"github.com/Nynra/pyserver-tools/pkg/groupauth"
	"github.com/Nynra/pyserver-tools/pkg/logx"
	"github.com/Nynra/pyserver-tools/pkg/repos"
)

func (s *Store) AddMember(
	ctx context.Context,
	logger logx.Logger,
	groupName string,
	userID string,
) error {
	logger = logger.WithName("data-service").WithName("add-member")

	g, err := findGroup(ctx, logger, s.conn.Conn, groupName)
	if err != nil {
		return err
	}

	_, err = squirrel.Insert("group_membership").
		Columns("group_id", "user_id").
		Values(g.ID, userID).
		RunWith(s.conn.Conn).
		ExecContext(ctx)

	switch e := err.(type) {
	case nil:
		return nil
	case *mysql.MySQLError:
		if e.Number == MySQLErrorCodeDuplicateKey {
			logger.Debug(errMembershipAlreadyExists)
			return groupauth.ErrMembershipAlreadyExists
		}

		logger.Error(failedToAddMember, err)
		return err
	default:
		logger.Error(failedToAddMember, err)
		return err
	}
}

func (s *Store) RemoveMember(
	ctx context.Context,
	logger logx.Logger,
	groupName string,
	userID string,
) error {
	logger = logger.WithName("data-service").WithName("remove-member")

	g, err := findGroup(ctx, logger, s.conn.Conn, groupName)
	if err != nil {
		return err
	}

	result, err := squirrel.Delete("group_membership").
		Where(squirrel.Eq{
			"group_id": g.ID,
			"user_id":  userID,
		}).
		RunWith(s.conn.Conn).
		ExecContext(ctx)
	if err != nil {
		logger.Error(failedToRemoveMember, err)
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		logger.Error(failedToCountRowsAffected, err)
		return err
	}

	if n == 0 {
		logger.Debug(errMembershipNotFound)
		return groupauth.ErrMembershipNotFound
	}

	return nil
}

func (s *Store) IsMember(
	ctx context.Context,
	logger logx.Logger,
	query repos.IsMemberQuery,
) (bool, error) {
	logger = logger.WithName("data-service").WithName("is-member")

	g, err := findGroup(ctx, logger, s.conn.Conn, query.GroupName)
	if err != nil {
		return false, err
	}

	var membershipID int64
	err = squirrel.Select("id").
		From("group_membership").
		Where(squirrel.Eq{
			"group_id": g.ID,
			"user_id":  query.UserID,
		}).
		RunWith(s.conn.Conn).
		ScanContext(ctx, &membershipID)

	switch err {
	case nil:
		return true, nil
	case sql.ErrNoRows:
		return false, nil
	default:
		logger.Error(failedToCheckMember, err)
		return false, err
	}
}

func (s *Store) ListUserGroups(
	ctx context.Context,
	logger logx.Logger,
	query repos.ListUserGroupsQuery,
) ([]groupauth.Group, error) {
	logger = logger.WithName("data-service").WithName("list-user-groups")

	rows, err := squirrel.Select("g.name").
		From("auth_group g").
		Join("group_membership gm ON gm.group_id = g.id").
		Where(squirrel.Eq{
			"gm.user_id": query.UserID,
		}).
		RunWith(s.conn.Conn).
		QueryContext(ctx)
	if err != nil {
		logger.Error(failedToListUserGroups, err)
		return nil, err
	}
	defer rows.Close()

	var groups []groupauth.Group
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			logger.Error(failedToListUserGroups, err)
			return nil, err
		}

		groups = append(groups, groupauth.Group{Name: name})
	}

	if err = rows.Err(); err != nil {
		logger.Error(failedToListUserGroups, err)
		return nil, err
	}

	return groups, nil
}
