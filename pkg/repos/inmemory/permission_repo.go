package inmemory

import (
	"context"

	"github.com/Nynra/pyserver-tools/pkg/groupauth"
	"github.com/Nynra/pyserver-tools/pkg/logx"
	"github.com/Nynra/pyserver-tools/pkg/repos"
)

func (s *Store) CreatePermission(
	ctx context.Context,
	logger logx.Logger,
	permission groupauth.Permission,
) error {
	if _, exists := s.registry[permission.Codename]; exists {
		return groupauth.ErrPermissionAlreadyExists
	}

	s.registry[permission.Codename] = permission

	logger.Debug(success, logx.Data{Key: "permission.codename", Value: permission.Codename})
	return nil
}

func (s *Store) FindPermission(
	ctx context.Context,
	logger logx.Logger,
	query repos.FindPermissionQuery,
) (groupauth.Permission, error) {
	permission, exists := s.registry[query.Codename]
	if !exists {
		return groupauth.Permission{}, groupauth.ErrPermissionNotFound
	}

	return permission, nil
}
