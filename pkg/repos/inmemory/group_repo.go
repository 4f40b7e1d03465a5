package inmemory

import (
	"context"

	"github.com/Nynra/pyserver-tools/pkg/groupauth"
	"github.com/Nynra/pyserver-tools/pkg/logx"
	"github.com/Nynra/pyserver-tools/pkg/repos"
)

func (s *Store) CreateGroup(
	ctx context.Context,
	logger logx.Logger,
	name string,
	permissions ...groupauth.Permission,
) (groupauth.Group, error) {
	if _, exists := s.groups[name]; exists {
		return groupauth.Group{}, groupauth.ErrGroupAlreadyExists
	}

	group := groupauth.Group{
		Name: name,
	}
	s.groups[name] = group

	s.groupPermissions[name] = permissions

	// Parity with the SQL store, which registers unseen codenames on create
	for _, p := range permissions {
		if _, ok := s.registry[p.Codename]; !ok {
			s.registry[p.Codename] = p
		}
	}

	logger.Debug(success, logx.Data{Key: "group.name", Value: name})
	return group, nil
}

func (s *Store) FindGroup(
	ctx context.Context,
	logger logx.Logger,
	query repos.FindGroupQuery,
) (groupauth.Group, error) {
	group, exists := s.groups[query.GroupName]
	if !exists {
		return groupauth.Group{}, groupauth.ErrGroupNotFound
	}

	return group, nil
}

func (s *Store) DeleteGroup(
	ctx context.Context,
	logger logx.Logger,
	name string,
) error {
	if _, exists := s.groups[name]; !exists {
		return groupauth.ErrGroupNotFound
	}

	delete(s.groups, name)

	// Cascade: memberships and permissions go with the group
	delete(s.members, name)
	delete(s.groupPermissions, name)

	logger.Debug(success, logx.Data{Key: "group.name", Value: name})
	return nil
}

func (s *Store) ListGroupPermissions(
	ctx context.Context,
	logger logx.Logger,
	query repos.ListGroupPermissionsQuery,
) ([]groupauth.Permission, error) {
	if _, exists := s.groups[query.GroupName]; !exists {
		return nil, groupauth.ErrGroupNotFound
	}

	return s.groupPermissions[query.GroupName], nil
}

func (s *Store) AssignPermission(
	ctx context.Context,
	logger logx.Logger,
	groupName string,
	permission groupauth.Permission,
) error {
	if _, exists := s.groups[groupName]; !exists {
		return groupauth.ErrGroupNotFound
	}

	for _, p := range s.groupPermissions[groupName] {
		if p.Codename == permission.Codename {
			err := groupauth.ErrPermissionAlreadyExists
			logger.Error(errPermissionAlreadyAssigned, err)
			return err
		}
	}

	s.groupPermissions[groupName] = append(s.groupPermissions[groupName], permission)

	if _, ok := s.registry[permission.Codename]; !ok {
		s.registry[permission.Codename] = permission
	}

	return nil
}

func (s *Store) ClearPermissions(
	ctx context.Context,
	logger logx.Logger,
	groupName string,
) error {
	if _, exists := s.groups[groupName]; !exists {
		return groupauth.ErrGroupNotFound
	}

	s.groupPermissions[groupName] = nil

	logger.Debug(success, logx.Data{Key: "group.name", Value: groupName})
	return nil
}
