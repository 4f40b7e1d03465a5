package inmemory

import (
	"context"

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
	if _, exists := s.groups[groupName]; !exists {
		return groupauth.ErrGroupNotFound
	}

	for _, member := range s.members[groupName] {
		if member == userID {
			err := groupauth.ErrMembershipAlreadyExists
			logger.Error(errMembershipAlreadyExists, err)
			return err
		}
	}

	s.members[groupName] = append(s.members[groupName], userID)

	return nil
}

func (s *Store) RemoveMember(
	ctx context.Context,
	logger logx.Logger,
	groupName string,
	userID string,
) error {
	if _, exists := s.groups[groupName]; !exists {
		return groupauth.ErrGroupNotFound
	}

	members := s.members[groupName]
	for i, member := range members {
		if member == userID {
			s.members[groupName] = append(members[:i], members[i+1:]...)
			logger.Debug(success)
			return nil
		}
	}

	err := groupauth.ErrMembershipNotFound
	logger.Error(errMembershipNotFound, err)

	return err
}

func (s *Store) IsMember(
	ctx context.Context,
	logger logx.Logger,
	query repos.IsMemberQuery,
) (bool, error) {
	if _, exists := s.groups[query.GroupName]; !exists {
		return false, groupauth.ErrGroupNotFound
	}

	for _, member := range s.members[query.GroupName] {
		if member == query.UserID {
			return true, nil
		}
	}

	return false, nil
}

func (s *Store) ListUserGroups(
	ctx context.Context,
	logger logx.Logger,
	query repos.ListUserGroupsQuery,
) ([]groupauth.Group, error) {
	var groups []groupauth.Group

	for name, members := range s.members {
		for _, member := range members {
			if member == query.UserID {
				groups = append(groups, s.groups[name])
				break
			}
		}
	}

	return groups, nil
}
