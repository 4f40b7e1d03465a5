package repos

import (
	"context"

	"github.com/Nynra/pyserver-tools/pkg/groupauth"
	"github.com/Nynra/pyserver-tools/pkg/logx"
)

type IsMemberQuery struct {
	UserID    string
	GroupName string
}

type ListUserGroupsQuery struct {
	UserID string
}

type MembershipRepo interface {
	AddMember(
		ctx context.Context,
		logger logx.Logger,
		groupName string,
		userID string,
	) error

	RemoveMember(
		ctx context.Context,
		logger logx.Logger,
		groupName string,
		userID string,
	) error

	// IsMember reports whether the user belongs to the named group. A group
	// that does not exist yields groupauth.ErrGroupNotFound; callers that
	// must fail closed treat that as non-membership.
	IsMember(
		ctx context.Context,
		logger logx.Logger,
		query IsMemberQuery,
	) (bool, error)

	ListUserGroups(
		ctx context.Context,
		logger logx.Logger,
		query ListUserGroupsQuery,
	) ([]groupauth.Group, error)
}
