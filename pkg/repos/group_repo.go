package repos

import (
	"context"

	"github.com/Nynra/pyserver-tools/pkg/groupauth"
	"github.com/Nynra/pyserver-tools/pkg/logx"
)

type FindGroupQuery struct {
	GroupName string
}

type ListGroupPermissionsQuery struct {
	GroupName string
}

type GroupRepo interface {
	CreateGroup(
		ctx context.Context,
		logger logx.Logger,
		name string,
		permissions ...groupauth.Permission,
	) (groupauth.Group, error)

	FindGroup(
		ctx context.Context,
		logger logx.Logger,
		query FindGroupQuery,
	) (groupauth.Group, error)

	DeleteGroup(
		ctx context.Context,
		logger logx.Logger,
		name string,
	) error

	ListGroupPermissions(
		ctx context.Context,
		logger logx.Logger,
		query ListGroupPermissionsQuery,
	) ([]groupauth.Permission, error)

	AssignPermission(
		ctx context.Context,
		logger logx.Logger,
		groupName string,
		permission groupauth.Permission,
	) error

	ClearPermissions(
		ctx context.Context,
		logger logx.Logger,
		groupName string,
	) error
}
