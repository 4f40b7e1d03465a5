package repos

import (
	"context"

	"github.com/Nynra/pyserver-tools/pkg/groupauth"
	"github.com/Nynra/pyserver-tools/pkg/logx"
)

type FindPermissionQuery struct {
	Codename string
}

// PermissionRepo is the host application's permission registry. It is
// authoritative for which permission codenames exist; the Provisioner
// resolves every requested codename against it before attaching.
type PermissionRepo interface {
	CreatePermission(
		ctx context.Context,
		logger logx.Logger,
		permission groupauth.Permission,
	) error

	FindPermission(
		ctx context.Context,
		logger logx.Logger,
		query FindPermissionQuery,
	) (groupauth.Permission, error)
}
