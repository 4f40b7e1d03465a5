package groupauth

import (
	"github.com/Nynra/pyserver-tools/pkg/errdefs"
)

var (
	ErrGroupNotFound      = errdefs.NewErrNotFound("group")
	ErrGroupAlreadyExists = errdefs.NewErrAlreadyExists("group")

	ErrPermissionNotFound      = errdefs.NewErrNotFound("permission")
	ErrPermissionAlreadyExists = errdefs.NewErrAlreadyExists("permission")

	ErrMembershipNotFound      = errdefs.NewErrNotFound("membership")
	ErrMembershipAlreadyExists = errdefs.NewErrAlreadyExists("membership")

	ErrGroupNameCannotBeEmpty = errdefs.NewErrCannotBeEmpty("group name")
)
