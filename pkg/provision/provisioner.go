package provision

import (
	"context"

	"github.com/Nynra/pyserver-tools/pkg/groupauth"
	"github.com/Nynra/pyserver-tools/pkg/logx"
	"github.com/Nynra/pyserver-tools/pkg/repos"
)

type Provisioner struct {
	groups      repos.GroupRepo
	permissions repos.PermissionRepo
}

func NewProvisioner(groups repos.GroupRepo, permissions repos.PermissionRepo) *Provisioner {
	return &Provisioner{
		groups:      groups,
		permissions: permissions,
	}
}

type CreateOptions struct {
	// Force clears the permissions of an existing group before attaching the
	// requested set. Without it an existing group is left untouched.
	Force bool

	// Strict turns conflicts and lookup misses into errors: an existing
	// group without Force, or a codename the registry does not know. Without
	// it those are logged and skipped.
	Strict bool
}

type GroupResult struct {
	Group   groupauth.Group
	Created bool
	Cleared bool

	Attached []string
	Skipped  []string
}

// CreateOrUpdateGroup ensures a group exists carrying the permissions named
// by codenames. Permissions are resolved against the registry and attached
// one at a time; a Strict failure partway through leaves the group with the
// permissions attached so far.
//
// An empty group name is invalid and always an error, Strict or not.
func (p *Provisioner) CreateOrUpdateGroup(
	ctx context.Context,
	logger logx.Logger,
	name string,
	codenames []string,
	opts CreateOptions,
) (GroupResult, error) {
	logger = logger.WithName("create-or-update-group").WithData(logx.Data{
		Key:   "group.name",
		Value: name,
	})

	if name == "" {
		return GroupResult{}, groupauth.ErrGroupNameCannotBeEmpty
	}

	var result GroupResult

	group, err := p.groups.FindGroup(ctx, logger, repos.FindGroupQuery{GroupName: name})
	switch err {
	case nil:
		if !opts.Force {
			if opts.Strict {
				return GroupResult{}, groupauth.ErrGroupAlreadyExists
			}

			logger.Debug(groupAlreadyExists)
			result.Group = group
			return result, nil
		}

		if err = p.groups.ClearPermissions(ctx, logger, name); err != nil {
			return GroupResult{}, err
		}

		logger.Debug(clearedPermissions)
		result.Group = group
		result.Cleared = true
	case groupauth.ErrGroupNotFound:
		group, err = p.groups.CreateGroup(ctx, logger, name)
		if err != nil {
			return GroupResult{}, err
		}

		logger.Debug(createdGroup)
		result.Group = group
		result.Created = true
	default:
		return GroupResult{}, err
	}

	for _, codename := range codenames {
		permissionLogger := logger.WithData(logx.Data{
			Key:   "permission.codename",
			Value: codename,
		})

		permission, err := p.permissions.FindPermission(ctx, permissionLogger, repos.FindPermissionQuery{
			Codename: codename,
		})
		switch err {
		case nil:
		case groupauth.ErrPermissionNotFound:
			if opts.Strict {
				return result, err
			}

			permissionLogger.Info(permissionNotFound)
			result.Skipped = append(result.Skipped, codename)
			continue
		default:
			return result, err
		}

		err = p.groups.AssignPermission(ctx, permissionLogger, name, permission)
		switch err {
		case nil:
			result.Attached = append(result.Attached, codename)
		case groupauth.ErrPermissionAlreadyExists:
			if opts.Strict {
				return result, err
			}

			permissionLogger.Debug(permissionAlreadyAssigned)
			result.Skipped = append(result.Skipped, codename)
		default:
			return result, err
		}
	}

	return result, nil
}

// DeleteGroup removes a group and, through the store, its permissions and
// memberships. A group that does not exist is only an error when strict.
// Nothing is recreated; that stays the caller's responsibility.
func (p *Provisioner) DeleteGroup(
	ctx context.Context,
	logger logx.Logger,
	name string,
	strict bool,
) error {
	logger = logger.WithName("delete-group").WithData(logx.Data{
		Key:   "group.name",
		Value: name,
	})

	if name == "" {
		return groupauth.ErrGroupNameCannotBeEmpty
	}

	err := p.groups.DeleteGroup(ctx, logger, name)
	if err == groupauth.ErrGroupNotFound && !strict {
		logger.Debug(groupNotFound)
		return nil
	}

	return err
}
