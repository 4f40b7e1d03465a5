package authz

import (
	"context"

	"github.com/Nynra/pyserver-tools/pkg/groupauth"
	"github.com/Nynra/pyserver-tools/pkg/logx"
	"github.com/Nynra/pyserver-tools/pkg/repos"
)

// ActionChecker decides whether a user may perform a named action given the
// caller's action-to-groups configuration.
type ActionChecker interface {
	HasActionPermission(
		ctx context.Context,
		logger logx.Logger,
		user groupauth.User,
		action string,
		groups groupauth.ActionGroups,
	) bool
}

type Checker struct {
	memberships repos.MembershipRepo
}

func NewChecker(memberships repos.MembershipRepo) *Checker {
	return &Checker{
		memberships: memberships,
	}
}

// HasActionPermission applies the group requirements for one action:
//
//   - an action absent from the map is always denied;
//   - groupauth.PublicGroup among the required groups allows everyone, with
//     no membership or authentication check;
//   - otherwise the user must belong to at least one of the required groups.
//
// It never returns an error. Missing groups count as non-membership and
// repository failures deny (fail closed); both are logged, not raised.
func (c *Checker) HasActionPermission(
	ctx context.Context,
	logger logx.Logger,
	user groupauth.User,
	action string,
	groups groupauth.ActionGroups,
) bool {
	logger = logger.WithName("has-action-permission").WithData(logx.Data{
		Key:   "action",
		Value: action,
	})

	required, ok := groups[action]
	if !ok {
		logger.Debug(actionNotMapped)
		return false
	}

	for _, groupName := range required {
		if groupName == groupauth.PublicGroup {
			return true
		}
	}

	for _, groupName := range required {
		if c.isMember(ctx, logger, user, groupName) {
			return true
		}
	}

	return false
}

func (c *Checker) isMember(
	ctx context.Context,
	logger logx.Logger,
	user groupauth.User,
	groupName string,
) bool {
	isMember, err := c.memberships.IsMember(ctx, logger, repos.IsMemberQuery{
		UserID:    user.ID,
		GroupName: groupName,
	})

	switch err {
	case nil:
		return isMember
	case groupauth.ErrGroupNotFound:
		// A group nobody created is simply a group nobody belongs to
		return false
	default:
		logger.Error(failedToCheckMembership, err, logx.Data{
			Key:   "group.name",
			Value: groupName,
		})
		return false
	}
}
