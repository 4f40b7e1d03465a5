package authz

import (
	"context"

	"github.com/Nynra/pyserver-tools/pkg/groupauth"
	"github.com/Nynra/pyserver-tools/pkg/logx"
	"github.com/Nynra/pyserver-tools/pkg/repos"
)

// Predicate is a single boolean access check. The object-level form exists
// so callers can hang predicates on per-instance hooks; every predicate in
// this package ignores the object and answers the same as its action-level
// form. Predicates are independent; combining them is the caller's business.
type Predicate interface {
	Allows(ctx context.Context, logger logx.Logger, user groupauth.User) bool
	AllowsObject(ctx context.Context, logger logx.Logger, user groupauth.User, obj interface{}) bool
}

// Authenticated allows users that are both authenticated and active.
type Authenticated struct{}

func (Authenticated) Allows(ctx context.Context, logger logx.Logger, user groupauth.User) bool {
	return user.Authenticated && user.Active
}

func (p Authenticated) AllowsObject(ctx context.Context, logger logx.Logger, user groupauth.User, obj interface{}) bool {
	return p.Allows(ctx, logger, user)
}

// Staff allows active users with the staff flag.
type Staff struct{}

func (Staff) Allows(ctx context.Context, logger logx.Logger, user groupauth.User) bool {
	return user.Staff && user.Active
}

func (p Staff) AllowsObject(ctx context.Context, logger logx.Logger, user groupauth.User, obj interface{}) bool {
	return p.Allows(ctx, logger, user)
}

// Superuser allows users with the superuser flag, active or not.
type Superuser struct{}

func (Superuser) Allows(ctx context.Context, logger logx.Logger, user groupauth.User) bool {
	return user.Superuser
}

func (p Superuser) AllowsObject(ctx context.Context, logger logx.Logger, user groupauth.User, obj interface{}) bool {
	return p.Allows(ctx, logger, user)
}

// GroupMember allows members of one exact group. A group that does not
// exist denies, it does not error.
type GroupMember struct {
	groupName   string
	memberships repos.MembershipRepo
}

func NewGroupMemberPredicate(memberships repos.MembershipRepo, groupName string) *GroupMember {
	return &GroupMember{
		groupName:   groupName,
		memberships: memberships,
	}
}

// NewAdminGroupPredicate checks membership of the well-known admin group.
func NewAdminGroupPredicate(memberships repos.MembershipRepo) *GroupMember {
	return NewGroupMemberPredicate(memberships, groupauth.AdminGroup)
}

// NewSuperuserGroupPredicate checks membership of the well-known superuser
// group.
func NewSuperuserGroupPredicate(memberships repos.MembershipRepo) *GroupMember {
	return NewGroupMemberPredicate(memberships, groupauth.SuperuserGroup)
}

func (p *GroupMember) Allows(ctx context.Context, logger logx.Logger, user groupauth.User) bool {
	isMember, err := p.memberships.IsMember(ctx, logger, repos.IsMemberQuery{
		UserID:    user.ID,
		GroupName: p.groupName,
	})

	switch err {
	case nil:
		return isMember
	case groupauth.ErrGroupNotFound:
		return false
	default:
		logger.Error(failedToCheckMembership, err, logx.Data{
			Key:   "group.name",
			Value: p.groupName,
		})
		return false
	}
}

func (p *GroupMember) AllowsObject(ctx context.Context, logger logx.Logger, user groupauth.User, obj interface{}) bool {
	return p.Allows(ctx, logger, user)
}
