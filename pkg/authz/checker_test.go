package authz_test

import (
	"context"

	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/Nynra/pyserver-tools/pkg/authz"
	"github.com/Nynra/pyserver-tools/pkg/groupauth"
	"github.com/Nynra/pyserver-tools/pkg/logx"
	"github.com/Nynra/pyserver-tools/pkg/logx/lagerx"
	"github.com/Nynra/pyserver-tools/pkg/repos/inmemory"
)

var _ = Describe("Checker", func() {
	var (
		store   *inmemory.Store
		subject *Checker

		ctx    context.Context
		logger logx.Logger

		user groupauth.User
	)

	BeforeEach(func() {
		store = inmemory.NewStore()
		subject = NewChecker(store)

		ctx = context.Background()
		logger = lagerx.NewLogger(lagertest.NewTestLogger("authz-test"))

		user = groupauth.User{
			ID:            "test-user",
			Authenticated: true,
			Active:        true,
		}

		_, err := store.CreateGroup(ctx, logger, "editors")
		Expect(err).NotTo(HaveOccurred())
		_, err = store.CreateGroup(ctx, logger, "reviewers")
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("#HasActionPermission", func() {
		It("denies an action that is not in the map", func() {
			groups := groupauth.ActionGroups{
				"list": {"editors"},
			}

			Expect(subject.HasActionPermission(ctx, logger, user, "delete", groups)).To(BeFalse())
		})

		It("denies every action when the map is empty", func() {
			Expect(subject.HasActionPermission(ctx, logger, user, "list", groupauth.ActionGroups{})).To(BeFalse())
		})

		It("allows a member of the required group", func() {
			err := store.AddMember(ctx, logger, "editors", user.ID)
			Expect(err).NotTo(HaveOccurred())

			groups := groupauth.ActionGroups{
				"update": {"editors"},
			}

			Expect(subject.HasActionPermission(ctx, logger, user, "update", groups)).To(BeTrue())
		})

		It("denies a user that is in none of the required groups", func() {
			groups := groupauth.ActionGroups{
				"update": {"editors", "reviewers"},
			}

			Expect(subject.HasActionPermission(ctx, logger, user, "update", groups)).To(BeFalse())
		})

		It("allows membership of any one required group", func() {
			err := store.AddMember(ctx, logger, "reviewers", user.ID)
			Expect(err).NotTo(HaveOccurred())

			groups := groupauth.ActionGroups{
				"update": {"editors", "reviewers"},
			}

			Expect(subject.HasActionPermission(ctx, logger, user, "update", groups)).To(BeTrue())
		})

		It("treats a group that does not exist as non-membership", func() {
			groups := groupauth.ActionGroups{
				"update": {"no-such-group"},
			}

			Expect(subject.HasActionPermission(ctx, logger, user, "update", groups)).To(BeFalse())
		})

		Context("when the public group is among the required groups", func() {
			It("allows any user without a membership check", func() {
				groups := groupauth.ActionGroups{
					"list": {groupauth.PublicGroup},
					"get":  {"editors", groupauth.PublicGroup},
				}

				anonymous := groupauth.User{}

				Expect(subject.HasActionPermission(ctx, logger, anonymous, "list", groups)).To(BeTrue())
				Expect(subject.HasActionPermission(ctx, logger, anonymous, "get", groups)).To(BeTrue())
			})

			It("only affects its own action", func() {
				groups := groupauth.ActionGroups{
					"list":   {groupauth.PublicGroup},
					"update": {"editors"},
				}

				Expect(subject.HasActionPermission(ctx, logger, user, "update", groups)).To(BeFalse())
			})
		})
	})
})
