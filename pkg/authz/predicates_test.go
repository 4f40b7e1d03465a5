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

var _ = Describe("Predicates", func() {
	var (
		ctx    context.Context
		logger logx.Logger
	)

	BeforeEach(func() {
		ctx = context.Background()
		logger = lagerx.NewLogger(lagertest.NewTestLogger("authz-test"))
	})

	Describe("Authenticated", func() {
		It("requires both the authenticated and active flags", func() {
			subject := Authenticated{}

			Expect(subject.Allows(ctx, logger, groupauth.User{Authenticated: true, Active: true})).To(BeTrue())
			Expect(subject.Allows(ctx, logger, groupauth.User{Authenticated: true})).To(BeFalse())
			Expect(subject.Allows(ctx, logger, groupauth.User{Active: true})).To(BeFalse())
			Expect(subject.Allows(ctx, logger, groupauth.User{})).To(BeFalse())
		})

		It("ignores the object", func() {
			subject := Authenticated{}
			user := groupauth.User{Authenticated: true, Active: true}

			Expect(subject.AllowsObject(ctx, logger, user, struct{}{})).To(Equal(subject.Allows(ctx, logger, user)))
		})
	})

	Describe("Staff", func() {
		It("requires both the staff and active flags", func() {
			subject := Staff{}

			Expect(subject.Allows(ctx, logger, groupauth.User{Staff: true, Active: true})).To(BeTrue())
			Expect(subject.Allows(ctx, logger, groupauth.User{Staff: true})).To(BeFalse())
			Expect(subject.Allows(ctx, logger, groupauth.User{Active: true})).To(BeFalse())
		})
	})

	Describe("Superuser", func() {
		It("requires only the superuser flag", func() {
			subject := Superuser{}

			Expect(subject.Allows(ctx, logger, groupauth.User{Superuser: true})).To(BeTrue())
			Expect(subject.Allows(ctx, logger, groupauth.User{Superuser: true, Active: false})).To(BeTrue())
			Expect(subject.Allows(ctx, logger, groupauth.User{})).To(BeFalse())
		})
	})

	Describe("GroupMember", func() {
		var (
			store *inmemory.Store
			user  groupauth.User
		)

		BeforeEach(func() {
			store = inmemory.NewStore()
			user = groupauth.User{ID: "test-user"}

			_, err := store.CreateGroup(ctx, logger, groupauth.AdminGroup)
			Expect(err).NotTo(HaveOccurred())
		})

		It("allows members of the group", func() {
			err := store.AddMember(ctx, logger, groupauth.AdminGroup, user.ID)
			Expect(err).NotTo(HaveOccurred())

			subject := NewAdminGroupPredicate(store)

			Expect(subject.Allows(ctx, logger, user)).To(BeTrue())
			Expect(subject.AllowsObject(ctx, logger, user, struct{}{})).To(BeTrue())
		})

		It("denies non-members", func() {
			subject := NewAdminGroupPredicate(store)

			Expect(subject.Allows(ctx, logger, user)).To(BeFalse())
		})

		It("denies when the group does not exist", func() {
			subject := NewSuperuserGroupPredicate(store)

			Expect(subject.Allows(ctx, logger, user)).To(BeFalse())
		})
	})
})
