package provision_test

import (
	"context"

	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/Nynra/pyserver-tools/pkg/groupauth"
	"github.com/Nynra/pyserver-tools/pkg/logx"
	"github.com/Nynra/pyserver-tools/pkg/logx/lagerx"
	. "github.com/Nynra/pyserver-tools/pkg/provision"
	"github.com/Nynra/pyserver-tools/pkg/repos"
	"github.com/Nynra/pyserver-tools/pkg/repos/inmemory"
)

var _ = Describe("Provisioner", func() {
	var (
		store   *inmemory.Store
		subject *Provisioner

		ctx    context.Context
		logger logx.Logger
	)

	listCodenames := func(name string) []string {
		permissions, err := store.ListGroupPermissions(ctx, logger, repos.ListGroupPermissionsQuery{
			GroupName: name,
		})
		Expect(err).NotTo(HaveOccurred())

		var codenames []string
		for _, p := range permissions {
			codenames = append(codenames, p.Codename)
		}
		return codenames
	}

	BeforeEach(func() {
		store = inmemory.NewStore()
		subject = NewProvisioner(store, store)

		ctx = context.Background()
		logger = lagerx.NewLogger(lagertest.NewTestLogger("provision-test"))

		for _, codename := range []string{"view_report", "change_report", "delete_report"} {
			err := store.CreatePermission(ctx, logger, groupauth.Permission{
				Codename: codename,
			})
			Expect(err).NotTo(HaveOccurred())
		}
	})

	Describe("#CreateOrUpdateGroup", func() {
		It("creates a fresh group with exactly the requested permissions", func() {
			result, err := subject.CreateOrUpdateGroup(ctx, logger, "auditors", []string{"view_report"}, CreateOptions{})

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Created).To(BeTrue())
			Expect(result.Cleared).To(BeFalse())
			Expect(result.Attached).To(Equal([]string{"view_report"}))
			Expect(result.Skipped).To(BeEmpty())

			Expect(listCodenames("auditors")).To(ConsistOf("view_report"))
		})

		It("rejects an empty group name regardless of options", func() {
			for _, opts := range []CreateOptions{
				{},
				{Strict: true},
				{Force: true},
			} {
				_, err := subject.CreateOrUpdateGroup(ctx, logger, "", []string{"view_report"}, opts)
				Expect(err).To(Equal(groupauth.ErrGroupNameCannotBeEmpty))
			}
		})

		Context("when the group already exists", func() {
			BeforeEach(func() {
				_, err := subject.CreateOrUpdateGroup(ctx, logger, "auditors", []string{"view_report"}, CreateOptions{})
				Expect(err).NotTo(HaveOccurred())
			})

			It("fails with a conflict in strict mode and leaves the group unchanged", func() {
				_, err := subject.CreateOrUpdateGroup(ctx, logger, "auditors", []string{"change_report"}, CreateOptions{
					Strict: true,
				})

				Expect(err).To(Equal(groupauth.ErrGroupAlreadyExists))
				Expect(listCodenames("auditors")).To(ConsistOf("view_report"))
			})

			It("no-ops without force or strict", func() {
				result, err := subject.CreateOrUpdateGroup(ctx, logger, "auditors", []string{"change_report"}, CreateOptions{})

				Expect(err).NotTo(HaveOccurred())
				Expect(result.Created).To(BeFalse())
				Expect(result.Attached).To(BeEmpty())

				Expect(listCodenames("auditors")).To(ConsistOf("view_report"))
			})

			It("replaces the permission set exactly with force", func() {
				result, err := subject.CreateOrUpdateGroup(ctx, logger, "auditors", []string{"change_report", "delete_report"}, CreateOptions{
					Force: true,
				})

				Expect(err).NotTo(HaveOccurred())
				Expect(result.Created).To(BeFalse())
				Expect(result.Cleared).To(BeTrue())
				Expect(result.Attached).To(Equal([]string{"change_report", "delete_report"}))

				Expect(listCodenames("auditors")).To(ConsistOf("change_report", "delete_report"))
			})
		})

		Context("when a codename is not in the registry", func() {
			It("skips it and attaches the rest", func() {
				result, err := subject.CreateOrUpdateGroup(ctx, logger, "auditors", []string{"no_such_permission", "view_report"}, CreateOptions{})

				Expect(err).NotTo(HaveOccurred())
				Expect(result.Attached).To(Equal([]string{"view_report"}))
				Expect(result.Skipped).To(Equal([]string{"no_such_permission"}))

				Expect(listCodenames("auditors")).To(ConsistOf("view_report"))
			})

			It("fails in strict mode, leaving earlier attachments in place", func() {
				_, err := subject.CreateOrUpdateGroup(ctx, logger, "auditors", []string{"view_report", "no_such_permission", "change_report"}, CreateOptions{
					Strict: true,
				})

				Expect(err).To(Equal(groupauth.ErrPermissionNotFound))
				Expect(listCodenames("auditors")).To(ConsistOf("view_report"))
			})
		})
	})

	Describe("#DeleteGroup", func() {
		BeforeEach(func() {
			_, err := subject.CreateOrUpdateGroup(ctx, logger, "auditors", []string{"view_report"}, CreateOptions{})
			Expect(err).NotTo(HaveOccurred())
		})

		It("deletes the group", func() {
			err := subject.DeleteGroup(ctx, logger, "auditors", true)
			Expect(err).NotTo(HaveOccurred())

			_, err = store.FindGroup(ctx, logger, repos.FindGroupQuery{GroupName: "auditors"})
			Expect(err).To(Equal(groupauth.ErrGroupNotFound))
		})

		It("fails for a missing group when strict", func() {
			err := subject.DeleteGroup(ctx, logger, "no-such-group", true)

			Expect(err).To(Equal(groupauth.ErrGroupNotFound))
		})

		It("ignores a missing group when not strict", func() {
			err := subject.DeleteGroup(ctx, logger, "no-such-group", false)

			Expect(err).NotTo(HaveOccurred())
		})

		It("rejects an empty group name", func() {
			err := subject.DeleteGroup(ctx, logger, "", false)

			Expect(err).To(Equal(groupauth.ErrGroupNameCannotBeEmpty))
		})
	})
})
