package reposbehaviors_test

import (
	"context"

	"time"

	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	uuid "github.com/satori/go.uuid"

	"github.com/Nynra/pyserver-tools/pkg/groupauth"
	"github.com/Nynra/pyserver-tools/pkg/logx"
	"github.com/Nynra/pyserver-tools/pkg/logx/lagerx"
	"github.com/Nynra/pyserver-tools/pkg/repos"
)

func BehavesLikeAGroupRepo(subjectCreator func() repos.GroupRepo) {
	var (
		subject repos.GroupRepo

		ctx    context.Context
		logger logx.Logger

		cancelFunc context.CancelFunc
	)

	BeforeEach(func() {
		subject = subjectCreator()

		ctx, cancelFunc = context.WithTimeout(context.Background(), 1*time.Second)
		logger = lagerx.NewLogger(lagertest.NewTestLogger("groupauth-test"))
	})

	AfterEach(func() {
		cancelFunc()
	})

	Describe("#CreateGroup", func() {
		It("saves the group", func() {
			name := uuid.NewV4().String()

			group, err := subject.CreateGroup(ctx, logger, name)

			Expect(err).NotTo(HaveOccurred())
			Expect(group.Name).To(Equal(name))

			found, err := subject.FindGroup(ctx, logger, repos.FindGroupQuery{GroupName: name})

			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(Equal(group))
		})

		It("fails if a group with the name already exists", func() {
			name := uuid.NewV4().String()

			_, err := subject.CreateGroup(ctx, logger, name)
			Expect(err).NotTo(HaveOccurred())

			_, err = subject.CreateGroup(ctx, logger, name)
			Expect(err).To(Equal(groupauth.ErrGroupAlreadyExists))
		})
	})

	Describe("#FindGroup", func() {
		It("fails if the group does not exist", func() {
			name := uuid.NewV4().String()

			_, err := subject.FindGroup(ctx, logger, repos.FindGroupQuery{GroupName: name})

			Expect(err).To(Equal(groupauth.ErrGroupNotFound))
		})
	})

	Describe("#DeleteGroup", func() {
		It("deletes the group if it exists", func() {
			name := uuid.NewV4().String()

			_, err := subject.CreateGroup(ctx, logger, name)
			Expect(err).NotTo(HaveOccurred())

			err = subject.DeleteGroup(ctx, logger, name)
			Expect(err).NotTo(HaveOccurred())

			_, err = subject.FindGroup(ctx, logger, repos.FindGroupQuery{GroupName: name})

			Expect(err).To(Equal(groupauth.ErrGroupNotFound))
		})

		It("fails if the group does not exist", func() {
			name := uuid.NewV4().String()

			err := subject.DeleteGroup(ctx, logger, name)

			Expect(err).To(Equal(groupauth.ErrGroupNotFound))
		})
	})

	Describe("#ListGroupPermissions", func() {
		It("returns the permissions the group was created with", func() {
			name := uuid.NewV4().String()

			permission1 := groupauth.Permission{Codename: "view_report", Name: "Can view report"}
			permission2 := groupauth.Permission{Codename: "change_report", Name: "Can change report"}
			_, err := subject.CreateGroup(ctx, logger, name, permission1, permission2)
			Expect(err).NotTo(HaveOccurred())

			permissions, err := subject.ListGroupPermissions(ctx, logger, repos.ListGroupPermissionsQuery{
				GroupName: name,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(permissions).To(HaveLen(2))
			Expect(permissions).To(ContainElement(permission1))
			Expect(permissions).To(ContainElement(permission2))
		})

		It("fails if the group does not exist", func() {
			_, err := subject.ListGroupPermissions(ctx, logger, repos.ListGroupPermissionsQuery{
				GroupName: uuid.NewV4().String(),
			})

			Expect(err).To(Equal(groupauth.ErrGroupNotFound))
		})
	})

	Describe("#AssignPermission", func() {
		It("adds the permission to the group", func() {
			name := uuid.NewV4().String()
			permission := groupauth.Permission{Codename: "delete_report", Name: "Can delete report"}

			_, err := subject.CreateGroup(ctx, logger, name)
			Expect(err).NotTo(HaveOccurred())

			err = subject.AssignPermission(ctx, logger, name, permission)
			Expect(err).NotTo(HaveOccurred())

			permissions, err := subject.ListGroupPermissions(ctx, logger, repos.ListGroupPermissionsQuery{
				GroupName: name,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(permissions).To(ConsistOf(permission))
		})

		It("fails if the permission is already assigned", func() {
			name := uuid.NewV4().String()
			permission := groupauth.Permission{Codename: "delete_report", Name: "Can delete report"}

			_, err := subject.CreateGroup(ctx, logger, name, permission)
			Expect(err).NotTo(HaveOccurred())

			err = subject.AssignPermission(ctx, logger, name, permission)
			Expect(err).To(Equal(groupauth.ErrPermissionAlreadyExists))
		})

		It("fails if the group does not exist", func() {
			permission := groupauth.Permission{Codename: "delete_report", Name: "Can delete report"}

			err := subject.AssignPermission(ctx, logger, uuid.NewV4().String(), permission)

			Expect(err).To(Equal(groupauth.ErrGroupNotFound))
		})
	})

	Describe("#ClearPermissions", func() {
		It("removes every permission from the group", func() {
			name := uuid.NewV4().String()
			permission := groupauth.Permission{Codename: "view_report", Name: "Can view report"}

			_, err := subject.CreateGroup(ctx, logger, name, permission)
			Expect(err).NotTo(HaveOccurred())

			err = subject.ClearPermissions(ctx, logger, name)
			Expect(err).NotTo(HaveOccurred())

			permissions, err := subject.ListGroupPermissions(ctx, logger, repos.ListGroupPermissionsQuery{
				GroupName: name,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(permissions).To(BeEmpty())
		})

		It("fails if the group does not exist", func() {
			err := subject.ClearPermissions(ctx, logger, uuid.NewV4().String())

			Expect(err).To(Equal(groupauth.ErrGroupNotFound))
		})
	})
}
