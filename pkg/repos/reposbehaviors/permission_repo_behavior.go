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

func BehavesLikeAPermissionRepo(subjectCreator func() repos.PermissionRepo) {
	var (
		subject repos.PermissionRepo

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

	Describe("#CreatePermission", func() {
		It("registers the permission", func() {
			codename := uuid.NewV4().String()
			permission := groupauth.Permission{Codename: codename, Name: "Can do the thing"}

			err := subject.CreatePermission(ctx, logger, permission)
			Expect(err).NotTo(HaveOccurred())

			found, err := subject.FindPermission(ctx, logger, repos.FindPermissionQuery{
				Codename: codename,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(Equal(permission))
		})

		It("fails if the codename is already registered", func() {
			codename := uuid.NewV4().String()
			permission := groupauth.Permission{Codename: codename}

			err := subject.CreatePermission(ctx, logger, permission)
			Expect(err).NotTo(HaveOccurred())

			err = subject.CreatePermission(ctx, logger, permission)
			Expect(err).To(Equal(groupauth.ErrPermissionAlreadyExists))
		})
	})

	Describe("#FindPermission", func() {
		It("fails if the codename is not registered", func() {
			_, err := subject.FindPermission(ctx, logger, repos.FindPermissionQuery{
				Codename: uuid.NewV4().String(),
			})

			Expect(err).To(Equal(groupauth.ErrPermissionNotFound))
		})
	})
}
