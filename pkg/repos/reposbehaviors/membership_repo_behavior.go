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

func BehavesLikeAMembershipRepo(
	subjectCreator func() repos.MembershipRepo,
	groupRepoCreator func() repos.GroupRepo,
) {
	var (
		subject    repos.MembershipRepo
		groupRepo  repos.GroupRepo
		groupName  string
		userID     string
		ctx        context.Context
		logger     logx.Logger
		cancelFunc context.CancelFunc
	)

	BeforeEach(func() {
		subject = subjectCreator()
		groupRepo = groupRepoCreator()

		ctx, cancelFunc = context.WithTimeout(context.Background(), 1*time.Second)
		logger = lagerx.NewLogger(lagertest.NewTestLogger("groupauth-test"))

		groupName = uuid.NewV4().String()
		userID = uuid.NewV4().String()

		_, err := groupRepo.CreateGroup(ctx, logger, groupName)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		cancelFunc()
	})

	Describe("#AddMember", func() {
		It("adds the user to the group", func() {
			err := subject.AddMember(ctx, logger, groupName, userID)
			Expect(err).NotTo(HaveOccurred())

			isMember, err := subject.IsMember(ctx, logger, repos.IsMemberQuery{
				UserID:    userID,
				GroupName: groupName,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(isMember).To(BeTrue())
		})

		It("fails if the user is already a member", func() {
			err := subject.AddMember(ctx, logger, groupName, userID)
			Expect(err).NotTo(HaveOccurred())

			err = subject.AddMember(ctx, logger, groupName, userID)
			Expect(err).To(Equal(groupauth.ErrMembershipAlreadyExists))
		})

		It("fails if the group does not exist", func() {
			err := subject.AddMember(ctx, logger, uuid.NewV4().String(), userID)

			Expect(err).To(Equal(groupauth.ErrGroupNotFound))
		})
	})

	Describe("#RemoveMember", func() {
		It("removes the user from the group", func() {
			err := subject.AddMember(ctx, logger, groupName, userID)
			Expect(err).NotTo(HaveOccurred())

			err = subject.RemoveMember(ctx, logger, groupName, userID)
			Expect(err).NotTo(HaveOccurred())

			isMember, err := subject.IsMember(ctx, logger, repos.IsMemberQuery{
				UserID:    userID,
				GroupName: groupName,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(isMember).To(BeFalse())
		})

		It("fails if the user is not a member", func() {
			err := subject.RemoveMember(ctx, logger, groupName, userID)

			Expect(err).To(Equal(groupauth.ErrMembershipNotFound))
		})

		It("fails if the group does not exist", func() {
			err := subject.RemoveMember(ctx, logger, uuid.NewV4().String(), userID)

			Expect(err).To(Equal(groupauth.ErrGroupNotFound))
		})
	})

	Describe("#IsMember", func() {
		It("returns false for a user that is not a member", func() {
			isMember, err := subject.IsMember(ctx, logger, repos.IsMemberQuery{
				UserID:    userID,
				GroupName: groupName,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(isMember).To(BeFalse())
		})

		It("fails if the group does not exist", func() {
			_, err := subject.IsMember(ctx, logger, repos.IsMemberQuery{
				UserID:    userID,
				GroupName: uuid.NewV4().String(),
			})

			Expect(err).To(Equal(groupauth.ErrGroupNotFound))
		})
	})

	Describe("#ListUserGroups", func() {
		It("lists every group the user belongs to", func() {
			otherGroupName := uuid.NewV4().String()
			_, err := groupRepo.CreateGroup(ctx, logger, otherGroupName)
			Expect(err).NotTo(HaveOccurred())

			err = subject.AddMember(ctx, logger, groupName, userID)
			Expect(err).NotTo(HaveOccurred())
			err = subject.AddMember(ctx, logger, otherGroupName, userID)
			Expect(err).NotTo(HaveOccurred())

			groups, err := subject.ListUserGroups(ctx, logger, repos.ListUserGroupsQuery{
				UserID: userID,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(groups).To(ConsistOf(
				groupauth.Group{Name: groupName},
				groupauth.Group{Name: otherGroupName},
			))
		})

		It("returns nothing for a user with no memberships", func() {
			groups, err := subject.ListUserGroups(ctx, logger, repos.ListUserGroupsQuery{
				UserID: userID,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(groups).To(BeEmpty())
		})
	})
}
