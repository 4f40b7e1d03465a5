package db_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/Nynra/pyserver-tools/pkg/repos"
	"github.com/Nynra/pyserver-tools/pkg/repos/db"
	. "github.com/Nynra/pyserver-tools/pkg/repos/reposbehaviors"
	"github.com/Nynra/pyserver-tools/pkg/sqlx"
)

var _ = Describe("Store", func() {
	var (
		store *db.Store
		conn  *sqlx.DB
	)

	BeforeEach(func() {
		var err error

		conn, err = testDB.Connect()
		Expect(err).NotTo(HaveOccurred())

		store = db.NewStore(conn)
	})

	AfterEach(func() {
		Expect(conn.Close()).To(Succeed())

		err := testDB.Truncate(
			"DELETE FROM group_membership",
			"DELETE FROM group_permission",
			"DELETE FROM auth_group",
			"DELETE FROM auth_permission",
		)
		Expect(err).NotTo(HaveOccurred())
	})

	BehavesLikeAGroupRepo(func() repos.GroupRepo { return store })
	BehavesLikeAPermissionRepo(func() repos.PermissionRepo { return store })
	BehavesLikeAMembershipRepo(
		func() repos.MembershipRepo { return store },
		func() repos.GroupRepo { return store },
	)
})
