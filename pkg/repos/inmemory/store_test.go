package inmemory_test

import (
	. "github.com/onsi/ginkgo"

	"github.com/Nynra/pyserver-tools/pkg/repos"
	. "github.com/Nynra/pyserver-tools/pkg/repos/inmemory"
	. "github.com/Nynra/pyserver-tools/pkg/repos/reposbehaviors"
)

var _ = Describe("Store", func() {
	var (
		store *Store
	)

	BeforeEach(func() {
		store = NewStore()
	})

	BehavesLikeAGroupRepo(func() repos.GroupRepo { return store })
	BehavesLikeAPermissionRepo(func() repos.PermissionRepo { return store })
	BehavesLikeAMembershipRepo(
		func() repos.MembershipRepo { return store },
		func() repos.GroupRepo { return store },
	)
})
