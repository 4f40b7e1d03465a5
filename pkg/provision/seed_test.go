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

var _ = Describe("Seed", func() {
	var (
		store       *inmemory.Store
		provisioner *Provisioner
		registry    *Registry

		ctx    context.Context
		logger logx.Logger
	)

	BeforeEach(func() {
		store = inmemory.NewStore()
		provisioner = NewProvisioner(store, store)

		ctx = context.Background()
		logger = lagerx.NewLogger(lagertest.NewTestLogger("seed-test"))

		registry = NewRegistry()
		registry.Register(GroupSet{
			App: "users",
			Groups: []GroupSpec{
				{Name: groupauth.AdminGroup, Permissions: []string{"add_user"}},
				{Name: "users", Permissions: []string{"view_user"}},
			},
		})

		for _, codename := range []string{"add_user", "view_user"} {
			err := store.CreatePermission(ctx, logger, groupauth.Permission{Codename: codename})
			Expect(err).NotTo(HaveOccurred())
		}
	})

	It("provisions every group of a registered app", func() {
		results, err := Seed(ctx, logger, provisioner, registry, []string{"users"}, CreateOptions{})

		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(1))
		Expect(results[0].App).To(Equal("users"))
		Expect(results[0].Skipped).To(BeFalse())
		Expect(results[0].Groups).To(HaveLen(2))

		_, err = store.FindGroup(ctx, logger, repos.FindGroupQuery{GroupName: groupauth.AdminGroup})
		Expect(err).NotTo(HaveOccurred())
		_, err = store.FindGroup(ctx, logger, repos.FindGroupQuery{GroupName: "users"})
		Expect(err).NotTo(HaveOccurred())
	})

	It("skips an app with no registered set", func() {
		results, err := Seed(ctx, logger, provisioner, registry, []string{"cve-scraper", "users"}, CreateOptions{})

		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(2))
		Expect(results[0].App).To(Equal("cve-scraper"))
		Expect(results[0].Skipped).To(BeTrue())
		Expect(results[1].Skipped).To(BeFalse())
	})

	It("is idempotent without force", func() {
		_, err := Seed(ctx, logger, provisioner, registry, []string{"users"}, CreateOptions{})
		Expect(err).NotTo(HaveOccurred())

		results, err := Seed(ctx, logger, provisioner, registry, []string{"users"}, CreateOptions{})
		Expect(err).NotTo(HaveOccurred())

		for _, groupResult := range results[0].Groups {
			Expect(groupResult.Created).To(BeFalse())
			Expect(groupResult.Attached).To(BeEmpty())
		}
	})

	Describe("DefaultRegistry", func() {
		It("registers the sibling app group sets", func() {
			defaults := DefaultRegistry()

			Expect(defaults.Apps()).To(Equal([]string{"users", "cve-scraper"}))

			set, ok := defaults.Lookup("users")
			Expect(ok).To(BeTrue())

			var names []string
			for _, spec := range set.Groups {
				names = append(names, spec.Name)
			}
			Expect(names).To(ContainElement(groupauth.AdminGroup))
			Expect(names).To(ContainElement(groupauth.SuperuserGroup))
		})
	})
})
