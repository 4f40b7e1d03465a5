package cmd_test

import (
	"bytes"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/Nynra/pyserver-tools/cmd"
	"github.com/Nynra/pyserver-tools/cmd/flags"
	"github.com/Nynra/pyserver-tools/pkg/groupauth"
	"github.com/Nynra/pyserver-tools/pkg/metrics/testmetrics"
	"github.com/Nynra/pyserver-tools/pkg/provision"
)

var _ = Describe("SeedGroupsCommand", func() {
	It("errors out on an unsupported driver", func() {
		seedCmd := SeedGroupsCommand{
			Logger: flags.LagerFlag{LogLevel: "fatal"},
			SQL: flags.DBFlag{
				Driver:   "unsupported-driver",
				Host:     "host",
				Port:     2313,
				Schema:   "pyserver",
				Username: "pyserver",
				Password: "pyserver",
			},
		}

		err := seedCmd.Execute([]string{})
		Expect(err).To(MatchError("unsupported sql driver"))
	})

	Describe("WriteSeedReport", func() {
		var results []provision.SeedResult

		BeforeEach(func() {
			results = []provision.SeedResult{
				{
					App: "users",
					Groups: []provision.GroupResult{
						{
							Group:    groupauth.Group{Name: "admins"},
							Created:  true,
							Attached: []string{"add_user", "delete_user"},
						},
						{
							Group:   groupauth.Group{Name: "users"},
							Cleared: true,
							Skipped: []string{"fly_user"},
						},
						{
							Group: groupauth.Group{Name: "superusers"},
						},
					},
				},
				{
					App:     "unknown-app",
					Skipped: true,
				},
			}
		})

		It("writes one status line per group", func() {
			var out bytes.Buffer
			WriteSeedReport(&out, results, false)

			Expect(out.String()).To(Equal(
				"created group \"admins\" with 2 permission(s)\n" +
					"recreated group \"users\" with 0 permission(s)\n" +
					"group \"superusers\" already exists, not modified\n" +
					"app \"unknown-app\" is not registered, skipping\n",
			))
		})

		It("details every permission when verbose", func() {
			var out bytes.Buffer
			WriteSeedReport(&out, results, true)

			Expect(out.String()).To(ContainSubstring("  attached \"add_user\" to \"admins\"\n"))
			Expect(out.String()).To(ContainSubstring("  skipped unknown permission \"fly_user\"\n"))
		})
	})

	Describe("EmitSeedMetrics", func() {
		It("counts created and recreated groups across apps", func() {
			statter := testmetrics.NewStatter()

			EmitSeedMetrics(statter, []provision.SeedResult{
				{
					App: "users",
					Groups: []provision.GroupResult{
						{Group: groupauth.Group{Name: "admins"}, Created: true},
						{Group: groupauth.Group{Name: "users"}, Cleared: true},
						{Group: groupauth.Group{Name: "superusers"}},
					},
				},
				{
					App: "cve-scraper",
					Groups: []provision.GroupResult{
						{Group: groupauth.Group{Name: "scrapers"}, Created: true},
					},
				},
			})

			incCalls := statter.IncCalls()
			Expect(incCalls).To(HaveLen(2))
			Expect(incCalls[0].Metric).To(Equal(MetricSeedGroupsCreated))
			Expect(incCalls[0].Value).To(Equal(int64(2)))
			Expect(incCalls[1].Metric).To(Equal(MetricSeedGroupsRecreated))
			Expect(incCalls[1].Value).To(Equal(int64(1)))
		})
	})
})
