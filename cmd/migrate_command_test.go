package cmd_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/Nynra/pyserver-tools/cmd"
	"github.com/Nynra/pyserver-tools/cmd/flags"
	"github.com/Nynra/pyserver-tools/pkg/repos/db"
)

var _ = Describe("MigrateCommand", func() {
	Describe("#TableName", func() {
		It("defaults to the canonical migrations table", func() {
			migrateCmd := MigrateCommand{}

			Expect(migrateCmd.TableName()).To(Equal(db.MigrationsTableName))
		})

		It("prefers the flag when given", func() {
			migrateCmd := MigrateCommand{
				MigrationsTableName: "custom_migrations",
			}

			Expect(migrateCmd.TableName()).To(Equal("custom_migrations"))
		})
	})

	It("errors out on an unsupported driver", func() {
		migrateCmd := MigrateCommand{
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

		err := migrateCmd.Execute([]string{})
		Expect(err).To(MatchError("unsupported sql driver"))
	})
})
