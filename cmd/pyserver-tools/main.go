package main

import (
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/Nynra/pyserver-tools/cmd"
)

type options struct {
	Migrate    cmd.MigrateCommand    `command:"migrate" description:"Apply the SQL schema migrations"`
	SeedGroups cmd.SeedGroupsCommand `command:"seed-groups" description:"Create the registered permission groups"`
}

func main() {
	parserOpts := &options{}
	parser := flags.NewParser(parserOpts, flags.Default)
	parser.NamespaceDelimiter = "-"

	_, err := parser.Parse()
	if err != nil {
		os.Exit(1)
	}
}
