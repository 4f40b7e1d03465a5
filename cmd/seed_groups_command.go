package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Nynra/pyserver-tools/cmd/flags"
	"github.com/Nynra/pyserver-tools/pkg/metrics"
	"github.com/Nynra/pyserver-tools/pkg/provision"
	"github.com/Nynra/pyserver-tools/pkg/repos/db"
)

const (
	MetricSeedGroupsCreated   = "groupauth.seed.groups.created"
	MetricSeedGroupsRecreated = "groupauth.seed.groups.recreated"

	alwaysSendMetric = 1.0
)

// SeedGroupsCommand provisions the registered group sets against the SQL
// backend. Without --app it seeds every registered application.
type SeedGroupsCommand struct {
	Logger flags.LagerFlag

	Force   bool     `long:"force" description:"Recreate groups that already exist, replacing their permissions"`
	Verbose bool     `long:"verbose" description:"Report every permission attached or skipped"`
	Apps    []string `long:"app" description:"Application whose groups should be seeded; may be given more than once"`

	SQL    flags.DBFlag     `group:"SQL" namespace:"sql"`
	StatsD flags.StatsDFlag `group:"StatsD" namespace:"statsd"`

	// Out is os.Stdout unless a test replaces it.
	Out io.Writer
}

func (cmd SeedGroupsCommand) Execute([]string) error {
	logger := cmd.Logger.Logger("pyserver-tools").WithName("seed-groups")

	out := cmd.Out
	if out == nil {
		out = os.Stdout
	}

	var statter metrics.Statter
	if cmd.StatsD.Configured() {
		statsdStatter, closeClient, err := cmd.StatsD.Connect(logger)
		if err != nil {
			return err
		}
		defer closeClient()

		statter = statsdStatter
	}

	conn, err := cmd.SQL.Connect(logger)
	if err != nil {
		return err
	}
	defer conn.Close()

	store := db.NewStore(conn)
	provisioner := provision.NewProvisioner(store, store)

	registry := provision.DefaultRegistry()
	apps := cmd.Apps
	if len(apps) == 0 {
		apps = registry.Apps()
	}

	ctx := context.Background()

	results, err := provision.Seed(ctx, logger, provisioner, registry, apps, provision.CreateOptions{
		Force: cmd.Force,
	})
	if err != nil {
		return err
	}

	WriteSeedReport(out, results, cmd.Verbose)

	if statter != nil {
		EmitSeedMetrics(statter, results)
	}

	return nil
}

// EmitSeedMetrics counts the groups created and recreated across every
// seeded application.
func EmitSeedMetrics(statter metrics.Statter, results []provision.SeedResult) {
	var created, recreated int64
	for _, result := range results {
		for _, group := range result.Groups {
			switch {
			case group.Created:
				created++
			case group.Cleared:
				recreated++
			}
		}
	}

	_ = statter.Inc(MetricSeedGroupsCreated, created, alwaysSendMetric)
	_ = statter.Inc(MetricSeedGroupsRecreated, recreated, alwaysSendMetric)
}

// WriteSeedReport renders one status line per group, plus per-permission
// detail when verbose is set.
func WriteSeedReport(out io.Writer, results []provision.SeedResult, verbose bool) {
	for _, result := range results {
		if result.Skipped {
			fmt.Fprintf(out, "app %q is not registered, skipping\n", result.App)
			continue
		}

		for _, group := range result.Groups {
			switch {
			case group.Created:
				fmt.Fprintf(out, "created group %q with %d permission(s)\n", group.Group.Name, len(group.Attached))
			case group.Cleared:
				fmt.Fprintf(out, "recreated group %q with %d permission(s)\n", group.Group.Name, len(group.Attached))
			default:
				fmt.Fprintf(out, "group %q already exists, not modified\n", group.Group.Name)
			}

			if !verbose {
				continue
			}

			for _, codename := range group.Attached {
				fmt.Fprintf(out, "  attached %q to %q\n", codename, group.Group.Name)
			}
			for _, codename := range group.Skipped {
				fmt.Fprintf(out, "  skipped unknown permission %q\n", codename)
			}
		}
	}
}
