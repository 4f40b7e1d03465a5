package provision

import (
	"context"

	"github.com/Nynra/pyserver-tools/pkg/groupauth"
	"github.com/Nynra/pyserver-tools/pkg/logx"
)

// GroupSpec names one group and the permission codenames it should carry.
type GroupSpec struct {
	Name        string
	Permissions []string
}

// GroupSet is the default group definition a sibling application
// contributes: a registry of these drives the seed command.
type GroupSet struct {
	App    string
	Groups []GroupSpec
}

// Registry holds group sets keyed by application name, in registration
// order.
type Registry struct {
	sets map[string]GroupSet
	apps []string
}

func NewRegistry() *Registry {
	return &Registry{
		sets: make(map[string]GroupSet),
	}
}

func (r *Registry) Register(set GroupSet) {
	if _, exists := r.sets[set.App]; !exists {
		r.apps = append(r.apps, set.App)
	}
	r.sets[set.App] = set
}

func (r *Registry) Lookup(app string) (GroupSet, bool) {
	set, ok := r.sets[app]
	return set, ok
}

func (r *Registry) Apps() []string {
	apps := make([]string, len(r.apps))
	copy(apps, r.apps)
	return apps
}

// DefaultRegistry carries the group sets for the sibling applications this
// tool set ships alongside.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register(GroupSet{
		App: "users",
		Groups: []GroupSpec{
			{
				Name:        groupauth.AdminGroup,
				Permissions: []string{"add_user", "change_user", "delete_user", "view_user"},
			},
			{
				Name:        groupauth.SuperuserGroup,
				Permissions: []string{"add_user", "change_user", "delete_user", "view_user"},
			},
			{
				Name:        "users",
				Permissions: []string{"view_user", "change_user"},
			},
		},
	})

	r.Register(GroupSet{
		App: "cve-scraper",
		Groups: []GroupSpec{
			{
				Name:        "scrapers",
				Permissions: []string{"add_cve", "change_cve", "delete_cve", "view_cve"},
			},
			{
				Name:        "cve-readonly",
				Permissions: []string{"view_cve"},
			},
		},
	})

	return r
}

// SeedResult reports what Seed did for one application.
type SeedResult struct {
	App     string
	Skipped bool
	Groups  []GroupResult
}

// Seed provisions the registered group set of every requested application.
// An application with no registered set is skipped, never an error; sibling
// applications may not all be installed.
func Seed(
	ctx context.Context,
	logger logx.Logger,
	provisioner *Provisioner,
	registry *Registry,
	apps []string,
	opts CreateOptions,
) ([]SeedResult, error) {
	logger = logger.WithName("seed")

	var results []SeedResult

	for _, app := range apps {
		appLogger := logger.WithData(logx.Data{
			Key:   "app",
			Value: app,
		})

		set, ok := registry.Lookup(app)
		if !ok {
			appLogger.Info(appNotRegistered)
			results = append(results, SeedResult{App: app, Skipped: true})
			continue
		}

		appLogger.Debug(seedingApp)

		result := SeedResult{App: app}
		for _, spec := range set.Groups {
			groupResult, err := provisioner.CreateOrUpdateGroup(ctx, appLogger, spec.Name, spec.Permissions, opts)
			if err != nil {
				return results, err
			}

			result.Groups = append(result.Groups, groupResult)
		}

		results = append(results, result)
	}

	return results, nil
}
