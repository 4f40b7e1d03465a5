package groupauth

// PublicGroup is the reserved group name that marks an action as public.
// When it appears among an action's required groups, the action is allowed
// for every caller with no membership or authentication check.
const PublicGroup = "_Public"

// Well-known group names provisioned by the seed command.
const (
	AdminGroup     = "admins"
	SuperuserGroup = "superusers"
)

// User is the host application's acting identity. Group memberships are not
// carried on the struct; they are resolved through a MembershipRepo.
type User struct {
	ID string

	Authenticated bool
	Active        bool
	Staff         bool
	Superuser     bool
}

// Group is a named collection of permissions and member users, unique by
// name.
type Group struct {
	Name string
}

// Permission identifies a capability by codename. Codenames are opaque to
// this library; the host's permission registry is authoritative for which
// codenames exist.
type Permission struct {
	Codename string
	Name     string
}

// ActionGroups maps an action name to the group names allowed to perform it.
// An action absent from the map is always denied.
type ActionGroups map[string][]string
