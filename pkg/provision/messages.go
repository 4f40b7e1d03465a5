package provision

const (
	createdGroup       = "created-group"
	clearedPermissions = "cleared-permissions"
	groupAlreadyExists = "group-already-exists"
	groupNotFound      = "group-not-found"

	permissionNotFound        = "permission-not-found"
	permissionAlreadyAssigned = "permission-already-assigned"

	appNotRegistered = "app-not-registered"
	seedingApp       = "seeding-app"
)
