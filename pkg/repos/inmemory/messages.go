package inmemory

const (
	success = "success"

	errPermissionAlreadyAssigned = "permission-already-assigned"
	errMembershipAlreadyExists   = "membership-already-exists"
	errMembershipNotFound        = "membership-not-found"
)
