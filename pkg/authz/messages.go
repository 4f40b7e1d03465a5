package authz

const (
	actionNotMapped         = "action-not-mapped"
	failedToCheckMembership = "failed-to-check-membership"
)
