package db

const (
	errGroupNotFound      = "group-not-found"
	errGroupAlreadyExists = "group-already-exists"

	errPermissionNotFound      = "permission-not-found"
	errPermissionAlreadyExists = "permission-already-exists"

	errMembershipNotFound      = "membership-not-found"
	errMembershipAlreadyExists = "membership-already-exists"

	failedToStartTransaction  = "failed-to-start-transaction"
	failedToRetrieveID        = "failed-to-retrieve-id"
	failedToCountRowsAffected = "failed-to-count-rows-affected"

	failedToCreateGroup          = "failed-to-create-group"
	failedToFindGroup            = "failed-to-find-group"
	failedToDeleteGroup          = "failed-to-delete-group"
	failedToListGroupPermissions = "failed-to-list-group-permissions"
	failedToAssignPermission     = "failed-to-assign-permission"
	failedToClearPermissions     = "failed-to-clear-permissions"

	failedToCreatePermission = "failed-to-create-permission"
	failedToFindPermission   = "failed-to-find-permission"

	failedToAddMember      = "failed-to-add-member"
	failedToRemoveMember   = "failed-to-remove-member"
	failedToCheckMember    = "failed-to-check-member"
	failedToListUserGroups = "failed-to-list-user-groups"
)
