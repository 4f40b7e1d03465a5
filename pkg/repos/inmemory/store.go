package inmemory

import "github.com/Nynra/pyserver-tools/pkg/groupauth"

// Store is a map-backed implementation of the repo interfaces, suitable for
// tests and for hosts that keep authorization state in process.
type Store struct {
	groups           map[string]groupauth.Group
	groupPermissions map[string][]groupauth.Permission

	registry map[string]groupauth.Permission

	members map[string][]string
}

func NewStore() *Store {
	return &Store{
		groups:           make(map[string]groupauth.Group),
		groupPermissions: make(map[string][]groupauth.Permission),
		registry:         make(map[string]groupauth.Permission),
		members:          make(map[string][]string),
	}
}
