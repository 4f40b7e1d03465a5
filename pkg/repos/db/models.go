package db

import (
	"github.com/Nynra/pyserver-tools/pkg/groupauth"
)

type id int64

type group struct {
	ID id
	groupauth.Group
}

type permission struct {
	ID id
	groupauth.Permission
}
