package cmd

import "errors"

// ErrMigrationsOutOfSync means the migrations table does not match the
// migrations this build carries after applying them.
var ErrMigrationsOutOfSync = errors.New("applied migrations out of sync")
