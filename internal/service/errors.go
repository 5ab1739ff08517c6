package service

import "errors"

var (
	// ErrNoVaultLoaded is returned when an operation is attempted before a
	// vault has been unlocked or created.
	ErrNoVaultLoaded = errors.New("no vault is loaded")

	// ErrLockContention is returned when exclusive access to the save
	// pipeline could not be obtained: a synchronous save was requested
	// while another save is in flight. The request is not retried
	// automatically.
	ErrLockContention = errors.New("a save is already in progress")
)
