package store

import "errors"

// Sentinel errors returned by the persistence gateway. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrVaultIO is returned (wrapped) when reading, writing, syncing or
	// renaming the vault file fails. The destination file is never left
	// half-written: any failure aborts before the atomic rename.
	ErrVaultIO = errors.New("vault file i/o failed")

	// ErrVaultExists is returned by Create when the destination path is
	// already occupied, so an existing vault is never overwritten silently.
	ErrVaultExists = errors.New("vault file already exists")
)

// Audit database operation errors, returned (or wrapped) by the audit
// repository when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// audit database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning column values during
	// result-set iteration fails.
	ErrScanningRows = errors.New("failed to scan audit event rows")
)
