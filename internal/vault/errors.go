package vault

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-keep-vault/models"
)

// Sentinel errors returned by tree operations. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a lookup, update or delete targets a
	// UUID that is absent from the tree. The concrete error is a
	// [*NotFoundError] carrying the UUID and kind.
	ErrNotFound = errors.New("node was not found")

	// ErrGuardViolation is returned when a mutation would break a tree
	// invariant, currently only an attempt to recycle the recycle bin
	// itself.
	ErrGuardViolation = errors.New("operation is not allowed for this node")

	// ErrInvalidAttachmentRef is reported when an entry references an
	// attachment pool index that does not resolve. It is recovered locally
	// during conversion (the attachment is skipped) and never aborts a read.
	ErrInvalidAttachmentRef = errors.New("attachment reference does not resolve")
)

// NotFoundError reports which node a failed operation was looking for.
// It matches [ErrNotFound] under [errors.Is].
type NotFoundError struct {
	UUID string
	Kind models.NodeKind
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with UUID %s was not found", e.Kind, e.UUID)
}

// Is makes every NotFoundError match the ErrNotFound sentinel.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func notFound(uuid string, kind models.NodeKind) error {
	return &NotFoundError{UUID: uuid, Kind: kind}
}
