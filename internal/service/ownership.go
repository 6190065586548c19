package service

import (
	"fmt"

	"github.com/google/uuid"
)

// checkOwnership is the single authorization rule shared by the restaurant
// and meal services: the caller must be the owner of the resource. Owner and
// caller IDs are compared as opaque identifiers; on mismatch a
// resource-specific ErrNotOwned is returned, on equality the guard is silent.
//
// For meals the ownerID passed here is the parent restaurant's owner - the
// meal's own user field records its creator but carries no authority.
func checkOwnership(ownerID, callerID uuid.UUID, message string) error {
	if ownerID != callerID {
		return fmt.Errorf("%w: %s", ErrNotOwned, message)
	}
	return nil
}
