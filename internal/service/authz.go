package service

import "healthforum/internal/models"

// AuthorizeOwner applies the ownership policy shared by every entry point
// that gates a resource on its author: the not-found check always runs
// before the ownership check, so a caller is told "not found" only when the
// resource truly does not exist.
//
// found=false yields NotFound; an owner mismatch yields Forbidden; otherwise
// the caller may proceed.
func AuthorizeOwner(resource, id string, found bool, ownerID, callerID string) error {
	if !found {
		return models.NewNotFoundError(resource, id)
	}
	if ownerID != callerID {
		return models.NewForbiddenError("you can only modify your own " + resource)
	}
	return nil
}
