package access

import "eduplatform/internal/domain/users"

type Action string

const (
	ActionCreate        Action = "create"
	ActionRetrieve      Action = "retrieve"
	ActionUpdate        Action = "update"
	ActionPartialUpdate Action = "partial_update"
	ActionDestroy       Action = "destroy"
	ActionList          Action = "list"
)

// Course decides whether actor may perform action on a course owned by
// ownerID. The actor is already authenticated; anonymous requests never
// reach policy code.
//
// Destroy is narrower than update: an owner who is also a moderator may
// update but not destroy.
func Course(actor users.User, action Action, ownerID *uint) bool {
	switch action {
	case ActionCreate:
		// Moderators curate, they do not author.
		return !actor.IsModerator()
	case ActionRetrieve, ActionList:
		return true
	case ActionUpdate, ActionPartialUpdate:
		return actor.IsModerator() || owns(actor, ownerID)
	case ActionDestroy:
		return owns(actor, ownerID) && !actor.IsModerator()
	}
	return false
}

// Lesson mirrors Course except that lesson detail is restricted to the
// owner or a moderator.
func Lesson(actor users.User, action Action, ownerID *uint) bool {
	switch action {
	case ActionCreate:
		return !actor.IsModerator()
	case ActionList:
		return true
	case ActionRetrieve, ActionUpdate, ActionPartialUpdate:
		return actor.IsModerator() || owns(actor, ownerID)
	case ActionDestroy:
		return owns(actor, ownerID) && !actor.IsModerator()
	}
	return false
}

// Profile is identity equality, not role based: staff cannot edit another
// user's profile through the self-resource.
func Profile(actor users.User, resourceID uint) bool {
	return actor.ID == resourceID
}

func owns(actor users.User, ownerID *uint) bool {
	return ownerID != nil && *ownerID == actor.ID
}
