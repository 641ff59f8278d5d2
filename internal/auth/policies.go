package auth

import (
	"lms_backend/internal/models"
)

// Decision is the result of a policy evaluation. A denied decision always
// carries the reason so the caller can answer with something better than an
// empty 403.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// IsModerator reports whether the role belongs to the moderator group.
func IsModerator(role models.UserRole) bool {
	return role == models.UserRoleModerator
}

// IsOwner reports whether the record belongs to the user. A record without
// an owner belongs to nobody.
func IsOwner(userID string, ownerID *string) bool {
	return ownerID != nil && *ownerID == userID
}

// CourseCreate: any authenticated non-moderator may create a course.
func CourseCreate(role models.UserRole) Decision {
	if IsModerator(role) {
		return deny("moderators cannot create courses")
	}
	return allow()
}

// CourseView covers list, retrieve and update: the owner or a moderator.
func CourseView(userID string, role models.UserRole, ownerID *string) Decision {
	if IsModerator(role) || IsOwner(userID, ownerID) {
		return allow()
	}
	return deny("only the course owner or a moderator may access this course")
}

// CourseDelete: strictly the owner, moderators are excluded.
func CourseDelete(userID string, role models.UserRole, ownerID *string) Decision {
	if IsModerator(role) {
		return deny("moderators cannot delete courses")
	}
	if !IsOwner(userID, ownerID) {
		return deny("only the course owner may delete this course")
	}
	return allow()
}

// LessonCreate: any authenticated non-moderator, ownership is assigned to
// the requester.
func LessonCreate(role models.UserRole) Decision {
	if IsModerator(role) {
		return deny("moderators cannot create lessons")
	}
	return allow()
}

// LessonAccess covers list, retrieve, update and delete: the owner or a
// moderator.
func LessonAccess(userID string, role models.UserRole, ownerID *string) Decision {
	if IsModerator(role) || IsOwner(userID, ownerID) {
		return allow()
	}
	return deny("only the lesson owner or a moderator may access this lesson")
}

// UserModify: profile operations are allowed on the own account only.
func UserModify(userID, targetID string) Decision {
	if userID == targetID {
		return allow()
	}
	return deny("users may only modify their own account")
}
