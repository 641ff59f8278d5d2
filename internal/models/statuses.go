package models

type UserRole string
type UserStatus string
type PaymentType string

const (
	// Members create and own courses/lessons. Moderators may view and edit
	// any course or lesson but never create or delete one. Admins receive
	// the inactivity sweep reports.
	UserRoleMember    UserRole = "member"
	UserRoleModerator UserRole = "moderator"
	UserRoleAdmin     UserRole = "admin"

	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"

	PaymentTypeCash     PaymentType = "cash"
	PaymentTypeTransfer PaymentType = "transfer"
)
