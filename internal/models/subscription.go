package models

// Subscription links a user to a course. Presence of the row is the whole
// state: toggling creates or deletes it, there is no update. The composite
// unique index is what makes the toggle atomic under concurrent requests.
type Subscription struct {
	BaseModel
	OwnerID  string `gorm:"type:uuid;not null;uniqueIndex:idx_subscriptions_owner_course" json:"owner_id"`
	CourseID string `gorm:"type:uuid;not null;uniqueIndex:idx_subscriptions_owner_course" json:"course_id"`

	// Relations
	Owner  *User   `gorm:"foreignKey:OwnerID" json:"-"`
	Course *Course `gorm:"foreignKey:CourseID" json:"-"`
}
