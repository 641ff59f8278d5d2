package models

// Payment references either a course or a lesson, never both. SessionID and
// PaymentLink are echoed from the payment gateway once the checkout session
// has been created; a Payment row is only persisted with them populated.
type Payment struct {
	BaseModel
	UserID       string      `gorm:"type:uuid;not null;index" json:"user_id"`
	PaidCourseID *string     `gorm:"type:uuid;index" json:"paid_course_id"`
	PaidLessonID *string     `gorm:"type:uuid;index" json:"paid_lesson_id"`
	Amount       float64     `gorm:"not null" json:"amount"`
	PaymentType  PaymentType `gorm:"type:varchar(20);not null" json:"payment_type"`
	SessionID    string      `json:"session_id"`
	PaymentLink  string      `json:"payment_link"`

	// Relations
	User       *User   `gorm:"foreignKey:UserID" json:"-"`
	PaidCourse *Course `gorm:"foreignKey:PaidCourseID;constraint:OnDelete:SET NULL" json:"-"`
	PaidLesson *Lesson `gorm:"foreignKey:PaidLessonID;constraint:OnDelete:SET NULL" json:"-"`
}
