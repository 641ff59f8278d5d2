package models

type Course struct {
	BaseModel
	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:250" json:"description"`
	OwnerID     *string `gorm:"type:uuid;index" json:"owner_id"`

	// Relations
	Owner         *User          `gorm:"foreignKey:OwnerID;constraint:OnDelete:SET NULL" json:"-"`
	Lessons       []Lesson       `gorm:"foreignKey:CourseID" json:"lessons,omitempty"`
	Subscriptions []Subscription `gorm:"foreignKey:CourseID" json:"-"`
}

type Lesson struct {
	BaseModel
	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:250" json:"description"`
	VideoURL    string  `gorm:"size:200" json:"video_url"`
	CourseID    *string `gorm:"type:uuid;index" json:"course_id"`
	OwnerID     *string `gorm:"type:uuid;index" json:"owner_id"`

	// Course deletion must not cascade into lessons, the reference is nulled.
	Course *Course `gorm:"foreignKey:CourseID;constraint:OnDelete:SET NULL" json:"-"`
	Owner  *User   `gorm:"foreignKey:OwnerID;constraint:OnDelete:SET NULL" json:"-"`
}
