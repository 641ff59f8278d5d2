package models

import "time"

type User struct {
	BaseModel
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Role         UserRole   `gorm:"type:varchar(20);not null;default:'member'" json:"role"`
	Status       UserStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	Phone        string     `json:"phone,omitempty"`
	City         string     `json:"city,omitempty"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`

	// Relations
	Courses       []Course       `gorm:"foreignKey:OwnerID" json:"-"`
	Lessons       []Lesson       `gorm:"foreignKey:OwnerID" json:"-"`
	Payments      []Payment      `gorm:"foreignKey:UserID" json:"-"`
	Subscriptions []Subscription `gorm:"foreignKey:OwnerID" json:"-"`
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}
