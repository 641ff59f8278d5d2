package repositories

import (
	"lms_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionRepository interface {
	// Toggle flips the subscription state for the (owner, course) pair in a
	// single conditional operation and reports whether the subscription now
	// exists.
	Toggle(ownerID, courseID string) (added bool, err error)
	Exists(ownerID, courseID string) (bool, error)
	FindByOwner(ownerID string) ([]models.Subscription, error)
	SubscriberEmails(courseID string) ([]string, error)
	CountByCourse(courseID string) (int64, error)
}

type SubscriptionRepositoryImpl struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &SubscriptionRepositoryImpl{db: db}
}

// Toggle relies on the unique (owner_id, course_id) index instead of a
// check-then-act sequence, so two concurrent requests cannot produce
// duplicate rows or lose a delete: the delete is conditional on the row
// existing, the insert is conditional on it not existing.
func (r *SubscriptionRepositoryImpl) Toggle(ownerID, courseID string) (bool, error) {
	result := r.db.Where("owner_id = ? AND course_id = ?", ownerID, courseID).
		Delete(&models.Subscription{})
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected > 0 {
		return false, nil
	}

	sub := &models.Subscription{OwnerID: ownerID, CourseID: courseID}
	insert := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(sub)
	if insert.Error != nil {
		return false, insert.Error
	}
	if insert.RowsAffected == 0 {
		// A concurrent request created the row between our delete and
		// insert; this toggle removes it again.
		del := r.db.Where("owner_id = ? AND course_id = ?", ownerID, courseID).
			Delete(&models.Subscription{})
		if del.Error != nil {
			return false, del.Error
		}
		return false, nil
	}
	return true, nil
}

func (r *SubscriptionRepositoryImpl) Exists(ownerID, courseID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Subscription{}).
		Where("owner_id = ? AND course_id = ?", ownerID, courseID).
		Count(&count).Error
	return count > 0, err
}

func (r *SubscriptionRepositoryImpl) FindByOwner(ownerID string) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at").Find(&subs).Error
	return subs, err
}

// SubscriberEmails returns the addresses of everyone subscribed to the
// course, for update notifications.
func (r *SubscriptionRepositoryImpl) SubscriberEmails(courseID string) ([]string, error) {
	var emails []string
	err := r.db.Model(&models.Subscription{}).
		Joins("JOIN users ON users.id = subscriptions.owner_id").
		Where("subscriptions.course_id = ?", courseID).
		Pluck("users.email", &emails).Error
	return emails, err
}

func (r *SubscriptionRepositoryImpl) CountByCourse(courseID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Subscription{}).Where("course_id = ?", courseID).Count(&count).Error
	return count, err
}
