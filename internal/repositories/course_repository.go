package repositories

import (
	"errors"

	"lms_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCourseNotFound = errors.New("course not found")

type CourseRepository interface {
	Create(course *models.Course) error
	FindByID(id string) (*models.Course, error)
	FindAll(limit, offset int) ([]models.Course, int64, error)
	FindByOwner(ownerID string, limit, offset int) ([]models.Course, int64, error)
	Update(course *models.Course) error
	Delete(id string) error
	CountLessons(courseID string) (int64, error)
	CountSubscriptions(courseID string) (int64, error)
}

type CourseRepositoryImpl struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &CourseRepositoryImpl{db: db}
}

func (r *CourseRepositoryImpl) Create(course *models.Course) error {
	return r.db.Create(course).Error
}

func (r *CourseRepositoryImpl) FindByID(id string) (*models.Course, error) {
	var course models.Course
	err := r.db.Preload("Lessons").First(&course, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepositoryImpl) FindAll(limit, offset int) ([]models.Course, int64, error) {
	var courses []models.Course

	var total int64
	if err := r.db.Model(&models.Course{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Lessons").
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&courses).Error
	return courses, total, err
}

func (r *CourseRepositoryImpl) FindByOwner(ownerID string, limit, offset int) ([]models.Course, int64, error) {
	var courses []models.Course

	var total int64
	if err := r.db.Model(&models.Course{}).Where("owner_id = ?", ownerID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Lessons").Where("owner_id = ?", ownerID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&courses).Error
	return courses, total, err
}

func (r *CourseRepositoryImpl) Update(course *models.Course) error {
	result := r.db.Model(course).Updates(map[string]interface{}{
		"name":        course.Name,
		"description": course.Description,
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCourseNotFound
	}
	return nil
}

// Delete removes the course. Lesson and payment references are nulled, not
// cascaded; subscriptions to a gone course are meaningless and are removed.
func (r *CourseRepositoryImpl) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Lesson{}).Where("course_id = ?", id).
			Update("course_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Payment{}).Where("paid_course_id = ?", id).
			Update("paid_course_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", id).Delete(&models.Subscription{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Course{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCourseNotFound
		}
		return nil
	})
}

func (r *CourseRepositoryImpl) CountLessons(courseID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Lesson{}).Where("course_id = ?", courseID).Count(&count).Error
	return count, err
}

func (r *CourseRepositoryImpl) CountSubscriptions(courseID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Subscription{}).Where("course_id = ?", courseID).Count(&count).Error
	return count, err
}
