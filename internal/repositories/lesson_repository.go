package repositories

import (
	"errors"

	"lms_backend/internal/models"

	"gorm.io/gorm"
)

var ErrLessonNotFound = errors.New("lesson not found")

type LessonRepository interface {
	Create(lesson *models.Lesson) error
	FindByID(id string) (*models.Lesson, error)
	FindAll(limit, offset int) ([]models.Lesson, int64, error)
	FindByOwner(ownerID string, limit, offset int) ([]models.Lesson, int64, error)
	Update(lesson *models.Lesson) error
	Delete(id string) error
}

type LessonRepositoryImpl struct {
	db *gorm.DB
}

func NewLessonRepository(db *gorm.DB) LessonRepository {
	return &LessonRepositoryImpl{db: db}
}

func (r *LessonRepositoryImpl) Create(lesson *models.Lesson) error {
	return r.db.Create(lesson).Error
}

func (r *LessonRepositoryImpl) FindByID(id string) (*models.Lesson, error) {
	var lesson models.Lesson
	err := r.db.First(&lesson, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLessonNotFound
		}
		return nil, err
	}
	return &lesson, nil
}

func (r *LessonRepositoryImpl) FindAll(limit, offset int) ([]models.Lesson, int64, error) {
	var lessons []models.Lesson

	var total int64
	if err := r.db.Model(&models.Lesson{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&lessons).Error
	return lessons, total, err
}

func (r *LessonRepositoryImpl) FindByOwner(ownerID string, limit, offset int) ([]models.Lesson, int64, error) {
	var lessons []models.Lesson

	var total int64
	if err := r.db.Model(&models.Lesson{}).Where("owner_id = ?", ownerID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("owner_id = ?", ownerID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&lessons).Error
	return lessons, total, err
}

func (r *LessonRepositoryImpl) Update(lesson *models.Lesson) error {
	result := r.db.Model(lesson).Updates(map[string]interface{}{
		"name":        lesson.Name,
		"description": lesson.Description,
		"video_url":   lesson.VideoURL,
		"course_id":   lesson.CourseID,
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLessonNotFound
	}
	return nil
}

func (r *LessonRepositoryImpl) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Payment{}).Where("paid_lesson_id = ?", id).
			Update("paid_lesson_id", nil).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Lesson{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrLessonNotFound
		}
		return nil
	})
}
