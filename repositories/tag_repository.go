package repositories

import (
	"tourgid/models"

	"gorm.io/gorm"
)

type TagRepository interface {
	Create(tag *models.TourTag) error
	GetByID(id uint) (*models.TourTag, error)
	GetByName(name string) (*models.TourTag, error)
	GetAll() ([]models.TourTag, error)
	Count() (int64, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(tag *models.TourTag) error {
	return r.db.Create(tag).Error
}

func (r *tagRepository) GetByID(id uint) (*models.TourTag, error) {
	var tag models.TourTag
	err := r.db.First(&tag, id).Error
	return &tag, err
}

func (r *tagRepository) GetByName(name string) (*models.TourTag, error) {
	var tag models.TourTag
	err := r.db.Where("name = ?", name).First(&tag).Error
	return &tag, err
}

func (r *tagRepository) GetAll() ([]models.TourTag, error) {
	var tags []models.TourTag
	err := r.db.Find(&tags).Error
	return tags, err
}

func (r *tagRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.TourTag{}).Count(&count).Error
	return count, err
}
