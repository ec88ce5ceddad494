package repositories

import (
	"tourgid/models"

	"gorm.io/gorm"
)

type ReactionRepository interface {
	Create(reaction *models.TourReaction) error
	GetByID(id uint) (*models.TourReaction, error)
	GetByTourID(tourID uint) ([]models.TourReaction, error)
	Delete(id uint) error
}

type reactionRepository struct {
	db *gorm.DB
}

func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

func (r *reactionRepository) Create(reaction *models.TourReaction) error {
	return r.db.Create(reaction).Error
}

func (r *reactionRepository) GetByID(id uint) (*models.TourReaction, error) {
	var reaction models.TourReaction
	err := r.db.First(&reaction, id).Error
	return &reaction, err
}

func (r *reactionRepository) GetByTourID(tourID uint) ([]models.TourReaction, error) {
	var reactions []models.TourReaction
	err := r.db.Where("tour_id = ?", tourID).
		Preload("CreatedBy").
		Order("id desc").
		Find(&reactions).Error
	return reactions, err
}

func (r *reactionRepository) Delete(id uint) error {
	return r.db.Delete(&models.TourReaction{}, id).Error
}
