package repositories

import (
	"tourgid/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TourListFilter carries the listing filters together with the visibility
// context of the requester. CheckSelf means the requester is listing their
// own tours and may see archived and unmoderated ones.
type TourListFilter struct {
	Search            string
	AuthorID          uint
	NotModerated      bool
	CheckSelf         bool
	ModerationEnabled bool
}

type TourRepository interface {
	Create(tour *models.Tour) error
	GetByID(id uint) (*models.Tour, error)
	Update(tour *models.Tour) error
	Delete(id uint) error
	List(filter TourListFilter) ([]models.Tour, error)
	DeleteBlocksByTourID(tourID uint) error
	CreateBlock(block *models.TourBlock) error
	AppendTag(tour *models.Tour, tag *models.TourTag) error
	Transaction(fn func(TourRepository) error) error
}

type tourRepository struct {
	db *gorm.DB
}

func NewTourRepository(db *gorm.DB) TourRepository {
	return &tourRepository{db: db}
}

func (r *tourRepository) Create(tour *models.Tour) error {
	return r.db.Create(tour).Error
}

func (r *tourRepository) GetByID(id uint) (*models.Tour, error) {
	var tour models.Tour
	err := r.db.Preload("Blocks").
		Preload("Tags").
		Preload("CreatedBy").
		First(&tour, id).Error
	return &tour, err
}

// Update writes the tour row itself; associations are managed explicitly
// (blocks are replaced wholesale, tags appended), so saving them here would
// resurrect rows deleted earlier in the same submission.
func (r *tourRepository) Update(tour *models.Tour) error {
	return r.db.Omit(clause.Associations).Save(tour).Error
}

// Delete removes the tour and everything hanging off it. Blocks, reactions
// and tag links go first so the delete also works on databases without
// enforced cascading constraints.
func (r *tourRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tour_id = ?", id).Delete(&models.TourBlock{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tour_id = ?", id).Delete(&models.TourReaction{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Tour{ID: id}).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.Tour{}, id).Error
	})
}

func (r *tourRepository) List(filter TourListFilter) ([]models.Tour, error) {
	var tours []models.Tour

	query := r.db.Model(&models.Tour{}).Preload("Tags").Preload("CreatedBy")

	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}

	if filter.AuthorID > 0 {
		query = query.Where("created_by_id = ?", filter.AuthorID)
	}

	if filter.ModerationEnabled && !filter.NotModerated && !filter.CheckSelf {
		query = query.Where("moderated_by_id IS NOT NULL")
	}

	if filter.NotModerated {
		query = query.Where("moderated_by_id IS NULL")
	}

	if !filter.CheckSelf {
		query = query.Where("archived = ?", false)
	}

	err := query.Find(&tours).Error
	return tours, err
}

func (r *tourRepository) DeleteBlocksByTourID(tourID uint) error {
	return r.db.Where("tour_id = ?", tourID).Delete(&models.TourBlock{}).Error
}

func (r *tourRepository) CreateBlock(block *models.TourBlock) error {
	return r.db.Create(block).Error
}

func (r *tourRepository) AppendTag(tour *models.Tour, tag *models.TourTag) error {
	return r.db.Model(tour).Association("Tags").Append(tag)
}

// Transaction runs fn against a repository bound to a single database
// transaction, so a whole submission commits or rolls back as one unit.
func (r *tourRepository) Transaction(fn func(TourRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&tourRepository{db: tx})
	})
}
