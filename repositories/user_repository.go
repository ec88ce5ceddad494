package repositories

import (
	"tourgid/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByLogin(login string) (*models.User, error)
	Update(user *models.User) error
	AppendFavouriteTag(user *models.User, tag *models.TourTag) error
	GetFavouriteTags(userID uint) ([]models.TourTag, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	return &user, err
}

func (r *userRepository) GetByLogin(login string) (*models.User, error) {
	var user models.User
	err := r.db.Where("login = ?", login).First(&user).Error
	return &user, err
}

func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) AppendFavouriteTag(user *models.User, tag *models.TourTag) error {
	return r.db.Model(user).Association("FavouriteTags").Append(tag)
}

func (r *userRepository) GetFavouriteTags(userID uint) ([]models.TourTag, error) {
	var tags []models.TourTag
	err := r.db.Model(&models.User{ID: userID}).Association("FavouriteTags").Find(&tags)
	return tags, err
}
