package services

import (
	"errors"
	"mime/multipart"

	"tourgid/models"
	"tourgid/repositories"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService interface {
	UpdateProfile(userID uint, req models.UpdateProfileRequest, photo *multipart.FileHeader) (*models.User, error)
	GrantModerator(login string) error
	AddFavouriteTag(userID, tagID uint) error
	GetFavouriteTags(userID uint) ([]models.TourTag, error)
}

type userService struct {
	userRepo repositories.UserRepository
	tagRepo  repositories.TagRepository
	media    MediaService
}

func NewUserService(userRepo repositories.UserRepository, tagRepo repositories.TagRepository, media MediaService) UserService {
	return &userService{
		userRepo: userRepo,
		tagRepo:  tagRepo,
		media:    media,
	}
}

// UpdateProfile applies the personal-cabinet form: any subset of new login,
// bio, password (with confirmation) and profile photo.
func (s *userService) UpdateProfile(userID uint, req models.UpdateProfileRequest, photo *multipart.FileHeader) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if photo != nil {
		path, err := s.media.Store(photo)
		if err != nil {
			return nil, err
		}
		user.ProfilePhotoPath = path
	}

	if req.Login != "" && req.Login != user.Login {
		if _, err := s.userRepo.GetByLogin(req.Login); err == nil {
			return nil, ErrLoginTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Login = req.Login
	}

	if req.Password != "" {
		if req.Password != req.Repass {
			return nil, ErrPasswordMismatch
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hashed)
	}

	user.Bio = req.Bio

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) GrantModerator(login string) error {
	user, err := s.userRepo.GetByLogin(login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	user.IsModerator = true
	return s.userRepo.Update(user)
}

// AddFavouriteTag is a union: adding an already favourite tag is a no-op.
func (s *userService) AddFavouriteTag(userID, tagID uint) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	tag, err := s.tagRepo.GetByID(tagID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTagNotFound
		}
		return err
	}

	existing, err := s.userRepo.GetFavouriteTags(userID)
	if err != nil {
		return err
	}
	for _, t := range existing {
		if t.ID == tagID {
			return nil
		}
	}

	return s.userRepo.AppendFavouriteTag(user, tag)
}

func (s *userService) GetFavouriteTags(userID uint) ([]models.TourTag, error) {
	return s.userRepo.GetFavouriteTags(userID)
}
