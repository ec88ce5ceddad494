package services

import (
	"errors"

	"tourgid/models"
	"tourgid/repositories"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type TagService interface {
	CreateTag(req models.CreateTagRequest) (*models.TourTag, error)
	GetTags() ([]models.TourTag, error)
	GetTag(id uint) (*models.TourTag, error)
	SeedDefaults() error
}

type tagService struct {
	tagRepo repositories.TagRepository
}

func NewTagService(tagRepo repositories.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

func (s *tagService) CreateTag(req models.CreateTagRequest) (*models.TourTag, error) {
	// Check if tag already exists
	_, err := s.tagRepo.GetByName(req.Name)
	if err == nil {
		return nil, ErrTagExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag := &models.TourTag{Name: req.Name}
	if err := s.tagRepo.Create(tag); err != nil {
		return nil, err
	}

	return tag, nil
}

func (s *tagService) GetTags() ([]models.TourTag, error) {
	return s.tagRepo.GetAll()
}

func (s *tagService) GetTag(id uint) (*models.TourTag, error) {
	tag, err := s.tagRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}
	return tag, nil
}

// SeedDefaults fills an empty catalog with the stock tags.
func (s *tagService) SeedDefaults() error {
	count, err := s.tagRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, name := range models.DefaultTags {
		if err := s.tagRepo.Create(&models.TourTag{Name: name}); err != nil {
			return err
		}
	}

	log.WithField("tags", len(models.DefaultTags)).Info("seeded default tag catalog")
	return nil
}
