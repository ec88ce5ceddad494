package services

import (
	"errors"

	"tourgid/models"
	"tourgid/repositories"

	"gorm.io/gorm"
)

type ReactionService interface {
	CreateReaction(tourID uint, req models.CreateReactionRequest, userID uint) (*models.TourReaction, error)
	GetReactions(tourID uint) ([]models.TourReaction, error)
	DeleteReaction(id uint, actingUserID uint, isModerator bool) error
}

type reactionService struct {
	reactionRepo repositories.ReactionRepository
	tourRepo     repositories.TourRepository
}

func NewReactionService(reactionRepo repositories.ReactionRepository, tourRepo repositories.TourRepository) ReactionService {
	return &reactionService{
		reactionRepo: reactionRepo,
		tourRepo:     tourRepo,
	}
}

func (s *reactionService) CreateReaction(tourID uint, req models.CreateReactionRequest, userID uint) (*models.TourReaction, error) {
	if _, err := s.tourRepo.GetByID(tourID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTourNotFound
		}
		return nil, err
	}

	reaction := models.NewTourReaction(
		req.Text,
		req.BeautyCriteria,
		req.RouteSmoothnessCriteria,
		req.AttractionsCriteria,
		req.AccessibilityCriteria,
		userID,
		tourID,
	)

	if err := s.reactionRepo.Create(reaction); err != nil {
		return nil, err
	}

	return reaction, nil
}

func (s *reactionService) GetReactions(tourID uint) ([]models.TourReaction, error) {
	if _, err := s.tourRepo.GetByID(tourID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTourNotFound
		}
		return nil, err
	}
	return s.reactionRepo.GetByTourID(tourID)
}

func (s *reactionService) DeleteReaction(id uint, actingUserID uint, isModerator bool) error {
	reaction, err := s.reactionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReactionNotFound
		}
		return err
	}

	if reaction.CreatedByID != actingUserID && !isModerator {
		return ErrForbidden
	}

	return s.reactionRepo.Delete(id)
}
