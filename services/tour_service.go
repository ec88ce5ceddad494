package services

import (
	"errors"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"tourgid/models"
	"tourgid/repositories"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CreateTourID is the sentinel target id meaning "make a new tour".
const CreateTourID = "create"

// emptyFileContentType is what browsers send for a file input left blank.
const emptyFileContentType = "application/octet-stream"

// blockCheckboxes are the block attributes posted as checkboxes; absence in
// the form means unchecked.
var blockCheckboxes = []string{"show_on_map"}

type TourService interface {
	ProcessSubmission(form map[string][]string, targetID string, actingUserID uint, files map[string][]*multipart.FileHeader) (uint, error)
	GetTour(id uint) (*models.Tour, error)
	ListTours(params models.TourListParams, requesterID uint, isModerator bool) ([]models.Tour, error)
	DeleteTour(id uint, actingUserID uint, isModerator bool) error
	Moderate(tourID uint, moderatorID uint) error
}

type tourService struct {
	tourRepo          repositories.TourRepository
	tagRepo           repositories.TagRepository
	media             MediaService
	moderationEnabled bool
}

func NewTourService(tourRepo repositories.TourRepository, tagRepo repositories.TagRepository, media MediaService, moderationEnabled bool) TourService {
	return &tourService{
		tourRepo:          tourRepo,
		tagRepo:           tagRepo,
		media:             media,
		moderationEnabled: moderationEnabled,
	}
}

// ProcessSubmission reconciles one editor save into the database. The
// submitted block set replaces whatever was attached before; there is no
// per-block diffing, so the last writer wins under concurrent edits. All
// database work runs in one transaction; media files are written before it
// starts and are not rolled back with it.
func (s *tourService) ProcessSubmission(form map[string][]string, targetID string, actingUserID uint, files map[string][]*multipart.FileHeader) (uint, error) {
	blocks, guide := ReconcileForm(form, blockCheckboxes)

	// One upload slot per block: the file input is named "<blockId>:content",
	// so the key is truncated at the first colon. A blank file input still
	// posts an entry, recognized by its placeholder content type. Files are
	// written to the media store up front, outside the transaction below; a
	// rollback leaves them on disk unreferenced.
	uploads := make(map[string]string)
	for key, fhs := range files {
		blockID := strings.SplitN(key, ":", 2)[0]
		if len(fhs) == 0 {
			continue
		}
		if fhs[0].Header.Get("Content-Type") == emptyFileContentType {
			continue
		}
		if _, ok := uploads[blockID]; ok {
			continue
		}
		stored, err := s.media.Store(fhs[0])
		if err != nil {
			return 0, err
		}
		uploads[blockID] = stored
	}

	var tourID uint
	err := s.tourRepo.Transaction(func(repo repositories.TourRepository) error {
		var tour *models.Tour

		if targetID == CreateTourID {
			tour = models.NewTour(actingUserID, guide.String("tour_name"), models.PlaceholderCanvasHeight)
			// Create flushes immediately so the tour has an id before
			// blocks are attached.
			if err := repo.Create(tour); err != nil {
				return err
			}
		} else {
			id, err := strconv.ParseUint(targetID, 10, 32)
			if err != nil {
				return ErrTourNotFound
			}
			tour, err = repo.GetByID(uint(id))
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrTourNotFound
				}
				return err
			}
			tour.Name = guide.String("tour_name")
			tour.LastUpdatedAt = time.Now()
			if err := repo.DeleteBlocksByTourID(tour.ID); err != nil {
				return err
			}
		}

		maxRow := 0
		for blockID, block := range blocks {
			contentPath := uploads[blockID]
			// With no fresh upload the client echoes back the reference it
			// was showing, so the block keeps its media across saves.
			if block.Has("old_content_path") && contentPath == "" {
				contentPath = block.String("old_content_path")
			}

			if top := block.Int("row") + block.Int("height"); top > maxRow {
				maxRow = top
			}

			if err := repo.CreateBlock(&models.TourBlock{
				Name:        block.String("name"),
				Text:        block.String("text"),
				ContentPath: contentPath,
				Type:        models.BlockType(block.Int("type_")),
				ShowOnMap:   block.Bool("show_on_map"),
				Latitude:    block.Float("latitude"),
				Longitude:   block.Float("longitude"),
				Column:      block.Int("column"),
				Row:         block.Int("row"),
				Height:      block.Int("height"),
				Width:       block.Int("width"),
				TourID:      tour.ID,
			}); err != nil {
				return err
			}
		}

		// Tags are a union: ids already associated stay associated even
		// when missing from the submitted list.
		for _, rawTagID := range guide.List("tags") {
			tagID, err := strconv.ParseUint(rawTagID, 10, 32)
			if err != nil {
				return ErrTagNotFound
			}
			if tourHasTag(tour, uint(tagID)) {
				continue
			}
			tag, err := s.tagRepo.GetByID(uint(tagID))
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrTagNotFound
				}
				return err
			}
			if err := repo.AppendTag(tour, tag); err != nil {
				return err
			}
		}

		// With zero blocks this lands at -1; the editor always submits at
		// least one block, and the value only feeds the canvas size.
		tour.CanvasHeight = maxRow - 1
		if err := repo.Update(tour); err != nil {
			return err
		}

		tourID = tour.ID
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.WithFields(log.Fields{"tour_id": tourID, "blocks": len(blocks)}).Info("tour submission processed")
	return tourID, nil
}

func tourHasTag(tour *models.Tour, tagID uint) bool {
	for _, t := range tour.Tags {
		if t.ID == tagID {
			return true
		}
	}
	return false
}

func (s *tourService) GetTour(id uint) (*models.Tour, error) {
	tour, err := s.tourRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTourNotFound
		}
		return nil, err
	}
	return tour, nil
}

// ListTours applies the visibility rules: anonymous visitors and other users
// only see unarchived tours, and only moderated ones while moderation is
// enabled; authors listing their own tours see everything of theirs; a
// moderator may request the unmoderated backlog instead.
func (s *tourService) ListTours(params models.TourListParams, requesterID uint, isModerator bool) ([]models.Tour, error) {
	filter := repositories.TourListFilter{
		Search:            params.Search,
		AuthorID:          params.AuthorID,
		NotModerated:      params.NotModerated && isModerator,
		CheckSelf:         params.AuthorID != 0 && params.AuthorID == requesterID,
		ModerationEnabled: s.moderationEnabled,
	}

	tours, err := s.tourRepo.List(filter)
	if err != nil {
		return nil, err
	}

	if params.TagID > 0 {
		// Tag membership is filtered in memory over the preloaded tag sets.
		filtered := make([]models.Tour, 0, len(tours))
		for _, tour := range tours {
			if tourHasTag(&tour, params.TagID) {
				filtered = append(filtered, tour)
			}
		}
		tours = filtered
	}

	return tours, nil
}

func (s *tourService) DeleteTour(id uint, actingUserID uint, isModerator bool) error {
	tour, err := s.GetTour(id)
	if err != nil {
		return err
	}
	if tour.CreatedByID != actingUserID && !isModerator {
		return ErrForbidden
	}
	return s.tourRepo.Delete(id)
}

func (s *tourService) Moderate(tourID uint, moderatorID uint) error {
	tour, err := s.GetTour(tourID)
	if err != nil {
		return err
	}
	tour.ModeratedByID = &moderatorID
	return s.tourRepo.Update(tour)
}
