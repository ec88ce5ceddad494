package models

import (
	"time"
)

// CanvasWidth is fixed for every tour; only the height grows with content.
const (
	DefaultCanvasWidth  = 4
	DefaultCanvasHeight = 8

	// PlaceholderCanvasHeight is assigned to a freshly created tour before
	// its blocks are attached and the real height is computed.
	PlaceholderCanvasHeight = 50
)

type Tour struct {
	ID            uint      `json:"id" gorm:"primarykey"`
	Name          string    `json:"name" gorm:"not null"`
	CanvasHeight  int       `json:"canvas_height" gorm:"not null;default:8"`
	CanvasWidth   int       `json:"canvas_width" gorm:"not null;default:4"`
	LastUpdatedAt time.Time `json:"last_updated_at" gorm:"not null"`
	Archived      bool      `json:"archived" gorm:"not null;default:false"` // reversible "deletion"

	CreatedByID   uint  `json:"created_by_id" gorm:"not null"`
	CreatedBy     User  `json:"created_by" gorm:"foreignKey:CreatedByID"`
	ModeratedByID *uint `json:"moderated_by_id"` // nil until a moderator approves
	ModeratedBy   *User `json:"moderated_by,omitempty" gorm:"foreignKey:ModeratedByID"`

	Blocks    []TourBlock    `json:"blocks,omitempty" gorm:"foreignKey:TourID;constraint:OnDelete:CASCADE"`
	Reactions []TourReaction `json:"reactions,omitempty" gorm:"foreignKey:TourID;constraint:OnDelete:CASCADE"`
	Tags      []TourTag      `json:"tags,omitempty" gorm:"many2many:tours_to_tags_association;"`
}

func (Tour) TableName() string {
	return "tours"
}

func NewTour(createdByID uint, name string, canvasHeight int) *Tour {
	return &Tour{
		Name:          name,
		CanvasHeight:  canvasHeight,
		CanvasWidth:   DefaultCanvasWidth,
		LastUpdatedAt: time.Now(),
		Archived:      false,
		CreatedByID:   createdByID,
	}
}
