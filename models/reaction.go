package models

type TourReaction struct {
	ID   uint   `json:"id" gorm:"primarykey"`
	Text string `json:"text" gorm:"type:text"`

	// criteria (1-10)
	BeautyCriteria          int `json:"beauty_criteria" gorm:"default:5"`
	RouteSmoothnessCriteria int `json:"route_smoothness_criteria" gorm:"default:5"`
	AttractionsCriteria     int `json:"attractions_criteria" gorm:"default:5"`
	AccessibilityCriteria   int `json:"accessibility_criteria" gorm:"default:5"`

	// OverallCriteria is derived: floored arithmetic mean of the four.
	OverallCriteria int `json:"overall_criteria" gorm:"default:5"`

	CreatedByID uint `json:"created_by_id"`
	CreatedBy   User `json:"created_by" gorm:"foreignKey:CreatedByID"`
	TourID      uint `json:"tour_id"`
}

func (TourReaction) TableName() string {
	return "tour_reactions"
}

func NewTourReaction(text string, beauty, routeSmoothness, attractions, accessibility int, createdByID, tourID uint) *TourReaction {
	return &TourReaction{
		Text:                    text,
		BeautyCriteria:          beauty,
		RouteSmoothnessCriteria: routeSmoothness,
		AttractionsCriteria:     attractions,
		AccessibilityCriteria:   accessibility,
		OverallCriteria:         (beauty + routeSmoothness + attractions + accessibility) / 4,
		CreatedByID:             createdByID,
		TourID:                  tourID,
	}
}
