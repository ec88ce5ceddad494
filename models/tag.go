package models

type TourTag struct {
	ID   uint   `json:"id" gorm:"primarykey"`
	Name string `json:"name" gorm:"not null"`
}

func (TourTag) TableName() string {
	return "tour_tags"
}

// DefaultTags are seeded on first boot so a new installation has a usable
// catalog to file tours under.
var DefaultTags = []string{"Nature", "Architecture", "Food", "Entertainment"}
