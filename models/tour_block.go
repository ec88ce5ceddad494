package models

type BlockType int

const (
	BlockTypeText     BlockType = 0
	BlockTypeImage    BlockType = 1
	BlockTypeLink     BlockType = 2
	BlockTypeVideo    BlockType = 3
	BlockTypeSound    BlockType = 4
	BlockTypeMapRoute BlockType = 5
	// BlockTypeMapPoint renders as text but is joined by lines on the map
	// to mark the route.
	BlockTypeMapPoint BlockType = 6
)

type TourBlock struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Name        string    `json:"name"`
	Text        string    `json:"text" gorm:"type:text"`
	ContentPath string    `json:"content_path"` // media store reference
	Type        BlockType `json:"type" gorm:"not null;default:0"`

	ShowOnMap bool     `json:"show_on_map" gorm:"not null;default:false"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	// position & size on canvas
	Column int `json:"column" gorm:"not null;default:0"`
	Row    int `json:"row" gorm:"not null;default:0"`
	Height int `json:"height" gorm:"not null;default:1"`
	Width  int `json:"width" gorm:"not null;default:1"`

	TourID uint `json:"tour_id" gorm:"not null"`
}

func (TourBlock) TableName() string {
	return "tour_blocks"
}
