package models

type RegisterRequest struct {
	Login    string `json:"login" binding:"required,min=1,max=50"`
	Password string `json:"password" binding:"required,min=1"`
	Repass   string `json:"repass" binding:"required"`
}

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateReactionRequest struct {
	Text                    string `json:"text"`
	BeautyCriteria          int    `json:"beauty_criteria" binding:"required,min=1,max=10"`
	RouteSmoothnessCriteria int    `json:"route_smoothness_criteria" binding:"required,min=1,max=10"`
	AttractionsCriteria     int    `json:"attractions_criteria" binding:"required,min=1,max=10"`
	AccessibilityCriteria   int    `json:"accessibility_criteria" binding:"required,min=1,max=10"`
}

type CreateTagRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}

type GrantModeratorRequest struct {
	Login string `json:"login" binding:"required"`
}

// UpdateProfileRequest arrives as a multipart form; the optional profile
// photo travels alongside it as a file part.
type UpdateProfileRequest struct {
	Login    string `form:"login"`
	Bio      string `form:"bio"`
	Password string `form:"password"`
	Repass   string `form:"repass"`
}

type TourListParams struct {
	Search       string `form:"s"`
	TagID        uint   `form:"tag_id"`
	AuthorID     uint   `form:"author_id"`
	NotModerated bool   `form:"not_moderated"`
}
