package dto

// Request DTOs

// DoctorListQuery is the query string of the doctor list endpoint.
type DoctorListQuery struct {
	Search    string  `json:"search" validate:"max=100"`
	Specialty string  `json:"specialty" validate:"max=100"`
	Insurance string  `json:"insurance" validate:"omitempty,oneof=Todos SIS EsSalud Privado"`
	Location  string  `json:"location" validate:"max=150"`
	MinRating float64 `json:"minRating" validate:"gte=0,lte=5"`
	Page      int     `json:"page" validate:"gte=0,lte=100000"`
	PerPage   int     `json:"perPage" validate:"gte=0,lte=50"`
}

type CreateReviewRequest struct {
	AuthorName string `json:"authorName" validate:"required,min=2,max=100"`
	Rating     int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment    string `json:"comment" validate:"omitempty,max=1000"`
}

// Response DTOs

// ReviewResponse reports a submitted review and whether the backend
// confirmed it or it was kept locally.
type ReviewResponse struct {
	ID         string `json:"id"`
	DoctorID   string `json:"doctorId"`
	AuthorName string `json:"authorName"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	CreatedAt  string `json:"createdAt"`
	Source     string `json:"source"`
}
