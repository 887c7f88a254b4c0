package converter

import (
	"time"

	"vitalsync/internal/delivery/dto"
	"vitalsync/internal/domain/entity"
	"vitalsync/internal/infrastructure/backend"
)

// DoctorQueryToFilter converts a parsed list query into domain criteria
func DoctorQueryToFilter(q *dto.DoctorListQuery) entity.DoctorFilter {
	return entity.DoctorFilter{
		Search:    q.Search,
		Specialty: q.Specialty,
		Insurance: q.Insurance,
		Location:  q.Location,
		MinRating: q.MinRating,
		Page:      q.Page,
		PerPage:   q.PerPage,
	}
}

// DoctorFilterToQuery is the inverse of DoctorQueryToFilter, used to seed a
// query with the filter defaults
func DoctorFilterToQuery(f entity.DoctorFilter) dto.DoctorListQuery {
	return dto.DoctorListQuery{
		Search:    f.Search,
		Specialty: f.Specialty,
		Insurance: f.Insurance,
		Location:  f.Location,
		MinRating: f.MinRating,
		Page:      f.Page,
		PerPage:   f.PerPage,
	}
}

func ReviewRequestToNew(req *dto.CreateReviewRequest) backend.NewReview {
	return backend.NewReview{
		AuthorName: req.AuthorName,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
}

// ReviewToResponse converts a DoctorReview entity to ReviewResponse DTO
func ReviewToResponse(review *entity.DoctorReview, source string) *dto.ReviewResponse {
	if review == nil {
		return nil
	}

	return &dto.ReviewResponse{
		ID:         review.ID,
		DoctorID:   review.DoctorID,
		AuthorName: review.AuthorName,
		Rating:     review.Rating,
		Comment:    review.Comment,
		CreatedAt:  review.CreatedAt.UTC().Format(time.RFC3339),
		Source:     source,
	}
}
