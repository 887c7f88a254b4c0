package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"vitalsync/internal/catalog"
	"vitalsync/internal/converter"
	"vitalsync/internal/delivery/dto"
	"vitalsync/internal/domain/entity"
	"vitalsync/internal/domain/repository"
	"vitalsync/internal/infrastructure/backend"
	"vitalsync/internal/service"
)

var (
	ErrDoctorNotFound = errors.New("doctor not found")
	ErrReviewRejected = errors.New("review rejected")
)

const (
	ReviewSourceRemote = "remote"
	ReviewSourceLocal  = "local"
)

type DoctorBackend interface {
	GetDoctorDetail(ctx context.Context, id string) (entity.DoctorDetailView, error)
	CreateDoctorReview(ctx context.Context, doctorID string, review backend.NewReview) (entity.DoctorReview, error)
}

// DoctorListFetcher is the doctor query fetcher as seen by usecases.
type DoctorListFetcher interface {
	service.Fetcher[entity.DoctorFilter, entity.Doctor]
	Invalidate()
}

type DoctorCatalog interface {
	Doctors() []entity.Doctor
}

type DoctorUsecase interface {
	ListDoctors(ctx context.Context, filter entity.DoctorFilter) service.FetchResult[entity.Doctor]
	GetFilterOptions(ctx context.Context) catalog.DoctorFilterOptions
	GetDoctorDetail(ctx context.Context, id string) (*entity.DoctorDetailView, error)
	CreateReview(ctx context.Context, doctorID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
}

type doctorUsecase struct {
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
	backend    DoctorBackend
	fetcher    DoctorListFetcher
	catalog    DoctorCatalog
	now        func() time.Time
}

func NewDoctorUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	backend DoctorBackend,
	fetcher DoctorListFetcher,
	catalog DoctorCatalog,
) DoctorUsecase {
	return &doctorUsecase{
		log:        log,
		doctorRepo: doctorRepo,
		backend:    backend,
		fetcher:    fetcher,
		catalog:    catalog,
		now:        time.Now,
	}
}

func (u *doctorUsecase) ListDoctors(ctx context.Context, filter entity.DoctorFilter) service.FetchResult[entity.Doctor] {
	return u.fetcher.Fetch(ctx, filter)
}

func (u *doctorUsecase) GetFilterOptions(ctx context.Context) catalog.DoctorFilterOptions {
	return catalog.BuildDoctorFilterOptions(u.catalog.Doctors())
}

// GetDoctorDetail asks the backend first, then the local profile, and
// finally synthesizes a detail from the local summary.
func (u *doctorUsecase) GetDoctorDetail(ctx context.Context, id string) (*entity.DoctorDetailView, error) {
	view, err := u.backend.GetDoctorDetail(ctx, id)
	if err == nil {
		return &view, nil
	}
	if backend.Kind(err) != "disabled" {
		u.log.Warnf("Failed to get doctor %s from backend, using local catalog: %+v", id, err)
	}

	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	profile, err := u.doctorRepo.FindProfile(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}

	reviews, err := u.doctorRepo.FindReviews(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor reviews: %+v", err)
		return nil, err
	}
	if reviews == nil {
		reviews = []entity.DoctorReview{}
	}

	return &entity.DoctorDetailView{
		Doctor:  buildDetail(*doctor, profile),
		Reviews: reviews,
	}, nil
}

// CreateReview stores the review locally before the backend answers. A
// rejection rolls it back; an unreachable backend leaves it in place.
func (u *doctorUsecase) CreateReview(ctx context.Context, doctorID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	tentative := &entity.DoctorReview{
		ID:         uuid.NewString(),
		DoctorID:   doctorID,
		AuthorName: req.AuthorName,
		Rating:     req.Rating,
		Comment:    req.Comment,
		CreatedAt:  u.now().UTC(),
	}
	if err := u.doctorRepo.CreateReview(ctx, tentative); err != nil {
		u.log.Warnf("Failed to create review: %+v", err)
		return nil, err
	}

	confirmed, err := u.backend.CreateDoctorReview(ctx, doctorID, converter.ReviewRequestToNew(req))
	switch {
	case err == nil:
		u.rollbackReview(ctx, tentative.ID)
		confirmed = fillReview(confirmed, tentative)
		if err := u.doctorRepo.CreateReview(ctx, &confirmed); err != nil {
			u.log.Warnf("Failed to store confirmed review: %+v", err)
		}
		u.fetcher.Invalidate()
		return converter.ReviewToResponse(&confirmed, ReviewSourceRemote), nil

	case backend.IsUnavailable(err):
		if backend.Kind(err) != "disabled" {
			u.log.Warnf("Backend unavailable, keeping review %s locally: %+v", tentative.ID, err)
		}
		return converter.ReviewToResponse(tentative, ReviewSourceLocal), nil

	default:
		u.log.Warnf("Backend rejected review for doctor %s: %+v", doctorID, err)
		u.rollbackReview(ctx, tentative.ID)
		if backend.IsNotFound(err) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrReviewRejected, err)
	}
}

func (u *doctorUsecase) rollbackReview(ctx context.Context, id string) {
	if err := u.doctorRepo.DeleteReview(context.WithoutCancel(ctx), id); err != nil {
		u.log.Warnf("Failed to remove tentative review %s: %+v", id, err)
	}
}

func buildDetail(doctor entity.Doctor, profile *entity.DoctorProfile) entity.DoctorDetail {
	if profile == nil {
		return entity.DoctorDetail{
			Doctor:        doctor,
			Bio:           fmt.Sprintf("%s es especialista en %s.", doctor.Name, doctor.Specialty),
			Languages:     []string{"Español"},
			ClinicAddress: doctor.Location,
		}
	}
	return entity.DoctorDetail{
		Doctor:          doctor,
		Bio:             profile.Bio,
		YearsExperience: profile.YearsExperience,
		Languages:       profile.Languages,
		Education:       profile.Education,
		ClinicAddress:   profile.ClinicAddress,
		Schedule:        profile.Schedule,
	}
}

// fillReview completes a backend reply that omits fields we already know.
func fillReview(review entity.DoctorReview, tentative *entity.DoctorReview) entity.DoctorReview {
	if review.ID == "" {
		review.ID = tentative.ID
	}
	review.DoctorID = tentative.DoctorID
	if review.AuthorName == "" {
		review.AuthorName = tentative.AuthorName
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = tentative.CreatedAt
	}
	return review
}
