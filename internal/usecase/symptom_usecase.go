package usecase

import (
	"context"
	"slices"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sirupsen/logrus"

	"vitalsync/internal/converter"
	"vitalsync/internal/delivery/dto"
	"vitalsync/internal/domain/entity"
	"vitalsync/internal/infrastructure/backend"
	"vitalsync/internal/service"
	"vitalsync/internal/wizard"
)

const guideCacheKey = "guide"

type SymptomBackend interface {
	GetSymptomGuide(ctx context.Context) (entity.SymptomGuide, error)
	SubmitSymptoms(ctx context.Context, submission entity.SymptomSubmission) (entity.SymptomGuide, error)
	SendConversation(ctx context.Context, message entity.ConversationMessage) (entity.ConversationReply, error)
}

// WizardSessionStore persists wizard states by session id.
type WizardSessionStore interface {
	Create(ctx context.Context, init func(id string) wizard.State) (wizard.State, error)
	Load(ctx context.Context, id string) (wizard.State, error)
	Update(ctx context.Context, id string, fn func(state *wizard.State) error) (wizard.State, error)
	Delete(ctx context.Context, id string) error
}

type SymptomUsecase interface {
	GetGuide(ctx context.Context) (entity.SymptomGuide, service.Source)
	StartSession(ctx context.Context) (*dto.WizardSessionResponse, error)
	GetSession(ctx context.Context, id string) (*dto.WizardSessionResponse, error)
	DeleteSession(ctx context.Context, id string) error
	SelectArea(ctx context.Context, id string, req *dto.SelectAreaRequest) (*dto.WizardSessionResponse, error)
	ToggleSymptom(ctx context.Context, id, symptomID string) (*dto.WizardSessionResponse, error)
	Answer(ctx context.Context, id string, req *dto.AnswerRequest) (*dto.WizardSessionResponse, error)
	Next(ctx context.Context, id string) (*dto.WizardSessionResponse, error)
	Back(ctx context.Context, id string) (*dto.WizardSessionResponse, error)
	Reset(ctx context.Context, id string) (*dto.WizardSessionResponse, error)
}

type cachedGuide struct {
	guide  entity.SymptomGuide
	source service.Source
}

type symptomUsecase struct {
	log        *logrus.Logger
	backend    SymptomBackend
	sessions   WizardSessionStore
	localGuide entity.SymptomGuide
	guideCache *expirable.LRU[string, cachedGuide]
}

func NewSymptomUsecase(
	log *logrus.Logger,
	backend SymptomBackend,
	sessions WizardSessionStore,
	localGuide entity.SymptomGuide,
	guideTTL time.Duration,
) SymptomUsecase {
	return &symptomUsecase{
		log:        log,
		backend:    backend,
		sessions:   sessions,
		localGuide: localGuide,
		guideCache: expirable.NewLRU[string, cachedGuide](1, nil, guideTTL),
	}
}

func (u *symptomUsecase) GetGuide(ctx context.Context) (entity.SymptomGuide, service.Source) {
	if cached, ok := u.guideCache.Get(guideCacheKey); ok {
		return cached.guide, cached.source
	}

	entry := cachedGuide{source: service.SourceRemote}
	guide, err := u.backend.GetSymptomGuide(ctx)
	if err != nil {
		u.logFallback("get symptom guide", err)
		guide = u.localGuide
		entry.source = service.SourceFallback
	}
	entry.guide = guide

	u.guideCache.Add(guideCacheKey, entry)
	return entry.guide, entry.source
}

func (u *symptomUsecase) StartSession(ctx context.Context) (*dto.WizardSessionResponse, error) {
	guide, _ := u.GetGuide(ctx)

	state, err := u.sessions.Create(ctx, func(id string) wizard.State {
		return wizard.NewState(id, guide)
	})
	if err != nil {
		u.log.Warnf("Failed to create wizard session: %+v", err)
		return nil, err
	}

	return converter.WizardStateToResponse(state, guide), nil
}

func (u *symptomUsecase) GetSession(ctx context.Context, id string) (*dto.WizardSessionResponse, error) {
	guide, _ := u.GetGuide(ctx)

	state, err := u.sessions.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	return converter.WizardStateToResponse(state, guide), nil
}

func (u *symptomUsecase) DeleteSession(ctx context.Context, id string) error {
	return u.sessions.Delete(ctx, id)
}

func (u *symptomUsecase) SelectArea(ctx context.Context, id string, req *dto.SelectAreaRequest) (*dto.WizardSessionResponse, error) {
	return u.update(ctx, id, func(s *wizard.State, guide entity.SymptomGuide) error {
		return s.SelectArea(guide, req.AreaID)
	})
}

func (u *symptomUsecase) ToggleSymptom(ctx context.Context, id, symptomID string) (*dto.WizardSessionResponse, error) {
	return u.update(ctx, id, func(s *wizard.State, guide entity.SymptomGuide) error {
		return s.ToggleSymptom(guide, symptomID)
	})
}

// Answer records the choice and stores the assistant's feedback for it.
// Repeating an earlier choice does not ask for feedback again.
func (u *symptomUsecase) Answer(ctx context.Context, id string, req *dto.AnswerRequest) (*dto.WizardSessionResponse, error) {
	return u.update(ctx, id, func(s *wizard.State, guide entity.SymptomGuide) error {
		history := slices.Clone(s.ConversationAnswers)
		answer, changed, err := s.Answer(guide, req.BlockID, req.OptionID)
		if err != nil || !changed {
			return err
		}
		s.SetFeedback(answer.BlockID, u.feedback(ctx, answer, history))
		return nil
	})
}

// Next submits the answers when leaving the conversation step. On the
// results step it starts over.
func (u *symptomUsecase) Next(ctx context.Context, id string) (*dto.WizardSessionResponse, error) {
	return u.update(ctx, id, func(s *wizard.State, guide entity.SymptomGuide) error {
		if s.CurrentStep(guide).ID == entity.StepConversation && s.CanGoNext(guide) {
			s.Result = u.submit(ctx, s.Submission(), guide)
		}
		return s.Advance(guide)
	})
}

func (u *symptomUsecase) Back(ctx context.Context, id string) (*dto.WizardSessionResponse, error) {
	return u.update(ctx, id, func(s *wizard.State, _ entity.SymptomGuide) error {
		s.GoBack()
		return nil
	})
}

func (u *symptomUsecase) Reset(ctx context.Context, id string) (*dto.WizardSessionResponse, error) {
	return u.update(ctx, id, func(s *wizard.State, _ entity.SymptomGuide) error {
		s.Reset()
		return nil
	})
}

func (u *symptomUsecase) update(ctx context.Context, id string, fn func(s *wizard.State, guide entity.SymptomGuide) error) (*dto.WizardSessionResponse, error) {
	guide, _ := u.GetGuide(ctx)

	state, err := u.sessions.Update(ctx, id, func(s *wizard.State) error {
		return fn(s, guide)
	})
	if err != nil {
		return nil, err
	}

	return converter.WizardStateToResponse(state, guide), nil
}

func (u *symptomUsecase) feedback(ctx context.Context, answer entity.ConversationAnswer, history []entity.ConversationAnswer) string {
	reply, err := u.backend.SendConversation(ctx, entity.ConversationMessage{
		BlockID:  answer.BlockID,
		OptionID: answer.OptionID,
		Label:    answer.Label,
		History:  history,
	})
	if err != nil {
		u.logFallback("get conversation feedback", err)
		return entity.DefaultConversationFeedback
	}
	if reply.Message == "" {
		return entity.DefaultConversationFeedback
	}
	return reply.Message
}

func (u *symptomUsecase) submit(ctx context.Context, submission entity.SymptomSubmission, guide entity.SymptomGuide) *entity.SymptomGuideResult {
	personalised, err := u.backend.SubmitSymptoms(ctx, submission)
	if err != nil {
		u.logFallback("submit symptoms", err)
		result := guide.Result
		return &result
	}
	return &personalised.Result
}

func (u *symptomUsecase) logFallback(op string, err error) {
	if backend.Kind(err) == "disabled" {
		return
	}
	u.log.Warnf("Failed to %s on backend, using local guide: %+v", op, err)
}
