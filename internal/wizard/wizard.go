// Package wizard implements the guided symptom flow: a linear sequence of
// steps (area, symptom, conversation, results) with gated forward moves.
package wizard

import (
	"errors"
	"slices"
	"time"

	"vitalsync/internal/domain/entity"
)

var (
	ErrUnknownArea     = errors.New("unknown body area")
	ErrUnknownSymptom  = errors.New("unknown symptom")
	ErrUnknownBlock    = errors.New("unknown conversation question")
	ErrUnknownOption   = errors.New("unknown answer option")
	ErrBlockLocked     = errors.New("conversation question already answered")
	ErrBlockNotCurrent = errors.New("conversation question is not the current one")
	ErrStepBlocked     = errors.New("current step is not complete")
)

// State is one user's progress through the guide.
type State struct {
	ID                   string                      `json:"id"`
	CurrentStepIndex     int                         `json:"currentStepIndex"`
	MaxStepIndex         int                         `json:"maxStepIndex"`
	SelectedAreaID       string                      `json:"selectedAreaId,omitempty"`
	SelectedSymptomIDs   []string                    `json:"selectedSymptomIds"`
	ConversationAnswers  []entity.ConversationAnswer `json:"conversationAnswers"`
	ConversationFeedback map[string]string           `json:"conversationFeedback"`
	Result               *entity.SymptomGuideResult  `json:"result,omitempty"`
	UpdatedAt            time.Time                   `json:"updatedAt"`
}

func NewState(id string, guide entity.SymptomGuide) State {
	s := State{ID: id, MaxStepIndex: max(len(guide.Steps)-1, 0)}
	s.Reset()
	return s
}

// Reset returns to the first step and clears every selection. The step bound
// and identity are kept.
func (s *State) Reset() {
	s.CurrentStepIndex = 0
	s.SelectedAreaID = ""
	s.SelectedSymptomIDs = []string{}
	s.ConversationAnswers = []entity.ConversationAnswer{}
	s.ConversationFeedback = map[string]string{}
	s.Result = nil
}

func (s *State) SelectArea(guide entity.SymptomGuide, areaID string) error {
	if !guide.HasArea(areaID) {
		return ErrUnknownArea
	}
	s.SelectedAreaID = areaID
	return nil
}

// ToggleSymptom adds the symptom when absent and removes it otherwise.
func (s *State) ToggleSymptom(guide entity.SymptomGuide, symptomID string) error {
	if !guide.HasSymptom(symptomID) {
		return ErrUnknownSymptom
	}
	if i := slices.Index(s.SelectedSymptomIDs, symptomID); i >= 0 {
		s.SelectedSymptomIDs = slices.Delete(s.SelectedSymptomIDs, i, i+1)
		return nil
	}
	s.SelectedSymptomIDs = append(s.SelectedSymptomIDs, symptomID)
	return nil
}

// Answer records the option chosen for the current question. Repeating the
// recorded choice is allowed and reports changed=false.
func (s *State) Answer(guide entity.SymptomGuide, blockID, optionID string) (answer entity.ConversationAnswer, changed bool, err error) {
	idx := slices.IndexFunc(guide.Conversation.Blocks, func(b entity.ConversationBlock) bool {
		return b.ID == blockID && b.IsQuestion()
	})
	if idx < 0 {
		return answer, false, ErrUnknownBlock
	}
	option, ok := guide.Conversation.Blocks[idx].Option(optionID)
	if !ok {
		return answer, false, ErrUnknownOption
	}

	if existing, ok := s.answerFor(blockID); ok {
		if existing.OptionID != optionID {
			return answer, false, ErrBlockLocked
		}
		return existing, false, nil
	}
	if s.CurrentBlockID(guide) != blockID {
		return answer, false, ErrBlockNotCurrent
	}

	answer = entity.ConversationAnswer{BlockID: blockID, OptionID: option.ID, Label: option.Label}
	s.ConversationAnswers = append(s.ConversationAnswers, answer)
	return answer, true, nil
}

func (s *State) SetFeedback(blockID, message string) {
	if s.ConversationFeedback == nil {
		s.ConversationFeedback = map[string]string{}
	}
	s.ConversationFeedback[blockID] = message
}

// CurrentBlockID is the first question without an answer, or "" when every
// question is answered.
func (s State) CurrentBlockID(guide entity.SymptomGuide) string {
	for _, block := range guide.QuestionBlocks() {
		if _, ok := s.answerFor(block.ID); !ok {
			return block.ID
		}
	}
	return ""
}

func (s State) AllAnswered(guide entity.SymptomGuide) bool {
	return s.CurrentBlockID(guide) == ""
}

// CurrentStep returns the step at the current index. The zero step is
// returned for a guide without steps.
func (s State) CurrentStep(guide entity.SymptomGuide) entity.SymptomGuideStep {
	if s.CurrentStepIndex < 0 || s.CurrentStepIndex >= len(guide.Steps) {
		return entity.SymptomGuideStep{}
	}
	return guide.Steps[s.CurrentStepIndex]
}

// CanGoNext reports whether the current step's entry conditions for moving
// forward are met.
func (s State) CanGoNext(guide entity.SymptomGuide) bool {
	switch s.CurrentStep(guide).ID {
	case entity.StepArea:
		return s.SelectedAreaID != ""
	case entity.StepSymptom:
		return len(s.SelectedSymptomIDs) > 0
	case entity.StepConversation:
		return s.AllAnswered(guide)
	default:
		return true
	}
}

// GoNext moves one step forward, clamped to the last step.
func (s *State) GoNext() {
	s.CurrentStepIndex = min(s.CurrentStepIndex+1, s.MaxStepIndex)
}

// GoBack moves one step back, clamped to the first step.
func (s *State) GoBack() {
	s.CurrentStepIndex = max(s.CurrentStepIndex-1, 0)
}

// Advance applies the forward action of the current step: on results it
// resets the wizard, otherwise it moves forward when allowed.
func (s *State) Advance(guide entity.SymptomGuide) error {
	if s.CurrentStep(guide).ID == entity.StepResults {
		s.Reset()
		return nil
	}
	if !s.CanGoNext(guide) {
		return ErrStepBlocked
	}
	s.GoNext()
	return nil
}

func (s State) Submission() entity.SymptomSubmission {
	return entity.SymptomSubmission{
		AreaID:              s.SelectedAreaID,
		SymptomIDs:          slices.Clone(s.SelectedSymptomIDs),
		ConversationAnswers: slices.Clone(s.ConversationAnswers),
	}
}

func (s State) answerFor(blockID string) (entity.ConversationAnswer, bool) {
	for _, a := range s.ConversationAnswers {
		if a.BlockID == blockID {
			return a, true
		}
	}
	return entity.ConversationAnswer{}, false
}
