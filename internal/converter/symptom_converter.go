package converter

import (
	"maps"
	"slices"

	"vitalsync/internal/delivery/dto"
	"vitalsync/internal/domain/entity"
	"vitalsync/internal/wizard"
)

// WizardStateToResponse converts a wizard state into the session DTO,
// resolving the step and gating against guide
func WizardStateToResponse(state wizard.State, guide entity.SymptomGuide) *dto.WizardSessionResponse {
	return &dto.WizardSessionResponse{
		ID:                   state.ID,
		CurrentStep:          state.CurrentStep(guide),
		CurrentStepIndex:     state.CurrentStepIndex,
		MaxStepIndex:         state.MaxStepIndex,
		SelectedAreaID:       state.SelectedAreaID,
		SelectedSymptomIDs:   slices.Clone(state.SelectedSymptomIDs),
		ConversationAnswers:  slices.Clone(state.ConversationAnswers),
		ConversationFeedback: maps.Clone(state.ConversationFeedback),
		CurrentBlockID:       state.CurrentBlockID(guide),
		CanGoNext:            state.CanGoNext(guide),
		Result:               state.Result,
	}
}
