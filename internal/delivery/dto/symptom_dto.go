package dto

import "vitalsync/internal/domain/entity"

// Request DTOs

type SelectAreaRequest struct {
	AreaID string `json:"areaId" validate:"required,max=50"`
}

type AnswerRequest struct {
	BlockID  string `json:"blockId" validate:"required,max=50"`
	OptionID string `json:"optionId" validate:"required,max=50"`
}

// Response DTOs

// WizardSessionResponse is the wizard state together with the values
// derived from the guide, so clients never recompute gating.
type WizardSessionResponse struct {
	ID                   string                      `json:"id"`
	CurrentStep          entity.SymptomGuideStep     `json:"currentStep"`
	CurrentStepIndex     int                         `json:"currentStepIndex"`
	MaxStepIndex         int                         `json:"maxStepIndex"`
	SelectedAreaID       string                      `json:"selectedAreaId,omitempty"`
	SelectedSymptomIDs   []string                    `json:"selectedSymptomIds"`
	ConversationAnswers  []entity.ConversationAnswer `json:"conversationAnswers"`
	ConversationFeedback map[string]string           `json:"conversationFeedback"`
	CurrentBlockID       string                      `json:"currentBlockId,omitempty"`
	CanGoNext            bool                        `json:"canGoNext"`
	Result               *entity.SymptomGuideResult  `json:"result,omitempty"`
}
