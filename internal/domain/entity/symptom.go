package entity

type SymptomStepID string

const (
	StepArea         SymptomStepID = "area"
	StepSymptom      SymptomStepID = "symptom"
	StepConversation SymptomStepID = "conversation"
	StepResults      SymptomStepID = "results"
)

// DefaultConversationFeedback is stored when the assistant cannot reply.
const DefaultConversationFeedback = "Muchas gracias. Continuemos."

type SymptomGuideStep struct {
	ID          SymptomStepID `json:"id" validate:"required,oneof=area symptom conversation results"`
	Label       string        `json:"label"`
	Description string        `json:"description"`
	Progress    int           `json:"progress" validate:"gte=0,lte=100"`
}

type BodyArea struct {
	ID          string `json:"id" validate:"required"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

type CommonSymptom struct {
	ID    string `json:"id" validate:"required"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

type ConversationOption struct {
	ID     string `json:"id" validate:"required"`
	Label  string `json:"label"`
	Helper string `json:"helper,omitempty"`
}

// ConversationBlock is one assistant message. Blocks with options are
// questions the user must answer.
type ConversationBlock struct {
	ID      string               `json:"id" validate:"required"`
	Content string               `json:"content"`
	Icon    string               `json:"icon,omitempty"`
	Options []ConversationOption `json:"options,omitempty" validate:"dive"`
}

func (b ConversationBlock) IsQuestion() bool {
	return len(b.Options) > 0
}

func (b ConversationBlock) Option(id string) (ConversationOption, bool) {
	for _, option := range b.Options {
		if option.ID == id {
			return option, true
		}
	}
	return ConversationOption{}, false
}

type GuideConversation struct {
	Heading    string              `json:"heading"`
	Subheading string              `json:"subheading"`
	Blocks     []ConversationBlock `json:"blocks" validate:"dive"`
}

type ConversationAnswer struct {
	BlockID  string `json:"blockId" validate:"required"`
	OptionID string `json:"optionId" validate:"required"`
	Label    string `json:"label"`
}

type SymptomResultAction struct {
	ID          string `json:"id"`
	Level       string `json:"level"`
	Emphasis    string `json:"emphasis" validate:"omitempty,oneof=low medium high"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CTALabel    string `json:"ctaLabel"`
	CTAHref     string `json:"ctaHref,omitempty"`
}

type SymptomGuideResult struct {
	Title          string                `json:"title"`
	Subtitle       string                `json:"subtitle"`
	Disclaimer     string                `json:"disclaimer"`
	PossibleCauses []string              `json:"possibleCauses"`
	Actions        []SymptomResultAction `json:"actions" validate:"dive"`
}

// SymptomGuide is the full content of the guided symptom flow.
type SymptomGuide struct {
	Steps        []SymptomGuideStep `json:"steps" validate:"required,min=1,dive"`
	Areas        []BodyArea         `json:"areas" validate:"dive"`
	Symptoms     []CommonSymptom    `json:"symptoms" validate:"dive"`
	Conversation GuideConversation  `json:"conversation"`
	Result       SymptomGuideResult `json:"result"`
}

func (g SymptomGuide) HasArea(id string) bool {
	for _, area := range g.Areas {
		if area.ID == id {
			return true
		}
	}
	return false
}

func (g SymptomGuide) HasSymptom(id string) bool {
	for _, symptom := range g.Symptoms {
		if symptom.ID == id {
			return true
		}
	}
	return false
}

// QuestionBlocks returns the conversation blocks that expect an answer.
func (g SymptomGuide) QuestionBlocks() []ConversationBlock {
	blocks := make([]ConversationBlock, 0, len(g.Conversation.Blocks))
	for _, block := range g.Conversation.Blocks {
		if block.IsQuestion() {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

type SymptomSubmission struct {
	AreaID              string               `json:"areaId"`
	SymptomIDs          []string             `json:"symptomIds"`
	ConversationAnswers []ConversationAnswer `json:"conversationAnswers"`
}

type ConversationMessage struct {
	BlockID  string               `json:"blockId"`
	OptionID string               `json:"optionId"`
	Label    string               `json:"label"`
	History  []ConversationAnswer `json:"history"`
}

type ConversationReply struct {
	BlockID string `json:"blockId" validate:"required"`
	Message string `json:"message"`
}
