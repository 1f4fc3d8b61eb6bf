package moderation

import (
	"github.com/mindspace-ai/safegate/pkg/crisis"
	"github.com/mindspace-ai/safegate/pkg/validation"
)

// SourceType identifies how the final response text was produced.
type SourceType string

const (
	SourceTemplateProtocol SourceType = "template_protocol"
	SourceAIGenerated      SourceType = "ai_generated"
	SourceFallback         SourceType = "fallback"
	SourceErrorFallback    SourceType = "error_fallback"
)

// Outcome is the structured result of moderating one user turn. It is always
// well-formed; operational failures surface here as fallback source types,
// never as errors.
type Outcome struct {
	ResponseText        string                `json:"response_text"`
	SourceType          SourceType            `json:"source_type"`
	CrisisLevel         crisis.Level          `json:"crisis_level"`
	AIGenerated         bool                  `json:"ai_generated"`
	Confidence          int                   `json:"confidence"`
	Actions             []crisis.Action       `json:"actions,omitempty"`
	RequiresHumanReview bool                  `json:"requires_human_review"`
	AllowAIFollowup     bool                  `json:"allow_ai_followup"`
	RegenerationCount   int                   `json:"regeneration_count"`
	ValidationWarnings  []validation.Finding  `json:"validation_warnings,omitempty"`
	ValidationFindings  []validation.Finding  `json:"validation_findings,omitempty"`
	ValidationPassed    bool                  `json:"validation_passed"`
	Emotion             crisis.EmotionReading `json:"emotion"`
	ProcessingTimeMs    int64                 `json:"processing_time_ms"`
}
