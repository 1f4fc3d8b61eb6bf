package moderation

import (
	"github.com/mindspace-ai/safegate/pkg/crisis"
	"github.com/mindspace-ai/safegate/pkg/validation"
)

const (
	confidencePenaltyPerFinding = 10
	confidencePenaltyNoEmpathy  = 15
	confidencePenaltyShortReply = 10
	confidencePenaltyCrisis     = 20

	shortReplyThreshold = 50
)

// scoreConfidence computes the advisory 0-100 trustworthiness score for an AI
// reply. It never gates block or regenerate decisions; those are governed by
// the validator action and the crisis level alone.
func scoreConfidence(reply string, result validation.Result, tone validation.ToneCheck, level crisis.Level) int {
	confidence := 100

	confidence -= len(result.Findings) * confidencePenaltyPerFinding

	if !tone.HasEmpathy {
		confidence -= confidencePenaltyNoEmpathy
	}

	if len(reply) < shortReplyThreshold {
		confidence -= confidencePenaltyShortReply
	}

	if level != crisis.LevelNone {
		confidence -= confidencePenaltyCrisis
	}

	if confidence < 0 {
		return 0
	}
	if confidence > 100 {
		return 100
	}
	return confidence
}
