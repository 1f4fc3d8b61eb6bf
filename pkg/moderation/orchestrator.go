package moderation

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mindspace-ai/safegate/pkg/audit"
	"github.com/mindspace-ai/safegate/pkg/crisis"
	"github.com/mindspace-ai/safegate/pkg/infra/prometheus"
	"github.com/mindspace-ai/safegate/pkg/infra/providers"
	"github.com/mindspace-ai/safegate/pkg/validation"
)

const (
	// maxRegenerations bounds worst-case latency and guarantees termination.
	maxRegenerations = 2
	// historyTurns caps how much conversation context reaches the model.
	historyTurns = 10

	confidenceTemplate      = 100
	confidenceFallback      = 60
	confidenceFallbackRegen = 50
	confidenceErrorFallback = 40
)

// Orchestrator ties classification, generation, critique, validation and
// logging into the per-turn moderation pipeline.
type Orchestrator struct {
	classifier *crisis.Classifier
	protocols  *crisis.Repository
	validator  *validation.Validator
	gateway    Gateway
	auditLog   *audit.Log
	logger     *logrus.Logger
}

func NewOrchestrator(
	classifier *crisis.Classifier,
	protocols *crisis.Repository,
	validator *validation.Validator,
	gateway Gateway,
	auditLog *audit.Log,
	logger *logrus.Logger,
) *Orchestrator {
	return &Orchestrator{
		classifier: classifier,
		protocols:  protocols,
		validator:  validator,
		gateway:    gateway,
		auditLog:   auditLog,
		logger:     logger,
	}
}

// Moderate processes one user turn. It always returns a well-formed Outcome;
// gateway failures, validation blocks and regeneration exhaustion are folded
// into fallback outcomes, never surfaced as errors.
func (o *Orchestrator) Moderate(ctx context.Context, userMessage string, history []providers.Message) Outcome {
	start := time.Now()

	assessment := o.classifier.Classify(userMessage)
	emotion := crisis.DetectEmotion(userMessage)

	// Crisis path: the template bypass is an absolute contract. No model call
	// happens on this branch under any circumstance.
	if assessment.Level == crisis.LevelCritical || assessment.Level == crisis.LevelHigh {
		protocol := o.protocols.ProtocolFor(assessment.Category)
		o.logger.WithFields(logrus.Fields{
			"crisis_level": assessment.Level.String(),
			"category":     assessment.Category,
		}).Warn("crisis detected, dispatching protocol template")

		outcome := Outcome{
			ResponseText:        protocol.Response,
			SourceType:          SourceTemplateProtocol,
			CrisisLevel:         assessment.Level,
			AIGenerated:         false,
			Confidence:          confidenceTemplate,
			Actions:             protocol.Actions,
			RequiresHumanReview: protocol.RequiresHumanReview,
			AllowAIFollowup:     protocol.AllowAIFollowup,
			ValidationPassed:    true,
			Emotion:             emotion,
			ProcessingTimeMs:    time.Since(start).Milliseconds(),
		}
		o.record(ctx, userMessage, outcome)
		return outcome
	}

	trimmed := trimHistory(history)
	regenerationCount := 0

	reply, err := o.callGateway(ctx, "generate", SafeSystemPrompt, trimmed, userMessage)
	if err != nil {
		return o.errorFallback(ctx, userMessage, assessment, emotion, regenerationCount, start)
	}

	// Self-critique is fail-closed: a broken critique call counts as UNSAFE.
	safe, reason := o.critique(ctx, reply, userMessage)
	if !safe {
		o.logger.WithField("reason", reason).Info("self-critique flagged candidate, regenerating")
		regenerated, regenErr := o.regenerate(ctx, trimmed, userMessage, reason)
		if regenErr != nil {
			return o.errorFallback(ctx, userMessage, assessment, emotion, regenerationCount, start)
		}
		reply = regenerated
		regenerationCount++
	}

	result := o.validator.Validate(reply)

	if result.Action == validation.ActionBlock {
		return o.blockedFallback(ctx, userMessage, assessment, emotion, result, regenerationCount, confidenceFallback, start)
	}

	if result.Action == validation.ActionRegenerate {
		if regenerationCount >= maxRegenerations {
			return o.blockedFallback(ctx, userMessage, assessment, emotion, result, regenerationCount, confidenceFallbackRegen, start)
		}
		feedback := result.Findings[0].Rule
		o.logger.WithField("feedback", feedback).Info("validator requested regeneration")

		regenerated, regenErr := o.regenerate(ctx, trimmed, userMessage, feedback)
		if regenErr != nil {
			return o.errorFallback(ctx, userMessage, assessment, emotion, regenerationCount, start)
		}
		reply = regenerated
		regenerationCount++

		result = o.validator.Validate(reply)
		// Regeneration attempts are exhausted at this point; anything short of
		// a releasable candidate becomes a fallback.
		if result.Action == validation.ActionBlock || result.Action == validation.ActionRegenerate {
			return o.blockedFallback(ctx, userMessage, assessment, emotion, result, regenerationCount, confidenceFallbackRegen, start)
		}
	}

	tone := o.validator.CheckTone(reply)
	confidence := scoreConfidence(reply, result, tone, assessment.Level)

	if assessment.Level == crisis.LevelModerate {
		reply += moderateSuffix
	}

	outcome := Outcome{
		ResponseText:      reply,
		SourceType:        SourceAIGenerated,
		CrisisLevel:       assessment.Level,
		AIGenerated:       true,
		Confidence:        confidence,
		RegenerationCount: regenerationCount,
		ValidationPassed:  result.IsValid,
		Emotion:           emotion,
		ProcessingTimeMs:  time.Since(start).Milliseconds(),
	}
	if result.Action == validation.ActionWarn {
		outcome.ValidationWarnings = result.Findings
	}
	o.record(ctx, userMessage, outcome)
	return outcome
}

// RecentAuditEntries exposes the bounded audit history for transparency review.
func (o *Orchestrator) RecentAuditEntries() []audit.Entry {
	return o.auditLog.Recent()
}

func (o *Orchestrator) ClearAuditLog() {
	o.auditLog.Clear()
}

func (o *Orchestrator) critique(ctx context.Context, candidate, userMessage string) (bool, string) {
	verdict, err := o.callGateway(ctx, "critique", critiqueSystemPrompt, nil, critiquePrompt(candidate, userMessage))
	if err != nil {
		o.logger.WithError(err).Warn("self-critique call failed, treating candidate as unsafe")
		return false, "critique system error"
	}

	if strings.Contains(verdict, "UNSAFE") {
		reason := strings.TrimSpace(strings.TrimPrefix(verdict, "UNSAFE:"))
		return false, reason
	}
	return true, ""
}

func (o *Orchestrator) regenerate(ctx context.Context, history []providers.Message, userMessage, feedback string) (string, error) {
	systemPrompt := SafeSystemPrompt + regenerationPrompt(feedback)
	reply, err := o.callGateway(ctx, "regenerate", systemPrompt, history, userMessage)
	if err != nil {
		return "", err
	}
	prometheus.RegenerationTotal.Inc()
	return reply, nil
}

func (o *Orchestrator) callGateway(ctx context.Context, purpose, systemPrompt string, history []providers.Message, message string) (string, error) {
	callStart := time.Now()
	reply, err := o.gateway.Generate(ctx, systemPrompt, history, message)
	prometheus.GatewayCallLatency.WithLabelValues(purpose).Observe(float64(time.Since(callStart).Milliseconds()))
	if err != nil {
		prometheus.GatewayFailures.Inc()
		return "", err
	}
	return reply, nil
}

func (o *Orchestrator) blockedFallback(
	ctx context.Context,
	userMessage string,
	assessment crisis.Assessment,
	emotion crisis.EmotionReading,
	result validation.Result,
	regenerationCount int,
	confidence int,
	start time.Time,
) Outcome {
	o.logger.WithField("findings", len(result.Findings)).Warn("candidate blocked by validator, using fallback")

	outcome := Outcome{
		ResponseText:       fallbackResponse,
		SourceType:         SourceFallback,
		CrisisLevel:        assessment.Level,
		AIGenerated:        false,
		Confidence:         confidence,
		RegenerationCount:  regenerationCount,
		ValidationFindings: result.Findings,
		ValidationPassed:   false,
		Emotion:            emotion,
		ProcessingTimeMs:   time.Since(start).Milliseconds(),
	}
	o.record(ctx, userMessage, outcome)
	return outcome
}

func (o *Orchestrator) errorFallback(
	ctx context.Context,
	userMessage string,
	assessment crisis.Assessment,
	emotion crisis.EmotionReading,
	regenerationCount int,
	start time.Time,
) Outcome {
	o.logger.Error("gateway unavailable, returning error fallback")

	outcome := Outcome{
		ResponseText:      errorFallbackResponse,
		SourceType:        SourceErrorFallback,
		CrisisLevel:       assessment.Level,
		AIGenerated:       false,
		Confidence:        confidenceErrorFallback,
		RegenerationCount: regenerationCount,
		ValidationPassed:  false,
		Emotion:           emotion,
		ProcessingTimeMs:  time.Since(start).Milliseconds(),
	}
	o.record(ctx, userMessage, outcome)
	return outcome
}

// record mirrors the outcome into metrics and the audit log. Abandoned turns
// leave no trace: a cancelled context suppresses the append so partial state
// cannot leak into the bounded log.
func (o *Orchestrator) record(ctx context.Context, userMessage string, outcome Outcome) {
	if ctx.Err() != nil {
		return
	}

	prometheus.ModerationTotal.WithLabelValues(string(outcome.SourceType), outcome.CrisisLevel.String()).Inc()
	prometheus.ModerationLatency.WithLabelValues(string(outcome.SourceType)).Observe(float64(outcome.ProcessingTimeMs))

	o.auditLog.Append(audit.Entry{
		UserInput:         userMessage,
		SourceType:        string(outcome.SourceType),
		CrisisLevel:       outcome.CrisisLevel.String(),
		AIGenerated:       outcome.AIGenerated,
		ValidationPassed:  outcome.ValidationPassed,
		Confidence:        outcome.Confidence,
		RegenerationCount: outcome.RegenerationCount,
	})
}

func trimHistory(history []providers.Message) []providers.Message {
	if len(history) <= historyTurns {
		return history
	}
	return history[len(history)-historyTurns:]
}
