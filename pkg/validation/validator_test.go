package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_DiagnosisIsBlocked(t *testing.T) {
	validator := NewValidator()

	result := validator.Validate("You have depression and should take antidepressants")

	assert.False(t, result.IsValid)
	assert.Equal(t, SeverityCritical, result.HighestSeverity)
	assert.Equal(t, ActionBlock, result.Action)
	require.NotEmpty(t, result.Findings)
	assert.Equal(t, "contains diagnosis", result.Findings[0].Rule)
	assert.Equal(t, "You have depression", result.Findings[0].MatchedText)
}

func TestValidator_NamedMedicationIsBlocked(t *testing.T) {
	validator := NewValidator()

	result := validator.Validate("Many people find Prozac helpful for this")

	assert.Equal(t, ActionBlock, result.Action)
	assert.Equal(t, SeverityCritical, result.HighestSeverity)
}

func TestValidator_UnqualifiedCureClaimRegenerates(t *testing.T) {
	validator := NewValidator()

	result := validator.Validate("Try yoga, this will cure your anxiety for good")

	assert.False(t, result.IsValid)
	assert.Equal(t, SeverityHigh, result.HighestSeverity)
	assert.Equal(t, ActionRegenerate, result.Action)
}

func TestValidator_DirectiveMedicalStatementRegenerates(t *testing.T) {
	validator := NewValidator()

	result := validator.Validate("Honestly, you need therapy for this kind of problem")

	assert.False(t, result.IsValid)
	assert.Equal(t, SeverityHigh, result.HighestSeverity)
	assert.Equal(t, ActionRegenerate, result.Action)
	require.NotEmpty(t, result.Findings)
	assert.Equal(t, "directive medical statement", result.Findings[0].Rule)
}

func TestValidator_DismissiveLanguageWarns(t *testing.T) {
	validator := NewValidator()

	result := validator.Validate("Just think positive, everyone feels this way")

	assert.False(t, result.IsValid)
	assert.Equal(t, SeverityModerate, result.HighestSeverity)
	assert.Equal(t, ActionWarn, result.Action)
	require.NotEmpty(t, result.Findings)
	assert.Equal(t, "dismissive language", result.Findings[0].Rule)
}

func TestValidator_UnverifiedClaimWarns(t *testing.T) {
	validator := NewValidator()

	result := validator.Validate("Studies show that journaling helps everyone")

	assert.Equal(t, ActionWarn, result.Action)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, "unverified claim", result.Findings[0].Rule)
}

func TestValidator_BareStatisticWarns(t *testing.T) {
	validator := NewValidator()

	result := validator.Validate("80% of students report feeling this way")

	assert.Equal(t, ActionWarn, result.Action)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, "unverified statistic", result.Findings[0].Rule)
}

func TestValidator_CleanEmpatheticReply(t *testing.T) {
	validator := NewValidator()

	result := validator.Validate("I hear that sounds really difficult. Have you tried the 4-7-8 breathing technique? A counselor can offer more personalized support.")

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Findings)
	assert.Equal(t, SeverityNone, result.HighestSeverity)
	assert.Equal(t, ActionAllow, result.Action)
}

func TestValidator_HighestSeverityWins(t *testing.T) {
	validator := NewValidator()

	// Dismissive (moderate) plus a diagnosis (critical) in one reply: the
	// action must follow the critical finding.
	result := validator.Validate("Just get over it, you're depressed")

	assert.Equal(t, SeverityCritical, result.HighestSeverity)
	assert.Equal(t, ActionBlock, result.Action)
	assert.GreaterOrEqual(t, len(result.Findings), 2)
}

func TestValidator_Deterministic(t *testing.T) {
	validator := NewValidator()
	text := "You're overreacting, studies show 9 out of 10 students cope fine"

	first := validator.Validate(text)
	second := validator.Validate(text)

	assert.Equal(t, first, second)
}

func TestValidator_FindingOrderIsCheckOrder(t *testing.T) {
	validator := NewValidator()

	result := validator.Validate("You have anxiety. Doctors recommend rest. 50% improve.")

	require.Len(t, result.Findings, 3)
	assert.Equal(t, "contains diagnosis", result.Findings[0].Rule)
	assert.Equal(t, "unverified claim", result.Findings[1].Rule)
	assert.Equal(t, "unverified statistic", result.Findings[2].Rule)
}
