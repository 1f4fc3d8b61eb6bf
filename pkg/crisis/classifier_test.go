package crisis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifier_CriticalKeyword(t *testing.T) {
	classifier := NewClassifier()

	assessment := classifier.Classify("I want to kill myself")

	assert.Equal(t, LevelCritical, assessment.Level)
	assert.Equal(t, CategorySuicidalIdeation, assessment.Category)
	assert.Equal(t, "kill myself", assessment.MatchedTerm)
	assert.Equal(t, 1.0, assessment.Confidence)
}

func TestClassifier_CriticalPrecedesLowerSeverities(t *testing.T) {
	classifier := NewClassifier()

	// Critical, high and moderate indicators in one message: the critical
	// match must win and scanning must not continue.
	assessment := classifier.Classify("I feel hopeless, I want to hurt myself and end my life")

	assert.Equal(t, LevelCritical, assessment.Level)
	assert.Equal(t, CategorySuicidalIdeation, assessment.Category)
}

func TestClassifier_SelfHarm(t *testing.T) {
	classifier := NewClassifier()

	assessment := classifier.Classify("sometimes I think about cutting")

	assert.Equal(t, LevelHigh, assessment.Level)
	assert.Equal(t, CategorySelfHarm, assessment.Category)
	assert.Equal(t, 1.0, assessment.Confidence)
}

func TestClassifier_Violence(t *testing.T) {
	classifier := NewClassifier()

	assessment := classifier.Classify("I keep having violent thoughts about my roommate")

	assert.Equal(t, LevelHigh, assessment.Level)
	assert.Equal(t, CategoryViolence, assessment.Category)
}

func TestClassifier_SelfHarmPrecedesViolence(t *testing.T) {
	classifier := NewClassifier()

	assessment := classifier.Classify("I want to hurt myself")

	// "hurt myself" sits in the self-harm set and also contains the violence
	// substring "want to hurt"; the self-harm set is checked first.
	assert.Equal(t, CategorySelfHarm, assessment.Category)
}

func TestClassifier_ModerateThreshold(t *testing.T) {
	classifier := NewClassifier()

	assessment := classifier.Classify("everything feels hopeless and I can't cope anymore")

	assert.Equal(t, LevelModerate, assessment.Level)
	assert.Equal(t, CategoryGeneralizedDistress, assessment.Category)
	assert.Equal(t, MultipleIndicators, assessment.MatchedTerm)
	assert.Equal(t, 0.9, assessment.Confidence)
}

func TestClassifier_SingleModerateKeywordIsNone(t *testing.T) {
	classifier := NewClassifier()

	assessment := classifier.Classify("everything feels hopeless today")

	assert.Equal(t, LevelNone, assessment.Level)
	assert.Empty(t, assessment.Category)
	assert.Empty(t, assessment.MatchedTerm)
}

func TestClassifier_BenignMessage(t *testing.T) {
	classifier := NewClassifier()

	assessment := classifier.Classify("I'm just feeling stressed about exams")

	assert.Equal(t, LevelNone, assessment.Level)
	assert.Equal(t, 1.0, assessment.Confidence)
}

func TestClassifier_EmptyMessage(t *testing.T) {
	classifier := NewClassifier()

	assessment := classifier.Classify("")

	assert.Equal(t, LevelNone, assessment.Level)
}

func TestClassifier_CaseInsensitive(t *testing.T) {
	classifier := NewClassifier()

	assessment := classifier.Classify("I WANT TO END MY LIFE")

	assert.Equal(t, LevelCritical, assessment.Level)
}

type wordBoundaryMatcher struct{}

func (wordBoundaryMatcher) Contains(message, term string) bool {
	return message == term
}

func TestClassifier_CustomMatcher(t *testing.T) {
	classifier := NewClassifierWithMatcher(wordBoundaryMatcher{})

	// The exact-match test matcher only fires on the bare keyword.
	assert.Equal(t, LevelCritical, classifier.Classify("suicide").Level)
	assert.Equal(t, LevelNone, classifier.Classify("thinking about suicide prevention").Level)
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "CRITICAL", LevelCritical.String())
	assert.Equal(t, "HIGH", LevelHigh.String())
	assert.Equal(t, "MODERATE", LevelModerate.String())
	assert.Equal(t, "NONE", LevelNone.String())
}
