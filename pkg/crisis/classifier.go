package crisis

import (
	"strings"
)

// Level is the discrete severity assigned to a single user message.
type Level int

const (
	LevelNone Level = iota
	LevelModerate
	LevelHigh
	LevelCritical
)

func (l Level) String() string {
	switch l {
	case LevelCritical:
		return "CRITICAL"
	case LevelHigh:
		return "HIGH"
	case LevelModerate:
		return "MODERATE"
	default:
		return "NONE"
	}
}

const (
	CategorySuicidalIdeation    = "suicidal_ideation"
	CategorySelfHarm            = "self_harm"
	CategoryViolence            = "violence"
	CategoryGeneralizedDistress = "generalized_distress"
)

// MultipleIndicators is the sentinel matched term reported when moderate
// detection fires on the distinct-match threshold rather than one keyword.
const MultipleIndicators = "multiple indicators"

// moderateThreshold is the number of distinct moderate keywords that must
// appear before a message is classified as a moderate crisis.
const moderateThreshold = 2

// Assessment is the classification result for one inbound message. It is
// created fresh per message and never persisted.
type Assessment struct {
	Level       Level   `json:"level"`
	Category    string  `json:"category,omitempty"`
	MatchedTerm string  `json:"matched_term,omitempty"`
	Confidence  float64 `json:"confidence"`
}

// Matcher decides whether a message contains a keyword. The default is plain
// substring containment; word-boundary or fuzzy matchers can be swapped in
// without touching the classifier.
type Matcher interface {
	Contains(message, term string) bool
}

type substringMatcher struct{}

func (substringMatcher) Contains(message, term string) bool {
	return strings.Contains(message, term)
}

var (
	criticalKeywords = []string{
		"suicide", "suicidal", "kill myself", "end my life", "end it all",
		"want to die", "better off dead", "no reason to live", "can't go on",
	}
	selfHarmKeywords = []string{
		"cut myself", "hurt myself", "self harm", "self-harm", "cutting",
		"burning myself", "harm myself",
	}
	violenceKeywords = []string{
		"hurt someone", "kill them", "violent thoughts", "want to hurt",
	}
	moderateKeywords = []string{
		"hopeless", "give up", "no point", "can't cope", "overwhelmed completely",
	}
)

type Classifier struct {
	matcher Matcher
}

func NewClassifier() *Classifier {
	return &Classifier{matcher: substringMatcher{}}
}

func NewClassifierWithMatcher(matcher Matcher) *Classifier {
	return &Classifier{matcher: matcher}
}

// Classify scans the message against the keyword sets in severity order and
// returns the first match. Rule-based matches carry confidence 1.0; the
// moderate threshold carries 0.9. The scan never reaches a lower-severity set
// once a higher one has matched.
func (c *Classifier) Classify(message string) Assessment {
	lower := strings.ToLower(message)

	for _, keyword := range criticalKeywords {
		if c.matcher.Contains(lower, keyword) {
			return Assessment{
				Level:       LevelCritical,
				Category:    CategorySuicidalIdeation,
				MatchedTerm: keyword,
				Confidence:  1.0,
			}
		}
	}

	for _, keyword := range selfHarmKeywords {
		if c.matcher.Contains(lower, keyword) {
			return Assessment{
				Level:       LevelHigh,
				Category:    CategorySelfHarm,
				MatchedTerm: keyword,
				Confidence:  1.0,
			}
		}
	}

	for _, keyword := range violenceKeywords {
		if c.matcher.Contains(lower, keyword) {
			return Assessment{
				Level:       LevelHigh,
				Category:    CategoryViolence,
				MatchedTerm: keyword,
				Confidence:  1.0,
			}
		}
	}

	moderateMatches := 0
	for _, keyword := range moderateKeywords {
		if c.matcher.Contains(lower, keyword) {
			moderateMatches++
		}
	}
	if moderateMatches >= moderateThreshold {
		return Assessment{
			Level:       LevelModerate,
			Category:    CategoryGeneralizedDistress,
			MatchedTerm: MultipleIndicators,
			Confidence:  0.9,
		}
	}

	return Assessment{Level: LevelNone, Confidence: 1.0}
}
