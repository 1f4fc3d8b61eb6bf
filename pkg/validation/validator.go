package validation

import "regexp"

// Severity classifies a single finding against a candidate reply.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityModerate
	SeverityHigh
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "CRITICAL"
	case SeverityHigh:
		return "HIGH"
	case SeverityModerate:
		return "MODERATE"
	default:
		return "NONE"
	}
}

// Action is the moderation decision derived from the highest severity found.
type Action string

const (
	ActionAllow      Action = "ALLOW"
	ActionWarn       Action = "WARN"
	ActionRegenerate Action = "REGENERATE"
	ActionBlock      Action = "BLOCK"
)

// Finding is a single issue detected in a candidate reply.
type Finding struct {
	Rule        string   `json:"rule"`
	Severity    Severity `json:"severity"`
	MatchedText string   `json:"matched_text,omitempty"`
}

// Result is the outcome of validating one candidate reply. Finding order is
// check order.
type Result struct {
	IsValid         bool      `json:"is_valid"`
	Findings        []Finding `json:"findings"`
	HighestSeverity Severity  `json:"highest_severity"`
	Action          Action    `json:"action"`
}

type rule struct {
	pattern  *regexp.Regexp
	label    string
	severity Severity
}

// forbiddenRules is the ordered audit table. Each candidate reply is matched
// against every rule; matching is independent of how the text was produced.
var forbiddenRules = []rule{
	// Diagnostic claims
	{regexp.MustCompile(`(?i)you have (depression|anxiety|bipolar|schizophrenia|ptsd|ocd|adhd|autism)`), "contains diagnosis", SeverityCritical},
	{regexp.MustCompile(`(?i)you('re| are) (depressed|anxious|mentally ill)`), "contains diagnosis", SeverityCritical},
	{regexp.MustCompile(`(?i)diagnosed with`), "mentions diagnosis", SeverityCritical},

	// Medication directives and named drugs
	{regexp.MustCompile(`(?i)you should (take|try|stop|start) (medication|meds|pills|antidepressants?|ssri)`), "medication advice", SeverityCritical},
	{regexp.MustCompile(`(?i)(prozac|zoloft|lexapro|xanax|ativan|valium|wellbutrin)`), "mentions specific medication", SeverityCritical},

	// Harmful content
	{regexp.MustCompile(`(?i)kill yourself`), "harmful content", SeverityCritical},
	{regexp.MustCompile(`(?i)end (your|it all)`), "potentially harmful", SeverityHigh},

	// Dismissive or invalidating phrasing
	{regexp.MustCompile(`(?i)(just|simply) (get over it|snap out of it|think positive|stop worrying)`), "dismissive language", SeverityModerate},
	{regexp.MustCompile(`(?i)it'?s all in your head`), "dismissive language", SeverityModerate},
	{regexp.MustCompile(`(?i)you'?re (being dramatic|overreacting|too sensitive)`), "invalidating", SeverityModerate},

	// Medical claims without qualification
	{regexp.MustCompile(`(?i)this will (cure|fix|solve) your`), "unqualified medical claim", SeverityHigh},
	{regexp.MustCompile(`(?i)you need (therapy|treatment|help) for`), "directive medical statement", SeverityHigh},
}

var unverifiedClaimPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)studies show`),
	regexp.MustCompile(`(?i)research proves`),
	regexp.MustCompile(`(?i)scientifically proven`),
	regexp.MustCompile(`(?i)doctors recommend`),
	regexp.MustCompile(`(?i)experts say`),
}

var statisticsPattern = regexp.MustCompile(`\d+%|\d+ percent|\d+ out of \d+`)

type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// Validate runs the ordered rule table against a candidate reply. It is a
// pure function: identical text always yields an identical result.
func (v *Validator) Validate(reply string) Result {
	result := Result{
		IsValid:         true,
		HighestSeverity: SeverityNone,
		Action:          ActionAllow,
	}

	for _, r := range forbiddenRules {
		if match := r.pattern.FindString(reply); match != "" {
			result.IsValid = false
			result.Findings = append(result.Findings, Finding{
				Rule:        r.label,
				Severity:    r.severity,
				MatchedText: match,
			})
			if r.severity > result.HighestSeverity {
				result.HighestSeverity = r.severity
			}
		}
	}

	for _, pattern := range unverifiedClaimPatterns {
		if match := pattern.FindString(reply); match != "" {
			result.IsValid = false
			result.Findings = append(result.Findings, Finding{
				Rule:        "unverified claim",
				Severity:    SeverityModerate,
				MatchedText: match,
			})
			if SeverityModerate > result.HighestSeverity {
				result.HighestSeverity = SeverityModerate
			}
			break
		}
	}

	if match := statisticsPattern.FindString(reply); match != "" {
		result.IsValid = false
		result.Findings = append(result.Findings, Finding{
			Rule:        "unverified statistic",
			Severity:    SeverityModerate,
			MatchedText: match,
		})
		if SeverityModerate > result.HighestSeverity {
			result.HighestSeverity = SeverityModerate
		}
	}

	switch result.HighestSeverity {
	case SeverityCritical:
		result.Action = ActionBlock
	case SeverityHigh:
		result.Action = ActionRegenerate
	case SeverityModerate:
		result.Action = ActionWarn
	default:
		result.Action = ActionAllow
	}

	return result
}
