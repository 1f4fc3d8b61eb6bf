package validation

import "regexp"

// ToneCheck reports the presence of empathy and dismissive markers in a reply.
// The score feeds confidence scoring only; it never gates block or regenerate
// decisions.
type ToneCheck struct {
	HasEmpathy   bool    `json:"has_empathy"`
	IsDismissive bool    `json:"is_dismissive"`
	Score        float64 `json:"score"`
}

var empathyMarkers = []*regexp.Regexp{
	regexp.MustCompile(`(?i)I (hear|understand|see) (that|you)`),
	regexp.MustCompile(`(?i)that (sounds|seems|must be)`),
	regexp.MustCompile(`(?i)it'?s (understandable|normal|valid|okay)`),
	regexp.MustCompile(`(?i)(thank you for|appreciate you) sharing`),
}

var dismissiveMarkers = []*regexp.Regexp{
	regexp.MustCompile(`(?i)just|simply|merely|only`),
	regexp.MustCompile(`(?i)don'?t worry|stop worrying`),
}

// CheckTone scores a reply on a fixed 0.0/0.5/0.7/1.0 scale: empathy without
// dismissiveness scores highest, dismissiveness without empathy lowest.
func (v *Validator) CheckTone(reply string) ToneCheck {
	hasEmpathy := anyMatch(empathyMarkers, reply)
	isDismissive := anyMatch(dismissiveMarkers, reply)

	var score float64
	switch {
	case hasEmpathy && !isDismissive:
		score = 1.0
	case hasEmpathy && isDismissive:
		score = 0.5
	case !hasEmpathy && !isDismissive:
		score = 0.7
	default:
		score = 0.0
	}

	return ToneCheck{
		HasEmpathy:   hasEmpathy,
		IsDismissive: isDismissive,
		Score:        score,
	}
}

func anyMatch(patterns []*regexp.Regexp, text string) bool {
	for _, pattern := range patterns {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}
