package crisis

import "strings"

// EmotionReading is a coarse keyword-based read of the emotional register of a
// message. It is advisory metadata only and never gates safety decisions.
type EmotionReading struct {
	Emotion     string `json:"emotion"`
	StressLevel int    `json:"stress_level"`
}

var emotionKeywords = []struct {
	emotion  string
	keywords []string
}{
	{"anxious", []string{"anxious", "worried", "nervous", "panic", "overwhelmed", "stressed", "anxiety"}},
	{"sad", []string{"sad", "depressed", "down", "hopeless", "empty", "lonely", "depression"}},
	{"angry", []string{"angry", "frustrated", "mad", "irritated", "annoyed", "furious"}},
	{"happy", []string{"happy", "good", "great", "excited", "joyful", "content", "wonderful"}},
	{"tired", []string{"tired", "exhausted", "drained", "burnout", "fatigued", "burnt out"}},
}

var highStressEmotions = map[string]bool{
	"anxious": true,
	"sad":     true,
	"angry":   true,
}

// DetectEmotion tags the message with the first matching emotion group in
// table order. Unmatched messages read as neutral with a mid-range stress
// level.
func DetectEmotion(text string) EmotionReading {
	lower := strings.ToLower(text)

	for _, group := range emotionKeywords {
		for _, keyword := range group.keywords {
			if strings.Contains(lower, keyword) {
				stress := 3
				if highStressEmotions[group.emotion] {
					stress = 7
				}
				return EmotionReading{Emotion: group.emotion, StressLevel: stress}
			}
		}
	}

	return EmotionReading{Emotion: "neutral", StressLevel: 5}
}
