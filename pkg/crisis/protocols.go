package crisis

// Action is a side-effect tag the caller must honor when a protocol fires.
type Action string

const (
	ActionAlertReviewer         Action = "alert_reviewer"
	ActionShowEmergencyContacts Action = "show_emergency_contacts"
	ActionShowCrisisResources   Action = "show_crisis_resources"
	ActionDisableAI             Action = "disable_ai"
	ActionLimitAI               Action = "limit_ai"
	ActionSuggestCounselor      Action = "suggest_counselor"
	ActionMonitorClosely        Action = "monitor_closely"
)

// Protocol is a pre-written, human-authored crisis response. Protocols are the
// single source of truth for crisis-facing replies and bypass the language
// model entirely.
type Protocol struct {
	Level               Level    `json:"level"`
	Response            string   `json:"response"`
	Actions             []Action `json:"actions"`
	RequiresHumanReview bool     `json:"requires_human_review"`
	AllowAIFollowup     bool     `json:"allow_ai_followup"`
}

type Repository struct {
	protocols map[string]Protocol
}

func NewRepository() *Repository {
	return &Repository{
		protocols: map[string]Protocol{
			CategorySuicidalIdeation: {
				Level: LevelCritical,
				Response: `I'm really concerned about what you've shared. Your safety is the most important thing right now.

Please reach out immediately:
- KIRAN Mental Health Helpline: 1800-599-0019 (24/7)
- Vandrevala Foundation: 9999 666 555 (24/7)
- Emergency Services: 112

You don't have to face this alone. These helplines have trained counselors ready to help right now.

Are you in a safe place? Is there someone you trust who can be with you?`,
				Actions:             []Action{ActionAlertReviewer, ActionShowEmergencyContacts, ActionDisableAI},
				RequiresHumanReview: true,
				AllowAIFollowup:     false,
			},
			CategorySelfHarm: {
				Level: LevelHigh,
				Response: `I hear that you're thinking about harming yourself, and I'm really concerned. Your wellbeing matters.

Please reach out for immediate support:
- KIRAN Mental Health Helpline: 1800-599-0019
- Vandrevala Foundation: 9999 666 555
- Campus Counselor: [Available during campus hours]

These feelings can be overwhelming, but help is available. Would you be willing to reach out to one of these resources?

If you're in immediate danger, please call 112 or go to the nearest emergency room.`,
				Actions:             []Action{ActionAlertReviewer, ActionShowCrisisResources, ActionLimitAI},
				RequiresHumanReview: true,
				AllowAIFollowup:     false,
			},
			CategoryViolence: {
				Level: LevelHigh,
				Response: `Thank you for being honest about these thoughts. That takes courage, and it's important to talk about them with someone trained to help.

Please reach out now:
- KIRAN Mental Health Helpline: 1800-599-0019
- Campus Counselor: [Available during campus hours]

A counselor can help you work through these feelings safely. If you feel you might act on these thoughts, please call 112.`,
				Actions:             []Action{ActionAlertReviewer, ActionShowCrisisResources, ActionLimitAI},
				RequiresHumanReview: true,
				AllowAIFollowup:     false,
			},
			CategoryGeneralizedDistress: {
				Level: LevelModerate,
				Response: `I can hear that you're going through a really difficult time right now. These feelings are valid, and it's important we address them.

I strongly encourage you to speak with a counselor:
- KIRAN Helpline: 1800-599-0019 (Free, confidential)
- Campus Counseling Center
- Your trusted teacher or mentor

Would you like to talk about what's been happening? While I'm here to listen, a trained counselor can provide the proper support you need.`,
				Actions:             []Action{ActionSuggestCounselor, ActionMonitorClosely},
				RequiresHumanReview: false,
				AllowAIFollowup:     true,
			},
		},
	}
}

// ProtocolFor returns the protocol for a crisis category. An unknown category
// falls back to the generalized-distress protocol; once a crisis was detected
// the system must never answer with nothing.
func (r *Repository) ProtocolFor(category string) Protocol {
	if protocol, ok := r.protocols[category]; ok {
		return protocol
	}
	return r.protocols[CategoryGeneralizedDistress]
}
