package moderation

import "fmt"

// SafeSystemPrompt constrains every generation call. The model is a support
// companion, not a clinician; the validator enforces the same rules after the
// fact.
const SafeSystemPrompt = `You are MindSpace, a supportive companion for students. You are NOT a therapist, doctor, or medical professional.

CRITICAL SAFETY RULES (Breaking these causes harm):

1. NEVER DIAGNOSE CONDITIONS
   WRONG: "You have depression/anxiety/PTSD"
   RIGHT: "It sounds like you're experiencing symptoms of low mood"

2. NEVER RECOMMEND MEDICATION
   WRONG: "You should try antidepressants"
   RIGHT: "A doctor can discuss treatment options with you"

3. ALWAYS BE EMPATHETIC, NEVER DISMISSIVE
   WRONG: "Just think positive" / "Everyone feels this way"
   RIGHT: "That sounds really difficult. Those feelings are valid."

4. SUGGEST EVIDENCE-BASED COPING ONLY
   - Deep breathing (4-7-8 technique)
   - Grounding (5-4-3-2-1 method)
   - Journaling, exercise, sleep hygiene
   - Talking to trusted friends/family

5. RECOMMEND PROFESSIONAL HELP
   For serious concerns, always suggest:
   - KIRAN Helpline: 1800-599-0019
   - Campus counselor
   - Trusted adult/mentor

6. BE HUMBLE ABOUT LIMITATIONS
   "I'm here to listen, but a counselor can provide better guidance"
   "I'm not qualified to advise on this"

RESPONSE STRUCTURE:
1. Validate feeling (show empathy)
2. Normalize if appropriate (reduce shame)
3. Suggest practical coping strategy
4. Offer continued support
5. Recommend professional help if needed

Keep responses warm, conversational, and 2-4 sentences.`

// critiqueSystemPrompt frames the second, reflexive model call that audits a
// candidate reply. The contract is a bare SAFE / UNSAFE(reason) verdict.
const critiqueSystemPrompt = `You are a safety checker for mental health chatbot responses.`

func critiquePrompt(candidate, userMessage string) string {
	return fmt.Sprintf(`User message: %q
Bot response: %q

Check for these CRITICAL issues:
1. Does it diagnose any mental health condition?
2. Does it recommend medication or medical treatment?
3. Is it dismissive or invalidating?
4. Does it make unfounded medical claims?
5. For serious concerns, does it suggest professional help?

Respond ONLY with:
- "SAFE" if no issues
- "UNSAFE: [specific reason]" if issues found

Your response:`, userMessage, candidate)
}

func regenerationPrompt(feedback string) string {
	return fmt.Sprintf(`

Previous response had safety issues: %s

Generate a NEW response that:
- Does NOT diagnose conditions
- Does NOT give medical advice
- IS empathetic and validating
- DOES suggest coping strategies
- DOES recommend professional help if serious`, feedback)
}

// fallbackResponse replaces model output that the validator blocked.
const fallbackResponse = `I understand you're going through a difficult time. While I want to support you, I think it's important that you speak with a trained counselor who can provide proper guidance.

Would you like to talk about what's been on your mind? I'm here to listen, and I can also connect you with professional resources if that would be helpful.

KIRAN Mental Health Helpline: 1800-599-0019 (Free, 24/7)`

// errorFallbackResponse is the worst-case reply when the gateway is down. It
// still carries the hotline; the user never sees a raw error.
const errorFallbackResponse = `I'm having trouble processing that right now. For immediate support, please contact:

KIRAN Mental Health Helpline: 1800-599-0019 (24/7, Free)

Would you like to try rephrasing your message?`

// moderateSuffix is appended to AI replies for moderate-crisis turns.
const moderateSuffix = "\n\nIf these feelings persist or worsen, please reach out to KIRAN Helpline: 1800-599-0019"
