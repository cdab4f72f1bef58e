package chat

import (
	"math/rand/v2"
	"strings"

	"github.com/nyashahama/wellbeing-risk-engine/internal/risk"
)

// Responder produces the assistant's reply to a classified user message.
// Implementations must be safe to call concurrently.
type Responder interface {
	Respond(message string, severity risk.Level) string
}

// Picker returns an index in [0, n). It isolates the random choice between
// equivalent replies so tests can pin it.
type Picker func(n int) int

// topic is one bank of canned replies.
type topic string

const (
	topicCrisis     topic = "crisis"
	topicAnxiety    topic = "anxiety"
	topicDepression topic = "depression"
	topicStress     topic = "stress"
	topicGreeting   topic = "greeting"
	topicSupport    topic = "support"
)

var replies = map[topic][]string{
	topicGreeting: {
		"I'm glad you reached out today. Sharing how you feel takes courage. What's on your mind?",
		"Thank you for being here. I'm listening and ready to support you. What would you like to talk about?",
		"It's good to see you. Taking care of your mental health is important. How can I help you today?",
	},
	topicAnxiety: {
		"Anxiety can feel overwhelming, but you're not alone. Try the 5-4-3-2-1 grounding technique: name 5 things you see, 4 you can touch, 3 you hear, 2 you smell, and 1 you taste.",
		"When anxiety strikes, remember to breathe deeply. Inhale for 4 counts, hold for 4, exhale for 6. This activates your body's relaxation response.",
		"Anxiety is your mind trying to protect you, but sometimes it overreacts. What specific situation is making you feel anxious right now?",
	},
	topicDepression: {
		"Depression can make everything feel heavy and difficult. Your feelings are valid, and seeking help shows strength, not weakness.",
		"When depression clouds your thoughts, remember that this feeling is temporary. Small steps like getting sunlight, gentle movement, or connecting with others can help.",
		"Depression affects how you see yourself and the world. Have you been able to do any activities that usually bring you comfort or joy?",
	},
	topicStress: {
		"Academic stress is very common among students. Let's break down what's causing you stress and find manageable ways to address it.",
		"Stress can feel overwhelming, but there are effective ways to manage it. Have you tried time-blocking your schedule or the Pomodoro technique?",
		"Chronic stress affects both your mind and body. Are you getting enough sleep, nutrition, and physical activity?",
	},
	topicCrisis: {
		"I'm very concerned about what you've shared. Your life has value and meaning. Please reach out to a crisis counselor immediately at 988 (Suicide & Crisis Lifeline) or text 'HELLO' to 741741.",
		"You're going through something incredibly difficult right now, but you don't have to face this alone. Please contact emergency services (911) or the National Suicide Prevention Lifeline at 988 immediately.",
		"What you're feeling right now is temporary, even though it doesn't feel that way. Please reach out for immediate help: Call 988, text 741741, or go to your nearest emergency room. Your life matters.",
	},
	topicSupport: {
		"Remember that seeking help is a sign of strength. You deserve support and care.",
		"You're taking an important step by talking about your feelings. That takes real courage.",
		"Your mental health matters, and you matter. There are people who want to help you through this.",
	},
}

var topicKeywords = []struct {
	topic    topic
	keywords []string
}{
	{topicAnxiety, []string{"anxious", "anxiety", "panic"}},
	{topicDepression, []string{"depressed", "depression", "sad"}},
	{topicStress, []string{"stress", "overwhelmed", "pressure"}},
	// Substring match like the rest, so "hi" also picks up "this".
	{topicGreeting, []string{"hello", "hi", "hey"}},
}

// CannedResponder picks a reply from fixed banks of supportive messages.
type CannedResponder struct {
	pick Picker
}

// NewCannedResponder returns a responder choosing with pick. A nil pick uses
// math/rand/v2.
func NewCannedResponder(pick Picker) *CannedResponder {
	if pick == nil {
		pick = rand.IntN
	}
	return &CannedResponder{pick: pick}
}

// Respond implements Responder. A crisis severity always selects the crisis
// bank, whatever else the message mentions.
func (c *CannedResponder) Respond(message string, severity risk.Level) string {
	bank := replies[topicFor(message, severity)]
	return bank[c.pick(len(bank))]
}

func topicFor(message string, severity risk.Level) topic {
	if severity == risk.Crisis {
		return topicCrisis
	}
	lower := strings.ToLower(message)
	for _, tk := range topicKeywords {
		for _, kw := range tk.keywords {
			if strings.Contains(lower, kw) {
				return tk.topic
			}
		}
	}
	return topicSupport
}
