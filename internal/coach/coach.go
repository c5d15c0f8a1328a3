// Package coach answers business questions through a remote assistant and
// keeps the chat log shown to the user.
package coach

import (
	"strings"
	"time"
)

type Language string

const (
	English Language = "en"
	Swahili Language = "sw"
)

// ParseLanguage maps anything other than "sw" to English.
func ParseLanguage(s string) Language {
	if strings.EqualFold(strings.TrimSpace(s), string(Swahili)) {
		return Swahili
	}

	return English
}

type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	IsBot     bool      `json:"isBot"`
	Timestamp time.Time `json:"timestamp"`
	Language  Language  `json:"language,omitempty"`
}

var fallbackAnswers = map[Language]string{
	English: "Sorry, I'm having a technical issue right now. Please try again in a moment.",
	Swahili: "Samahani, kuna tatizo la kiufundi kwa sasa. Tafadhali jaribu tena baadaye.",
}

// Fallback is the reply used whenever the assistant cannot be reached.
func Fallback(lang Language) string {
	if s, ok := fallbackAnswers[lang]; ok {
		return s
	}

	return fallbackAnswers[English]
}

type QuickAction struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Query string `json:"query"`
}

var QuickActions = []QuickAction{
	{ID: "1", Label: "Pricing Help", Query: "Help me optimize my product pricing"},
	{ID: "2", Label: "Marketing Tips", Query: "Give me marketing ideas for my business"},
	{ID: "3", Label: "Inventory Advice", Query: "How can I manage my inventory better?"},
	{ID: "4", Label: "M-Pesa Setup", Query: "Help me set up M-Pesa for my business"},
}

// FindQuickAction looks an action up by id.
func FindQuickAction(id string) (QuickAction, bool) {
	for _, a := range QuickActions {
		if a.ID == id {
			return a, true
		}
	}

	return QuickAction{}, false
}

type Insight struct {
	Title   string `json:"title"`
	Insight string `json:"insight"`
	Action  string `json:"action"`
}

var Insights = []Insight{
	{
		Title:   "Peak Sales Hours",
		Insight: "Your best sales are between 6-8 PM. Consider extending hours or promoting during this time.",
		Action:  "Extend evening hours",
	},
	{
		Title:   "Product Opportunity",
		Insight: "Customers often ask for milk when buying tea. Consider stocking UHT milk.",
		Action:  "Add dairy products",
	},
	{
		Title:   "Payment Trends",
		Insight: "70% of your customers prefer M-Pesa. Promote this payment method.",
		Action:  "Display M-Pesa prominently",
	},
}

// welcomeMessages seed every new conversation. Offsets are relative to its start.
var welcomeMessages = []struct {
	content string
	isBot   bool
	ago     time.Duration
	lang    Language
}{
	{
		content: "Habari! I'm your AI business coach. I can help you in English or Kiswahili. How can I assist your business today?",
		isBot:   true,
		ago:     5 * time.Minute,
		lang:    English,
	},
	{
		content: "Naomba ushauri kuhusu bei za bidhaa zangu. Ni vipi niweze kuongeza faida?",
		ago:     4 * time.Minute,
		lang:    Swahili,
	},
	{
		content: "Hii ni swali nzuri! Kuongeza faida, unaweza: 1) Kuchunguza bei za washindani 2) Kuongeza thamani kwa bidhaa zako 3) Kupunguza gharama za uongozaji. Kwa mfano, kama unamuuza unga, unaweza kuwa na mfuko wa plastic wa kibinafsi au kutoa delivery bure.",
		isBot:   true,
		ago:     3 * time.Minute,
		lang:    Swahili,
	},
}
