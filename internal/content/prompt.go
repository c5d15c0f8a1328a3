package content

import "fmt"

const basePromptContext = "You are an AI social media content creator specializing in African small business marketing. Your content should be culturally relevant, engaging, and designed to drive business growth."

var platformPromptContext = map[Platform]string{
	PlatformInstagram: "Create visually-oriented content that leverages hashtags effectively and encourages engagement through comments and shares.",
	PlatformTwitter:   "Create concise, impactful content that sparks conversation and is optimized for retweets and replies.",
	PlatformLinkedIn:  "Create professional, insight-driven content that establishes thought leadership and builds business networks.",
}

var tonePromptContext = map[Tone]string{
	ToneProfessional:  "Adopt a professional, authoritative tone that builds trust and credibility while showcasing expertise.",
	ToneCasual:        "Use a friendly, conversational tone that feels approachable and authentic, like talking to a friend.",
	TonePromotional:   "Create compelling, urgency-driven content that motivates immediate action while remaining authentic.",
	ToneInspirational: "Craft uplifting, motivational content that empowers entrepreneurs and celebrates business success.",
	ToneHumorous:      "Use appropriate humor and wit that resonates with business owners while keeping the message clear.",
	ToneInformative:   "Provide valuable, educational content that positions the brand as a trusted source of business knowledge.",
}

// Prompt is what a language model backed generator would be sent.
type Prompt struct {
	System string `json:"system"`
	User   string `json:"user"`
}

func NewPrompt(req Request) *Prompt {
	return &Prompt{
		System: SystemPrompt(req.Platform, req.Tone),
		User:   UserPrompt(req),
	}
}

func SystemPrompt(p Platform, t Tone) string {
	s := basePromptContext

	if c, ok := platformPromptContext[p]; ok {
		s += " " + c
	}

	if c, ok := tonePromptContext[t]; ok {
		s += " " + c
	}

	return s
}

func UserPrompt(req Request) string {
	return fmt.Sprintf("Create a %s %s for %s about: %q. The content should be optimized for African small businesses, include relevant emojis naturally, and drive engagement. Focus on practical benefits and real-world applications.",
		req.Tone, req.Type, req.Platform, req.Description)
}
