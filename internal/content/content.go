// Package content assembles social media copy for small businesses from
// static tone, platform and business-context tables.
package content

import (
	"errors"
	"strings"
	"unicode/utf8"
)

type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformTwitter   Platform = "twitter"
	PlatformLinkedIn  Platform = "linkedin"
)

type ContentType string

const (
	TypePost  ContentType = "post"
	TypeStory ContentType = "story"
	TypeAd    ContentType = "ad"
)

type Tone string

const (
	ToneProfessional  Tone = "professional"
	ToneCasual        Tone = "casual"
	TonePromotional   Tone = "promotional"
	ToneInspirational Tone = "inspirational"
	ToneHumorous      Tone = "humorous"
	ToneInformative   Tone = "informative"
)

// Context is the business bucket a description is classified into.
type Context string

const (
	ContextInventory Context = "inventory_management"
	ContextSales     Context = "sales_tracking"
	ContextPayment   Context = "payment_integration"
	ContextAI        Context = "ai_features"
	ContextGrowth    Context = "business_growth"
	ContextGeneral   Context = "general_business"
)

// Option is a selectable value with its display label.
type Option[T ~string] struct {
	Value T      `json:"value"`
	Label string `json:"label"`
}

var Platforms = []Option[Platform]{
	{PlatformInstagram, "Instagram"},
	{PlatformTwitter, "Twitter"},
	{PlatformLinkedIn, "LinkedIn"},
}

var ContentTypes = []Option[ContentType]{
	{TypePost, "Post"},
	{TypeStory, "Story"},
	{TypeAd, "Advertisement"},
}

var Tones = []Option[Tone]{
	{ToneProfessional, "Professional"},
	{ToneCasual, "Casual"},
	{TonePromotional, "Promotional"},
	{ToneInspirational, "Inspirational"},
	{ToneHumorous, "Humorous"},
	{ToneInformative, "Informative"},
}

// MaxDescriptionLength is the longest accepted description, in characters.
const MaxDescriptionLength = 200

var (
	ErrMissingField       = errors.New("platform, type, tone and description are required")
	ErrDescriptionTooLong = errors.New("description exceeds 200 characters")
)

type Request struct {
	Platform    Platform    `json:"platform"`
	Type        ContentType `json:"type"`
	Tone        Tone        `json:"tone"`
	Description string      `json:"description"`
}

func (r Request) Validate() error {
	if r.Platform == "" || r.Type == "" || r.Tone == "" || strings.TrimSpace(r.Description) == "" {
		return ErrMissingField
	}

	if utf8.RuneCountInString(r.Description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}

	return nil
}

type GeneratedContent struct {
	Platform Platform    `json:"platform"`
	Type     ContentType `json:"type"`
	Content  string      `json:"content"`
	Hashtags []string    `json:"hashtags"`
	ImageURL string      `json:"imageUrl,omitempty"`
	// Prompt is the system and user prompt pair a language model would receive.
	Prompt *Prompt `json:"prompt,omitempty"`
	// Fallback is set when the static template table produced the content.
	Fallback bool `json:"fallback,omitempty"`
}

type Constraint struct {
	MaxLength    int  `json:"maxLength"`
	HashtagCount int  `json:"hashtagCount"`
	IncludeImage bool `json:"includeImage"`
}

// Constraints returns the length and hashtag limits for a platform and type.
func Constraints(p Platform, t ContentType) Constraint {
	if c, ok := constraints[p][t]; ok {
		return c
	}

	return defaultConstraint
}

// Classify returns the first context whose keywords appear in the description.
func Classify(description string) Context {
	lower := strings.ToLower(description)

	for _, rule := range classification {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.context
			}
		}
	}

	return ContextGeneral
}

// Insight returns the business insight sentence for a context and tone.
func Insight(c Context, t Tone) string {
	if s, ok := insights[c][t]; ok {
		return s
	}

	if s, ok := insights[ContextGeneral][t]; ok {
		return s
	}

	return insights[ContextGeneral][ToneProfessional]
}

func knownTone(t Tone) bool {
	_, ok := toneElements[t]
	return ok
}

func knownPlatform(p Platform) bool {
	for _, o := range Platforms {
		if o.Value == p {
			return true
		}
	}

	return false
}
