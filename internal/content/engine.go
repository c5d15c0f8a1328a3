package content

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Rand picks random indexes. Tests inject a fixed source.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// ImageGenerator returns a URL for an image matching the description.
type ImageGenerator interface {
	ImageURL(ctx context.Context, description string, seed int64) (string, error)
}

type Engine struct {
	rand   Rand
	images ImageGenerator
	now    func() time.Time
}

type EngineOption func(*Engine)

func WithRand(r Rand) EngineOption {
	return func(e *Engine) { e.rand = r }
}

func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) { e.now = now }
}

// NewEngine builds an engine. images may be nil, in which case no image URLs
// are attached.
func NewEngine(images ImageGenerator, opts ...EngineOption) *Engine {
	e := &Engine{
		rand:   globalRand{},
		images: images,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Generate assembles content for the request. It never fails: unknown
// platforms or tones and any internal panic produce the static fallback.
func (e *Engine) Generate(ctx context.Context, req Request) (out GeneratedContent) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("content generation panicked", "panic", r)
			out = Fallback(req.Platform, req.Type, req.Tone, req.Description)
		}
	}()

	if !knownPlatform(req.Platform) || !knownTone(req.Tone) {
		slog.Warn("no content tables for request, using fallback", "platform", req.Platform, "tone", req.Tone)
		return Fallback(req.Platform, req.Type, req.Tone, req.Description)
	}

	text := e.compose(req)

	out = GeneratedContent{
		Platform: req.Platform,
		Type:     req.Type,
		Content:  text,
		Hashtags: Hashtags(req.Platform, req.Tone, req.Description, text),
		Prompt:   NewPrompt(req),
	}

	if (req.Type == TypePost || req.Type == TypeAd) && e.images != nil {
		url, err := e.images.ImageURL(ctx, req.Description, e.now().UnixMilli())
		if err != nil {
			slog.Warn("failed to generate image url", "error", err)
		} else {
			out.ImageURL = url
		}
	}

	return out
}

func (e *Engine) compose(req Request) string {
	el := toneElements[req.Tone]
	desc := req.Description

	emojis := el.emojis[:e.rand.IntN(3)+2]
	cta := el.callToAction[e.rand.IntN(len(el.callToAction))]
	insight := Insight(Classify(desc), req.Tone)

	var text string

	switch {
	case req.Platform == PlatformInstagram && req.Type == TypePost:
		text = fmt.Sprintf("%s %s\n\n%s\n\n%s\n\n%s - link in bio! %s",
			emojis[0], e.hook(desc, req.Tone), insight, featureList(req.Tone), cta, emojis[1])
	case req.Platform == PlatformTwitter:
		text = fmt.Sprintf("%s %s\n\n%s\n\n%s 👇 Thread",
			emojis[0], e.hook(desc, req.Tone), truncateRunes(insight, 120), cta)
	case req.Platform == PlatformLinkedIn:
		text = fmt.Sprintf("%s\n\n%s\n\n%s\n\n%s\n\n%s",
			professionalHook(desc), insight, fmt.Sprintf(detailedAnalysis, desc), engagementQuestions[req.Tone], cta)
	default:
		text = fmt.Sprintf("%s %s\n\n%s\n\n%s %s",
			emojis[0], e.hook(desc, req.Tone), insight, cta, emojis[1])
	}

	return Truncate(text, Constraints(req.Platform, req.Type).MaxLength)
}

func (e *Engine) hook(desc string, t Tone) string {
	options := hooks[t]
	return fmt.Sprintf(options[e.rand.IntN(len(options))], desc)
}

func professionalHook(desc string) string {
	r, size := utf8.DecodeRuneInString(desc)
	if size == 0 {
		return "The Future of  in African Business"
	}

	return "The Future of " + string(unicode.ToUpper(r)) + desc[size:] + " in African Business"
}

func featureList(t Tone) string {
	return strings.Join(features[t][:3], "\n")
}

// Truncate shortens s to at most limit characters, ending in "..." when cut.
func Truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}

	if limit < 3 {
		return truncateRunes(s, limit)
	}

	return truncateRunes(s, limit-3) + "..."
}

func truncateRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}

	return s
}
