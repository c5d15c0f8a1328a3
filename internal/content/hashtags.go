package content

import "strings"

// HashtagLimit is the number of tags kept for a platform.
func HashtagLimit(p Platform) int {
	if p == PlatformTwitter {
		return 5
	}

	return 8
}

// Hashtags combines base, tone, platform and context tags for the generated
// text, removing duplicates and capping the result per platform.
func Hashtags(p Platform, t Tone, description, text string) []string {
	tags := make([]string, 0, 16)
	tags = append(tags, baseHashtags...)
	tags = append(tags, toneHashtags[t]...)
	tags = append(tags, platformHashtags[p]...)
	tags = append(tags, ContextHashtags(description, text)...)

	tags = dedupe(tags)

	if limit := HashtagLimit(p); len(tags) > limit {
		tags = tags[:limit]
	}

	return tags
}

// ContextHashtags returns up to three tags for business keywords found in
// the description and then in the generated text.
func ContextHashtags(description, text string) []string {
	lookup := make(map[string][]string, len(contextTags))

	var tags []string

	desc := strings.ToLower(description)
	for _, ct := range contextTags {
		lookup[ct.keyword] = ct.tags

		if strings.Contains(desc, ct.keyword) {
			tags = append(tags, ct.tags...)
		}
	}

	body := strings.ToLower(text)
	for _, kw := range contentKeywords {
		if strings.Contains(body, kw) {
			tags = append(tags, lookup[kw]...)
		}
	}

	tags = dedupe(tags)
	if len(tags) > maxContextTags {
		tags = tags[:maxContextTags]
	}

	return tags
}

func dedupe(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := tags[:0]

	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}

		seen[tag] = struct{}{}
		out = append(out, tag)
	}

	return out
}
