package content

import (
	"fmt"
	"strings"
)

// fallbackTemplates hold one %s verb for the description.
var fallbackTemplates = map[Platform]map[ContentType]map[Tone]string{
	PlatformInstagram: {
		TypePost: {
			ToneProfessional: "Transform your business with smart inventory management! 📊\n\nOur latest AI-powered tools help small businesses in Africa optimize stock levels and boost profits. Say goodbye to stockouts and overstocking.\n\n%s\n\n#SmallBusiness #AI #Inventory #Africa #Business",
			ToneCasual:       "Hey business owners! 👋\n\nTired of running out of stock just when customers need it most? We've got you covered! ✨\n\n%s\n\nSwipe to see how easy it is! ➡️\n\n#BusinessLife #SmallBiz #Entrepreneur #StockManagement",
			TonePromotional:  "🔥 LIMITED TIME: 50% OFF Premium Features! 🔥\n\n%s\n\nJoin 10,000+ African entrepreneurs already growing their business with our AI tools.\n\n👆 Link in bio to get started!\n\n#Sale #BusinessGrowth #LimitedOffer #AI",
		},
		TypeStory: {
			ToneProfessional: "Professional story content for: %s",
			ToneCasual:       "Casual story content for: %s",
			TonePromotional:  "Promotional story content for: %s",
		},
		TypeAd: {
			ToneProfessional: "Professional ad content for: %s",
			ToneCasual:       "Casual ad content for: %s",
			TonePromotional:  "Ready to grow your business? %s Start your free trial today!",
		},
	},
	PlatformTwitter: {
		TypePost: {
			ToneProfessional: "AI-powered business management is revolutionizing small businesses across Africa 🚀\n\n%s\n\nSee how entrepreneurs are increasing profits with smart inventory tracking.\n\n#SmallBusiness #AI #Africa",
			ToneCasual:       "Just helped another small business owner avoid stockouts! 🎉\n\n%s\n\nThis is why I love building tools for entrepreneurs 💪\n\n#BusinessWin #Entrepreneur",
			TonePromotional:  "🚨 Special offer: 50% off for African small businesses!\n\n%s\n\nClaim your discount: [link]\n\n#BusinessTools #Discount #SmallBiz",
		},
	},
	PlatformLinkedIn: {
		TypePost: {
			ToneProfessional: "The Future of Small Business Management in Africa\n\n%s\n\nAs we continue to see digital transformation across African markets, AI-powered business tools are becoming essential for competitive advantage.\n\nKey benefits I've observed:\n• 40% reduction in stockouts\n• 25% increase in profit margins\n• 60% time saved on inventory management\n\nWhat's your experience with business automation tools?\n\n#SmallBusiness #AI #Africa #DigitalTransformation",
			ToneCasual:       "Quick win for small business owners! 💡\n\n%s\n\nJust implemented this with a client and saw immediate results. Sometimes the simplest solutions make the biggest impact.\n\n#BusinessTips #Entrepreneurship",
			TonePromotional:  "Announcing our new AI Business Coach for African entrepreneurs! 🎉\n\n%s\n\nLimited beta access available. Comment below if you're interested!\n\n#ProductLaunch #AI #SmallBusiness",
		},
	},
}

var fallbackHashtags = map[Platform][]string{
	PlatformInstagram: {"#SmallBusiness", "#AI", "#Africa", "#Entrepreneur", "#BusinessGrowth"},
	PlatformTwitter:   {"#SmallBiz", "#AI", "#Entrepreneur"},
}

var defaultFallbackHashtags = []string{"#SmallBusiness", "#AI", "#DigitalTransformation"}

// Fallback builds content from the static template table. Combinations
// missing from the table get a generic sentence. The result always has
// non-empty content.
func Fallback(p Platform, t ContentType, tone Tone, description string) GeneratedContent {
	text := fmt.Sprintf("Generated content for %s %s in %s tone: %s", p, t, tone, description)
	if tmpl, ok := fallbackTemplates[p][t][tone]; ok {
		text = strings.Replace(tmpl, "%s", description, 1)
	}

	tags, ok := fallbackHashtags[p]
	if !ok {
		tags = defaultFallbackHashtags
	}

	return GeneratedContent{
		Platform: p,
		Type:     t,
		Content:  text,
		Hashtags: append([]string(nil), tags...),
		Fallback: true,
	}
}
