package content

type toneElement struct {
	vocabulary   []string
	emojis       []string
	callToAction []string
	closingStyle string
}

var toneElements = map[Tone]toneElement{
	ToneProfessional: {
		vocabulary:   []string{"optimize", "enhance", "strategic", "efficient", "innovative", "comprehensive"},
		emojis:       []string{"📊", "💼", "🚀", "📈", "✅", "🎯"},
		callToAction: []string{"Discover how", "Learn more about", "Explore the benefits", "See the impact"},
		closingStyle: "authoritative",
	},
	ToneCasual: {
		vocabulary:   []string{"awesome", "amazing", "super", "fantastic", "incredible", "game-changing"},
		emojis:       []string{"✨", "🔥", "💪", "🎉", "😍", "👋"},
		callToAction: []string{"Check it out", "You gotta see this", "This is so cool", "Let me show you"},
		closingStyle: "friendly",
	},
	TonePromotional: {
		vocabulary:   []string{"exclusive", "limited", "special", "breakthrough", "revolutionary", "unbeatable"},
		emojis:       []string{"🚨", "⚡", "🔥", "💥", "🎁", "⏰"},
		callToAction: []string{"Get started now", "Claim your spot", "Don't wait", "Act today"},
		closingStyle: "urgent",
	},
	ToneInspirational: {
		vocabulary:   []string{"empower", "transform", "achieve", "breakthrough", "unleash", "elevate"},
		emojis:       []string{"🌟", "💪", "🚀", "✨", "🌈", "💫"},
		callToAction: []string{"Start your journey", "Take the first step", "Begin today", "Make it happen"},
		closingStyle: "motivational",
	},
	ToneHumorous: {
		vocabulary:   []string{"seriously", "honestly", "literally", "basically", "obviously", "apparently"},
		emojis:       []string{"😂", "🤣", "😄", "🙃", "😅", "🤪"},
		callToAction: []string{"Come see the magic", "See what the fuss is about", "Join the fun", "Don't be left out"},
		closingStyle: "playful",
	},
	ToneInformative: {
		vocabulary:   []string{"research", "data", "insights", "analysis", "evidence", "findings"},
		emojis:       []string{"📚", "💡", "📊", "🔍", "📈", "🧠"},
		callToAction: []string{"Learn the details", "Explore the research", "Get the facts", "Discover more"},
		closingStyle: "educational",
	},
}

var defaultConstraint = Constraint{MaxLength: 1000, HashtagCount: 5, IncludeImage: false}

var constraints = map[Platform]map[ContentType]Constraint{
	PlatformInstagram: {
		TypePost:  {MaxLength: 2200, HashtagCount: 8, IncludeImage: true},
		TypeStory: {MaxLength: 250, HashtagCount: 3, IncludeImage: true},
		TypeAd:    {MaxLength: 1500, HashtagCount: 5, IncludeImage: true},
	},
	PlatformTwitter: {
		TypePost: {MaxLength: 280, HashtagCount: 3, IncludeImage: false},
	},
	PlatformLinkedIn: {
		TypePost: {MaxLength: 3000, HashtagCount: 5, IncludeImage: true},
	},
}

type keywordRule struct {
	context  Context
	keywords []string
}

// classification is checked in order; the first rule with a matching keyword wins.
var classification = []keywordRule{
	{ContextInventory, []string{"inventory", "stock"}},
	{ContextSales, []string{"sales", "revenue"}},
	{ContextPayment, []string{"payment", "mpesa", "money"}},
	{ContextAI, []string{"ai", "automation"}},
	{ContextGrowth, []string{"business", "entrepreneur"}},
}

var insights = map[Context]map[Tone]string{
	ContextInventory: {
		ToneProfessional:  "Smart inventory management reduces costs by 35% and prevents stockouts that lose customers.",
		ToneCasual:        "Never run out of stock again! Our smart tracking keeps your shelves full and customers happy.",
		TonePromotional:   "Transform your inventory chaos into profit! Save 35% on costs while boosting customer satisfaction.",
		ToneInspirational: "Every successful business starts with knowing what they have. Smart inventory = smart growth.",
		ToneHumorous:      "Plot twist: You actually CAN predict when you'll run out of stuff. Mind blown? 🤯",
		ToneInformative:   "Studies show proper inventory management increases profitability by 35% in small businesses.",
	},
	ContextSales: {
		ToneProfessional:  "Data-driven sales insights enable 40% faster business growth and improved decision-making.",
		ToneCasual:        "Finally understand where your money's coming from! Real insights, real growth, real results.",
		TonePromotional:   "Unlock hidden revenue! Our sales tracking reveals opportunities you never knew existed.",
		ToneInspirational: "Knowledge is power, and sales data is your superpower. See your business soar!",
		ToneHumorous:      "Remember when sales tracking meant counting money by hand? Yeah, we don't miss that either! 💸",
		ToneInformative:   "Businesses with proper sales tracking show 40% faster growth than those without systematic monitoring.",
	},
	ContextPayment: {
		ToneProfessional:  "Seamless payment integration increases transaction completion rates by 60% across African markets.",
		ToneCasual:        "Making payments super easy for your customers = more money in your pocket. It's that simple!",
		TonePromotional:   "Double your payment success rate! M-Pesa and Airtel Money integration that actually works.",
		ToneInspirational: "Remove barriers, create opportunities. Smooth payments mean happier customers and growing revenue.",
		ToneHumorous:      "Turns out customers prefer paying easily over jumping through hoops. Shocking discovery! 🤷‍♀️",
		ToneInformative:   "Mobile money integration can increase transaction success rates by 60% in African markets.",
	},
	ContextAI: {
		ToneProfessional:  "AI-powered automation reduces manual tasks by 70% while improving accuracy and efficiency.",
		ToneCasual:        "Let AI handle the boring stuff while you focus on growing your business. It's like having a super assistant!",
		TonePromotional:   "Revolutionary AI that works for YOU! Automate everything and watch your business thrive.",
		ToneInspirational: "The future is here, and it's designed to help African entrepreneurs succeed beyond imagination.",
		ToneHumorous:      "AI that actually helps instead of trying to take over the world. Novel concept! 🤖",
		ToneInformative:   "AI automation can reduce manual business tasks by up to 70% while improving operational accuracy.",
	},
	ContextGrowth: {
		ToneProfessional:  "Integrated business management platforms accelerate growth by providing actionable insights and automation.",
		ToneCasual:        "Everything you need to grow your business, all in one place. No more juggling a dozen different apps!",
		TonePromotional:   "The complete business solution that successful entrepreneurs choose. Join thousands already growing!",
		ToneInspirational: "Your business deserves every tool for success. Comprehensive solutions for unlimited growth.",
		ToneHumorous:      "Business management that doesn't require a PhD in complicated software. Revolutionary! 🎓",
		ToneInformative:   "Comprehensive business platforms typically increase operational efficiency by 50% in the first year.",
	},
	ContextGeneral: {
		ToneProfessional:  "Strategic business solutions designed specifically for the African market's unique challenges and opportunities.",
		ToneCasual:        "Business tools that actually understand the African market. Finally, something built for us!",
		TonePromotional:   "The business solution Africa has been waiting for. See why thousands are making the switch!",
		ToneInspirational: "African businesses deserve world-class tools. Innovation that empowers local entrepreneurship.",
		ToneHumorous:      "Business software that doesn't assume you live in Silicon Valley. What a concept! 🌍",
		ToneInformative:   "Market-specific business solutions show 45% better adoption rates than generic alternatives.",
	},
}

// hooks hold one %s verb for the description.
var hooks = map[Tone][]string{
	ToneProfessional:  {"Introducing: %s", "New breakthrough in %s", "Revolutionary %s solution"},
	ToneCasual:        {"OMG, you need to see this %s!", "Just discovered something amazing about %s", "This %s thing is incredible!"},
	TonePromotional:   {"🚨 EXCLUSIVE: %s offer!", "⚡ LIMITED TIME: %s deal", "💥 BREAKTHROUGH: %s solution"},
	ToneInspirational: {"Transform your approach to %s", "Unlock the power of %s", "Your %s journey starts here"},
	ToneHumorous:      {"Plot twist: %s actually works!", "Breaking: %s doesn't suck!", "Apparently %s is amazing now"},
	ToneInformative:   {"Key insights about %s", "What you need to know about %s", "The science behind %s"},
}

var features = map[Tone][]string{
	ToneProfessional:  {"✅ Advanced analytics", "✅ Seamless integration", "✅ Real-time insights", "✅ Mobile optimization"},
	ToneCasual:        {"🔥 Super easy to use", "💪 Actually works offline", "🌟 Made for African businesses", "🤝 Customer support in local languages"},
	TonePromotional:   {"🎯 50% cost reduction", "⚡ Instant setup", "💎 Premium features included", "🎁 Free onboarding"},
	ToneInspirational: {"🌟 Unlimited potential", "💪 Confidence in decisions", "🚀 Growth acceleration", "✨ Success made simple"},
	ToneHumorous:      {"🤪 No complicated setup", "😂 Actually user-friendly", "🎉 Works as advertised", "🦄 Tech that makes sense"},
	ToneInformative:   {"📊 Data-driven insights", "📈 Measurable results", "🧠 Evidence-based features", "📚 Research-backed approach"},
}

var engagementQuestions = map[Tone]string{
	ToneProfessional:  "What has been your experience with business automation tools?",
	ToneCasual:        "What's the biggest challenge in your business right now?",
	TonePromotional:   "Ready to transform your business operations?",
	ToneInspirational: "What's your biggest business dream for 2025?",
	ToneHumorous:      "Anyone else tired of overly complicated business software?",
	ToneInformative:   "What business metrics do you track most closely?",
}

const detailedAnalysis = "After extensive research across East African markets, we've identified that %s represents a critical growth opportunity for small businesses. Our analysis shows significant impact on operational efficiency and profitability."

var baseHashtags = []string{"#SmallBusiness", "#AfricanTech", "#Entrepreneurs", "#BusinessGrowth"}

var toneHashtags = map[Tone][]string{
	ToneProfessional:  {"#DigitalTransformation", "#BusinessInnovation", "#TechSolutions", "#AIInnovation"},
	ToneCasual:        {"#EntrepreneurLife", "#SmallBizLife", "#BusinessTips", "#StartupLife"},
	TonePromotional:   {"#LimitedOffer", "#BusinessDeal", "#SpecialPrice", "#FlashSale"},
	ToneInspirational: {"#DreamBig", "#SuccessStory", "#Motivation", "#BelieveInYourself"},
	ToneHumorous:      {"#BusinessHumor", "#EntrepreneurMemes", "#StartupLife", "#BusinessReality"},
	ToneInformative:   {"#BusinessEducation", "#LearnBusiness", "#BusinessFacts", "#KnowledgeSharing"},
}

var platformHashtags = map[Platform][]string{
	PlatformInstagram: {"#BusinessInspo", "#AfricanInnovation", "#TechForAfrica", "#MobileFirst"},
	PlatformTwitter:   {"#AfricanStartups", "#TechNews", "#Innovation", "#Business"},
	PlatformLinkedIn:  {"#ProfessionalDevelopment", "#BusinessStrategy", "#Leadership", "#TechForGood"},
}

type contextTag struct {
	keyword string
	tags    []string
}

// contextTags is ordered; description matches are collected before content matches.
var contextTags = []contextTag{
	{"inventory", []string{"#InventoryManagement", "#StockControl"}},
	{"sales", []string{"#SalesTracker", "#Revenue"}},
	{"payment", []string{"#MobileMoney", "#MPesa", "#Payments"}},
	{"ai", []string{"#ArtificialIntelligence", "#Automation"}},
	{"automation", []string{"#ProcessAutomation", "#Efficiency"}},
	{"growth", []string{"#BusinessGrowth", "#Scaling"}},
	{"profit", []string{"#Profitability", "#ROI"}},
	{"management", []string{"#BusinessManagement", "#Operations"}},
	{"tracking", []string{"#Analytics", "#DataDriven"}},
	{"integration", []string{"#SystemIntegration", "#Connectivity"}},
}

// contentKeywords are matched against generated text. Order differs from
// contextTags: automation is checked before ai.
var contentKeywords = []string{"inventory", "sales", "payment", "automation", "ai", "growth", "profit", "management", "tracking", "integration"}

const maxContextTags = 3
