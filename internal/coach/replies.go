package coach

import "strings"

type cannedReply struct {
	keywords []string
	en       string
	sw       string
}

var cannedReplies = []cannedReply{
	{
		keywords: []string{"pricing", "bei"},
		en:       "For pricing: 1) Research competitor prices 2) Calculate your costs + 20-30% profit 3) Consider your product quality. Need more specific help?",
		sw:       "Kuhusu bei: 1) Chunguza bei za washindani 2) Hesabu gharama zako + faida 20-30% 3) Zingatia ubora wa bidhaa yako. Je, unahitaji msaada zaidi?",
	},
	{
		keywords: []string{"marketing", "masoko"},
		en:       `Marketing strategies: 1) Use WhatsApp for customers 2) Put "M-Pesa Accepted" sign 3) Offer loyalty discounts 4) Share quality product photos on social media.`,
		sw:       `Mikakati ya masoko: 1) Tumia WhatsApp kwa wateja 2) Andika kwa mlango wako "M-Pesa Inakubaliwa" 3) Toa punguzo kwa wateja wa kawaida 4) Shiriki picha za bidhaa za ubora social media.`,
	},
	{
		keywords: []string{"inventory", "stock"},
		en:       "Inventory management: 1) Track fast-moving items 2) Set reminders for essential products 3) Build good supplier relationships 4) Analyze past weeks' sales data.",
		sw:       "Usimamizi wa stock: 1) Fuatilia bidhaa zinazoishe haraka 2) Weka alama za kumbuka kwa bidhaa za muhimu 3) Unda uhusiano mzuri na wasambazaji 4) Chunguza data ya mauzo ya wiki zilizopita.",
	},
	{
		keywords: []string{"mpesa", "m-pesa", "malipo"},
		en:       "M-Pesa for business: 1) Open Paybill or Till Number account 2) Display M-Pesa logo prominently 3) Train staff on usage 4) Track all payments for accounting.",
		sw:       "M-Pesa kwa biashara: 1) Fungua akaunti ya Paybill au Till Number 2) Weka nembo ya M-Pesa mahali paonekanapo 3) Fundisha watumishi jinsi ya kutumia 4) Fuatilia malipo yote kwa ukaguzi.",
	},
}

var defaultReply = cannedReply{
	en: "I understand your question. Could you tell me more so I can give you more detailed help?",
	sw: "Nimeelewi swali lako. Je, unaweza kunieleza zaidi ili nikupe msaada wa kina zaidi?",
}

// QuickReply answers from the canned keyword table without a network call.
func QuickReply(query string, lang Language) string {
	q := strings.ToLower(query)

	reply := defaultReply

	for _, r := range cannedReplies {
		if matchesAny(q, r.keywords) {
			reply = r
			break
		}
	}

	if lang == Swahili {
		return reply.sw
	}

	return reply.en
}

func matchesAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}

	return false
}
