// Package classify picks a canned fallback for questions the matcher could
// not answer.
package classify

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category constants
const (
	CategoryPersonal        = "personal"
	CategoryMarketData      = "market_data"
	CategoryFinancialAdvice = "financial_advice"
	CategoryGeneral         = "general"
)

// Rule maps a keyword set to a canned response. A rule with no keywords
// matches unconditionally.
type Rule struct {
	Category   string
	Title      string
	Keywords   []string
	Message    string
	ActionText string
	// Review routes the question to an advisor instead of answering it.
	Review bool
}

// Matches reports whether any keyword is a substring of the lower-cased text.
func (r Rule) Matches(text string) bool {
	if len(r.Keywords) == 0 {
		return true
	}
	for _, kw := range r.Keywords {
		kw = lower(kw)
		if kw != "" && strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// Rules is an ordered rule list; the first matching rule wins.
type Rules []Rule

// DefaultRules is the built-in rule list: personal, market data, advice,
// then the general default.
var DefaultRules = Rules{
	{
		Category: CategoryPersonal,
		Title:    "Account and Contact Details",
		Keywords: []string{
			"phone", "email", "address", "contact", "advisor's", "my advisor",
			"social security", "ssn", "date of birth", "birthday", "password",
			"login", "account number", "beneficiary",
		},
		Message:    "Personal and contact details aren't available through the question assistant. You can find them on the account details page or by reaching out to your advisor directly.",
		ActionText: "View Account Details",
	},
	{
		Category: CategoryMarketData,
		Title:    "Market Data",
		Keywords: []string{
			"stock price", "share price", "quote", "ticker", "market today",
			"dow jones", "nasdaq", "bitcoin", "crypto", "interest rates",
			"the fed", "trading at", "market news", "forecast",
		},
		Message:    "Live market data and quotes aren't covered by the question assistant. Check the market data view for current prices and index levels.",
		ActionText: "View Market Data",
	},
	{
		Category: CategoryFinancialAdvice,
		Title:    "Advisor Review",
		Keywords: []string{
			"should i", "should we", "recommend", "buy", "sell", "invest in",
			"advice", "what should", "is it a good time", "worth investing",
			"rebalance my",
		},
		Message: "This question needs personalized advice, so it has been sent to your advisor for review. You'll be notified when they respond.",
		Review:  true,
	},
	{
		Category: CategoryGeneral,
		Title:    "Question Received",
		Message:  "I don't have a ready answer for that yet. Your question has been added to the queue and the team will use it to expand the answers available.",
	},
}

// Classify returns the first rule that matches question. The last rule of a
// well-formed list has no keywords, so a rule is always returned; an empty
// list yields the zero Rule with CategoryGeneral.
func (rs Rules) Classify(question string) Rule {
	text := lower(question)
	for _, r := range rs {
		if r.Matches(text) {
			return r
		}
	}
	return Rule{Category: CategoryGeneral}
}

// Classify runs the default rule list.
func Classify(question string) Rule {
	return DefaultRules.Classify(question)
}

func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
