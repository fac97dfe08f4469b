package classifier

import (
	"context"
	"strings"
	"unicode"
)

type keywordRule struct {
	words  []string
	result func(query string, tokens map[string]bool) Result
}

// KeywordClassifier answers without a model by matching query words against a
// fixed table. It backs the service when no LLM provider is configured.
type KeywordClassifier struct{}

func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

func (KeywordClassifier) Classify(ctx context.Context, in Input) (Result, error) {
	tokens := tokenize(in.Query)
	for _, rule := range keywordRules {
		for _, w := range rule.words {
			if tokens[w] {
				return rule.result(in.Query, tokens), nil
			}
		}
	}
	return Result{
		CardType:   "InfoCard",
		Parameters: map[string]any{"query": in.Query},
		Reasoning:  "General information request",
	}, nil
}

var keywordRules = []keywordRule{
	{
		words: []string{"flight", "fly", "book", "airport", "sfo", "lax"},
		result: func(string, map[string]bool) Result {
			return Result{
				CardType: "FlightsCard",
				Parameters: map[string]any{
					"departure_location": "SFO",
					"arrival_location":   "LAX",
					"adults":             1,
					"children":           0,
					"infants":            0,
					"flight_class":       "ECONOMY",
				},
				Reasoning: "User is looking for flight information",
			}
		},
	},
	{
		words: []string{"buy", "shop", "purchase", "amazon", "iphone", "product"},
		result: func(_ string, tokens map[string]bool) Result {
			search := "smartphone"
			if tokens["iphone"] {
				search = "iPhone"
			}
			return Result{
				CardType:   "ShoppingCard",
				Parameters: map[string]any{"search_query": search, "platforms": "Amazon"},
				Reasoning:  "User wants to shop for products",
			}
		},
	},
	{
		words: []string{"translate", "translation", "chinese", "spanish", "french"},
		result: func(string, map[string]bool) Result {
			return Result{
				CardType: "Translation",
				Parameters: map[string]any{
					"input_text":      "hello",
					"input_language":  "English",
					"output_language": "Chinese",
				},
				Reasoning: "User needs translation services",
			}
		},
	},
	{
		words: []string{"restaurant", "food", "eat", "dining", "yelp"},
		result: func(string, map[string]bool) Result {
			return Result{
				CardType:   "YelpCard",
				Parameters: map[string]any{"keyword": "restaurant", "location": "San Francisco"},
				Reasoning:  "User is looking for restaurants",
			}
		},
	},
	{
		words: []string{"video", "watch", "youtube", "movie"},
		result: func(string, map[string]bool) Result {
			return Result{
				CardType:   "Videos",
				Parameters: map[string]any{"topic": "entertainment"},
				Reasoning:  "User wants to find videos",
			}
		},
	},
	{
		words: []string{"image", "picture", "photo"},
		result: func(string, map[string]bool) Result {
			return Result{
				CardType:   "Images",
				Parameters: map[string]any{"topic": "nature"},
				Reasoning:  "User is looking for images",
			}
		},
	},
	{
		words: []string{"convert", "conversion", "currency", "usd", "eur"},
		result: func(string, map[string]bool) Result {
			return Result{
				CardType:   "Conversion",
				Parameters: map[string]any{"input_value": "100", "input_unit": "USD", "output_unit": "EUR"},
				Reasoning:  "User needs unit conversion",
			}
		},
	},
	{
		words: []string{"chat", "talk", "conversation", "hi", "hello"},
		result: func(query string, _ map[string]bool) Result {
			return Result{
				CardType:   "ChatCard",
				Parameters: map[string]any{"query": query},
				Reasoning:  "User wants to have a conversation",
			}
		},
	},
	{
		words: []string{"compare", "comparison", "vs", "versus"},
		result: func(string, map[string]bool) Result {
			return Result{
				CardType:   "Comparison",
				Parameters: map[string]any{"item_1": "iPhone 14", "item_2": "iPhone 15"},
				Reasoning:  "User wants to compare items",
			}
		},
	},
	{
		words: []string{"plan", "planning", "schedule", "trip", "organize"},
		result: func(query string, _ map[string]bool) Result {
			return Result{
				CardType:   "PlanningCard",
				Parameters: map[string]any{"query": query},
				Reasoning:  "User needs planning assistance",
			}
		},
	},
}

// tokenize lowercases the query and splits it into words. A trailing plural
// "s" is also indexed without it, so "flights" matches "flight".
func tokenize(query string) map[string]bool {
	words := strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := make(map[string]bool, len(words)*2)
	for _, w := range words {
		tokens[w] = true
		if len(w) > 3 && strings.HasSuffix(w, "s") {
			tokens[strings.TrimSuffix(w, "s")] = true
		}
	}
	return tokens
}
