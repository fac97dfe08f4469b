package classifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	ErrNoJSON          = errors.New("no JSON object found in classifier output")
	ErrMissingCardType = errors.New("classifier output has no card_type")
)

// ParseResult pulls the outermost JSON object out of a model reply, which may be
// wrapped in markdown fences or prose, and decodes it field by field.
func ParseResult(reply string) (Result, error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end <= start {
		return Result{}, ErrNoJSON
	}
	body := reply[start : end+1]
	if !gjson.Valid(body) {
		return Result{}, fmt.Errorf("invalid JSON in classifier output: %q", truncate(body, 200))
	}

	doc := gjson.Parse(body)
	cardType := doc.Get("card_type")
	if cardType.Type != gjson.String || strings.TrimSpace(cardType.String()) == "" {
		return Result{}, ErrMissingCardType
	}

	res := Result{
		CardType:  strings.TrimSpace(cardType.String()),
		Reasoning: doc.Get("reasoning").String(),
	}
	if params := doc.Get("parameters"); params.IsObject() {
		if err := json.Unmarshal([]byte(params.Raw), &res.Parameters); err != nil {
			return Result{}, fmt.Errorf("failed to decode parameters: %w", err)
		}
	}
	if res.Parameters == nil {
		res.Parameters = map[string]any{}
	}
	return res, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
