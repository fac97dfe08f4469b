package screen

import (
	"encoding/json"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Kind tells whether a fragment came from a node's text or its content description.
type Kind string

const (
	KindText        Kind = "text"
	KindDescription Kind = "description"
)

// Fragment is a piece of text pulled out of the UI hierarchy together with the
// structural metadata of the node that carried it.
type Fragment struct {
	Text               string `json:"text"`
	Depth              int    `json:"depth"`
	Kind               Kind   `json:"type"`
	ClassName          string `json:"className"`
	ResourceID         string `json:"resourceId"`
	ContentDescription string `json:"contentDescription"`
	Clickable          bool   `json:"clickable"`
}

type Processor struct {
	Logger *zap.Logger
}

func NewProcessor(logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{Logger: logger}
}

type frame struct {
	node  map[string]any
	depth int
}

// Extract walks the hierarchy found under the "hierarchy" key of raw and returns
// every candidate fragment in depth-first, left-to-right order. Input that is not
// a JSON object with an object root yields nil, and so does input nested beyond
// the decoder's depth limit.
func (p *Processor) Extract(raw string) []Fragment {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	// One decode up front keeps the walk linear in the size of the input.
	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		p.Logger.Warn("screen content is not valid JSON", zap.Int("bytes", len(raw)), zap.Error(err))
		return nil
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		p.Logger.Warn("screen content is not a JSON object")
		return nil
	}
	root, ok := obj["hierarchy"].(map[string]any)
	if !ok {
		p.Logger.Warn("screen content has no hierarchy object")
		return nil
	}

	var fragments []Fragment
	stack := []frame{{node: root, depth: 0}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		fragments = appendNodeFragments(fragments, top.node, top.depth)

		kids, _ := top.node["children"].([]any)
		// Push in reverse so the leftmost child is visited first.
		for i := len(kids) - 1; i >= 0; i-- {
			if child, ok := kids[i].(map[string]any); ok {
				stack = append(stack, frame{node: child, depth: top.depth + 1})
			}
		}
	}

	p.Logger.Debug("extracted screen fragments", zap.Int("count", len(fragments)))
	return fragments
}

func appendNodeFragments(out []Fragment, node map[string]any, depth int) []Fragment {
	attrs, ok := node["attributes"].(map[string]any)
	if !ok {
		return out
	}

	className := stringAttr(attrs, "className")
	resourceID := stringAttr(attrs, "resourceId")
	rawDesc := stringAttr(attrs, "contentDescription")
	clickable := boolAttr(attrs, "clickable")

	text := strings.TrimSpace(stringAttr(attrs, "text"))
	if utf8.RuneCountInString(text) > 1 {
		out = append(out, Fragment{
			Text:               text,
			Depth:              depth,
			Kind:               KindText,
			ClassName:          className,
			ResourceID:         resourceID,
			ContentDescription: rawDesc,
			Clickable:          clickable,
		})
	}

	desc := strings.TrimSpace(rawDesc)
	if utf8.RuneCountInString(desc) > 2 && desc != text {
		out = append(out, Fragment{
			Text:               desc,
			Depth:              depth,
			Kind:               KindDescription,
			ClassName:          className,
			ResourceID:         resourceID,
			ContentDescription: desc,
			Clickable:          clickable,
		})
	}
	return out
}

// stringAttr returns the attribute only when it is a JSON string.
func stringAttr(attrs map[string]any, key string) string {
	s, _ := attrs[key].(string)
	return s
}

// boolAttr accepts a JSON boolean, a boolean string or a non-zero number.
func boolAttr(attrs map[string]any, key string) bool {
	switch v := attrs[key].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(v))
		return b
	case float64:
		return v != 0
	}
	return false
}
