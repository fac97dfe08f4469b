package card

import "strings"

// Type is the closed set of cards the resolver can build.
type Type int

const (
	Info Type = iota
	Flights
	Shopping
	Yelp
	Videos
	Images
	Translation
	Conversion
	Chat
	Comparison
	Planning
)

// Types lists every card type in declaration order.
var Types = []Type{Info, Flights, Shopping, Yelp, Videos, Images, Translation, Conversion, Chat, Comparison, Planning}

var tags = map[Type]string{
	Info:        "InfoCard",
	Flights:     "FlightsCard",
	Shopping:    "ShoppingCard",
	Yelp:        "YelpCard",
	Videos:      "Videos",
	Images:      "Images",
	Translation: "Translation",
	Conversion:  "Conversion",
	Chat:        "ChatCard",
	Comparison:  "Comparison",
	Planning:    "PlanningCard",
}

// ShoppingLabel is the only external card name that differs from its tag.
const ShoppingLabel = "ShoppingSearchResults"

// Tag is the name the classifier uses for the card type.
func (t Type) Tag() string {
	if tag, ok := tags[t]; ok {
		return tag
	}
	return tags[Info]
}

// Label is the card_name clients see.
func (t Type) Label() string {
	if t == Shopping {
		return ShoppingLabel
	}
	return t.Tag()
}

func (t Type) String() string {
	return t.Tag()
}

// ParseType maps a classifier tag to a Type. Matching ignores case and
// surrounding space; anything unknown is Info.
func ParseType(tag string) Type {
	tag = strings.TrimSpace(tag)
	for _, t := range Types {
		if strings.EqualFold(tag, t.Tag()) {
			return t
		}
	}
	if strings.EqualFold(tag, ShoppingLabel) {
		return Shopping
	}
	return Info
}
