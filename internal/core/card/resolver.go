package card

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultAirport     = "SFO"
	DefaultFlightClass = "ECONOMY"

	suggestedArrival = "LAX"
	suggestedReason  = "Popular destination with many flight options."
)

// YelpCategories is sent with every Yelp card regardless of classifier input.
var YelpCategories = []string{"restaurants", "food", "pub", "pubs"}

// Input carries the request context a resolution may draw defaults from.
type Input struct {
	Query         string
	ScreenContent string
	UserLocation  string
}

// Resolver fills classifier parameters out into complete card payloads.
type Resolver struct {
	Now   func() time.Time
	NewID func() string

	dates *DateNormalizer
}

func NewResolver(logger *zap.Logger) *Resolver {
	r := &Resolver{
		Now: time.Now,
		NewID: func() string {
			return "card-" + uuid.New().String()
		},
	}
	r.dates = NewDateNormalizer(logger)
	r.dates.Now = func() time.Time { return r.Now() }
	return r
}

// Resolve builds a card of type t with a fresh id.
func (r *Resolver) Resolve(t Type, params Params, in Input) Resolved {
	data := r.ResolveData(t, params, in)
	return Resolved{
		CardID:   r.NewID(),
		CardName: data.CardType().Label(),
		Data:     data,
	}
}

// ResolveData applies the defaulting policy of t. Types outside the known set
// resolve as Info.
func (r *Resolver) ResolveData(t Type, p Params, in Input) Data {
	switch t {
	case Info:
		return &InfoData{Query: p.StringOr("query", in.Query)}
	case Flights:
		return r.flights(p, in.UserLocation)
	case Shopping:
		return &ShoppingData{
			SearchQuery: p.StringOr("search_query", "Natural Phone"),
			Platforms:   p.StringOr("platforms", "Amazon"),
			Gender:      p.StringOr("gender", "all_gender"),
			Brands:      p.Optional("brands"),
		}
	case Yelp:
		return &YelpData{
			Keyword:    p.StringOr("keyword", "restaurant"),
			Location:   p.StringOr("location", "San Francisco"),
			Categories: append([]string(nil), YelpCategories...),
		}
	case Videos:
		return &VideosData{Topic: p.StringOr("topic", "Popular")}
	case Images:
		return &ImagesData{Topic: p.StringOr("topic", "Popular")}
	case Translation:
		return &TranslationData{
			InputText:      p.StringOr("input_text", in.Query),
			InputLanguage:  p.StringOr("input_language", "English"),
			OutputLanguage: p.StringOr("output_language", "English"),
			OutputText:     p.Optional("output_text"),
		}
	case Conversion:
		value, ok := p.Scalar("input_value")
		if !ok {
			value = "1"
		}
		return &ConversionData{
			InputValue: value,
			InputUnit:  p.StringOr("input_unit", "USD"),
			OutputUnit: p.StringOr("output_unit", "EUR"),
		}
	case Chat:
		return &ChatData{Query: p.StringOr("query", in.Query)}
	case Comparison:
		return &ComparisonData{
			Item1: p.StringOr("item_1", "iPhone 14"),
			Item2: p.StringOr("item_2", "iPhone 15"),
		}
	case Planning:
		return &PlanningData{Query: in.Query, ScreenContent: in.ScreenContent}
	default:
		return &InfoData{Query: p.StringOr("query", in.Query)}
	}
}

func (r *Resolver) flights(p Params, userLocation string) *FlightsData {
	tomorrow := r.Now().AddDate(0, 0, 1).Format(CanonicalLayout)

	departure, supplied := p.First("departure_location", "departure_airport")
	if !supplied {
		if loc := strings.TrimSpace(userLocation); loc != "" {
			departure, supplied = loc, true
		} else {
			departure = DefaultAirport
		}
	}

	arrival, ok := p.First("arrival_location", "arrival_airport")
	if !ok {
		arrival = DefaultAirport
	}

	data := &FlightsData{
		DepartureLocation: departure,
		ArrivalLocation:   arrival,
		TripStartDate:     r.dates.Normalize(p.StringOr("trip_start_date", tomorrow), tomorrow),
		TripEndDate:       p.Optional("trip_end_date"),
		Adults:            p.Count("adults", 1),
		Children:          p.Count("children", 0),
		Infants:           p.Count("infants", 0),
		FlightClass:       p.StringOr("flight_class", DefaultFlightClass),
		Suggestions:       r.suggestions(p.Objects("suggestions"), tomorrow),
	}

	if !supplied && len(data.Suggestions) == 0 {
		data.Suggestions = []FlightSuggestion{{
			DepartureLocation: DefaultAirport,
			ArrivalLocation:   suggestedArrival,
			TripStartDate:     tomorrow,
			Adults:            1,
			FlightClass:       DefaultFlightClass,
			Reason:            suggestedReason,
		}}
	}
	return data
}

// suggestions keeps classifier-supplied itineraries that name both endpoints.
func (r *Resolver) suggestions(raw []Params, tomorrow string) []FlightSuggestion {
	var out []FlightSuggestion
	for _, s := range raw {
		from, okFrom := s.First("departure_location", "departure_airport")
		to, okTo := s.First("arrival_location", "arrival_airport")
		if !okFrom || !okTo {
			continue
		}
		out = append(out, FlightSuggestion{
			DepartureLocation: from,
			ArrivalLocation:   to,
			TripStartDate:     r.dates.Normalize(s.StringOr("trip_start_date", tomorrow), tomorrow),
			TripEndDate:       s.Optional("trip_end_date"),
			Adults:            s.Count("adults", 1),
			Children:          s.Count("children", 0),
			Infants:           s.Count("infants", 0),
			FlightClass:       s.StringOr("flight_class", DefaultFlightClass),
			Reason:            s.StringOr("reason", ""),
		})
	}
	return out
}
