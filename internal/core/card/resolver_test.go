package card

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestResolver() *Resolver {
	r := NewResolver(zap.NewNop())
	r.Now = func() time.Time { return wednesday }
	counter := 0
	r.NewID = func() string {
		counter++
		return fmt.Sprintf("card-%d", counter)
	}
	return r
}

// decode mimics what arrives from the classifier: a JSON object decoded into
// a loosely typed map.
func decode(t *testing.T, raw string) Params {
	t.Helper()
	var p map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	return Params(p)
}

func TestParseType(t *testing.T) {
	assert.Equal(t, Flights, ParseType("FlightsCard"))
	assert.Equal(t, Shopping, ParseType(" shoppingcard "))
	assert.Equal(t, Shopping, ParseType("ShoppingSearchResults"))
	assert.Equal(t, Planning, ParseType("PlanningCard"))
	assert.Equal(t, Info, ParseType("WeatherCard"))
	assert.Equal(t, Info, ParseType(""))
}

func TestLabels(t *testing.T) {
	for _, ct := range Types {
		if ct == Shopping {
			assert.Equal(t, "ShoppingSearchResults", ct.Label())
			continue
		}
		assert.Equal(t, ct.Tag(), ct.Label())
	}
}

func TestResolve_FreshIDAndLabel(t *testing.T) {
	r := newTestResolver()
	a := r.Resolve(Shopping, nil, Input{Query: "buy shoes"})
	b := r.Resolve(Shopping, nil, Input{Query: "buy shoes"})

	assert.NotEqual(t, a.CardID, b.CardID)
	assert.Equal(t, "ShoppingSearchResults", a.CardName)
}

func TestResolve_DefaultIDFormat(t *testing.T) {
	r := NewResolver(zap.NewNop())
	res := r.Resolve(Info, nil, Input{Query: "q"})
	assert.Regexp(t, `^card-[0-9a-f-]{36}$`, res.CardID)
}

func TestResolve_UnknownTypeFallsBackToInfo(t *testing.T) {
	r := newTestResolver()
	res := r.Resolve(Type(99), Params{"query": "from classifier"}, Input{Query: "original"})

	assert.Equal(t, "InfoCard", res.CardName)
	assert.Equal(t, &InfoData{Query: "from classifier"}, res.Data)
}

func TestResolveData_Info(t *testing.T) {
	r := newTestResolver()
	assert.Equal(t, &InfoData{Query: "original"}, r.ResolveData(Info, Params{"query": 7}, Input{Query: "original"}))
	assert.Equal(t, &InfoData{Query: "original"}, r.ResolveData(Info, Params{"query": "  "}, Input{Query: "original"}))
}

func TestResolveData_FlightsDeparture(t *testing.T) {
	r := newTestResolver()

	data := r.ResolveData(Flights, Params{"departure_location": "", "departure_airport": ""}, Input{UserLocation: "JFK"}).(*FlightsData)
	assert.Equal(t, "JFK", data.DepartureLocation)
	assert.Nil(t, data.Suggestions)

	data = r.ResolveData(Flights, Params{"departure_airport": "OAK"}, Input{UserLocation: "JFK"}).(*FlightsData)
	assert.Equal(t, "OAK", data.DepartureLocation)

	data = r.ResolveData(Flights, nil, Input{}).(*FlightsData)
	assert.Equal(t, "SFO", data.DepartureLocation)
}

func TestResolveData_FlightsDefaults(t *testing.T) {
	r := newTestResolver()
	data := r.ResolveData(Flights, Params{"departure_location": "SEA"}, Input{}).(*FlightsData)

	assert.Equal(t, &FlightsData{
		DepartureLocation: "SEA",
		ArrivalLocation:   "SFO",
		TripStartDate:     "2026-10-15 10:30:00",
		Adults:            1,
		FlightClass:       "ECONOMY",
	}, data)
}

func TestResolveData_FlightsFromClassifier(t *testing.T) {
	r := newTestResolver()
	p := decode(t, `{
		"departure_location": "SFO",
		"arrival_airport": "NRT",
		"trip_start_date": "2026-11-02 08:00:00",
		"trip_end_date": "2026-11-12 08:00:00",
		"adults": 2,
		"children": "1",
		"infants": 1.5,
		"flight_class": "BUSINESS"
	}`)
	data := r.ResolveData(Flights, p, Input{}).(*FlightsData)

	assert.Equal(t, "NRT", data.ArrivalLocation)
	assert.Equal(t, "2026-11-02 08:00:00", data.TripStartDate)
	require.NotNil(t, data.TripEndDate)
	assert.Equal(t, "2026-11-12 08:00:00", *data.TripEndDate)
	assert.Equal(t, 2, data.Adults)
	assert.Equal(t, 1, data.Children)
	assert.Equal(t, 0, data.Infants)
	assert.Equal(t, "BUSINESS", data.FlightClass)
}

func TestResolveData_FlightsPastDateFallsBackToTomorrow(t *testing.T) {
	r := newTestResolver()
	data := r.ResolveData(Flights, Params{"trip_start_date": "2020-03-01 00:00:00"}, Input{}).(*FlightsData)
	assert.Equal(t, "2026-10-15 10:30:00", data.TripStartDate)
}

func TestResolveData_FlightsSynthesizedSuggestion(t *testing.T) {
	r := newTestResolver()
	data := r.ResolveData(Flights, Params{"arrival_location": "BOS"}, Input{}).(*FlightsData)

	require.Len(t, data.Suggestions, 1)
	s := data.Suggestions[0]
	assert.Equal(t, "SFO", s.DepartureLocation)
	assert.Equal(t, "LAX", s.ArrivalLocation)
	assert.Equal(t, "2026-10-15 10:30:00", s.TripStartDate)
	assert.Nil(t, s.TripEndDate)
	assert.Equal(t, 1, s.Adults)
	assert.Equal(t, 0, s.Children)
	assert.Equal(t, 0, s.Infants)
	assert.Equal(t, "ECONOMY", s.FlightClass)
	assert.Equal(t, "Popular destination with many flight options.", s.Reason)
}

func TestResolveData_FlightsSuppliedSuggestions(t *testing.T) {
	r := newTestResolver()
	p := decode(t, `{
		"suggestions": [
			{"departure_location": "SJC", "arrival_location": "SEA", "adults": 3, "reason": "cheap"},
			{"departure_location": "SJC"},
			"not an object"
		]
	}`)
	data := r.ResolveData(Flights, p, Input{}).(*FlightsData)

	require.Len(t, data.Suggestions, 1)
	assert.Equal(t, "SJC", data.Suggestions[0].DepartureLocation)
	assert.Equal(t, 3, data.Suggestions[0].Adults)
	assert.Equal(t, "2026-10-15 10:30:00", data.Suggestions[0].TripStartDate)
	assert.Equal(t, "cheap", data.Suggestions[0].Reason)
}

func TestResolveData_Shopping(t *testing.T) {
	r := newTestResolver()
	assert.Equal(t, &ShoppingData{
		SearchQuery: "Natural Phone",
		Platforms:   "Amazon",
		Gender:      "all_gender",
	}, r.ResolveData(Shopping, nil, Input{}))

	brand := "Nike"
	assert.Equal(t, &ShoppingData{
		SearchQuery: "running shoes",
		Platforms:   "Amazon",
		Gender:      "women",
		Brands:      &brand,
	}, r.ResolveData(Shopping, Params{"search_query": "running shoes", "gender": "women", "brands": "Nike"}, Input{}))
}

func TestResolveData_YelpCategoriesFixed(t *testing.T) {
	r := newTestResolver()
	p := decode(t, `{"keyword": "sushi", "categories": ["bars"]}`)
	data := r.ResolveData(Yelp, p, Input{}).(*YelpData)

	assert.Equal(t, "sushi", data.Keyword)
	assert.Equal(t, "San Francisco", data.Location)
	assert.Equal(t, []string{"restaurants", "food", "pub", "pubs"}, data.Categories)

	// Mutating one card must not leak into the next.
	data.Categories[0] = "changed"
	again := r.ResolveData(Yelp, nil, Input{}).(*YelpData)
	assert.Equal(t, "restaurants", again.Categories[0])
}

func TestResolveData_Media(t *testing.T) {
	r := newTestResolver()
	assert.Equal(t, &VideosData{Topic: "Popular"}, r.ResolveData(Videos, nil, Input{}))
	assert.Equal(t, &ImagesData{Topic: "nature"}, r.ResolveData(Images, Params{"topic": "nature"}, Input{}))
}

func TestResolveData_Translation(t *testing.T) {
	r := newTestResolver()
	data := r.ResolveData(Translation, Params{"output_language": "Chinese"}, Input{Query: "translate hello"}).(*TranslationData)

	assert.Equal(t, "translate hello", data.InputText)
	assert.Equal(t, "English", data.InputLanguage)
	assert.Equal(t, "Chinese", data.OutputLanguage)
	assert.Nil(t, data.OutputText)
}

func TestResolveData_Conversion(t *testing.T) {
	r := newTestResolver()
	assert.Equal(t, &ConversionData{InputValue: "1", InputUnit: "USD", OutputUnit: "EUR"}, r.ResolveData(Conversion, nil, Input{}))

	p := decode(t, `{"input_value": 100, "input_unit": "GBP"}`)
	assert.Equal(t, &ConversionData{InputValue: "100", InputUnit: "GBP", OutputUnit: "EUR"}, r.ResolveData(Conversion, p, Input{}))

	p = decode(t, `{"input_value": 2.50}`)
	assert.Equal(t, "2.5", r.ResolveData(Conversion, p, Input{}).(*ConversionData).InputValue)
}

func TestResolveData_ChatAndComparison(t *testing.T) {
	r := newTestResolver()
	assert.Equal(t, &ChatData{Query: "hi there"}, r.ResolveData(Chat, nil, Input{Query: "hi there"}))
	assert.Equal(t, &ComparisonData{Item1: "Pixel 9", Item2: "iPhone 15"}, r.ResolveData(Comparison, Params{"item_1": "Pixel 9"}, Input{}))
}

func TestResolveData_PlanningIgnoresClassifierQuery(t *testing.T) {
	r := newTestResolver()
	data := r.ResolveData(Planning, Params{"query": "rewritten"}, Input{Query: "plan my week", ScreenContent: `{"hierarchy":{}}`})
	assert.Equal(t, &PlanningData{Query: "plan my week", ScreenContent: `{"hierarchy":{}}`}, data)

	data = r.ResolveData(Planning, nil, Input{Query: "plan"})
	assert.Equal(t, "", data.(*PlanningData).ScreenContent)
}

func TestResolved_JSON(t *testing.T) {
	r := newTestResolver()
	res := r.Resolve(Translation, nil, Input{Query: "hola"})

	raw, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"card_id": "card-1",
		"card_name": "Translation",
		"data": {"input_text": "hola", "input_language": "English", "output_language": "English", "output_text": null}
	}`, string(raw))
}
