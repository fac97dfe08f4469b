package card

// Data is the typed payload of a resolved card. Only the types in this package
// implement it.
type Data interface {
	CardType() Type
	sealed()
}

// Resolved is the terminal output of a resolution.
type Resolved struct {
	CardID   string `json:"card_id"`
	CardName string `json:"card_name"`
	Data     Data   `json:"data"`
}

type InfoData struct {
	Query string `json:"query"`
}

// FlightSuggestion is an alternative itinerary offered alongside a flights card.
type FlightSuggestion struct {
	DepartureLocation string  `json:"departure_location"`
	ArrivalLocation   string  `json:"arrival_location"`
	TripStartDate     string  `json:"trip_start_date"`
	TripEndDate       *string `json:"trip_end_date"`
	Adults            int     `json:"adults"`
	Children          int     `json:"children"`
	Infants           int     `json:"infants"`
	FlightClass       string  `json:"flight_class"`
	Reason            string  `json:"reason"`
}

type FlightsData struct {
	DepartureLocation string             `json:"departure_location"`
	ArrivalLocation   string             `json:"arrival_location"`
	TripStartDate     string             `json:"trip_start_date"`
	TripEndDate       *string            `json:"trip_end_date"`
	Adults            int                `json:"adults"`
	Children          int                `json:"children"`
	Infants           int                `json:"infants"`
	FlightClass       string             `json:"flight_class"`
	Suggestions       []FlightSuggestion `json:"suggestions"`
}

type ShoppingData struct {
	SearchQuery string  `json:"search_query"`
	Platforms   string  `json:"platforms"`
	Gender      string  `json:"gender"`
	Brands      *string `json:"brands"`
}

type YelpData struct {
	Keyword    string   `json:"keyword"`
	Location   string   `json:"location"`
	Categories []string `json:"categories"`
}

type VideosData struct {
	Topic string `json:"topic"`
}

type ImagesData struct {
	Topic string `json:"topic"`
}

type TranslationData struct {
	InputText      string  `json:"input_text"`
	InputLanguage  string  `json:"input_language"`
	OutputLanguage string  `json:"output_language"`
	OutputText     *string `json:"output_text"`
}

type ConversionData struct {
	InputValue string `json:"input_value"`
	InputUnit  string `json:"input_unit"`
	OutputUnit string `json:"output_unit"`
}

type ChatData struct {
	Query string `json:"query"`
}

type ComparisonData struct {
	Item1 string `json:"item_1"`
	Item2 string `json:"item_2"`
}

type PlanningData struct {
	Query         string `json:"query"`
	ScreenContent string `json:"screen_content"`
}

func (*InfoData) CardType() Type { return Info }
func (*FlightsData) CardType() Type { return Flights }
func (*ShoppingData) CardType() Type { return Shopping }
func (*YelpData) CardType() Type { return Yelp }
func (*VideosData) CardType() Type { return Videos }
func (*ImagesData) CardType() Type { return Images }
func (*TranslationData) CardType() Type { return Translation }
func (*ConversionData) CardType() Type { return Conversion }
func (*ChatData) CardType() Type { return Chat }
func (*ComparisonData) CardType() Type { return Comparison }
func (*PlanningData) CardType() Type { return Planning }

func (*InfoData) sealed() {}
func (*FlightsData) sealed() {}
func (*ShoppingData) sealed() {}
func (*YelpData) sealed() {}
func (*VideosData) sealed() {}
func (*ImagesData) sealed() {}
func (*TranslationData) sealed() {}
func (*ConversionData) sealed() {}
func (*ChatData) sealed() {}
func (*ComparisonData) sealed() {}
func (*PlanningData) sealed() {}
