package rank

import "errors"

// ErrNoHotels is returned when selection is attempted over an empty set.
var ErrNoHotels = errors.New("no hotel options available")

// Hotel is a single accommodation option as produced by hotel search.
type Hotel struct {
	Name          string   `json:"name"`
	Rating        *float64 `json:"rating,omitempty"`
	Reviews       int      `json:"reviews,omitempty"`
	PricePerNight float64  `json:"price_per_night"`
	TotalPrice    float64  `json:"total_price,omitempty"`
	Location      string   `json:"location,omitempty"`
	Amenities     []string `json:"amenities,omitempty"`
	Link          string   `json:"link,omitempty"`
}

// HotelRecommendation is the result of hotel selection.
type HotelRecommendation struct {
	SelectedHotel Hotel  `json:"selected_hotel"`
	Justification string `json:"justification"`
}

const hotelJustification = "Chosen hotel provides the best balance of high user rating " +
	"and affordability within the given budget."

// SelectHotel picks the best hotel: highest rating wins, and among
// equally rated hotels the cheaper nightly price wins. A missing rating
// counts as zero. Earlier entries win remaining ties.
func SelectHotel(hotels []Hotel) (*HotelRecommendation, error) {
	if len(hotels) == 0 {
		return nil, ErrNoHotels
	}

	best := 0
	for i := 1; i < len(hotels); i++ {
		if hotelBetter(hotels[i], hotels[best]) {
			best = i
		}
	}

	return &HotelRecommendation{
		SelectedHotel: hotels[best],
		Justification: hotelJustification,
	}, nil
}

func hotelBetter(a, b Hotel) bool {
	ra, rb := ratingOrZero(a), ratingOrZero(b)
	if ra != rb {
		return ra > rb
	}
	return a.PricePerNight < b.PricePerNight
}

func ratingOrZero(h Hotel) float64 {
	if h.Rating == nil {
		return 0
	}
	return *h.Rating
}
