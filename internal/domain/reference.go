package domain

// Option is a selectable value with its display label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Currency is a supported pricing currency.
type Currency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// PhotoCategory is an upload slot shown on the media step.
type PhotoCategory struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

var ApartmentTypes = []Option{
	{"studio", "Studio"},
	{"1br", "1 Bedroom"},
	{"2br", "2 Bedroom"},
	{"3br", "3 Bedroom"},
	{"4br", "4+ Bedroom"},
	{"loft", "Loft"},
	{"penthouse", "Penthouse"},
}

var BuildingTypes = []Option{
	{"highrise", "High-rise"},
	{"lowrise", "Low-rise"},
	{"serviced", "Serviced Apartment"},
	{"house", "House"},
	{"townhouse", "Townhouse"},
	{"condo", "Condominium"},
}

var ListingCategories = []Option{
	{"short-term", "Short-Term (1-30 days)"},
	{"long-term", "Long-Term (30+ days)"},
	{"monthly", "Monthly Rental"},
	{"vacation", "Vacation Rental"},
}

var OccupancyTypes = []Option{
	{"entire", "Entire Place"},
	{"private-room", "Private Room"},
	{"shared", "Shared Room"},
}

var KitchenTypes = []Option{
	{"full-private", "Full Private Kitchen"},
	{"shared", "Shared Kitchen"},
	{"kitchenette", "Kitchenette"},
	{"none", "No Kitchen Access"},
}

const (
	SizeUnitSqft   = "sqft"
	SizeUnitMeters = "m²"
)

var SizeUnits = []Option{
	{SizeUnitSqft, "sq ft"},
	{SizeUnitMeters, "m²"},
}

// DefaultBedType is the type of a newly added bed row.
const DefaultBedType = "queen"

var BedTypes = []Option{
	{"king", "King Bed"},
	{"queen", "Queen Bed"},
	{"double", "Double Bed"},
	{"single", "Single Bed"},
	{"sofa-bed", "Sofa Bed"},
	{"bunk", "Bunk Bed"},
	{"futon", "Futon"},
}

// DefaultCurrency is used when pricing has no currency yet.
const DefaultCurrency = "USD"

var Currencies = []Currency{
	{"USD", "US Dollar", "$"},
	{"EUR", "Euro", "€"},
	{"GBP", "British Pound", "£"},
	{"CAD", "Canadian Dollar", "C$"},
	{"AUD", "Australian Dollar", "A$"},
	{"JPY", "Japanese Yen", "¥"},
	{"CHF", "Swiss Franc", "CHF"},
	{"CNY", "Chinese Yuan", "¥"},
}

// FindCurrency looks a currency up by code.
func FindCurrency(code string) (Currency, bool) {
	for _, c := range Currencies {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}

// AmenityCatalogue holds the checkbox choices offered per category.
var AmenityCatalogue = map[AmenityCategory][]string{
	AmenityGeneral: {
		"Free Wi-Fi", "Air Conditioning", "Heating", "Washing Machine", "Dryer",
		"Iron & Ironing Board", "Hair Dryer", "Towels & Linens", "Parking Space",
		"Balcony/Patio", "Garden Access", "Workspace/Desk",
	},
	AmenityKitchen: {
		"Full Kitchen", "Refrigerator", "Microwave", "Oven", "Stovetop",
		"Dishwasher", "Coffee Maker", "Toaster", "Kettle", "Cookware & Utensils",
		"Dining Table", "Basic Pantry Items",
	},
	AmenityEntertainment: {
		"TV", "Cable/Satellite TV", "Netflix", "Streaming Services", "Sound System",
		"Bluetooth Speaker", "Board Games", "Books", "High-Speed Internet",
		"Gaming Console", "DVD Player", "Outdoor Speakers",
	},
	AmenityClimate: {
		"Central Air Conditioning", "Window AC Unit", "Central Heating",
		"Space Heater", "Ceiling Fans", "Portable Fans", "Fireplace",
		"Heated Floors", "Smart Thermostat",
	},
	AmenityBuilding: {
		"Elevator", "Swimming Pool", "Fitness Center/Gym", "Concierge Service",
		"24/7 Front Desk", "Rooftop Access", "Business Center", "Laundry Room",
		"Package Receiving", "Bicycle Storage", "Pet-Friendly Areas", "Playground",
	},
	AmenitySecurity: {
		"Security Cameras (Common Areas)", "Gated Entry", "Doorman", "Security Guard",
		"Keypad Entry", "Smoke Detector", "Carbon Monoxide Detector", "Fire Extinguisher",
		"First Aid Kit", "Safe/Lockbox", "Security System", "Well-Lit Areas",
	},
}

var CommonLanguages = []string{
	"English", "Spanish", "French", "German", "Italian", "Portuguese",
	"Chinese", "Japanese", "Korean", "Arabic", "Russian", "Dutch",
}

var SuggestedHighlights = []string{
	"Prime Location", "Recently Renovated", "High-Speed WiFi", "Great Views",
	"Walking Distance to Metro", "Quiet Neighborhood", "Modern Amenities",
	"Rooftop Access", "Pet-Friendly", "Family-Friendly", "Business Traveler Friendly",
}

var PhotoCategories = []PhotoCategory{
	{"cover", "Cover Photo", "Main photo that guests see first", true},
	{"bedrooms", "Bedroom Photos", "Show all sleeping areas", true},
	{"bathrooms", "Bathroom Photos", "All bathroom facilities", true},
	{"kitchen", "Kitchen & Dining", "Kitchen and eating areas", false},
	{"living", "Living Areas", "Common spaces and seating", false},
	{"exterior", "Building & Views", "Building exterior and views", false},
}

// OnboardingTips are shown on the entry screen.
var OnboardingTips = []string{
	"Take high-quality photos from multiple angles to attract more guests",
	"Write detailed descriptions highlighting unique features and amenities",
	"Set competitive pricing by researching similar properties in your area",
	"Keep your calendar updated to avoid booking conflicts",
	"Respond to inquiries promptly to improve your response rate",
}
