package wizard

// StepID identifies one stage of the wizard.
type StepID string

const (
	StepBasics       StepID = "basics"
	StepLocation     StepID = "location"
	StepLayout       StepID = "layout"
	StepCapacity     StepID = "capacity"
	StepAmenities    StepID = "amenities"
	StepDescriptions StepID = "descriptions"
	StepMedia        StepID = "media"
	StepPricing      StepID = "pricing"
	StepReview       StepID = "review"
)

// Step is a named entry in the fixed step order.
type Step struct {
	ID          StepID `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// DefaultSteps is the listing wizard's step order.
var DefaultSteps = []Step{
	{StepBasics, "Basics", "Apartment info"},
	{StepLocation, "Location", "Address & area"},
	{StepLayout, "Layout", "Rooms & size"},
	{StepCapacity, "Capacity", "Guests & beds"},
	{StepAmenities, "Amenities", "Features"},
	{StepDescriptions, "Description", "Details"},
	{StepMedia, "Photos", "Images"},
	{StepPricing, "Pricing", "Rates & fees"},
	{StepReview, "Review", "Final check"},
}

func indexOf(steps []Step, id StepID) int {
	for i, s := range steps {
		if s.ID == id {
			return i
		}
	}
	return -1
}
