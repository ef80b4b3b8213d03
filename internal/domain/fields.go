package domain

// Record keys. These are the JSON names of ListingRecord fields and the keys
// carried by fragments.
const (
	FieldTitle           = "title"
	FieldApartmentType   = "apartmentType"
	FieldBuildingType    = "buildingType"
	FieldListingCategory = "listingCategory"
	FieldOccupancyType   = "occupancyType"
	FieldYearBuilt       = "yearBuilt"

	FieldCountry                 = "country"
	FieldCity                    = "city"
	FieldStreetAddress           = "streetAddress"
	FieldZipCode                 = "zipCode"
	FieldNearbyAttractions       = "nearbyAttractions"
	FieldNeighborhoodDescription = "neighborhoodDescription"

	FieldBedrooms           = "bedrooms"
	FieldBathrooms          = "bathrooms"
	FieldHasBathroomHalf    = "hasBathroomHalf"
	FieldHasLivingRoom      = "hasLivingRoom"
	FieldLivingRoomSeating  = "livingRoomSeating"
	FieldKitchenType        = "kitchenType"
	FieldHasBalcony         = "hasBalcony"
	FieldBalconyDescription = "balconyDescription"
	FieldTotalSize          = "totalSize"
	FieldSizeUnit           = "sizeUnit"
	FieldFloorNumber        = "floorNumber"
	FieldHasElevator        = "hasElevator"

	FieldMaxGuests       = "maxGuests"
	FieldBeds            = "beds"
	FieldChildrenAllowed = "childrenAllowed"
	FieldPetsAllowed     = "petsAllowed"
	FieldPetNotes        = "petNotes"

	FieldAmenities         = "amenities"
	FieldKitchenAppliances = "kitchenAppliances"
	FieldEntertainment     = "entertainment"
	FieldClimateControl    = "climateControl"
	FieldBuildingAmenities = "buildingAmenities"
	FieldSecurityFeatures  = "securityFeatures"

	FieldListingTitle    = "listingTitle"
	FieldFullDescription = "fullDescription"
	FieldHighlights      = "highlights"
	FieldHostBio         = "hostBio"
	FieldLanguagesSpoken = "languagesSpoken"

	FieldImages = "images"

	FieldBasePrice       = "basePrice"
	FieldCurrency        = "currency"
	FieldCleaningFee     = "cleaningFee"
	FieldSecurityDeposit = "securityDeposit"

	FieldCheckInTime  = "checkInTime"
	FieldCheckOutTime = "checkOutTime"
	FieldHouseRules   = "houseRules"
)

// AmenityCategory is one of the six fixed amenity partitions.
type AmenityCategory string

const (
	AmenityGeneral       AmenityCategory = "general"
	AmenityKitchen       AmenityCategory = "kitchen"
	AmenityEntertainment AmenityCategory = "entertainment"
	AmenityClimate       AmenityCategory = "climate"
	AmenityBuilding      AmenityCategory = "building"
	AmenitySecurity      AmenityCategory = "security"
)

// AmenityCategories lists the categories in display order.
var AmenityCategories = []AmenityCategory{
	AmenityGeneral, AmenityKitchen, AmenityEntertainment,
	AmenityClimate, AmenityBuilding, AmenitySecurity,
}

var amenityFields = map[AmenityCategory]string{
	AmenityGeneral:       FieldAmenities,
	AmenityKitchen:       FieldKitchenAppliances,
	AmenityEntertainment: FieldEntertainment,
	AmenityClimate:       FieldClimateControl,
	AmenityBuilding:      FieldBuildingAmenities,
	AmenitySecurity:      FieldSecurityFeatures,
}

// Field returns the record key holding the category's selections.
func (c AmenityCategory) Field() string {
	return amenityFields[c]
}

// ParseAmenityCategory accepts either the category name or its record key.
func ParseAmenityCategory(s string) (AmenityCategory, bool) {
	for _, c := range AmenityCategories {
		if string(c) == s || amenityFields[c] == s {
			return c, true
		}
	}
	return "", false
}
