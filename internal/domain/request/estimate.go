package request

// Published rate card, in whole USD.
const (
	standardBaseUSD        = 120
	deepBaseUSD            = 180
	perBedroomUSD          = 20
	perBathroomUSD         = 15
	commercialSurchargeUSD = 60
)

const (
	ServiceTypeDeep        = "deep"
	PropertyTypeCommercial = "commercial"
)

// Estimate prices a request deterministically from its inputs. Unknown
// service and property types fall back to the standard residential rates.
func Estimate(serviceType, propertyType string, bedrooms, bathrooms RoomCount) int {
	base := standardBaseUSD
	if serviceType == ServiceTypeDeep {
		base = deepBaseUSD
	}

	total := base + perBedroomUSD*bedrooms.Int() + perBathroomUSD*bathrooms.Int()
	if propertyType == PropertyTypeCommercial {
		total += commercialSurchargeUSD
	}

	return total
}
