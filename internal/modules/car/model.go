// README: Car inventory result and its enums.
package car

type Category string

const (
	CategoryEconomy       Category = "Economy"
	CategoryCompact       Category = "Compact"
	CategorySUV           Category = "SUV"
	CategoryLuxury        Category = "Luxury"
	CategoryVan           Category = "Van"
	CategoryMini          Category = "Mini"
	CategoryMidsize       Category = "Midsize"
	CategoryFullsize      Category = "Full-size"
	CategoryPeopleCarrier Category = "People Carrier"
)

type Transmission string

const (
	TransmissionAutomatic Transmission = "Automatic"
	TransmissionManual    Transmission = "Manual"
)

type FuelPolicy string

const (
	FuelFullToFull FuelPolicy = "Full to Full"
	FuelSameToSame FuelPolicy = "Same to Same"
)

type Supplier struct {
	Name    string  `json:"name"`
	LogoURL string  `json:"logoUrl"`
	Rating  float64 `json:"rating"`
}

type Car struct {
	ID               string       `json:"id"`
	Brand            string       `json:"brand"`
	Model            string       `json:"model"`
	Category         Category     `json:"category"`
	NetPrice         float64      `json:"netPrice"`
	FinalPrice       *float64     `json:"finalPrice"`
	Currency         string       `json:"currency"`
	Available        bool         `json:"available"`
	Image            string       `json:"image"`
	Passengers       int          `json:"passengers"`
	Bags             int          `json:"bags"`
	Doors            int          `json:"doors"`
	Transmission     Transmission `json:"transmission"`
	AirCon           bool         `json:"airCon"`
	FuelPolicy       FuelPolicy   `json:"fuelPolicy"`
	UnlimitedMileage bool         `json:"unlimitedMileage"`
	Supplier         Supplier     `json:"supplier"`
	LocationDetail   string       `json:"locationDetail"`
	SIPPCode         string       `json:"sippCode"`
}
