// README: Car service serves the mock fleet until supplier feeds land.
package car

type Service struct{}

func NewService() *Service {
	return &Service{}
}

func floatPtr(v float64) *float64 { return &v }

var fleet = []Car{
	{
		ID: "c1", Brand: "Toyota", Model: "Corolla", Category: CategoryCompact,
		NetPrice: 45.0, FinalPrice: floatPtr(55.0), Currency: "USD", Available: true,
		Image:      "https://images.unsplash.com/photo-1590362891991-f776e747a588?q=80&w=2069&auto=format&fit=crop",
		Passengers: 5, Bags: 2, Doors: 4,
		Transmission: TransmissionAutomatic, AirCon: true,
		FuelPolicy: FuelFullToFull, UnlimitedMileage: true,
		Supplier: Supplier{
			Name:    "Alamo",
			LogoURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/0/03/Alamo_Rent_A_Car_logo.svg/2560px-Alamo_Rent_A_Car_logo.svg.png",
			Rating:  4.8,
		},
		LocationDetail: "In Terminal - Main Arrivals Hall", SIPPCode: "CDAR",
	},
	{
		ID: "c2", Brand: "Ford", Model: "Mustang Convertible", Category: CategoryLuxury,
		NetPrice: 80.0, FinalPrice: floatPtr(95.0), Currency: "USD", Available: true,
		Image:      "https://images.unsplash.com/photo-1584345604476-8ec5e12e42dd?q=80&w=2070&auto=format&fit=crop",
		Passengers: 4, Bags: 2, Doors: 2,
		Transmission: TransmissionAutomatic, AirCon: true,
		FuelPolicy: FuelFullToFull, UnlimitedMileage: false,
		Supplier: Supplier{
			Name:    "Hertz",
			LogoURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/c/ce/Hertz_logo.svg/2560px-Hertz_logo.svg.png",
			Rating:  4.5,
		},
		LocationDetail: "Meet & Greet Service", SIPPCode: "STAR",
	},
	{
		ID: "c3", Brand: "Jeep", Model: "Wrangler", Category: CategorySUV,
		NetPrice: 75.0, FinalPrice: nil, Currency: "USD", Available: true,
		Image:      "https://images.unsplash.com/photo-1533473359331-0135ef1b58bf?q=80&w=2070&auto=format&fit=crop",
		Passengers: 5, Bags: 3, Doors: 4,
		Transmission: TransmissionAutomatic, AirCon: true,
		FuelPolicy: FuelFullToFull, UnlimitedMileage: true,
		Supplier: Supplier{
			Name:    "Alamo",
			LogoURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/0/03/Alamo_Rent_A_Car_logo.svg/2560px-Alamo_Rent_A_Car_logo.svg.png",
			Rating:  4.8,
		},
		LocationDetail: "Shuttle Bus to Depot", SIPPCode: "SFAR",
	},
	{
		ID: "c4", Brand: "Fiat", Model: "500", Category: CategoryMini,
		NetPrice: 30.0, FinalPrice: floatPtr(35.0), Currency: "USD", Available: true,
		Image:      "https://images.unsplash.com/photo-1549317661-bd32c8ce0db2?q=80&w=2070&auto=format&fit=crop",
		Passengers: 4, Bags: 1, Doors: 2,
		Transmission: TransmissionManual, AirCon: true,
		FuelPolicy: FuelSameToSame, UnlimitedMileage: false,
		Supplier: Supplier{
			Name:    "Europcar",
			LogoURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/c/c2/Europcar_Logo.svg/2560px-Europcar_Logo.svg.png",
			Rating:  4.4,
		},
		LocationDetail: "In Terminal - Counter in T2", SIPPCode: "MBMR",
	},
}

// Search returns the available inventory. The fleet is static for now;
// the signature leaves room for real supplier filtering later.
func (s *Service) Search() []Car {
	out := make([]Car, len(fleet))
	copy(out, fleet)
	return out
}
