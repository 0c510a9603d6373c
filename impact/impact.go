package impact

import "math"

const (
	gasolinePerLiter      = 2.31  // kg CO2e per liter burned
	publicTransportPerKm  = 0.04  // kg CO2e per passenger-km (bus/metro average)
	energyPerKWh          = 0.45  // kg CO2e per kWh of grid electricity
	wastePerKg            = 0.5   // kg CO2e per kg of waste
	waterPerLiter         = 0.001 // kg CO2e per liter
	meatPerServing        = 2.5   // kg CO2e per meat serving
	defaultCarEfficiency  = 12.5  // km per liter, approx 8L/100km
	daysPerMonth          = 30
)

// TransportMode identifies how the user got around on a given day.
type TransportMode string

const (
	TransportCar             TransportMode = "car"
	TransportMotorbike       TransportMode = "motorbike"
	TransportPublicTransport TransportMode = "public_transport"
	TransportCycling         TransportMode = "cycling"
	TransportWalking         TransportMode = "walking"
)

// Valid reports whether m is one of the known transport modes.
func (m TransportMode) Valid() bool {
	switch m {
	case TransportCar, TransportMotorbike, TransportPublicTransport, TransportCycling, TransportWalking:
		return true
	}
	return false
}

// Motorized reports whether m burns fuel the user pays for directly.
func (m TransportMode) Motorized() bool {
	return m == TransportCar || m == TransportMotorbike
}

// Activity is one user-submitted snapshot of daily habits. Distance, waste,
// water and food are daily figures; energy is the monthly meter reading.
type Activity struct {
	TransportMode  TransportMode `bson:"transportMode" json:"transportMode"`
	Distance       float64       `bson:"distance" json:"distance"`
	FuelEfficiency float64       `bson:"fuelEfficiency,omitempty" json:"fuelEfficiency,omitempty"`
	OwnsVehicle    bool          `bson:"ownsVehicle" json:"ownsVehicle"`
	Energy         float64       `bson:"energy" json:"energy"`
	Waste          float64       `bson:"waste" json:"waste"`
	Water          float64       `bson:"water" json:"water"`
	Food           float64       `bson:"food" json:"food"`
}

// Estimate holds kg CO2e per category. Total is the sum of the five categories.
type Estimate struct {
	Transport float64 `bson:"transport" json:"transport"`
	Energy    float64 `bson:"energy" json:"energy"`
	Waste     float64 `bson:"waste" json:"waste"`
	Water     float64 `bson:"water" json:"water"`
	Food      float64 `bson:"food" json:"food"`
	Total     float64 `bson:"total" json:"total"`
}

// dailyRaw computes the unrounded one-day estimate. A car or motorbike entry
// with a non-positive fuel efficiency contributes zero transport impact; the
// service layer rejects such records before they get here.
func dailyRaw(a Activity) Estimate {
	var transport float64
	switch a.TransportMode {
	case TransportCar, TransportMotorbike:
		if a.FuelEfficiency > 0 {
			transport = (a.Distance / a.FuelEfficiency) * gasolinePerLiter
		}
	case TransportPublicTransport:
		transport = a.Distance * publicTransportPerKm
	case TransportCycling, TransportWalking:
		transport = 0
	}

	energy := (a.Energy * energyPerKWh) / daysPerMonth // monthly reading prorated to a day
	waste := a.Waste * wastePerKg
	water := a.Water * waterPerLiter
	food := a.Food * meatPerServing

	return Estimate{
		Transport: transport,
		Energy:    energy,
		Waste:     waste,
		Water:     water,
		Food:      food,
		Total:     transport + energy + waste + water + food,
	}
}

// round rounds every field independently. The rounded total can therefore
// drift a kilogram or two from the sum of the rounded categories; that
// matches the numbers users have always seen.
func (e Estimate) round() Estimate {
	return Estimate{
		Transport: math.Round(e.Transport),
		Energy:    math.Round(e.Energy),
		Waste:     math.Round(e.Waste),
		Water:     math.Round(e.Water),
		Food:      math.Round(e.Food),
		Total:     math.Round(e.Total),
	}
}

func (e Estimate) scale(factor float64) Estimate {
	return Estimate{
		Transport: e.Transport * factor,
		Energy:    e.Energy * factor,
		Waste:     e.Waste * factor,
		Water:     e.Water * factor,
		Food:      e.Food * factor,
		Total:     e.Total * factor,
	}
}

// Daily returns the rounded one-day estimate for an activity snapshot.
func Daily(a Activity) Estimate {
	return dailyRaw(a).round()
}

// Weekly scales the raw daily estimate by seven before rounding.
func Weekly(a Activity) Estimate {
	return dailyRaw(a).scale(7).round()
}

// Monthly scales the raw daily estimate by thirty, except energy, which uses
// the original monthly meter reading so it is not approximated twice.
func Monthly(a Activity) Estimate {
	raw := dailyRaw(a)
	transport := raw.Transport * daysPerMonth
	energy := a.Energy * energyPerKWh
	waste := raw.Waste * daysPerMonth
	water := raw.Water * daysPerMonth
	food := raw.Food * daysPerMonth
	return Estimate{
		Transport: transport,
		Energy:    energy,
		Waste:     waste,
		Water:     water,
		Food:      food,
		Total:     transport + energy + waste + water + food,
	}.round()
}

// Savings estimates the kg CO2e avoided by not driving. It compares the
// chosen mode against a hypothetical car at the default efficiency, so it
// only applies when the user owns a vehicle and chose something greener.
func Savings(a Activity) int {
	if !a.OwnsVehicle || a.TransportMode.Motorized() {
		return 0
	}
	hypothetical := (a.Distance / defaultCarEfficiency) * gasolinePerLiter
	saved := hypothetical - dailyRaw(a).Transport
	if saved < 0 {
		saved = 0
	}
	return int(math.Round(saved))
}
