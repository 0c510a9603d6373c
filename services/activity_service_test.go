package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ecostep/impact"
)

func TestValidateActivityAcceptsWellFormedInput(t *testing.T) {
	a := impact.Activity{
		TransportMode:  impact.TransportCar,
		Distance:       20,
		FuelEfficiency: 12,
		Energy:         250,
		Waste:          1.5,
		Water:          120,
		Food:           2,
	}
	assert.NoError(t, ValidateActivity(a))

	a.TransportMode = impact.TransportWalking
	a.FuelEfficiency = 0
	assert.NoError(t, ValidateActivity(a), "fuel efficiency is optional for non-motorized modes")
}

func TestValidateActivityRejectsUnknownMode(t *testing.T) {
	a := impact.Activity{TransportMode: "teleport"}
	assert.ErrorIs(t, ValidateActivity(a), ErrUnknownTransportMode)
}

func TestValidateActivityRequiresFuelEfficiency(t *testing.T) {
	for _, mode := range []impact.TransportMode{impact.TransportCar, impact.TransportMotorbike} {
		a := impact.Activity{TransportMode: mode, Distance: 10}
		assert.ErrorIs(t, ValidateActivity(a), ErrFuelEfficiencyRequired, "mode %s", mode)

		a.FuelEfficiency = -3
		assert.ErrorIs(t, ValidateActivity(a), ErrFuelEfficiencyRequired, "mode %s", mode)
	}
}

func TestValidateActivityRejectsNegativeValues(t *testing.T) {
	base := impact.Activity{TransportMode: impact.TransportCycling}

	for name, mutate := range map[string]func(*impact.Activity){
		"distance": func(a *impact.Activity) { a.Distance = -1 },
		"energy":   func(a *impact.Activity) { a.Energy = -1 },
		"waste":    func(a *impact.Activity) { a.Waste = -0.5 },
		"water":    func(a *impact.Activity) { a.Water = -10 },
		"food":     func(a *impact.Activity) { a.Food = -2 },
	} {
		a := base
		mutate(&a)
		err := ValidateActivity(a)
		assert.ErrorIs(t, err, ErrNegativeValue, "field %s", name)
		assert.ErrorContains(t, err, name)
	}
}
