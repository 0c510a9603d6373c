package impact

import "testing"

func TestHumanPoweredTransportIsFree(t *testing.T) {
	for _, mode := range []TransportMode{TransportCycling, TransportWalking} {
		a := Activity{TransportMode: mode, Distance: 42}
		if got := Daily(a).Transport; got != 0 {
			t.Errorf("%s over 42 km: transport = %v, want 0", mode, got)
		}
	}
}

func TestPublicTransportFactor(t *testing.T) {
	a := Activity{TransportMode: TransportPublicTransport, Distance: 100}
	// 100 km * 0.04 = 4 kg
	if got := Daily(a).Transport; got != 4 {
		t.Errorf("public transport over 100 km: transport = %v, want 4", got)
	}
}

func TestDailyEstimateExample(t *testing.T) {
	a := Activity{
		TransportMode:  TransportCar,
		Distance:       20,
		FuelEfficiency: 10,
		Energy:         300,
		Waste:          2,
		Water:          150,
		Food:           1,
	}
	got := Daily(a)
	want := Estimate{Transport: 5, Energy: 5, Waste: 1, Water: 0, Food: 3, Total: 13}
	if got != want {
		t.Errorf("Daily = %+v, want %+v", got, want)
	}
	// The total is rounded from the raw sum, not summed from rounded
	// categories, so 13 != 5+5+1+0+3 here.
}

func TestWeeklyScalesRawBeforeRounding(t *testing.T) {
	a := Activity{TransportMode: TransportPublicTransport, Distance: 10, Water: 100}
	// transport raw 0.4 -> daily rounds to 0, weekly raw 2.8 rounds to 3
	daily := Daily(a)
	weekly := Weekly(a)
	if daily.Transport != 0 {
		t.Errorf("daily transport = %v, want 0", daily.Transport)
	}
	if weekly.Transport != 3 {
		t.Errorf("weekly transport = %v, want 3", weekly.Transport)
	}
}

func TestMonthlyEnergyUsesMeterReading(t *testing.T) {
	a := Activity{TransportMode: TransportWalking, Energy: 301}
	// 301 kWh * 0.45 = 135.45, rounded once. The daily derivation would give
	// (301*0.45/30)*30 with an extra trip through the prorated value.
	if got := Monthly(a).Energy; got != 135 {
		t.Errorf("monthly energy = %v, want 135", got)
	}
}

func TestMonthlyTotal(t *testing.T) {
	a := Activity{
		TransportMode:  TransportCar,
		Distance:       20,
		FuelEfficiency: 10,
		Energy:         300,
		Waste:          2,
		Water:          150,
		Food:           1,
	}
	got := Monthly(a)
	// raw: transport 4.62*30=138.6, energy 135, waste 30, water 4.5, food 75 -> 383.1
	want := Estimate{Transport: 139, Energy: 135, Waste: 30, Water: 5, Food: 75, Total: 383}
	if got != want {
		t.Errorf("Monthly = %+v, want %+v", got, want)
	}
}

func TestSavingsRequiresOwnedVehicle(t *testing.T) {
	a := Activity{TransportMode: TransportCycling, Distance: 50, OwnsVehicle: false}
	if got := Savings(a); got != 0 {
		t.Errorf("savings without a vehicle = %d, want 0", got)
	}
}

func TestSavingsZeroWhenDriving(t *testing.T) {
	for _, mode := range []TransportMode{TransportCar, TransportMotorbike} {
		a := Activity{TransportMode: mode, Distance: 50, FuelEfficiency: 15, OwnsVehicle: true}
		if got := Savings(a); got != 0 {
			t.Errorf("savings while driving %s = %d, want 0", mode, got)
		}
	}
}

func TestSavingsForGreenCommute(t *testing.T) {
	a := Activity{TransportMode: TransportCycling, Distance: 25, OwnsVehicle: true}
	// (25/12.5)*2.31 = 4.62 -> 5
	if got := Savings(a); got != 5 {
		t.Errorf("cycling savings = %d, want 5", got)
	}

	a.TransportMode = TransportPublicTransport
	// 4.62 - 25*0.04 = 3.62 -> 4
	if got := Savings(a); got != 4 {
		t.Errorf("public transport savings = %d, want 4", got)
	}
}

func TestSavingsClampedAtZero(t *testing.T) {
	// A long public transport ride can exceed the hypothetical short car trip
	// only with distance 0; clamp still holds for the degenerate case.
	a := Activity{TransportMode: TransportPublicTransport, Distance: 0, OwnsVehicle: true}
	if got := Savings(a); got != 0 {
		t.Errorf("zero-distance savings = %d, want 0", got)
	}
}

func TestZeroDistanceZeroTransport(t *testing.T) {
	for _, mode := range []TransportMode{TransportCar, TransportMotorbike, TransportPublicTransport, TransportCycling, TransportWalking} {
		a := Activity{TransportMode: mode, Distance: 0, FuelEfficiency: 12}
		if got := Daily(a).Transport; got != 0 {
			t.Errorf("%s with zero distance: transport = %v, want 0", mode, got)
		}
	}
}

func TestCalculatorIsPure(t *testing.T) {
	a := Activity{
		TransportMode:  TransportMotorbike,
		Distance:       13.5,
		FuelEfficiency: 28,
		Energy:         120,
		Waste:          0.8,
		Water:          90,
		Food:           2,
	}
	first := Daily(a)
	for i := 0; i < 3; i++ {
		if got := Daily(a); got != first {
			t.Fatalf("Daily changed between calls: %+v vs %+v", got, first)
		}
	}
	if Weekly(a) != Weekly(a) || Monthly(a) != Monthly(a) {
		t.Fatal("Weekly/Monthly changed between calls on identical input")
	}
}
