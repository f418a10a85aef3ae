package vectra

import "testing"

func TestCulicoidesProfile_BitingRate_ZeroOutsideRange(t *testing.T) {
	p := CulicoidesProfile{}
	cases := []float64{-10, 3.7, 41.9, 50}
	for _, temp := range cases {
		if r := p.BitingRate(temp); r != 0 {
			t.Errorf(UnequalFloatParameterError, "biting rate outside viable range", 0, r)
		}
	}
}

func TestCulicoidesProfile_BitingRate_PositiveInRange(t *testing.T) {
	p := CulicoidesProfile{}
	if r := p.BitingRate(25); r <= 0 {
		t.Errorf("expected positive biting rate at 25C, got %f", r)
	}
}

func TestCulicoidesProfile_MortalityRate_CappedAtExtremeCold(t *testing.T) {
	p := CulicoidesProfile{}
	if r := p.MortalityRate(-5); r != 100 {
		t.Errorf(UnequalFloatParameterError, "mortality rate below -2C", 100, r)
	}
}

func TestCulicoidesProfile_MortalityRate_Increasing(t *testing.T) {
	p := CulicoidesProfile{}
	low := p.MortalityRate(10)
	high := p.MortalityRate(30)
	if high <= low {
		t.Errorf("expected mortality rate to increase with temperature: at 10C got %f, at 30C got %f", low, high)
	}
}

func TestCulicoidesProfile_IncubationRate_ZeroBelowThreshold(t *testing.T) {
	p := CulicoidesProfile{}
	if r := p.IncubationRate(13.4); r != 0 {
		t.Errorf(UnequalFloatParameterError, "incubation rate at threshold", 0, r)
	}
	if r := p.IncubationRate(5); r != 0 {
		t.Errorf(UnequalFloatParameterError, "incubation rate below threshold", 0, r)
	}
}

func TestCulicoidesProfile_IncubationRate_PositiveAboveThreshold(t *testing.T) {
	p := CulicoidesProfile{}
	if r := p.IncubationRate(25); r <= 0 {
		t.Errorf("expected positive incubation rate at 25C, got %f", r)
	}
}
