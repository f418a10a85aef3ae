package vectra

import (
	"math"
	"testing"
)

func TestGenerator_Uniform_Bounds(t *testing.T) {
	gen := NewGenerator(1)
	for i := 0; i < 1000; i++ {
		x := gen.Uniform()
		if x < 0 || x >= 1 {
			t.Fatalf("uniform draw %f out of [0,1)", x)
		}
	}
}

func TestGenerator_Binomial_MeanWithinTolerance(t *testing.T) {
	gen := NewGenerator(2)
	n, p := 1000, 0.3
	const trials = 2000
	total := 0
	for i := 0; i < trials; i++ {
		total += gen.Binomial(n, p)
	}
	mean := float64(total) / float64(trials)
	want := float64(n) * p
	if math.Abs(mean-want) > 5 {
		t.Errorf(UnequalFloatParameterError, "binomial sample mean", want, mean)
	}
}

func TestGenerator_Poisson_MeanWithinTolerance(t *testing.T) {
	gen := NewGenerator(3)
	lambda := 50.0
	const trials = 2000
	total := 0
	for i := 0; i < trials; i++ {
		total += gen.Poisson(lambda)
	}
	mean := float64(total) / float64(trials)
	if math.Abs(mean-lambda) > 3 {
		t.Errorf(UnequalFloatParameterError, "poisson sample mean", lambda, mean)
	}
}

func TestGenerator_Poisson_ZeroLambda(t *testing.T) {
	gen := NewGenerator(4)
	if x := gen.Poisson(0); x != 0 {
		t.Errorf(UnequalIntParameterError, "poisson draw at lambda=0", 0, x)
	}
}

func TestGenerator_Gamma_MeanWithinTolerance(t *testing.T) {
	gen := NewGenerator(5)
	shape, scale := 4.0, 2.0
	const trials = 5000
	total := 0.0
	for i := 0; i < trials; i++ {
		total += gen.Gamma(shape, scale)
	}
	mean := total / float64(trials)
	want := shape * scale
	if math.Abs(mean-want) > 1 {
		t.Errorf(UnequalFloatParameterError, "gamma sample mean", want, mean)
	}
}

func TestGenerator_NegBinomial_NonNegative(t *testing.T) {
	gen := NewGenerator(6)
	for i := 0; i < 500; i++ {
		x := gen.NegBinomial(5, 0.4)
		if x < 0 {
			t.Fatalf("negative binomial draw %d is negative", x)
		}
	}
}

func TestGenerator_NegBinomial_DegenerateParamsReturnZero(t *testing.T) {
	gen := NewGenerator(7)
	cases := []struct {
		k, p float64
	}{
		{0, 0.5},
		{5, 0},
		{5, 1},
	}
	for _, c := range cases {
		if x := gen.NegBinomial(c.k, c.p); x != 0 {
			t.Errorf(UnequalIntParameterError, "negative binomial at degenerate params", 0, x)
		}
	}
}

func TestPoissonPMF_SumsToOne(t *testing.T) {
	lambda := 4.0
	sum := 0.0
	for x := 0; x < 200; x++ {
		sum += PoissonPMF(x, lambda)
	}
	if math.Abs(sum-1) > 1e-6 {
		t.Errorf(UnequalFloatParameterError, "poisson PMF mass sum", 1, sum)
	}
}

func TestPoissonCDF_MatchesSurvivalComplement(t *testing.T) {
	lambda := 7.5
	for x := 0; x < 50; x++ {
		got := PoissonCDF(x, lambda) + PoissonSurvival(x, lambda)
		if math.Abs(got-1) > 1e-9 {
			t.Errorf(UnequalFloatParameterError, "CDF+survival", 1, got)
		}
	}
}

func TestPoissonPMF_ZeroLambda(t *testing.T) {
	if p := PoissonPMF(0, 0); p != 1 {
		t.Errorf(UnequalFloatParameterError, "PMF(0|lambda=0)", 1, p)
	}
	if p := PoissonPMF(1, 0); p != 0 {
		t.Errorf(UnequalFloatParameterError, "PMF(1|lambda=0)", 0, p)
	}
}
