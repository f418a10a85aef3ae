package vectra

import "testing"

func newTestFarmState() (*SimulationState, *Farm) {
	state := newTestState()
	state.Epi.SheepMortRate = NormativeSheepMortRate
	f := NewFarm(1, 0, 0, 1, 3, 3, 1000, 1000)
	for d := 0; d < 365; d++ {
		state.Weather.Temp[0][0][d] = 22
	}
	state.AddFarm(f)
	return state, f
}

func TestWeatherRead_CachesTodaysValues(t *testing.T) {
	state, f := newTestFarmState()
	gen := NewGenerator(1)

	WeatherRead(state, f, gen)

	if f.TodayTemp != 22 {
		t.Errorf(UnequalFloatParameterError, "cached temperature", 22, f.TodayTemp)
	}
}

func TestDeathsRecoveriesDetection_ConservesSheepPopulation(t *testing.T) {
	state, f := newTestFarmState()
	f.Sheep.I[0] = 300
	f.Sheep.S -= 300
	gen := NewGenerator(7)
	before := f.Sheep.Total()

	DeathsRecoveriesDetection(state, f, gen)

	if f.Sheep.S < 0 || f.Sheep.R < 0 {
		t.Fatalf("negative compartment after sub-day loop: S=%f R=%f", f.Sheep.S, f.Sheep.R)
	}
	after := f.Sheep.Total() + float64(state.Daily.SheepDeaths)
	if before != after {
		t.Errorf(UnequalFloatParameterError, "sheep total plus deaths conserved", before, after)
	}
}

func TestDeathsRecoveriesDetection_CattleNeverDie(t *testing.T) {
	state, f := newTestFarmState()
	f.Cattle.I[0] = 300
	f.Cattle.S -= 300
	gen := NewGenerator(8)
	before := f.Cattle.Total()

	DeathsRecoveriesDetection(state, f, gen)

	after := f.Cattle.Total()
	if before != after {
		t.Errorf(UnequalFloatParameterError, "cattle total conserved with no mortality", before, after)
	}
}

func TestSampleInfections_ZeroWhenNoSusceptibles(t *testing.T) {
	gen := NewGenerator(1)
	if n := sampleInfections(gen, 0, 0.5); n != 0 {
		t.Errorf(UnequalIntParameterError, "infections with zero susceptibles", 0, n)
	}
}

func TestSampleInfections_ClampedToSusceptibleCount(t *testing.T) {
	gen := NewGenerator(1)
	for i := 0; i < 200; i++ {
		n := sampleInfections(gen, 5, 0.9)
		if n > 5 {
			t.Fatalf("sampled %d infections exceeding 5 susceptibles", n)
		}
	}
}

func TestMidgeToHost_NoEffectWithoutInfectiousMidges(t *testing.T) {
	state, f := newTestFarmState()
	gen := NewGenerator(1)
	beforeS := f.Sheep.S

	MidgeToHost(state, f, gen)

	if f.Sheep.S != beforeS {
		t.Errorf(UnequalFloatParameterError, "no new infections without infectious midges", beforeS, f.Sheep.S)
	}
}

func TestMidgeToHost_InfectsFromMidgeDensity(t *testing.T) {
	state, f := newTestFarmState()
	f.TodayTemp = 25
	state.Midge.Inf[f.MidgeRow][f.MidgeCol] = 1e6
	state.Epi.RelLocalWeight = 1
	state.Epi.PH = 1
	gen := NewGenerator(9)

	MidgeToHost(state, f, gen)

	if state.Daily.NewInfectionsSheep == 0 && state.Daily.NewInfectionsCattle == 0 {
		t.Error("expected at least one new infection from a saturating midge density")
	}
}

func TestHostToMidge_SilentOutsideActiveSeason(t *testing.T) {
	state, f := newTestFarmState()
	state.DayOfYear = 10
	f.Cattle.I[0] = 50
	gen := NewGenerator(1)

	HostToMidge(state, f, gen)

	if state.Midge.Latent[0][f.MidgeRow][f.MidgeCol] != 0 {
		t.Errorf(UnequalFloatParameterError, "latent deposit outside active season", 0, state.Midge.Latent[0][f.MidgeRow][f.MidgeCol])
	}
}

func TestHostToMidge_DepositsDuringActiveSeason(t *testing.T) {
	state, f := newTestFarmState()
	state.DayOfYear = 180
	state.SimulationDay = 180
	f.Cattle.I[0] = 50
	state.Epi.TransmissionScalar = 1
	state.Epi.PV = 1
	gen := NewGenerator(1)

	HostToMidge(state, f, gen)

	if state.Midge.Latent[0][f.MidgeRow][f.MidgeCol] <= 0 {
		t.Error("expected a positive latent deposit from infected cattle during the active season")
	}
}
