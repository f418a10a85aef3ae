package vectra

import "math"

// RunFarmEpidemic runs one farm's daily epidemic update: weather read,
// Erlang-staged recovery/mortality with embedded passive detection,
// midge-to-host transmission, then host-to-midge seeding. Step 6 of the
// day orchestrator, called once per farm in stored order.
func RunFarmEpidemic(state *SimulationState, farm *Farm, gen *Generator) {
	WeatherRead(state, farm, gen)
	DeathsRecoveriesDetection(state, farm, gen)
	MidgeToHost(state, farm, gen)
	HostToMidge(state, farm, gen)
}

// WeatherRead copies today's temperature and rainfall into the farm's
// cache and draws this farm's daily overdispersion term.
func WeatherRead(state *SimulationState, farm *Farm, gen *Generator) {
	farm.TodayTemp = state.Weather.Temp[farm.TempRow][farm.TempCol][state.DayOfYear]
	farm.TodayRain = state.Weather.Rain[farm.RainRow][farm.RainCol][state.DayOfYear]
	farm.TodayOverdispersion = gen.Normal(0, 1) * (1.08 + 0.3763)
}

// clampPoisson draws Poisson(lambda) and clamps it to [0, cap], the
// min(draw, remaining) guard spec.md §7 requires at every RNG-vs-
// population boundary.
func clampPoisson(gen *Generator, lambda, cap float64) float64 {
	if lambda <= 0 || cap <= 0 {
		return 0
	}
	x := float64(gen.Poisson(lambda))
	if x > cap {
		return cap
	}
	return x
}

// DeathsRecoveriesDetection runs the sub-day (dt_farm = 0.1, normative
// per spec.md §9) Erlang recovery/mortality loop for both species, then
// the once-per-day passive detection check.
func DeathsRecoveriesDetection(state *SimulationState, farm *Farm, gen *Generator) {
	const delta = NormativeDTFarm
	steps := int(1.0/delta + 0.5)
	recRateSheep := state.Epi.SheepRecoveryRate
	recRateCattle := state.Epi.CattleRecoveryRate
	mortRate := state.Epi.EffectiveSheepMortRate()

	for i := 0; i < steps; i++ {
		sheepSubStep(state, farm, gen, delta, recRateSheep, mortRate)
		cattleSubStep(state, farm, gen, delta, recRateCattle)
	}
	passiveDetection(state, farm, gen)
}

// sheepSubStep advances the sheep Erlang chain by one sub-day step,
// processing the last stage (recovery then mortality) before earlier
// stages, so an animal that progresses into a stage this step is not
// also recovered/killed out of it in the same step.
func sheepSubStep(state *SimulationState, farm *Farm, gen *Generator, delta, recRate, mortRate float64) {
	comp := &farm.Sheep
	nStages := comp.NumStages
	last := nStages - 1

	rec := clampPoisson(gen, delta*float64(nStages)*recRate*comp.I[last], comp.I[last])
	comp.I[last] -= rec
	comp.R += rec

	died := clampPoisson(gen, delta*mortRate*comp.I[last], comp.I[last])
	comp.I[last] -= died
	state.Daily.SheepDeaths += int(died)
	if died > 0 && !farm.Detected {
		TriggerDetection(state, farm, gen)
	}

	for n := last - 1; n >= 0; n-- {
		prog := clampPoisson(gen, delta*float64(nStages)*recRate*comp.I[n], comp.I[n])
		comp.I[n] -= prog
		comp.I[n+1] += prog

		died := clampPoisson(gen, delta*mortRate*comp.I[n], comp.I[n])
		comp.I[n] -= died
		state.Daily.SheepDeaths += int(died)
		if died > 0 && !farm.Detected {
			TriggerDetection(state, farm, gen)
		}
	}
}

// cattleSubStep advances the cattle Erlang chain by one sub-day step.
// Cattle have no BTV-attributable mortality in this model.
func cattleSubStep(state *SimulationState, farm *Farm, gen *Generator, delta, recRate float64) {
	comp := &farm.Cattle
	nStages := comp.NumStages
	last := nStages - 1

	rec := clampPoisson(gen, delta*float64(nStages)*recRate*comp.I[last], comp.I[last])
	comp.I[last] -= rec
	comp.R += rec

	for n := last - 1; n >= 0; n-- {
		prog := clampPoisson(gen, delta*float64(nStages)*recRate*comp.I[n], comp.I[n])
		comp.I[n] -= prog
		comp.I[n+1] += prog
	}
}

// passiveDetection evaluates the once-per-day clinical detection check
// for farms not already detected by a mortality trigger earlier today.
func passiveDetection(state *SimulationState, farm *Farm, gen *Generator) {
	if farm.Detected {
		return
	}
	c := farm.Cattle.InfectedTotal()
	s := farm.Sheep.InfectedTotal()
	if c <= 0 && s <= 0 {
		return
	}
	pc := state.Epi.DetectionProbCattle
	ps := state.Epi.DetectionProbSheep
	logSurvival := c*math.Log(1-pc) + s*math.Log(1-ps)
	detectProb := 1 - math.Exp(logSurvival)
	if gen.Uniform() < detectProb {
		TriggerDetection(state, farm, gen)
	}
}

// sampleInfections draws the number of newly infected animals out of n
// susceptibles at per-head probability p, using the Poisson
// approximation when it is valid and Binomial otherwise, per spec.md
// §4.6, clamped to n.
func sampleInfections(gen *Generator, n, p float64) int {
	if n <= 0 || p <= 0 {
		return 0
	}
	if n > 100 && p < 0.01 && n*p < 20 {
		x := float64(gen.Poisson(n * p))
		if x > n {
			x = n
		}
		return int(x)
	}
	x := gen.Binomial(int(n), p)
	if float64(x) > n {
		x = int(n)
	}
	return x
}

// MidgeToHost computes the local force of infection from the farm's
// infectious midge density and moves newly infected animals from S into
// I[0] for both species.
func MidgeToHost(state *SimulationState, farm *Farm, gen *Generator) {
	t := farm.TodayTemp
	pBite := 1 - math.Exp(-state.Profile.BitingRate(t))
	infMidge := state.Midge.Inf[farm.MidgeRow][farm.MidgeCol]
	force := state.Epi.RelLocalWeight * infMidge * pBite

	cattleTotal := farm.Cattle.Total()
	sheepTotal := farm.Sheep.Total()
	pref := state.Epi.PreferenceForSheep
	effN := cattleTotal + pref*sheepTotal
	if effN < 1 {
		return
	}
	ph := state.Epi.PH
	pSheep := 1 - math.Exp(-force*pref/effN*ph)
	pCattle := 1 - math.Exp(-force*(1/effN)*ph)

	newSheep := sampleInfections(gen, farm.Sheep.S, pSheep)
	newCattle := sampleInfections(gen, farm.Cattle.S, pCattle)

	farm.Sheep.S -= float64(newSheep)
	farm.Sheep.I[0] += float64(newSheep)
	farm.Cattle.S -= float64(newCattle)
	farm.Cattle.I[0] += float64(newCattle)

	state.Daily.NewInfectionsSheep += newSheep
	state.Daily.NewInfectionsCattle += newCattle
	if newSheep+newCattle > 0 {
		farm.EverBeenInfected = true
	}
}

// HostToMidge deposits new latent midge mass seeded by this farm's
// infected hosts, gated to the active vector season.
func HostToMidge(state *SimulationState, farm *Farm, gen *Generator) {
	doy := state.DayOfYear
	if !(doy > ActiveSeasonStartDay && doy < ActiveSeasonEndDay) {
		return
	}
	d := float64(state.SimulationDay)
	r := farm.Regression
	t := farm.TodayTemp
	c := r.Intercept +
		r.SinYearly*math.Sin(2*math.Pi*d/365.25) + r.CosYearly*math.Cos(2*math.Pi*d/365.25) +
		r.Sin6m*math.Sin(4*math.Pi*d/365.25) + r.Cos6m*math.Cos(4*math.Pi*d/365.25) +
		r.Cos4m*math.Cos(6*math.Pi*d/365.25) +
		r.TempEff*t + r.TempEffSq*t*t +
		farm.TodayOverdispersion + farm.Autocorr

	b := state.Epi.TransmissionScalar * math.Exp(c)
	if b > 5000 {
		b = 5000
	}
	pref := state.Epi.PreferenceForSheep
	effI := farm.Cattle.InfectedTotal() + pref*farm.Sheep.InfectedTotal()
	deposit := state.Epi.PV * effI * b
	state.Midge.Latent[0][farm.MidgeRow][farm.MidgeCol] += deposit
}
