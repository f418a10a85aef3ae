package vectra

// SimulateDay advances the world by exactly one day, running the seven
// fixed pipeline steps in order: zero daily counters, control actions,
// midge mortality/EIP progression, midge diffusion, movement
// transmission, each farm's epidemic update in stored order, then
// advance the clock.
func SimulateDay(state *SimulationState, gen *Generator) {
	state.ZeroDailyCounters()
	RunControl(state, gen)
	ApplyMortalityAndEIP(state.Midge, state.Weather, state.Profile, state.DayOfYear)
	Diffuse(state.Midge, state.DT)
	ApplyMovement(state, gen)
	for _, farm := range state.Farms {
		RunFarmEpidemic(state, farm, gen)
	}
	if state.BTVObserved {
		state.DaysSinceLastDetection++
	}
	state.AdvanceClock()
}

// Run advances the world by n days, returning after the last day's
// clock advance.
func Run(state *SimulationState, gen *Generator, numDays int) {
	for day := 0; day < numDays; day++ {
		SimulateDay(state, gen)
	}
}
