package vectra

import "testing"

func TestSimulateDay_AdvancesClock(t *testing.T) {
	state, _ := newTestFarmState()
	gen := NewGenerator(1)

	SimulateDay(state, gen)

	if state.SimulationDay != 1 {
		t.Errorf(UnequalIntParameterError, "simulation day after one tick", 1, state.SimulationDay)
	}
}

func TestSimulateDay_ZeroesDailyCountersEachTick(t *testing.T) {
	state, _ := newTestFarmState()
	gen := NewGenerator(1)
	state.Daily.Detections = 5

	SimulateDay(state, gen)

	if state.Daily.Detections != 0 {
		t.Errorf(UnequalIntParameterError, "stale detections from prior day", 0, state.Daily.Detections)
	}
}

func TestRun_AdvancesExactlyNDays(t *testing.T) {
	state, _ := newTestFarmState()
	gen := NewGenerator(1)

	Run(state, gen, 10)

	if state.SimulationDay != 10 {
		t.Errorf(UnequalIntParameterError, "simulation day after 10 ticks", 10, state.SimulationDay)
	}
}

func TestSimulateDay_DayOfYearWrapsAtYearBoundary(t *testing.T) {
	state, _ := newTestFarmState()
	state.SimulationDay = 364
	state.DayOfYear = 364
	gen := NewGenerator(1)

	SimulateDay(state, gen)

	if state.DayOfYear != 0 {
		t.Errorf(UnequalIntParameterError, "day of year after wrapping past 365", 0, state.DayOfYear)
	}
}
