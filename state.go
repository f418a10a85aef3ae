package vectra

// MovementEdges is the fixed directed movement network: three parallel
// arrays, iterated in stored order every day by the movement engine.
type MovementEdges struct {
	From []int
	To   []int
	Risk []float64
}

// Len returns the number of edges.
func (e *MovementEdges) Len() int { return len(e.From) }

// DailyCounters are zeroed at the start of every pipeline tick.
type DailyCounters struct {
	Detections          int
	NewInfectionsSheep  int
	NewInfectionsCattle int
	SheepDeaths         int
}

// Reset zeroes every daily counter.
func (d *DailyCounters) Reset() {
	*d = DailyCounters{}
}

// CumulativeCounters accumulate across the whole run.
type CumulativeCounters struct {
	InterruptedMovements  int
	RiskyMovesBlocked     int
	MovementTransmissions int
	Tests                 int
	PositiveTests         int
	FarmsChecked          int
	BanDays               int
}

// SimulationState is the global mutable world the day orchestrator
// advances one day at a time. Farms, grids, and the movement edge list
// are populated once by an external loader before day 0 and do not
// change topology thereafter; only the fields documented as mutable in
// spec.md §3 evolve.
type SimulationState struct {
	SimulationDay int
	DayOfYear    int

	Farms     []*Farm
	farmIndex map[int]int

	Midge    *MidgeGrid
	Weather  *WeatherGrid
	Autocorr [][]float64

	Edges MovementEdges

	Daily      DailyCounters
	Cumulative CumulativeCounters

	BTVObserved                 bool
	FirstDetectedFarmID         int
	RestrictionZonesImplemented bool
	ActiveSurveillancePerformed bool
	DaysSinceLastDetection      int

	Profile  VectorProfile
	Epi      EpiConfig
	Control  ControlConfig
	Movement MovementConfig
	DT       float64
}

// NewSimulationState builds an empty world around the given grids and
// configuration; the loader adds farms with AddFarm and assigns Edges
// before day 0.
func NewSimulationState(midge *MidgeGrid, weather *WeatherGrid, profile VectorProfile, epi EpiConfig, control ControlConfig, movement MovementConfig, dt float64, startDayOfYear int) *SimulationState {
	return &SimulationState{
		DayOfYear: startDayOfYear,
		farmIndex: make(map[int]int),
		Midge:     midge,
		Weather:   weather,
		Profile:   profile,
		Epi:       epi,
		Control:   control,
		Movement:  movement,
		DT:        dt,
	}
}

// AddFarm appends a farm to the roster and indexes it by ID.
func (s *SimulationState) AddFarm(f *Farm) {
	s.farmIndex[f.ID] = len(s.Farms)
	s.Farms = append(s.Farms, f)
}

// FarmByID looks up a farm by its stable ID, returning nil if absent.
func (s *SimulationState) FarmByID(id int) *Farm {
	if i, ok := s.farmIndex[id]; ok {
		return s.Farms[i]
	}
	return nil
}

// ZeroDailyCounters clears the per-day counters; step 1 of the day
// orchestrator.
func (s *SimulationState) ZeroDailyCounters() {
	s.Daily.Reset()
}

// AdvanceClock advances the simulation day by exactly one and recomputes
// day-of-year; step 7 of the day orchestrator.
func (s *SimulationState) AdvanceClock() {
	s.SimulationDay++
	s.DayOfYear = s.SimulationDay % 365
}
