package vectra

// HostCompartment is a per-species SIR state with an Erlang-staged
// infectious chain: susceptible count S, an ordered sequence of I stages
// approximating a gamma-distributed sojourn time, and recovered count R.
// Counts are stored as real-valued but represent whole animals;
// stochastic updates use integer draws clamped to the available count.
type HostCompartment struct {
	NumStages int
	S         float64
	I         []float64
	R         float64
}

// NewHostCompartment creates a compartment with the whole initial
// population susceptible and every infectious stage empty.
func NewHostCompartment(numStages int, initialSusceptible float64) HostCompartment {
	return HostCompartment{
		NumStages: numStages,
		S:         initialSusceptible,
		I:         make([]float64, numStages),
	}
}

// InfectedTotal returns the sum of all Erlang-staged infectious counts.
func (h *HostCompartment) InfectedTotal() float64 {
	total := 0.0
	for _, v := range h.I {
		total += v
	}
	return total
}

// Total returns S + sum(I) + R, the conserved population size.
func (h *HostCompartment) Total() float64 {
	return h.S + h.InfectedTotal() + h.R
}

// RegressionCoefficients parameterizes a farm's climate regression of
// vector-abundance biting rate, per spec.md §4.6's climate regressor.
type RegressionCoefficients struct {
	Intercept float64
	SinYearly float64
	CosYearly float64
	Sin6m     float64
	Cos6m     float64
	Cos4m     float64
	TempEff   float64
	TempEffSq float64
}

// Farm is one livestock holding: identity, cached grid indices, host SIR
// state for two species, a vector-abundance regression, control flags,
// and a per-day weather cache. Farms, once loaded, never change topology;
// only the mutable fields below evolve across the pipeline.
type Farm struct {
	ID     int
	X, Y   float64
	County int

	// Cached indices into the temperature, rainfall, midge, and
	// autocorrelation grids.
	TempRow, TempCol       int
	RainRow, RainCol       int
	MidgeRow, MidgeCol     int
	AutocorrRow, AutocorrCol int

	Sheep  HostCompartment
	Cattle HostCompartment

	Regression RegressionCoefficients
	// Autocorr is the static spatial-autocorrelation noise term, which the
	// loader copies from the farm's own scenario entry (it does not read
	// a grid at AutocorrRow, AutocorrCol); it is added unchanged into the
	// daily climate regressor.
	Autocorr float64

	Detected                   bool
	MovementBanned             bool
	ProtectionZone             bool
	SurveillanceZone           bool
	FreeArea                   bool
	EverBeenDetected           bool
	EverBeenInfected           bool
	FirstInfectedDueToMovement bool

	// LocalFarmIDs lists every other farm within the control engine's ban
	// radius. applyMovementBan fills it the first time this farm triggers
	// a local (radius) ban and never clears it; it stays nil when the
	// farm's detection leads to a county or total ban, or to no farm ban
	// at all (no_farm_ban, no_control).
	LocalFarmIDs []int

	// Today's weather cache, refreshed once per day by the farm epidemic
	// engine's weather-read step.
	TodayTemp           float64
	TodayRain           float64
	TodayWind           float64
	TodayOverdispersion float64
}

// NewFarm creates a Farm with both species fully susceptible and every
// control flag cleared except FreeArea, which starts true.
func NewFarm(id int, x, y float64, county int, sheepStages, cattleStages int, initialSheep, initialCattle float64) *Farm {
	return &Farm{
		ID:       id,
		X:        x,
		Y:        y,
		County:   county,
		Sheep:    NewHostCompartment(sheepStages, initialSheep),
		Cattle:   NewHostCompartment(cattleStages, initialCattle),
		FreeArea: true,
	}
}

// distanceSquared returns the squared Euclidean distance between two
// farms, used throughout the control engine's radius tests.
func distanceSquared(a, b *Farm) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}
