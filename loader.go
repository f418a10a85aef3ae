package vectra

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// ScenarioConfig is the full TOML document a scenario file provides: the
// five RunConfig sections plus the farm roster and movement edge list a
// real deployment would otherwise source from a GIS layer and animal
// movement records. Shipping a loader for this is out of spec.md's
// scope, but the day orchestrator needs something to build a
// SimulationState from end to end.
type ScenarioConfig struct {
	Simulation SimulationConfig `toml:"simulation"`
	Epi        EpiConfig        `toml:"epi"`
	Control    ControlConfig    `toml:"control"`
	Grid       GridConfig       `toml:"grid"`
	Movement   MovementConfig   `toml:"movement"`
	Farms      []FarmSeed       `toml:"farms"`
	Edges      EdgeSeed         `toml:"edges"`
}

// FarmSeed is one row of the farm roster: identity, grid indices, and
// initial host counts.
type FarmSeed struct {
	ID     int     `toml:"id"`
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	County int     `toml:"county"`

	TempRow int `toml:"temp_row"`
	TempCol int `toml:"temp_col"`
	RainRow int `toml:"rain_row"`
	RainCol int `toml:"rain_col"`

	MidgeRow int `toml:"midge_row"`
	MidgeCol int `toml:"midge_col"`

	AutocorrRow int     `toml:"autocorr_row"`
	AutocorrCol int     `toml:"autocorr_col"`
	Autocorr    float64 `toml:"autocorr"`

	InitialSheep  float64 `toml:"initial_sheep"`
	InitialCattle float64 `toml:"initial_cattle"`

	Regression RegressionSeed `toml:"regression"`
}

// RegressionSeed mirrors RegressionCoefficients as a flat TOML table.
type RegressionSeed struct {
	Intercept float64 `toml:"intercept"`
	SinYearly float64 `toml:"sin_yearly"`
	CosYearly float64 `toml:"cos_yearly"`
	Sin6m     float64 `toml:"sin_6m"`
	Cos6m     float64 `toml:"cos_6m"`
	Cos4m     float64 `toml:"cos_4m"`
	TempEff   float64 `toml:"temp_eff"`
	TempEffSq float64 `toml:"temp_eff_sq"`
}

// EdgeSeed is the fixed directed movement network as three parallel
// arrays, matching MovementEdges.
type EdgeSeed struct {
	From []int     `toml:"from"`
	To   []int     `toml:"to"`
	Risk []float64 `toml:"risk"`
}

// LoadScenario parses a scenario TOML file into a ready-to-run
// SimulationState plus the validated RunConfig it was built from. It
// does not seed any weather or diffusion-coefficient raster; callers
// populate state.Weather and state.Midge.Diffusion separately, since
// those are naturally large, externally-sourced grids rather than
// TOML literals.
func LoadScenario(path string) (*SimulationState, *RunConfig, error) {
	var sc ScenarioConfig
	if _, err := toml.DecodeFile(path, &sc); err != nil {
		return nil, nil, errors.Wrapf(err, "loading scenario from %s", path)
	}

	runConf := &RunConfig{
		Simulation: sc.Simulation,
		Epi:        sc.Epi,
		Control:    sc.Control,
		Grid:       sc.Grid,
		Movement:   sc.Movement,
	}
	if err := runConf.Validate(); err != nil {
		return nil, nil, errors.Wrap(err, "validating scenario config")
	}
	if len(sc.Edges.From) != len(sc.Edges.To) || len(sc.Edges.From) != len(sc.Edges.Risk) {
		return nil, nil, errors.New("scenario edges.from/to/risk must have equal length")
	}

	midge := NewMidgeGrid(sc.Grid.MidgeRows, sc.Grid.MidgeCols, sc.Epi.NumEIPStages, sc.Grid.MidgeCellWidth)
	weather := NewWeatherGrid(sc.Grid.WeatherRows, sc.Grid.WeatherCols)
	profile := CulicoidesProfile{}

	state := NewSimulationState(midge, weather, profile, sc.Epi, sc.Control, sc.Movement, sc.Simulation.DT, sc.Simulation.StartDayOfYear)

	for _, fs := range sc.Farms {
		f := NewFarm(fs.ID, fs.X, fs.Y, fs.County, sc.Epi.NumSheepStages, sc.Epi.NumCattleStages, fs.InitialSheep, fs.InitialCattle)
		f.TempRow, f.TempCol = fs.TempRow, fs.TempCol
		f.RainRow, f.RainCol = fs.RainRow, fs.RainCol
		f.MidgeRow, f.MidgeCol = fs.MidgeRow, fs.MidgeCol
		f.AutocorrRow, f.AutocorrCol = fs.AutocorrRow, fs.AutocorrCol
		f.Autocorr = fs.Autocorr
		f.Regression = RegressionCoefficients{
			Intercept: fs.Regression.Intercept,
			SinYearly: fs.Regression.SinYearly,
			CosYearly: fs.Regression.CosYearly,
			Sin6m:     fs.Regression.Sin6m,
			Cos6m:     fs.Regression.Cos6m,
			Cos4m:     fs.Regression.Cos4m,
			TempEff:   fs.Regression.TempEff,
			TempEffSq: fs.Regression.TempEffSq,
		}
		state.AddFarm(f)
	}
	state.Edges = MovementEdges{From: sc.Edges.From, To: sc.Edges.To, Risk: sc.Edges.Risk}

	return state, runConf, nil
}
