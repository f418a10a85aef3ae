package vectra

import "testing"

func validSimConfig() SimulationConfig {
	return SimulationConfig{DT: 0.25, NumDays: 100, NumReps: 1, StartDayOfYear: 0, Seed: 1}
}

func validEpiConfig() EpiConfig {
	return EpiConfig{NumSheepStages: 3, NumCattleStages: 3, NumEIPStages: 2}
}

func validControlConfig() ControlConfig {
	return ControlConfig{BanRadius: 1000, PZRadius: 500, SZRadius: 2000, RestrictionZones: true}
}

func validGridConfig() GridConfig {
	return GridConfig{MidgeCellWidth: 1000, MidgeRows: 10, MidgeCols: 10, WeatherRows: 5, WeatherCols: 5}
}

func validMovementConfig() MovementConfig {
	return MovementConfig{SheepShipmentK: 2, SheepShipmentP: 0.5, CattleShipmentK: 2, CattleShipmentP: 0.5}
}

func TestSimulationConfig_Validate_RejectsNonPositiveDT(t *testing.T) {
	c := validSimConfig()
	c.DT = 0
	if err := c.Validate(); err == nil {
		t.Error("expected an error for dt=0")
	}
}

func TestSimulationConfig_Validate_AcceptsValidConfig(t *testing.T) {
	c := validSimConfig()
	if err := c.Validate(); err != nil {
		t.Errorf("expected no error, got %s", err)
	}
}

func TestEpiConfig_Validate_RejectsStageCountAboveMax(t *testing.T) {
	c := validEpiConfig()
	c.NumSheepStages = MaxErlangStages + 1
	if err := c.Validate(); err == nil {
		t.Error("expected an error for sheep stage count above the static maximum")
	}
}

func TestEpiConfig_EffectiveSheepMortRate_IgnoresConfiguredValue(t *testing.T) {
	c := validEpiConfig()
	c.SheepMortRate = 0.5
	if got := c.EffectiveSheepMortRate(); got != NormativeSheepMortRate {
		t.Errorf(UnequalFloatParameterError, "effective sheep mortality rate", NormativeSheepMortRate, got)
	}
}

func TestControlConfig_Validate_RejectsInvertedZoneRadii(t *testing.T) {
	c := validControlConfig()
	c.SZRadius = 100
	c.PZRadius = 500
	if err := c.Validate(); err == nil {
		t.Error("expected an error when sz_radius < pz_radius with restriction_zones enabled")
	}
}

func TestGridConfig_Validate_RejectsMismatchedGridRatio(t *testing.T) {
	c := validGridConfig()
	c.MidgeRows = 11
	if err := c.Validate(); err == nil {
		t.Error("expected an error when midge_rows is not a multiple of weather_rows")
	}
}

func TestGridConfig_Validate_RejectsUnequalRowColStride(t *testing.T) {
	c := validGridConfig()
	c.MidgeRows, c.WeatherRows = 20, 10
	c.MidgeCols, c.WeatherCols = 12, 3
	if err := c.Validate(); err == nil {
		t.Error("expected an error when the row stride and column stride differ")
	}
}

func TestEpiConfig_Validate_RejectsOutOfRangeDetectionProbabilities(t *testing.T) {
	c := validEpiConfig()
	c.DetectionProbCattle = 1.2
	if err := c.Validate(); err == nil {
		t.Error("expected an error for detection_prob_cattle outside [0,1)")
	}
}

func TestEpiConfig_Validate_RejectsOutOfRangePV(t *testing.T) {
	c := validEpiConfig()
	c.PV = -0.1
	if err := c.Validate(); err == nil {
		t.Error("expected an error for p_v outside [0,1]")
	}
}

func TestMovementConfig_Validate_RejectsOutOfRangeP(t *testing.T) {
	c := validMovementConfig()
	c.SheepShipmentP = 1.5
	if err := c.Validate(); err == nil {
		t.Error("expected an error for shipment_p outside (0,1)")
	}
}

func TestRunConfig_Validate_AllSectionsValid(t *testing.T) {
	c := RunConfig{
		Simulation: validSimConfig(),
		Epi:        validEpiConfig(),
		Control:    validControlConfig(),
		Grid:       validGridConfig(),
		Movement:   validMovementConfig(),
	}
	if err := c.Validate(); err != nil {
		t.Errorf("expected a fully valid RunConfig to pass, got %s", err)
	}
}

func TestRunConfig_Validate_PropagatesSectionError(t *testing.T) {
	c := RunConfig{
		Simulation: validSimConfig(),
		Epi:        validEpiConfig(),
		Control:    validControlConfig(),
		Grid:       validGridConfig(),
		Movement:   validMovementConfig(),
	}
	c.Grid.MidgeCellWidth = -1
	if err := c.Validate(); err == nil {
		t.Error("expected an invalid grid config to fail RunConfig.Validate")
	}
}
