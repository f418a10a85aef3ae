package vectra

import "github.com/segmentio/ksuid"

// DataLogger is the general definition of a logger that records
// simulation data to file, whether it writes delimited text or to a
// database. One DataLogger is constructed per replicate.
type DataLogger interface {
	// SetBasePath sets the base path of the logger and the replicate
	// index it is recording, used to derive per-stream file/table names.
	SetBasePath(path string, instance int)
	// Init prepares the logger to receive writes: creating files and
	// writing headers, or creating tables.
	Init() error
	// WriteDailySummary records one day's aggregate farm/vector state.
	WriteDailySummary(rec DailySummaryRecord) error
	// WriteDetection records a single farm detection event.
	WriteDetection(rec DetectionRecord) error
	// WriteMovement records one day's movement-network counters.
	WriteMovement(rec MovementRecord) error
	// Close releases any resources the logger holds open.
	Close() error
}

// DailySummaryRecord is written once per simulated day: the aggregate
// host compartment totals and vector density summed across the farm
// roster and midge grid.
type DailySummaryRecord struct {
	InstanceID int
	Day        int

	SusceptibleSheep  float64
	InfectiousSheep   float64
	RecoveredSheep    float64
	SusceptibleCattle float64
	InfectiousCattle  float64
	RecoveredCattle   float64

	InfectiousMidgeTotal float64
	LatentMidgeTotal     float64

	Detections          int
	SheepDeaths         int
	NewInfectionsSheep  int
	NewInfectionsCattle int
}

// DetectionRecord is written every time a farm is newly detected.
type DetectionRecord struct {
	InstanceID int
	Day        int
	FarmID     int
	RecordID   ksuid.KSUID
}

// MovementRecord is written once per simulated day, summarizing the
// movement network's cumulative counters.
type MovementRecord struct {
	InstanceID            int
	Day                    int
	InterruptedMovements   int
	RiskyMovesBlocked      int
	MovementTransmissions int
}

// SummarizeDay builds this day's DailySummaryRecord from the current
// state, aggregating across every farm and the midge grid.
func SummarizeDay(state *SimulationState, instanceID int) DailySummaryRecord {
	rec := DailySummaryRecord{
		InstanceID:          instanceID,
		Day:                 state.SimulationDay,
		Detections:          state.Daily.Detections,
		SheepDeaths:         state.Daily.SheepDeaths,
		NewInfectionsSheep:  state.Daily.NewInfectionsSheep,
		NewInfectionsCattle: state.Daily.NewInfectionsCattle,
	}
	for _, f := range state.Farms {
		rec.SusceptibleSheep += f.Sheep.S
		rec.InfectiousSheep += f.Sheep.InfectedTotal()
		rec.RecoveredSheep += f.Sheep.R
		rec.SusceptibleCattle += f.Cattle.S
		rec.InfectiousCattle += f.Cattle.InfectedTotal()
		rec.RecoveredCattle += f.Cattle.R
	}
	if state.Midge != nil {
		for i := 0; i < state.Midge.Rows; i++ {
			for j := 0; j < state.Midge.Cols; j++ {
				rec.InfectiousMidgeTotal += state.Midge.Inf[i][j]
				rec.LatentMidgeTotal += state.Midge.LatentTotal(i, j)
			}
		}
	}
	return rec
}

// SummarizeMovement builds this day's MovementRecord from the current
// cumulative movement counters.
func SummarizeMovement(state *SimulationState, instanceID int) MovementRecord {
	return MovementRecord{
		InstanceID:            instanceID,
		Day:                    state.SimulationDay,
		InterruptedMovements:   state.Cumulative.InterruptedMovements,
		RiskyMovesBlocked:      state.Cumulative.RiskyMovesBlocked,
		MovementTransmissions: state.Cumulative.MovementTransmissions,
	}
}
