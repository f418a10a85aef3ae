package vectra

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

// CSVLogger is a DataLogger that writes simulation data as comma-
// delimited files, one per stream, grouped under a shared basepath.
type CSVLogger struct {
	summaryPath   string
	detectionPath string
	movementPath  string
}

// NewCSVLogger creates a new logger that writes data into CSV files.
func NewCSVLogger(basepath string, instance int) *CSVLogger {
	l := new(CSVLogger)
	l.SetBasePath(basepath, instance)
	return l
}

// SetBasePath sets the base path of the logger.
func (l *CSVLogger) SetBasePath(basepath string, instance int) {
	if info, err := os.Stat(basepath); err == nil && info.IsDir() {
		basepath += fmt.Sprintf("log.%03d", instance)
	}
	trimmed := strings.TrimSuffix(basepath, ".")
	l.summaryPath = trimmed + fmt.Sprintf(".%03d.%s.csv", instance, "summary")
	l.detectionPath = trimmed + fmt.Sprintf(".%03d.%s.csv", instance, "detect")
	l.movementPath = trimmed + fmt.Sprintf(".%03d.%s.csv", instance, "movement")
}

// Init creates CSV files and writes header rows for each stream.
func (l *CSVLogger) Init() error {
	newFile := func(path, header string) error {
		return NewFile(path, []byte(header))
	}
	if err := newFile(l.summaryPath, "day,s_sheep,i_sheep,r_sheep,s_cattle,i_cattle,r_cattle,inf_midge,lat_midge,detections,sheep_deaths,new_inf_sheep,new_inf_cattle\n"); err != nil {
		return err
	}
	if err := newFile(l.detectionPath, "day,farmID,recordID\n"); err != nil {
		return err
	}
	if err := newFile(l.movementPath, "day,interrupted,risky_blocked,transmissions\n"); err != nil {
		return err
	}
	return nil
}

// WriteDailySummary appends one row to the summary CSV.
func (l *CSVLogger) WriteDailySummary(rec DailySummaryRecord) error {
	const template = "%d,%f,%f,%f,%f,%f,%f,%f,%f,%d,%d,%d,%d\n"
	var b bytes.Buffer
	b.WriteString(fmt.Sprintf(template,
		rec.Day,
		rec.SusceptibleSheep, rec.InfectiousSheep, rec.RecoveredSheep,
		rec.SusceptibleCattle, rec.InfectiousCattle, rec.RecoveredCattle,
		rec.InfectiousMidgeTotal, rec.LatentMidgeTotal,
		rec.Detections, rec.SheepDeaths, rec.NewInfectionsSheep, rec.NewInfectionsCattle,
	))
	return AppendToFile(l.summaryPath, b.Bytes())
}

// WriteDetection appends one row to the detection CSV.
func (l *CSVLogger) WriteDetection(rec DetectionRecord) error {
	row := fmt.Sprintf("%d,%d,%s\n", rec.Day, rec.FarmID, rec.RecordID.String())
	return AppendToFile(l.detectionPath, []byte(row))
}

// WriteMovement appends one row to the movement CSV.
func (l *CSVLogger) WriteMovement(rec MovementRecord) error {
	row := fmt.Sprintf("%d,%d,%d,%d\n", rec.Day, rec.InterruptedMovements, rec.RiskyMovesBlocked, rec.MovementTransmissions)
	return AppendToFile(l.movementPath, []byte(row))
}

// Close is a no-op for CSVLogger: every write already syncs its file.
func (l *CSVLogger) Close() error { return nil }

// NewFile creates a new file on the given path if it does not exist.
// Returns an error if the file exists.
func NewFile(path string, b []byte) error {
	if exists, _ := Exists(path); exists {
		return fmt.Errorf("%s already exists", path)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(b); err != nil {
		return err
	}
	return f.Sync()
}

// AppendToFile creates a new file on the given path if it does not
// exist, or appends to the end of the existing file if it does.
func AppendToFile(path string, b []byte) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(b); err != nil {
		return err
	}
	return f.Sync()
}
