package vectra

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

// SQLiteLogger is a DataLogger that writes simulation data to a single
// SQLite database, one table per stream per replicate.
type SQLiteLogger struct {
	path       string
	instanceID int
	db         *sql.DB
}

// NewSQLiteLogger creates a new logger that writes to a SQLite database.
func NewSQLiteLogger(basepath string, instance int) *SQLiteLogger {
	l := new(SQLiteLogger)
	l.SetBasePath(basepath, instance)
	return l
}

// SetBasePath sets the base path of the logger.
func (l *SQLiteLogger) SetBasePath(basepath string, instance int) {
	if info, err := os.Stat(basepath); err == nil && info.IsDir() {
		basepath += fmt.Sprintf("log.%03d", instance)
	}
	l.path = strings.TrimSuffix(basepath, ".") + ".db"
	l.instanceID = instance
}

func (l *SQLiteLogger) table(name string) string {
	return fmt.Sprintf("%s%03d", name, l.instanceID)
}

// Init opens the database connection and creates this replicate's
// tables.
func (l *SQLiteLogger) Init() error {
	db, err := OpenSQLiteDBOptimized(l.path)
	if err != nil {
		return errors.Wrap(err, "opening sqlite logger")
	}
	l.db = db

	newTable := func(tableName, cols string) error {
		stmt := fmt.Sprintf("create table %s %s; delete from %s;", tableName, cols, tableName)
		_, err := l.db.Exec(stmt)
		if err != nil {
			return errors.Wrapf(err, "creating table %s", tableName)
		}
		return nil
	}
	if err := newTable(l.table("Summary"), "(id integer not null primary key, day int, s_sheep real, i_sheep real, r_sheep real, s_cattle real, i_cattle real, r_cattle real, inf_midge real, lat_midge real, detections int, sheep_deaths int, new_inf_sheep int, new_inf_cattle int)"); err != nil {
		return err
	}
	if err := newTable(l.table("Detection"), "(id integer not null primary key, day int, farmID int, recordID text)"); err != nil {
		return err
	}
	if err := newTable(l.table("Movement"), "(id integer not null primary key, day int, interrupted int, risky_blocked int, transmissions int)"); err != nil {
		return err
	}
	return nil
}

// WriteDailySummary inserts one row into this replicate's summary table.
func (l *SQLiteLogger) WriteDailySummary(rec DailySummaryRecord) error {
	stmt := "insert into " + l.table("Summary") + " (day, s_sheep, i_sheep, r_sheep, s_cattle, i_cattle, r_cattle, inf_midge, lat_midge, detections, sheep_deaths, new_inf_sheep, new_inf_cattle) values(?,?,?,?,?,?,?,?,?,?,?,?,?)"
	_, err := l.db.Exec(stmt,
		rec.Day, rec.SusceptibleSheep, rec.InfectiousSheep, rec.RecoveredSheep,
		rec.SusceptibleCattle, rec.InfectiousCattle, rec.RecoveredCattle,
		rec.InfectiousMidgeTotal, rec.LatentMidgeTotal,
		rec.Detections, rec.SheepDeaths, rec.NewInfectionsSheep, rec.NewInfectionsCattle,
	)
	return errors.Wrap(err, "writing daily summary")
}

// WriteDetection inserts one row into this replicate's detection table.
func (l *SQLiteLogger) WriteDetection(rec DetectionRecord) error {
	stmt := "insert into " + l.table("Detection") + " (day, farmID, recordID) values(?,?,?)"
	_, err := l.db.Exec(stmt, rec.Day, rec.FarmID, rec.RecordID.String())
	return errors.Wrap(err, "writing detection")
}

// WriteMovement inserts one row into this replicate's movement table.
func (l *SQLiteLogger) WriteMovement(rec MovementRecord) error {
	stmt := "insert into " + l.table("Movement") + " (day, interrupted, risky_blocked, transmissions) values(?,?,?,?)"
	_, err := l.db.Exec(stmt, rec.Day, rec.InterruptedMovements, rec.RiskyMovesBlocked, rec.MovementTransmissions)
	return errors.Wrap(err, "writing movement counters")
}

// Close closes the underlying database connection.
func (l *SQLiteLogger) Close() error {
	if l.db == nil {
		return nil
	}
	return l.db.Close()
}

// OpenSQLiteDBOptimized establishes a database connection using WAL and
// exclusive locking.
func OpenSQLiteDBOptimized(path string) (*sql.DB, error) {
	return OpenSQLiteDB(path, "?_journal=WAL&_locking=EXCLUSIVE&_sync=NORMAL")
}

// OpenSQLiteDB establishes a database connection using the given
// connection string.
func OpenSQLiteDB(path, connectionString string) (*sql.DB, error) {
	dsn := "file:%s%s"
	return sql.Open("sqlite3", fmt.Sprintf(dsn, path, connectionString))
}
