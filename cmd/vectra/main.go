package main

import (
	"flag"
	"log"
	"time"

	vectra "github.com/SamuelBrand1/vectra"
)

func main() {
	loggerType := flag.String("logger", "csv", "data logger type (csv|sqlite)")
	seedFlag := flag.Int64("seed", time.Now().UTC().UnixNano(), "random seed; defaults to the current Unix time in nanoseconds")
	logPath := flag.String("log", "vectra.log", "base path for logger output files")
	flag.Parse()

	scenarioPath := flag.Arg(0)
	if scenarioPath == "" {
		log.Fatal("usage: vectra [flags] <scenario.toml>")
	}

	_, runConf, err := vectra.LoadScenario(scenarioPath)
	if err != nil {
		log.Fatalf("error loading scenario: %s", err)
	}

	firstStart := time.Now()
	for i := 1; i <= runConf.Simulation.NumReps; i++ {
		state, _, err := vectra.LoadScenario(scenarioPath)
		if err != nil {
			log.Fatalf("error loading scenario: %s", err)
		}

		var logger vectra.DataLogger
		switch *loggerType {
		case "csv":
			logger = vectra.NewCSVLogger(*logPath, i)
		case "sqlite":
			logger = vectra.NewSQLiteLogger(*logPath, i)
		default:
			log.Fatalf("%s is not a valid logger type (csv|sqlite)", *loggerType)
		}
		if err := logger.Init(); err != nil {
			log.Fatalf("error initializing logger: %s", err)
		}

		log.Printf("starting replicate %03d\n", i)
		start := time.Now()
		gen := vectra.NewGenerator(*seedFlag + int64(i))

		for day := 0; day < runConf.Simulation.NumDays; day++ {
			vectra.SimulateDay(state, gen)

			if err := logger.WriteDailySummary(vectra.SummarizeDay(state, i)); err != nil {
				log.Fatalf("error writing daily summary: %s", err)
			}
			if err := logger.WriteMovement(vectra.SummarizeMovement(state, i)); err != nil {
				log.Fatalf("error writing movement counters: %s", err)
			}
		}
		if err := logger.Close(); err != nil {
			log.Fatalf("error closing logger: %s", err)
		}
		log.Printf("finished replicate %03d in %s\n", i, time.Since(start))
	}
	log.Printf("completed all runs in %s.", time.Since(firstStart))
}
