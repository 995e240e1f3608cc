// Command assign runs one ride assignment from the roster and distance CSV
// files and a session YAML file, and prints the result as text.
package main

import (
	"carpool-service/internal/adapters/files"
	"carpool-service/internal/config"
	"carpool-service/internal/domain"
	"carpool-service/internal/render"
	"carpool-service/internal/services"
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	rosterPath := flag.String("roster", cfg.RosterPath, "area roster CSV")
	distancesPath := flag.String("distances", cfg.DistancesPath, "distance matrix CSV")
	sessionPath := flag.String("session", "session.yaml", "session YAML (present people, students, drivers)")
	origin := flag.String("origin", "", "origin area (overrides the session file and CARPOOL_ORIGIN)")
	flag.Parse()

	if err := run(*rosterPath, *distancesPath, *sessionPath, *origin, cfg.Origin); err != nil {
		if kind := domain.ErrorKind(err); kind != "" {
			fmt.Fprintf(os.Stderr, "error (%s): %v\n", kind, err)
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(rosterPath, distancesPath, sessionPath, origin, defaultOrigin string) error {
	session, err := files.LoadSessionYAML(sessionPath)
	if err != nil {
		return err
	}

	if origin == "" {
		origin = session.Origin
	}
	if origin == "" {
		origin = defaultOrigin
	}

	matrix, err := files.LoadMatrixCSV(distancesPath)
	if err != nil {
		return err
	}

	req := services.PlanRidesRequest{Origin: origin, Session: session}
	res, err := services.PlanRides(context.Background(), req, files.NewRosterFile(rosterPath), files.NewStaticMatrixProvider(matrix))
	if err != nil {
		return err
	}

	return render.Text(os.Stdout, res)
}
