package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"address-api/internal/config"
	"address-api/internal/geo"
	"address-api/internal/logger"
	"address-api/internal/models"
	"address-api/internal/repository"

	"github.com/jackc/pgx/v5"
)

const expectedColumns = 4

func main() {
	file := flag.String("file", "", "Path to the CSV file to import (latitude,longitude,name,description)")
	configPath := flag.String("config", "configs", "Directory containing app.env")
	flag.Parse()

	log := logger.New("local", "info")

	if *file == "" {
		log.Fatal().Msg("--file flag is required")
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading config")
	}
	log = logger.New(cfg.Environment, cfg.LogLevel)

	log.Info().Str("file", *file).Msg("starting import")

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open file")
	}
	defer f.Close()

	records, err := parseCSV(f)
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing CSV")
	}
	log.Info().Int("records", len(records)).Msg("parsed records")

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer conn.Close(ctx)

	if err := repository.NewRepository(conn).Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("error creating table")
	}

	copied, err := insertRecords(ctx, conn, records)
	if err != nil {
		log.Fatal().Err(err).Msg("error inserting records")
	}

	log.Info().Int64("records", copied).Msg("import finished")
}

// parseCSV reads address rows after a header line. Every row is validated;
// the first invalid row aborts the import.
func parseCSV(r io.Reader) ([]models.Address, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var records []models.Address
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		if len(record) < expectedColumns-1 {
			return nil, fmt.Errorf("line %d: invalid record length %d, expected at least %d columns", line, len(record), expectedColumns-1)
		}

		lat, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid latitude: %s", line, record[0])
		}

		lon, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid longitude: %s", line, record[1])
		}

		addr := models.Address{Latitude: lat, Longitude: lon, Name: strings.TrimSpace(record[2])}
		if err := geo.ValidateCoordinate(addr.Coordinate()); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if addr.Name == "" {
			return nil, fmt.Errorf("line %d: %w", line, models.NewValidationError("name", "is required"))
		}
		if len(record) >= expectedColumns && record[3] != "" {
			description := record[3]
			addr.Description = &description
		}

		records = append(records, addr)
	}

	return records, nil
}

func insertRecords(ctx context.Context, conn *pgx.Conn, records []models.Address) (int64, error) {
	return conn.CopyFrom(
		ctx,
		pgx.Identifier{"address"},
		[]string{"latitude", "longitude", "name", "description"},
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			r := records[i]
			return []any{r.Latitude, r.Longitude, r.Name, r.Description}, nil
		}),
	)
}
