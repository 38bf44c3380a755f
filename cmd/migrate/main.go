package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"bagmarket-api/internal/config"
	"bagmarket-api/internal/models"

	"github.com/jackc/pgx/v5"
)

func main() {
	seed := flag.Bool("seed", false, "Insert the default location for the default device id")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	conn, err := pgx.Connect(context.Background(), cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(context.Background())

	if err := createTableIfNotExists(conn); err != nil {
		fmt.Printf("Error creating table: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("location_cache table is ready")

	if *seed {
		if err := seedDefaultLocation(conn, cfg.DefaultDeviceID); err != nil {
			fmt.Printf("Error seeding default location: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Seeded default location for device %q\n", cfg.DefaultDeviceID)
	}
}

func createTableIfNotExists(conn *pgx.Conn) error {
	query := `
	CREATE TABLE IF NOT EXISTS location_cache (
		device_id TEXT PRIMARY KEY,
		payload JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`
	_, err := conn.Exec(context.Background(), query)
	return err
}

func seedDefaultLocation(conn *pgx.Conn, deviceID string) error {
	payload, err := json.Marshal(models.DefaultLocation())
	if err != nil {
		return fmt.Errorf("failed to encode default location: %w", err)
	}

	_, err = conn.Exec(context.Background(),
		`INSERT INTO location_cache (device_id, payload, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (device_id) DO NOTHING`,
		deviceID, payload)
	return err
}
