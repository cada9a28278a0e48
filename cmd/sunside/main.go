package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/curbz/sunside/internal/airports"
	"github.com/curbz/sunside/internal/api"
	"github.com/curbz/sunside/internal/engine"
	"github.com/curbz/sunside/internal/sunapi"
	"github.com/curbz/sunside/pkg/util"
)

// appConfig is the top-level YAML layout; each section is owned by the
// package it configures.
type appConfig struct {
	Engine   engine.Config `yaml:"engine"`
	Server   api.Config    `yaml:"server"`
	SunAPI   sunapi.Config `yaml:"sun_lookup"`
	Airports struct {
		DataFile string `yaml:"data_file"`
	} `yaml:"airports"`
}

func main() {
	var (
		cfgPath     = flag.String("config", "config.yaml", "path to the YAML configuration file")
		serve       = flag.Bool("serve", false, "run the HTTP API server")
		origin      = flag.String("origin", "", "origin airport code (one-shot mode)")
		destination = flag.String("destination", "", "destination airport code (one-shot mode)")
		departure   = flag.String("departure", "", "departure time, RFC 3339 (defaults to now)")
	)
	flag.Parse()

	cfg := loadConfig(*cfgPath)

	resolver := airports.NewResolver()
	if cfg.Airports.DataFile != "" {
		if err := resolver.LoadFile(cfg.Airports.DataFile); err != nil {
			log.Fatalf("Error loading airports data file: %v", err)
		}
	}

	eng := engine.New(cfg.Engine)

	if *serve {
		runServer(cfg, eng, resolver)
		return
	}

	if *origin == "" || *destination == "" {
		flag.Usage()
		os.Exit(2)
	}
	runOnce(eng, resolver, *origin, *destination, *departure)
}

// loadConfig reads the YAML configuration; a missing file falls back to
// built-in defaults so the one-shot mode works out of the box.
func loadConfig(path string) appConfig {
	cfg, err := util.LoadConfig[appConfig](path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("No configuration file at %s, using defaults", path)
			return appConfig{}
		}
		log.Fatalf("Error reading configuration file: %v", err)
	}
	return *cfg
}

func runServer(cfg appConfig, eng *engine.Engine, resolver *airports.Resolver) {
	addr := cfg.Server.Addr
	if addr == "" {
		addr = ":8080"
	}

	server := api.NewServer(cfg.Server, eng, resolver, sunapi.FromConfig(cfg.SunAPI))
	httpServer := &http.Server{Addr: addr, Handler: server.Handler()}

	go func() {
		log.Printf("Starting HTTP server on %s", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}
	log.Println("Shutdown complete")
}

func runOnce(eng *engine.Engine, resolver *airports.Resolver, originCode, destCode, departureStr string) {
	orig, err := resolver.Resolve(originCode)
	if err != nil {
		log.Fatalf("Origin: %v (known codes: %s)", err, strings.Join(resolver.Codes(), " "))
	}
	dest, err := resolver.Resolve(destCode)
	if err != nil {
		log.Fatalf("Destination: %v (known codes: %s)", err, strings.Join(resolver.Codes(), " "))
	}

	dep := time.Now().UTC()
	if departureStr != "" {
		if dep, err = util.ParseInstant(departureStr); err != nil {
			log.Fatalf("Departure: %v", err)
		}
	}

	data, err := eng.ComputeFlightSunData(orig.Coord, dest.Coord, dep)
	if err != nil {
		log.Fatalf("Computation failed: %v", err)
	}

	fmt.Printf("%s (%s) -> %s (%s)\n", orig.City, orig.Code, dest.City, dest.Code)
	fmt.Printf("  Departure:  %s\n", data.Departure.Format(time.RFC3339))
	fmt.Printf("  Arrival:    %s (%.1f h, %.0f km, bearing %.0f deg)\n",
		data.Arrival.Format(time.RFC3339), data.DurationHours, data.DistanceKm, data.BearingDeg)
	fmt.Printf("  Sunrise:    %s\n", data.Sunrise.Format(time.RFC3339))
	fmt.Printf("  Sunset:     %s\n", data.Sunset.Format(time.RFC3339))
	fmt.Printf("  Sun at departure: azimuth %.1f deg, altitude %.1f deg\n",
		data.DepartureSun.AzimuthDeg, data.DepartureSun.AltitudeDeg)
	fmt.Printf("  Sun at arrival:   azimuth %.1f deg, altitude %.1f deg\n",
		data.ArrivalSun.AzimuthDeg, data.ArrivalSun.AltitudeDeg)
	fmt.Printf("  Scenic side: %s", data.ScenicSide)
	if len(data.Seats) > 0 {
		fmt.Printf(" (window seats %s)", strings.Join(data.Seats, ", "))
	}
	fmt.Println()
}
