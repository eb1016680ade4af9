package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"rigmonitor/internal/catalog"
	"rigmonitor/internal/server"
	"rigmonitor/internal/simulation"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: .env file not loaded: %v", err)
	}

	cat := catalog.Default()
	generator := simulation.New(cat, simulation.WithFleetSize(simulation.FleetSizeFromEnv()))
	refresh := simulation.RefreshIntervalFromEnv()
	log.Printf("rig monitor ready; categories=%d fleet=%d refresh=%s", cat.Len(), generator.FleetSize(), refresh)

	router := server.NewRouter(server.Dependencies{
		Catalog:         cat,
		Generator:       generator,
		RefreshInterval: refresh,
	})

	addr := server.AddrFromEnv()
	fmt.Printf("Starting rig monitor dashboard on %s...\n", addr)
	if err := router.Run(addr); err != nil {
		log.Fatal(err)
	}
}
