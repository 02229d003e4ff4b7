package main

import (
	"flag"
	"log"
	"os"

	"github.com/hailam/draughts/internal/config"
	"github.com/hailam/draughts/internal/console"
	"github.com/hailam/draughts/internal/store"
)

var configPath = flag.String("config", "draughts.toml", "path to the engine config file")

func main() {
	flag.Parse()

	cfg := config.Load(*configPath)

	db, err := store.NewStorage()
	if err != nil {
		log.Printf("Warning: preferences/stats unavailable: %v", err)
	} else {
		defer db.Close()
		if prefs, err := db.LoadPreferences(); err != nil {
			log.Printf("Warning: could not load preferences: %v", err)
		} else {
			cfg.ProfileName = prefs.ProfileName
			cfg.Depth = prefs.Depth
			cfg.Simulations = prefs.Simulations
		}
	}

	log.Printf("starting with profile=%s depth=%d simulations=%d", cfg.ProfileName, cfg.Depth, cfg.Simulations)

	c := console.New(os.Stdout, cfg.ProfileName)
	c.Run(os.Stdin)

	if db != nil {
		_ = db.SavePreferences(&store.UserPreferences{
			ProfileName: cfg.ProfileName,
			Depth:       cfg.Depth,
			Simulations: cfg.Simulations,
		})
	}
}
