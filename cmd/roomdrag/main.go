package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"roomdrag/internal/config"
	"roomdrag/internal/game"
	"roomdrag/internal/world"

	"go.uber.org/zap"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	configPath := flag.String("config", config.ConfigPath, "path to the YAML config")
	scenePath := flag.String("scene", "", "path to a JSON room layout (overrides scene_path)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "roomdrag: %v\n", err)
		os.Exit(1)
	}
	if *scenePath != "" {
		cfg.ScenePath = *scenePath
	}

	logger, err := game.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "roomdrag: build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	sf := world.DefaultScene()
	if cfg.ScenePath != "" {
		sf, err = world.LoadScene(cfg.ScenePath)
		if err != nil {
			logger.Fatal("load scene", zap.String("path", cfg.ScenePath), zap.Error(err))
		}
	}

	w, err := world.New(sf, cfg.Placement.BoundaryMargin.Vector3(), logger)
	if err != nil {
		logger.Fatal("build scene", zap.Error(err))
	}

	game.New(cfg, w, logger).Run()
}
