package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"quatview/internal/config"
	"quatview/internal/game"
)

const defaultConfigPath = "quatview.yaml"

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to the YAML config file")
	mode := flag.String("mode", "", "input mode override: manual or presetCycle")
	writeConfig := flag.Bool("write-config", false, "print the effective config and exit")
	flag.Parse()

	explicit := flagSet("config")
	path, err := resolveConfigPath(*configPath, explicit)
	if err != nil {
		log.Fatal(err)
	}

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	cfg, err := config.LoadOrDefault(path, explicit)
	if err != nil {
		log.Fatal(err)
	}
	if *mode != "" {
		cfg.Mode = *mode
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	if *writeConfig {
		if err := cfg.Encode(os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	g, err := game.New(cfg)
	if err != nil {
		log.Fatalf("Game: %v", err)
	}
	g.Run()
}

// flagSet reports whether the named flag was given on the command line.
func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// resolveConfigPath anchors a user-supplied path to the current directory so
// it survives the chdir to the executable. The default path stays relative
// and is looked up next to the executable.
func resolveConfigPath(path string, explicit bool) (string, error) {
	if !explicit {
		return path, nil
	}
	return filepath.Abs(path)
}
