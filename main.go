package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"carousel/internal/config"
	"carousel/internal/eventbus"
	"carousel/internal/logic"
	"carousel/internal/ui"
)

func main() {
	// Parse command line arguments
	var (
		configPath string
		total      int
		perView    int
	)
	flag.StringVar(&configPath, "config", "", "State file to load and save (default $XDG_CONFIG_HOME/carousel/carousel.toml)")
	flag.StringVar(&configPath, "c", "", "State file (shorthand)")
	flag.IntVar(&total, "total", 0, "Override the number of items (resets the index)")
	flag.IntVar(&perView, "per-view", 0, "Override the items shown at once (resets the index)")
	flag.Parse()

	if configPath == "" {
		configPath = config.DefaultPath()
	}

	// Set up logging
	logFile, err := os.OpenFile("carousel.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(bus, configPath)
	cfg, err := loadOrCreateConfig(configSvc, total, perView)
	if err != nil {
		log.Printf("Error loading config: %v", err)
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", configPath, err)
		os.Exit(1)
	}

	store := logic.NewMemoryStateStore(cfg.Carousel.State())
	persister := logic.NewStatePersister(configSvc, cfg, store)
	persister.MarkSaved(cfg.Carousel.State())

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, store, persister)

	watcher, err := config.NewWatcher(configPath)
	if err != nil {
		log.Printf("State file watching disabled: %v", err)
	} else {
		defer watcher.Close()
		uiModel.SetWatcher(watcher)
	}

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Save every move so other viewers and carouselctl see it
	if cfg.UISettings.SaveOnMove {
		bus.Subscribe(eventbus.EventStateChanged, func(e eventbus.DomainEvent) {
			if err := persister.Persist(); err != nil {
				log.Printf("Failed to save state: %v", err)
				p.Send(ui.EventMsg{Event: eventbus.ErrorEvent{Message: "save failed", Err: err}})
			}
		})
	}

	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})

	// Handle termination signals; ctrl+c arrives as a key in raw mode
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		<-sigChan
		p.Quit()
	}()

	log.Printf("Starting UI with %s", configPath)
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}

// loadOrCreateConfig loads the state file, applies command line overrides and
// writes the file back when it is new or was overridden.
func loadOrCreateConfig(configSvc config.ConfigService, total, perView int) (*config.Config, error) {
	_, statErr := os.Stat(configSvc.Path())
	created := errors.Is(statErr, os.ErrNotExist)

	cfg, err := configSvc.Load()
	if err != nil {
		return nil, err
	}

	overridden := false
	if total > 0 {
		cfg.Carousel.ItemsTotal = total
		overridden = true
	}
	if perView > 0 {
		cfg.Carousel.ItemsPerView = perView
		overridden = true
	}
	if overridden {
		cfg.Carousel.CurrentIndex = 0
	}

	if created || overridden {
		if err := configSvc.Save(cfg); err != nil {
			return nil, err
		}
		log.Printf("Wrote state file %s", configSvc.Path())
	} else {
		log.Printf("Loaded config from %s", configSvc.Path())
	}

	return cfg, nil
}
