package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"typeahead/internal/config"
	"typeahead/internal/eventbus"
	"typeahead/internal/logger"
	"typeahead/internal/source"
	"typeahead/internal/ui"
)

// flags holds command line overrides. Only flags that were set override
// the config file.
type flags struct {
	configPath  string
	sourceKind  string
	dictionary  string
	placeholder string
	query       string
	latency     time.Duration
	debug       bool
}

func parseFlags() (*flags, map[string]bool) {
	f := &flags{}
	flag.StringVar(&f.configPath, "config", "", "Path to the config file (default: "+config.DefaultPath()+")")
	flag.StringVar(&f.sourceKind, "source", "", "Suggestion source: static, prefix or fuzzy")
	flag.StringVar(&f.dictionary, "dict", "", "Word list to suggest from (.txt, or .msgpack/.mpk)")
	flag.StringVar(&f.placeholder, "placeholder", "", "Placeholder shown in the empty field")
	flag.StringVar(&f.query, "query", "", "Initial query")
	flag.DurationVar(&f.latency, "latency", 0, "Simulated lookup latency, e.g. 300ms")
	flag.BoolVar(&f.debug, "debug", false, "Log at debug level")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags]\n\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "Interactive search suggestions. The chosen value is printed to stdout on exit.")
		fmt.Fprintln(flag.CommandLine.Output())
		flag.PrintDefaults()
	}
	flag.Parse()

	set := map[string]bool{}
	flag.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	return f, set
}

// apply copies the flags that were set onto cfg
func (f *flags) apply(cfg *config.Config, set map[string]bool) {
	if set["source"] {
		cfg.Source.Kind = f.sourceKind
	}
	if set["dict"] {
		cfg.Source.Dictionary = f.dictionary
	}
	if set["placeholder"] {
		cfg.Placeholder = f.placeholder
	}
	if set["latency"] {
		cfg.Source.LatencyMs = int(f.latency / time.Millisecond)
	}
	if f.debug {
		cfg.Log.Level = "debug"
	}
}

func main() {
	f, set := parseFlags()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(f.configPath, bus)
	cfg, err := configSvc.LoadOrCreate(configSvc.Path())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	f.apply(cfg, set)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	closeLog, err := logger.Setup(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	} else {
		defer closeLog()
	}
	log.Info("config loaded", "path", configSvc.Path(), "source", cfg.Source.Kind)

	src, err := buildSource(cfg)
	if err != nil {
		log.Error("could not build source", "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer cancel()

	uiModel := ui.NewModel(bus, cfg, src, f.query)
	uiModel.SetConfigService(configSvc)

	// The UI draws on stderr so stdout carries only the selection
	p := tea.NewProgram(uiModel,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithOutput(os.Stderr),
		tea.WithContext(ctx),
	)
	uiModel.SetProgram(p)

	subscribe(bus, p)

	log.Info("starting UI")
	final, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Error("error running program", "err", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Info("UI exited")
	// Flush event handlers while the log file is still open
	bus.Close()

	if m, ok := final.(*ui.Model); ok && m.Selection() != "" {
		fmt.Println(m.Selection())
	}
}

// buildSource loads the dictionary and creates the configured source
func buildSource(cfg *config.Config) (source.Source, error) {
	words := source.DefaultWords
	if cfg.Source.Dictionary != "" {
		loaded, err := source.LoadWords(cfg.Source.Dictionary)
		if err != nil {
			return nil, err
		}
		log.Info("dictionary loaded", "path", cfg.Source.Dictionary, "words", len(loaded))
		words = loaded
	}

	return source.New(source.Kind(cfg.Source.Kind), words, source.Options{
		MaxResults: cfg.Source.MaxResults,
		Latency:    cfg.Latency(),
	})
}

// subscribe logs domain events and forwards the ones the UI shows
func subscribe(bus eventbus.EventBus, p *tea.Program) {
	bus.Subscribe(eventbus.EventLookupCompleted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.LookupCompletedEvent); ok {
			log.Debug("lookup completed",
				"query", event.Lookup.Query,
				"seq", event.Lookup.Seq,
				"results", event.Lookup.Results,
				"duration", event.Lookup.Duration)
		}
	})

	bus.Subscribe(eventbus.EventLookupFailed, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.LookupFailedEvent); ok {
			log.Warn("lookup failed", "query", event.Query, "err", event.Err)
		}
	})

	bus.Subscribe(eventbus.EventSuggestionSelected, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SuggestionSelectedEvent); ok {
			log.Info("suggestion selected",
				"value", event.Selection.Value,
				"query", event.Selection.Query,
				"via", event.Selection.Via)
		}
	})

	bus.Subscribe(eventbus.EventQueryCleared, func(eventbus.DomainEvent) {
		log.Debug("query cleared")
	})

	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigSavedEvent); ok {
			log.Info("config saved", "path", event.Path)
		}
		p.Send(ui.EventMsg{Event: e})
	})

	bus.Subscribe(eventbus.EventAppReady, func(e eventbus.DomainEvent) {
		log.Info("UI ready")
		// End-to-end tests wait for this marker
		if os.Getenv("TYPEAHEAD_E2E_TEST") != "" {
			fmt.Fprintln(os.Stderr, "__READY__")
		}
	})
}
