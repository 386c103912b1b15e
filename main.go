package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"meshview/internal/chooser"
	"meshview/internal/config"
	"meshview/internal/eventbus"
	"meshview/internal/geometry"
	"meshview/internal/navigation"
	"meshview/internal/render"
	"meshview/internal/scene"
	"meshview/internal/selection"
	"meshview/internal/ui"
	"meshview/internal/watch"
)

var rootCmd = &cobra.Command{
	Use:   "meshview [file]",
	Short: "Browse for a 3D model and look at it in the terminal",
	Long: `meshview opens a file chooser, remembers the file you pick and shows its
geometry as a wireframe you can orbit, pan and zoom with the keyboard or mouse.

Wavefront OBJ files are read directly. IFC files are converted with
IfcConvert when it is installed.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringP("config", "c", "", "Config file (default "+config.DefaultPath()+")")
	rootCmd.Flags().String("log-file", defaultLogPath(), "Log file, empty disables logging")
	rootCmd.Flags().StringP("dir", "d", "", "Directory the file chooser starts in")
	rootCmd.Flags().BoolP("verbose", "v", false, "Log every domain event")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "meshview: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	logPath, _ := cmd.Flags().GetString("log-file")
	startDir, _ := cmd.Flags().GetString("dir")
	verbose, _ := cmd.Flags().GetBool("verbose")

	closeLog, err := setupLogging(logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, err := configSvc.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log.Printf("Loaded config from %s", configSvc.Path())

	if verbose {
		logEvents(bus)
	}

	registry := geometry.DefaultRegistry(cfg.Extract.IfcConvert, cfg.Extract.Timeout.Duration)
	presenter := scene.NewPresenter(registry, scene.ViewOptions{
		Mode:     render.ParseMode(cfg.UI.RenderMode),
		ShowAxes: cfg.UI.ShowAxes,
	}, cfg.Extract.Timeout.Duration)

	state := selection.New()
	nav := navigation.New(state, presenter, bus)
	defer nav.Close()

	if len(args) == 1 {
		path, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", args[0], err)
		}
		state.Preselect(path)
		nav.RequestView()
	}

	watcher := watch.New(bus, 0)
	defer watcher.Stop()

	model := ui.NewModel(ui.Options{
		Bus:       bus,
		Config:    cfg,
		Navigator: nav,
		Chooser:   newChooser(cfg, startDir),
		Watcher:   watcher,
		LogPath:   logPath,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	// The watcher runs on its own goroutine; its events reach the model
	// through the program
	unsubscribe := bus.Subscribe(eventbus.EventSourceChanged, func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})
	defer unsubscribe()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		if _, ok := <-sigChan; ok {
			log.Printf("Received SIGTERM, quitting")
			p.Quit()
		}
	}()

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("error running program: %w", err)
	}
	log.Printf("UI exited normally")
	return nil
}

// newChooser prefers a configured external command over the built-in picker
func newChooser(cfg *config.Config, startDir string) chooser.FileChooser {
	if startDir == "" {
		startDir = cfg.Chooser.StartDir
	}
	if len(cfg.Chooser.Command) > 0 {
		return &chooser.Command{Args: cfg.Chooser.Command, Dir: startDir}
	}
	return &chooser.Picker{
		StartDir:     startDir,
		AllowedTypes: cfg.Chooser.AllowedTypes,
		ShowHidden:   cfg.Chooser.ShowHidden,
	}
}

func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := tea.LogToFile(path, "meshview")
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return func() { f.Close() }, nil
}

func defaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "meshview.log"
	}
	return filepath.Join(dir, "meshview", "meshview.log")
}

func logEvents(bus eventbus.EventBus) {
	for _, t := range []eventbus.EventType{
		eventbus.EventFileChosen,
		eventbus.EventChoiceCancelled,
		eventbus.EventChooserFailed,
		eventbus.EventViewRequested,
		eventbus.EventViewDismissed,
		eventbus.EventScenePresented,
		eventbus.EventExtractionFailed,
		eventbus.EventSourceChanged,
		eventbus.EventConfigLoaded,
		eventbus.EventConfigSaved,
	} {
		bus.Subscribe(t, func(e eventbus.DomainEvent) {
			log.Printf("Event: %T %+v", e, e)
		})
	}
}
