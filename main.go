package main

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/tesselslate/hazel/internal/cfg"
	"github.com/tesselslate/hazel/internal/engine"
	"github.com/tesselslate/hazel/internal/log"
	"github.com/tesselslate/hazel/internal/metrics"
	"github.com/tesselslate/hazel/internal/platform"
	"github.com/tesselslate/hazel/internal/res"
	"github.com/tesselslate/hazel/internal/script"
	"github.com/tesselslate/hazel/internal/term"
	"github.com/tesselslate/hazel/internal/x11"
)

//go:embed .notice
var notice string

//go:embed .version
var version string

func main() {
	if err := res.WriteResources(); err != nil {
		log.Fatal("Failed to write resources: %s", err)
	}
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "--help", "-h", "help":
		printHelp()
	case "--version", "version":
		fmt.Print(
			"\n    hazel ",
			strings.Trim(version, "\n"),
			" - event-driven application core\n",
			notice,
		)
	case "new":
		if len(os.Args) < 3 {
			printHelp()
			os.Exit(1)
		}
		if err := cfg.MakeProfile(os.Args[2]); err != nil {
			log.Fatal("Failed to make profile: %s", err)
		}
		log.Okay("Created profile!")
	case "replay":
		if len(os.Args) < 3 {
			printHelp()
			os.Exit(1)
		}
		replay(os.Args[2])
	default:
		run(os.Args[1])
	}
}

// run runs the sandbox application with the given profile until its window
// closes or the process is signalled.
func run(name string) {
	path, err := cfg.GetPath(name)
	if err != nil {
		log.Fatal("Failed to get profile path: %s", err)
	}
	profile, err := cfg.LoadProfile(path)
	if err != nil {
		log.Fatal("Failed to get profile: %s", err)
	}
	logger := setupLogger(&profile)
	defer logger.Close()

	window, err := openWindow(&profile.Window)
	if err != nil {
		log.Fatal("Failed to open window: %s", err)
	}
	defer window.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eng := engine.New(window, profile.Loop)
	sandbox := newSandbox(profile.Keys, cancel)
	go handleSignals(ctx, cancel, eng, sandbox)

	if profile.Metrics.Enabled {
		serveMetrics(profile.Metrics.Address)
	}
	updates, err := cfg.Watch(ctx, path)
	if err != nil {
		log.Warn("Config reloading unavailable: %s", err)
	} else {
		go applyUpdates(updates, eng, sandbox)
	}

	log.Info("Running profile %s (%s window, %s loop)", name, profile.Window.Backend, profile.Loop.Mode)
	if err := eng.Run(ctx, sandbox.Construct); err != nil {
		log.Error("Failed to run: %s", err)
		return
	}
	log.Info("Shutting down.")
}

// replay runs the sandbox application against a recorded script with the
// default settings.
func replay(path string) {
	profile, err := cfg.ParseProfile(res.DefaultConfig)
	if err != nil {
		log.Fatal("Failed to parse default profile: %s", err)
	}
	profile.Window.Backend = cfg.BackendScript
	profile.Window.Script = path
	profile.Log.Level = log.DEBUG.String()
	logger := setupLogger(&profile)
	defer logger.Close()

	window, err := openWindow(&profile.Window)
	if err != nil {
		log.Fatal("Failed to load script: %s", err)
	}
	defer window.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eng := engine.New(window, profile.Loop)
	sandbox := newSandbox(profile.Keys, cancel)
	go handleSignals(ctx, cancel, eng, sandbox)
	if err := eng.Run(ctx, sandbox.Construct); err != nil {
		log.Fatal("Failed to replay: %s", err)
	}
	log.Okay("Replayed %s (%d frames presented)", path, window.(*script.Window).Presents())
}

// setupLogger replaces the default logger with one configured by profile.
func setupLogger(profile *cfg.Profile) *log.Logger {
	level, err := log.ParseLevel(profile.Log.Level)
	if err != nil {
		log.Fatal("Invalid log level: %s", err)
	}

	// The terminal window owns the console while it runs.
	console := profile.Window.Backend != cfg.BackendTerm
	logger, err := log.Setup(level, profile.Log.Path, console)
	if err != nil {
		log.Fatal("Failed to set up logger: %s", err)
	}
	return logger
}

// openWindow opens a window with the backend named by conf.
func openWindow(conf *cfg.Window) (platform.Window, error) {
	switch conf.Backend {
	case cfg.BackendX11:
		return x11.Open(x11.Options{
			Title:  conf.Title,
			Width:  conf.Width,
			Height: conf.Height,
			VSync:  conf.VSync,
		})
	case cfg.BackendTerm:
		return term.Open(term.Options{
			Title: conf.Title,
			VSync: conf.VSync,
		})
	case cfg.BackendScript:
		s, err := script.Load(conf.Script)
		if err != nil {
			return nil, err
		}
		return script.NewWindow(s)
	default:
		return nil, fmt.Errorf("unknown backend %q", conf.Backend)
	}
}

// handleSignals cancels the loop on SIGINT or SIGTERM and prints debug
// information on SIGUSR1.
func handleSignals(ctx context.Context, cancel context.CancelFunc, eng *engine.Engine, sandbox *sandbox) {
	signals := make(chan os.Signal, 8)
	signal.Notify(signals, unix.SIGINT, unix.SIGTERM, unix.SIGUSR1)
	defer signal.Stop(signals)
	for {
		select {
		case sig := <-signals:
			switch sig {
			case unix.SIGINT, unix.SIGTERM:
				log.Info("Received %s.", sig)
				cancel()
				return
			case unix.SIGUSR1:
				printDebug(eng, sandbox)
			}
		case <-ctx.Done():
			return
		}
	}
}

// applyUpdates applies the reloadable parts of each new profile.
func applyUpdates(updates <-chan cfg.Profile, eng *engine.Engine, sandbox *sandbox) {
	rate := eng.Config().TickRate
	for profile := range updates {
		if profile.Loop.TickRate != rate {
			rate = profile.Loop.TickRate
			eng.SetTickRate(rate)
		}
		if level, err := log.ParseLevel(profile.Log.Level); err == nil && level != log.Default().Level() {
			log.Default().SetLevel(level)
			log.Info("Log level set to %s", level)
		}
		sandbox.SetKeys(profile.Keys)
	}
}

// serveMetrics serves the metrics registry at /metrics on address.
func serveMetrics(address string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	go func() {
		log.Info("Serving metrics on %s", address)
		if err := http.ListenAndServe(address, mux); err != nil {
			log.Error("Metrics server failed: %s", err)
		}
	}()
}

func printHelp() {
	fmt.Println(`
    hazel - event-driven application core
    USAGE:
        hazel [PROFILE]         Run the sandbox with the given profile.

    SUBCOMMANDS:
        hazel new [PROFILE]     Create a new profile named PROFILE with
                                the default configuration.
        hazel replay [SCRIPT]   Replay a recorded script through the
                                sandbox and exit.
        hazel help              Print this message.
        hazel version           Get the version of hazel installed.

    SIGNALS:
        SIGUSR1                 Print debugging information.
    `)
}
