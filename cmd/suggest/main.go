// Package main runs the completion orchestrator against scripted input
// and in-memory providers, logging every orchestration decision.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/dshills/suggest/internal/completion"
	"github.com/dshills/suggest/internal/config"
	"github.com/dshills/suggest/internal/dispatch"
	"github.com/dshills/suggest/internal/editor"
	"github.com/dshills/suggest/internal/ui"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to suggest.toml")
	debug := flag.Bool("debug", true, "enable debug logging")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("suggest %s (%s)\n", version, commit)
		return 0
	}

	logger, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Sugar()

	cfg := config.Default()
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Errorw("config load failed", "path", *configPath, "error", err)
			return 1
		}
	}
	store := config.NewStore(cfg)

	if *configPath != "" {
		w, werr := config.NewWatcher(*configPath, store, log)
		if werr == nil && w.Start() == nil {
			defer w.Close()
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	ed := editor.New(store)
	comp := ui.NewCompositor(ui.Rect{W: 120, H: 40})
	queue := dispatch.NewQueue(128)

	wd, _ := os.Getwd()
	handler := completion.NewHandler(queue, log,
		completion.WithPathCompleter(&completion.PathCompleter{WorkDir: wd}),
	)
	hooks := completion.NewHooks(ctx, handler)

	doc := ed.NewDocument("package main\n\nfunc main() {\n\t\n}\n", "go")
	doc.AttachServer(newDemoServer())
	view, err := ed.NewView(doc.ID())
	if err != nil {
		log.Errorw("view setup failed", "error", err)
		return 1
	}
	view.SetCursor(34) // inside main's body

	go handler.Run(ctx)
	go runScript(ctx, cancel, queue, hooks, log)

	// The owner loop: every mutation of editor and UI state flows
	// through here, including scripted keystrokes.
	queue.Run(ctx, ed, comp)
	return 0
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
