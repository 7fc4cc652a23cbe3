// ABOUTME: CLI entrypoint for grafo with serve and tui modes.
// ABOUTME: Wires together the session store, executors, journal, editor server, and signal handling.
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
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/grafo-labs/grafo/editor"
	"github.com/grafo-labs/grafo/executor"
	"github.com/grafo-labs/grafo/journal"
	"github.com/grafo-labs/grafo/model"
	"github.com/grafo-labs/grafo/session"
	"github.com/grafo-labs/grafo/tui"
)

var version = "dev"

// config holds all CLI configuration parsed from flags and the config file.
type config struct {
	serveMode   bool
	tuiMode     bool
	kind        string
	port        int
	dataDir     string
	binDir      string
	configPath  string
	catalogPath string
	noJournal   bool
	showVersion bool

	file fileConfig
}

func main() {
	loadDotEnv(".env")

	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	if cfg.showVersion {
		fmt.Printf("grafo %s\n", version)
		os.Exit(0)
	}

	os.Exit(run(cfg))
}

// parseFlags parses command-line flags, loads the config file, and returns a
// populated config.
func parseFlags(args []string) (config, error) {
	var cfg config

	fs := flag.NewFlagSet("grafo", flag.ContinueOnError)
	fs.BoolVar(&cfg.serveMode, "serve", false, "Start the HTTP editor API")
	fs.BoolVar(&cfg.tuiMode, "tui", false, "Edit one model in the terminal")
	fs.StringVar(&cfg.kind, "kind", "graph", "Model variant: graph, digraph, or network")
	fs.IntVar(&cfg.port, "port", 8240, "Server port")
	fs.StringVar(&cfg.dataDir, "data-dir", "", "Interchange and journal directory (default: $XDG_DATA_HOME/grafo)")
	fs.StringVar(&cfg.binDir, "bin-dir", "", "Directory holding the executor binaries")
	fs.StringVar(&cfg.configPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/grafo/config.yaml)")
	fs.StringVar(&cfg.catalogPath, "catalog", "", "Algorithm catalog override (YAML)")
	fs.BoolVar(&cfg.noJournal, "no-journal", false, "Disable the command/run journal")
	fs.BoolVar(&cfg.showVersion, "version", false, "Print version and exit")

	fs.Usage = func() {
		printHelp(os.Stderr, version)
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		return cfg, err
	}

	configPath := cfg.configPath
	if configPath == "" {
		if dir, err := defaultConfigDir(); err == nil {
			configPath = filepath.Join(dir, "config.yaml")
		}
	}
	file, err := loadFileConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return cfg, err
	}
	cfg.file = file

	// Flags override file values.
	if cfg.dataDir == "" {
		cfg.dataDir = file.DataDir
	}
	if cfg.binDir == "" {
		cfg.binDir = file.BinDir
	} else {
		cfg.file.BinDir = cfg.binDir
	}
	if cfg.catalogPath == "" {
		cfg.catalogPath = file.CatalogPath
	}
	if cfg.port == 8240 && file.Port != 0 {
		cfg.port = file.Port
	}

	return cfg, nil
}

// run dispatches to the appropriate mode based on the config.
// Returns an exit code: 0 for success, 1 for failure.
func run(cfg config) int {
	if cfg.serveMode {
		return runServe(cfg)
	}
	if cfg.tuiMode {
		return runTUI(cfg)
	}
	printHelp(os.Stderr, version)
	return 0
}

func buildRunners(cfg config) session.Runners {
	return session.Runners{
		Graph:   executor.NewLocal(cfg.file.executorPath(cfg.file.Executors.Graph, "graph")),
		Digraph: executor.NewLocal(cfg.file.executorPath(cfg.file.Executors.Digraph, "digraph")),
		Network: executor.NewLocal(cfg.file.executorPath(cfg.file.Executors.Network, "network")),
	}
}

// runServe starts the HTTP editor API and blocks until interrupted.
func runServe(cfg config) int {
	dataDir, err := resolveDataDir(cfg.dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	catalog, err := executor.LoadCatalog(cfg.catalogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	maxSessions := cfg.file.MaxSessions
	if maxSessions <= 0 {
		maxSessions = 64
	}
	store := session.NewStore(filepath.Join(dataDir, "sessions"), buildRunners(cfg), maxSessions, cfg.file.sessionTTL())
	stopCleanup := store.StartCleanup(time.Minute)
	defer stopCleanup()

	opts := []editor.ServerOption{}
	if !cfg.noJournal {
		journalPath := cfg.file.JournalPath
		if journalPath == "" {
			journalPath = filepath.Join(dataDir, "journal.db")
		}
		j, err := journal.Open(journalPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		defer func() { _ = j.Close() }()
		opts = append(opts, editor.WithJournal(j))
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.port),
		Handler: editor.NewServer(store, catalog, opts...),
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}()

	log.Printf("grafo %s listening on :%d (data dir %s)", version, cfg.port, dataDir)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// runTUI edits a single session in the terminal.
func runTUI(cfg config) int {
	kind, ok := model.ParseKind(cfg.kind)
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown kind %q (want graph, digraph, or network)\n", cfg.kind)
		return 1
	}

	dataDir, err := resolveDataDir(cfg.dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	catalog, err := executor.LoadCatalog(cfg.catalogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	store := session.NewStore(filepath.Join(dataDir, "sessions"), buildRunners(cfg), 1, time.Hour)
	sess := store.Create(kind)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app := tui.NewAppModel(ctx, sess, catalog)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
