package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"newt/internal/evaluator"
	"newt/internal/lexer"
	"newt/internal/object"
	"newt/internal/parser"
	"newt/internal/repl"
	"newt/internal/util"
)

var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	Commit    = "unknown"
)

func main() {
	cfg := &util.Configuration{
		Version:   Version,
		BuildDate: BuildDate,
		Commit:    Commit,
		Prompt:    repl.PROMPT,
		LogLevel:  "info",
	}

	showHelp := flag.Bool("help", false, "show usage and exit")
	showVersion := flag.Bool("version", false, "show version and exit")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn, error")
	logFile := flag.String("log-file", "", "write logs to this file instead of stderr")
	configPath := flag.String("config", "", "path to a TOML configuration file")
	rootPath := flag.String("root", "", "root path for script resolution")
	flag.Parse()

	if *showHelp {
		printHelp()
		return
	}
	if *showVersion {
		fmt.Printf("newt %s (built %s, commit %s)\n", Version, BuildDate, Commit)
		return
	}

	configFile := *configPath
	explicit := configFile != ""
	if !explicit {
		configFile = "newt.toml"
	}
	if err := util.LoadConfigFile(cfg, configFile, explicit); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// flags win over the config file
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}
	if *rootPath != "" {
		cfg.RootPath = *rootPath
	}

	setupLogging(cfg)

	if cfg.Prompt != "" {
		repl.PROMPT = cfg.Prompt
	}

	if flag.NArg() > 0 {
		os.Exit(runFile(flag.Arg(0)))
	}

	fmt.Printf("newt %s\n", Version)
	e := evaluator.New(os.Stdout)
	repl.Start(os.Stdin, os.Stdout, e, object.NewEnvironment())
}

func setupLogging(cfg *util.Configuration) {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		fmt.Fprintf(os.Stderr, "unknown log level %q, using info\n", cfg.LogLevel)
		level = slog.LevelInfo
	}

	out := os.Stderr
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot open log file %s: %v, logging to stderr\n", cfg.LogFile, err)
		} else {
			out = f
		}
	}

	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read %s: %v\n", path, err)
		return 1
	}

	l := lexer.New(string(source))
	p := parser.New(l, string(source))
	program := p.ParseProgram()
	if len(p.Errors()) != 0 {
		for _, msg := range p.Errors() {
			fmt.Fprintf(os.Stderr, "parse error: %s\n", msg)
		}
		return 1
	}

	e := evaluator.New(os.Stdout)
	result := e.Eval(program, object.NewEnvironment())
	if object.IsError(result) {
		fmt.Fprintln(os.Stderr, result.Inspect())
		return 1
	}
	return 0
}

func printHelp() {
	fmt.Println(`newt - a small scripting language

Usage:
  app [flags]              start the REPL
  app [flags] script.nwt   run a script

Flags:
  -help        show this help
  -version     show version information
  -log-level   log level: debug, info, warn, error (default info)
  -log-file    write logs to a file instead of stderr
  -config      path to a TOML configuration file (default newt.toml)
  -root        root path for script resolution

REPL commands:
  :clear       reset all bindings
  :modules     list importable builtin modules
  :quit        exit`)
}
