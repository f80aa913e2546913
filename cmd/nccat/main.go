// Command nccat drives a compiler-bug witness-generation run. Subcommands
// are dispatched by inspecting os.Args[1] directly (the teacher's
// cmd/funxy style), not a flag-parsing framework.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/nccat/nccat/internal/config"
	"github.com/nccat/nccat/internal/driver"
	"github.com/nccat/nccat/internal/frontend"
	"github.com/nccat/nccat/internal/report"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "nccat: internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(int(config.ExitFatalInvariant))
		}
	}()

	if len(os.Args) >= 2 && os.Args[1] == "test" {
		config.IsTestMode = true
	} else if os.Getenv("NCCAT_TEST_MODE") == "1" {
		config.IsTestMode = true
	}

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(int(config.ExitConfigError))
	}

	var code config.ExitCode
	switch os.Args[1] {
	case "run":
		code = runCommand(os.Args[2:])
	case "report":
		code = reportCommand(os.Args[2:])
	case "resume":
		code = resumeCommand(os.Args[2:])
	case "-version", "--version", "version":
		fmt.Println(config.Version)
		code = config.ExitOK
	case "-help", "--help", "help":
		printUsage()
		code = config.ExitOK
	default:
		fmt.Fprintf(os.Stderr, "nccat: unknown command %q\n", os.Args[1])
		printUsage()
		code = config.ExitConfigError
	}
	os.Exit(int(code))
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  nccat run <run-config.json> [--frontend <path>] [--workers <n>]")
	fmt.Println("  nccat report <root>")
	fmt.Println("  nccat resume <run-config.json> [--frontend <path>] [--workers <n>]")
}

// useColor reports whether stdout is a real terminal that wants color,
// honoring the NO_COLOR convention, matching the teacher's
// builtins_term.go detectColorLevel gate.
func useColor() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func bold(s string) string {
	if !useColor() {
		return s
	}
	return "\x1b[1m" + s + "\x1b[0m"
}

// runCommand loads a run configuration and the language/dictionary/local
// default tables, builds the frontend, and sequences the driver.
func runCommand(args []string) config.ExitCode {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "nccat run: missing run-config.json")
		return config.ExitConfigError
	}
	configPath := args[0]
	frontendPath, workers := parseRunFlags(args[1:])

	cfg, err := config.LoadRunConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nccat run: %v\n", err)
		return config.ExitConfigError
	}

	lang := config.DefaultLanguageTable()
	dict := config.DefaultSharedDict()

	home, _ := os.UserHomeDir()
	if home != "" {
		if ld, err := config.LoadLocalDefaults(filepath.Join(home, ".nccatrc.yaml")); err == nil && workers == 0 {
			workers = ld.Workers
		}
	}
	if workers <= 0 {
		workers = 4
	}

	fe := frontend.NewExternalTool(frontendPath)

	fmt.Printf("%s run %s\n", bold("nccat"), cfg.Root)
	ctx := driver.Run(cfg, lang, dict, fe, workers)
	if ctx.Err != nil {
		fmt.Fprintf(os.Stderr, "nccat run: %v\n", ctx.Err)
		return classifyRunErr(ctx.Err)
	}
	fmt.Println(bold("done"))
	return config.ExitOK
}

// resumeCommand re-runs the pipeline over a root that may already hold
// partial phase output. Every phase's ast__i.json/code__i.c naming is
// stable across runs and every directory is created with MkdirAll, so
// resuming is simply rerunning: stages that already wrote a level's
// grouped_files.json are free to regenerate it identically, and stages
// downstream of an interrupted one just see a smaller input set.
func resumeCommand(args []string) config.ExitCode {
	return runCommand(args)
}

func parseRunFlags(args []string) (frontendPath string, workers int) {
	frontendPath = "nccat-frontend"
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--frontend":
			if i+1 < len(args) {
				i++
				frontendPath = args[i]
			}
		case "--workers":
			if i+1 < len(args) {
				i++
				fmt.Sscanf(args[i], "%d", &workers)
			}
		}
	}
	return frontendPath, workers
}

func classifyRunErr(err error) config.ExitCode {
	if os.IsNotExist(err) || os.IsPermission(err) {
		return config.ExitIOError
	}
	return config.ExitFatalInvariant
}

// reportCommand opens a finished run's report store read-only and prints
// its per-phase/level tallies and final relevant node list — a diagnostic
// convenience over the authoritative on-disk JSON artifacts, not a
// replacement for them.
func reportCommand(args []string) config.ExitCode {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "nccat report: missing root")
		return config.ExitConfigError
	}
	root := args[0]
	dbPath := filepath.Join(root, driver.ReportDBFile)

	store, err := report.OpenReadOnly(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nccat report: %v\n", err)
		return config.ExitIOError
	}
	defer store.Close()

	runID, err := store.LatestRunID()
	if err != nil {
		fmt.Fprintf(os.Stderr, "nccat report: %v\n", err)
		return config.ExitIOError
	}
	if runID == "" {
		fmt.Fprintln(os.Stderr, "nccat report: no runs recorded")
		return config.ExitIOError
	}

	tallies, err := store.Tallies(runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nccat report: %v\n", err)
		return config.ExitIOError
	}
	fmt.Println(bold("phase            level  pass  fail  invalid"))
	for _, t := range tallies {
		fmt.Printf("%-15s  %5d  %4d  %4d  %7d\n", t.Phase, t.Level, t.Passings, t.Failings, t.Invalids)
	}

	ids, err := store.IdentifiedNodeIDs(runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nccat report: %v\n", err)
		return config.ExitIOError
	}
	fmt.Printf("%s %v\n", bold("relevant nodes:"), ids)
	return config.ExitOK
}
