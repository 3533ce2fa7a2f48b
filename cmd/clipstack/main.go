package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/donkronk/clipstack/internal/config"
	"github.com/donkronk/clipstack/internal/db"
	"github.com/donkronk/clipstack/internal/mcp"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// cliCommands contains known CLI subcommands and their aliases.
var cliCommands = map[string]bool{
	"list": true, "ls": true,
	"get": true, "g": true,
	"copy": true, "c": true,
	"search": true, "s": true, "find": true,
	"add": true, "a": true,
	"capture": true, "cap": true,
	"delete": true, "del": true, "rm": true,
	"clear": true, "pin": true, "unpin": true,
	"stats": true, "export": true, "import": true,
	"watch": true, "help": true,
}

// isCLIMode determines if we should run CLI vs MCP server.
func isCLIMode() bool {
	if len(os.Args) < 2 {
		return false // No args → MCP server
	}
	arg := os.Args[1]
	// Known subcommand → CLI
	if cliCommands[arg] {
		return true
	}
	// --help or --version → CLI
	if arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" {
		return true
	}
	return false // Default → MCP server
}

// isHelpOrVersion returns true if the user is requesting help or version info.
func isHelpOrVersion() bool {
	if len(os.Args) < 2 {
		return false
	}
	arg := os.Args[1]
	return arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" || arg == "help"
}

// isTerminal returns true if stdin is a terminal (not piped).
func isTerminal() bool {
	stat, _ := os.Stdin.Stat()
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// baseDir resolves the data directory: --db flag, then $CLIPSTACK_DIR, then
// ~/.clipstack.
func baseDir() (string, error) {
	if dir, ok := dbFlagValue(); ok {
		return dir, nil
	}
	if dir := os.Getenv("CLIPSTACK_DIR"); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".clipstack"), nil
}

// dbFlagValue scans os.Args for a --db override and strips it, so the flag
// can precede any subcommand without urfave/cli seeing it.
func dbFlagValue() (string, bool) {
	args := os.Args
	for i := 1; i < len(args); i++ {
		if args[i] == "--db" && i+1 < len(args) {
			dir := args[i+1]
			os.Args = append(append([]string{}, args[:i]...), args[i+2:]...)
			return dir, true
		}
		if strings.HasPrefix(args[i], "--db=") {
			dir := strings.TrimPrefix(args[i], "--db=")
			os.Args = append(append([]string{}, args[:i]...), args[i+1:]...)
			return dir, true
		}
	}
	return "", false
}

// printBanner displays a friendly banner when run interactively without args.
func printBanner() {
	fmt.Println(`
        _ _         _             _
    ___| (_)_ __ __| |_ __ _  ___| | __
   / __| | | '_ \/ _| __/ _' |/ __| |/ /
  | (__| | | |_) \_ \ || (_| | (__|   <
   \___|_|_| .__/|__/\__\__,_|\___|_|\_\
           |_|

  Clipboard history with pins, search, and export

  Usage: clipstack <command> [options]
         clipstack --help

  MCP server mode requires piped input.`)
}

func main() {
	// Handle --help/--version before DB init (no DB needed)
	if isHelpOrVersion() {
		app := newCLIApp(nil, nil, "")
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	dir, err := baseDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	database, err := db.Init(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to initialize database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	cfg, err := config.Load(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load config: %v\n", err)
		os.Exit(1)
	}
	db.ConfigurePool(database, cfg)

	dbPath := db.Path(dir)

	// No args + interactive terminal → banner plus the recent history
	if len(os.Args) < 2 && isTerminal() {
		printBanner()
		app := newCLIApp(database, cfg, dbPath)
		if err := app.Run([]string{"clipstack", "list"}); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// CLI mode: known subcommand
	if isCLIMode() {
		app := newCLIApp(database, cfg, dbPath)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Unknown argument + terminal → show error (don't start MCP server)
	if len(os.Args) >= 2 && isTerminal() {
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "Run 'clipstack --help' for usage.\n")
		os.Exit(1)
	}

	// MCP server mode (default)
	if err := mcp.Run(database, cfg, dbPath, Version); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
