package main

import (
	"bufio"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"

	"github.com/donkronk/clipstack/internal/clipboard"
	"github.com/donkronk/clipstack/internal/config"
	"github.com/donkronk/clipstack/internal/entry"
	"github.com/donkronk/clipstack/internal/errors"
	"github.com/donkronk/clipstack/internal/ops"
	"github.com/donkronk/clipstack/internal/watcher"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(db *sql.DB, cfg *config.Config, dbPath string) *cli.App {
	app := &cli.App{
		Name:    "clipstack",
		Usage:   "Clipboard history with pins, search, and export",
		Version: Version,
		Commands: []*cli.Command{
			listCmd(db),
			getCmd(db),
			copyCmd(db, cfg),
			searchCmd(db),
			addCmd(db, cfg),
			captureCmd(db, cfg),
			deleteCmd(db),
			clearCmd(db),
			pinCmd(db),
			unpinCmd(db),
			statsCmd(db, dbPath),
			exportCmd(db),
			importCmd(db, cfg),
			watchCmd(db, cfg),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// listCmd creates the list command.
func listCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List recent entries",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Value: ops.DefaultListLimit, Usage: "Maximum entries to show"},
			&cli.BoolFlag{Name: "json", Usage: "Emit JSON instead of a table"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.List(db, ops.ListInput{Limit: c.Int("limit")})
			if err != nil {
				return outputError(err)
			}
			if c.Bool("json") {
				return outputJSON(output)
			}
			if output.Count == 0 {
				fmt.Println("history is empty")
				return nil
			}
			for i := range output.Items {
				fmt.Println(entryLine(i+1, &output.Items[i]))
			}
			return nil
		},
	}
}

// getCmd creates the get command.
func getCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "get",
		Aliases:   []string{"g"},
		Usage:     "Print the entry at a position (1 = most recent)",
		ArgsUsage: "<position>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "Print raw content only (for piping)"},
			&cli.BoolFlag{Name: "json", Usage: "Emit JSON"},
		},
		Action: func(c *cli.Context) error {
			position, err := positionArg(c)
			if err != nil {
				return outputError(err)
			}

			output, err := ops.Get(db, ops.GetInput{Position: position})
			if err != nil {
				return outputError(err)
			}

			if c.Bool("json") {
				return outputJSON(output)
			}
			if c.Bool("quiet") {
				fmt.Print(output.Entry.Content)
				return nil
			}

			e := &output.Entry
			fmt.Printf("Entry %d (%s, %s, %d chars, %d words)\n",
				position, formatTimestamp(e.Touched()), e.Source, e.CharCount, e.WordCount)
			if e.Pinned {
				fmt.Println("pinned")
			}
			fmt.Println(e.Content)
			return nil
		},
	}
}

// copyCmd creates the copy command.
func copyCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "copy",
		Aliases:   []string{"c"},
		Usage:     "Copy the entry at a position back to the clipboard",
		ArgsUsage: "<position>",
		Action: func(c *cli.Context) error {
			position, err := positionArg(c)
			if err != nil {
				return outputError(err)
			}

			output, err := ops.Get(db, ops.GetInput{Position: position})
			if err != nil {
				return outputError(err)
			}

			port := clipboard.NewSystem(cfg.ClipboardTimeout())
			if err := port.Write(c.Context, output.Entry.Content); err != nil {
				return outputError(err)
			}

			// Copying counts as use: the entry moves back to position 1
			if _, err := ops.Add(db, cfg, ops.AddInput{Content: output.Entry.Content}); err != nil {
				return outputError(err)
			}

			fmt.Printf("copied entry %d to clipboard (%d chars)\n", position, output.Entry.CharCount)
			return nil
		},
	}
}

// searchCmd creates the search command.
func searchCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "search",
		Aliases:   []string{"s", "find"},
		Usage:     "Search entry contents (regex, substring fallback)",
		ArgsUsage: "<query>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Value: ops.DefaultSearchLimit, Usage: "Maximum matches to show"},
			&cli.BoolFlag{Name: "json", Usage: "Emit JSON instead of a table"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return outputError(errors.NewInvalidRequest("query is required"))
			}

			output, err := ops.Search(db, ops.SearchInput{
				Query: strings.Join(c.Args().Slice(), " "),
				Limit: c.Int("limit"),
			})
			if err != nil {
				return outputError(err)
			}

			if c.Bool("json") {
				return outputJSON(output)
			}
			if output.Count == 0 {
				fmt.Println("no matches")
				return nil
			}
			if !output.Regex {
				fmt.Println("(pattern did not compile; matched as literal text)")
			}
			for i := range output.Items {
				fmt.Println(entryLine(i+1, &output.Items[i]))
			}
			return nil
		},
	}
}

// addCmd creates the add command.
func addCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "add",
		Aliases:   []string{"a"},
		Usage:     "Add text to the history (arguments, or stdin when piped)",
		ArgsUsage: "[text...]",
		Action: func(c *cli.Context) error {
			var content string
			if c.NArg() > 0 {
				content = strings.Join(c.Args().Slice(), " ")
			} else if stdinHasData() {
				var err error
				content, err = readStdin()
				if err != nil {
					return outputError(errors.NewInternal(err))
				}
			} else {
				return outputError(errors.NewInvalidRequest("text must be given as arguments or piped via stdin"))
			}

			output, err := ops.Add(db, cfg, ops.AddInput{Content: content, Source: entry.SourceManual})
			if err != nil {
				return outputError(err)
			}

			if output.Deduped {
				fmt.Printf("refreshed existing entry %d\n", output.ID)
			} else {
				fmt.Printf("added entry %d\n", output.ID)
			}
			return nil
		},
	}
}

// captureCmd creates the capture command.
func captureCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "capture",
		Aliases: []string{"cap"},
		Usage:   "Store the current clipboard content",
		Action: func(c *cli.Context) error {
			port := clipboard.NewSystem(cfg.ClipboardTimeout())
			content, err := port.Read(c.Context)
			if err != nil {
				return outputError(err)
			}

			output, err := ops.Add(db, cfg, ops.AddInput{Content: content, Source: entry.SourceClipboard})
			if err != nil {
				return outputError(err)
			}

			if output.Deduped {
				fmt.Printf("clipboard content already stored as entry %d\n", output.ID)
			} else {
				fmt.Printf("captured entry %d\n", output.ID)
			}
			return nil
		},
	}
}

// deleteCmd creates the delete command.
func deleteCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"del", "rm"},
		Usage:     "Delete the entry at a position",
		ArgsUsage: "<position>",
		Action: func(c *cli.Context) error {
			position, err := positionArg(c)
			if err != nil {
				return outputError(err)
			}

			output, err := ops.Delete(db, ops.DeleteInput{Position: position})
			if err != nil {
				return outputError(err)
			}

			fmt.Printf("deleted entry %d: %s\n", position, preview(output.Entry.Content, 60))
			return nil
		},
	}
}

// clearCmd creates the clear command.
func clearCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "clear",
		Usage: "Delete history entries (pinned entries survive unless --all)",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "keep-pinned", Value: true, Usage: "Spare pinned entries (default)"},
			&cli.BoolFlag{Name: "all", Usage: "Remove pinned entries too (overrides --keep-pinned)"},
			&cli.BoolFlag{Name: "force", Aliases: []string{"f"}, Usage: "Skip the confirmation prompt"},
		},
		Action: func(c *cli.Context) error {
			if !c.Bool("force") && !confirm("Clear clipboard history?") {
				fmt.Println("aborted")
				return nil
			}

			keepPinned := c.Bool("keep-pinned") && !c.Bool("all")

			output, err := ops.Clear(db, ops.ClearInput{KeepPinned: keepPinned})
			if err != nil {
				return outputError(err)
			}

			fmt.Printf("removed %d entries\n", output.Removed)
			return nil
		},
	}
}

// pinCmd creates the pin command.
func pinCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "pin",
		Usage:     "Protect the entry at a position from pruning and clear",
		ArgsUsage: "<position>",
		Action: func(c *cli.Context) error {
			position, err := positionArg(c)
			if err != nil {
				return outputError(err)
			}

			if _, err := ops.Pin(db, ops.PinInput{Position: position}); err != nil {
				return outputError(err)
			}
			fmt.Printf("pinned entry %d\n", position)
			return nil
		},
	}
}

// unpinCmd creates the unpin command.
func unpinCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "unpin",
		Usage:     "Remove pin protection from the entry at a position",
		ArgsUsage: "<position>",
		Action: func(c *cli.Context) error {
			position, err := positionArg(c)
			if err != nil {
				return outputError(err)
			}

			if _, err := ops.Unpin(db, ops.PinInput{Position: position}); err != nil {
				return outputError(err)
			}
			fmt.Printf("unpinned entry %d\n", position)
			return nil
		},
	}
}

// statsCmd creates the stats command.
func statsCmd(db *sql.DB, dbPath string) *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Show history statistics",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "Emit JSON"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Stats(db, ops.StatsInput{DBPath: dbPath})
			if err != nil {
				return outputError(err)
			}

			if c.Bool("json") {
				return outputJSON(output)
			}

			fmt.Printf("entries:  %d (%d pinned)\n", output.TotalCount, output.PinnedCount)
			fmt.Printf("chars:    %d\n", output.TotalChars)
			fmt.Printf("words:    %d\n", output.TotalWords)
			if output.OldestTimestamp != nil && output.NewestTimestamp != nil {
				fmt.Printf("range:    %s .. %s\n",
					formatTimestamp(*output.OldestTimestamp), formatTimestamp(*output.NewestTimestamp))
			}
			fmt.Printf("storage:  %s (%d bytes)\n", output.StorageLocation, output.StorageSizeBytes)
			return nil
		},
	}
}

// exportCmd creates the export command.
func exportCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export every entry to stdout or a file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Aliases: []string{"F"}, Value: "json", Usage: "Export format: json|txt"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Write to a file instead of stdout"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Export(db, ops.ExportInput{Format: ops.Format(c.String("format"))})
			if err != nil {
				return outputError(err)
			}

			if path := c.String("output"); path != "" {
				if err := os.WriteFile(path, []byte(output.Data), 0600); err != nil {
					return outputError(errors.NewInternal(err))
				}
				fmt.Printf("exported %d entries to %s\n", output.Count, path)
				return nil
			}

			fmt.Print(output.Data)
			return nil
		},
	}
}

// importCmd creates the import command.
func importCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "Import entries from a json export (file argument, or stdin when piped)",
		ArgsUsage: "[path]",
		Action: func(c *cli.Context) error {
			var data string
			if c.NArg() > 0 {
				raw, err := os.ReadFile(c.Args().First())
				if err != nil {
					return outputError(errors.NewInternal(err))
				}
				data = string(raw)
			} else if stdinHasData() {
				var err error
				data, err = readStdin()
				if err != nil {
					return outputError(errors.NewInternal(err))
				}
			} else {
				return outputError(errors.NewInvalidRequest("export data must be given as a file argument or piped via stdin"))
			}

			output, err := ops.Import(db, cfg, ops.ImportInput{Data: data, Format: ops.FormatJSON})
			if err != nil {
				return outputError(err)
			}

			fmt.Printf("imported %d records\n", output.Processed)
			return nil
		},
	}
}

// watchCmd creates the watch command.
func watchCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "Poll the clipboard and capture every change until interrupted",
		Action: func(c *cli.Context) error {
			logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
			port := clipboard.NewSystem(cfg.ClipboardTimeout())

			w := watcher.New(db, cfg, port, logger)
			w.Start()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
			<-sigCh

			w.Stop()
			return nil
		},
	}
}

// Helper functions

// positionArg parses the required 1-based position argument.
func positionArg(c *cli.Context) (int, error) {
	if c.NArg() == 0 {
		return 0, errors.NewInvalidRequest("position argument is required")
	}
	position, err := strconv.Atoi(c.Args().First())
	if err != nil {
		return 0, errors.NewInvalidRequest(fmt.Sprintf("invalid position %q", c.Args().First()))
	}
	return position, nil
}

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if clipErr, ok := err.(*errors.ClipError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", clipErr.Code, clipErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// confirm prompts on stdout and reads a y/N answer from stdin.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// stdinHasData returns true if stdin has piped data (not a terminal).
func stdinHasData() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// readStdin reads all content from stdin.
func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
