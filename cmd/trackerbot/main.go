// Package main is the entry point for TrackerBot.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/hy4ri/trackerbot/internal/config"
	"github.com/hy4ri/trackerbot/internal/console"
	"github.com/hy4ri/trackerbot/internal/reply"
	"github.com/hy4ri/trackerbot/internal/session"
	"github.com/hy4ri/trackerbot/internal/storage"
	"github.com/hy4ri/trackerbot/internal/tui"
)

const version = "0.1.0"

const helpText = `trackerbot - a chat-style task tracker for the terminal

USAGE:
    trackerbot [OPTIONS]

OPTIONS:
    -h, --help        Show this help message
    -v, --version     Show version information
    --init            Create a template config file
    --plain           Use the plain line console instead of the full-screen UI
    --file PATH       Use PATH as the save file for this run

CONFIGURATION:
    Config file: ~/.config/trackerbot/config.yaml
    Save file:   ~/.local/share/trackerbot/data.txt

    Run 'trackerbot --init' to create a commented config template.
    Settings can also be given as TRACKERBOT_* environment variables.

COMMANDS:
    todo DESCRIPTION
    deadline DESCRIPTION /by DATE
    event DESCRIPTION /from DATE /to DATE
    list
    find TEXT
    mark N | unmark N | delete N
    bye

    DATE is yyyy-mm-dd or yyyy-mm-dd HHmm.

KEYBINDINGS:
    Enter       Send the line
    Tab         Complete the command keyword
    Up/Down     Browse earlier lines
    PgUp/PgDn   Scroll the conversation
    Ctrl+y      Copy the last reply
    Ctrl+s      Save now
    Ctrl+l      Clear the screen
    F1          Show all keybindings
    Ctrl+c      Quit
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Define flags
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		plain       bool
		dataFile    string
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.BoolVar(&plain, "plain", false, "Use the plain line console")
	flag.StringVar(&dataFile, "file", "", "Save file for this run")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	// Handle flags
	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("trackerbot version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if dataFile != "" {
		cfg.Storage.DataFile = dataFile
	}
	if plain || !isatty.IsTerminal(os.Stdin.Fd()) {
		cfg.UI.Plain = true
	}

	return runApp(cfg)
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.WriteFile(path, []byte(config.Template), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

// runApp loads the save file, runs the chosen front end and saves on the way out.
func runApp(cfg *config.Config) error {
	debugLog, closeLog, err := openDebugLog(cfg.Debug)
	if err != nil {
		return err
	}
	defer closeLog()

	path, err := cfg.DataFile()
	if err != nil {
		return fmt.Errorf("failed to resolve save file: %w", err)
	}

	// A save file that cannot be read is reported and the session starts empty.
	sess, loadErr := session.Open(storage.New(path),
		session.WithAutosave(cfg.Storage.Autosave),
		session.WithLogger(debugLog),
	)
	notice := ""
	if loadErr != nil {
		notice = reply.Error(loadErr) + "\n  Starting with an empty list."
	}

	runErr := runFrontEnd(cfg, sess, path, notice, debugLog)

	// Saved even when the front end failed.
	// Non-fatal: the tasks are still listed on screen.
	if err := sess.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return runErr
}

// runFrontEnd runs the plain console or the TUI over sess until the user quits.
func runFrontEnd(cfg *config.Config, sess *session.Session, path, notice string, debugLog *log.Logger) error {
	if cfg.UI.Plain {
		c := console.New(os.Stdin, os.Stdout, sess)
		if notice != "" {
			if err := c.Notice(notice); err != nil {
				return fmt.Errorf("console: %w", err)
			}
		}
		if err := c.Run(); err != nil {
			return fmt.Errorf("console: %w", err)
		}
		return nil
	}

	app := tui.NewApp(sess, tui.Options{
		Notifications: cfg.UI.Notifications,
		RemindWithin:  cfg.UI.RemindWithin,
		SavePath:      path,
		Notice:        notice,
		Logger:        debugLog,
	})

	opts := []tea.ProgramOption{}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(app, opts...)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	fmt.Println(reply.Goodbye())
	return nil
}

// openDebugLog opens debug.log in the config directory when enabled.
// The returned logger is nil otherwise.
func openDebugLog(enabled bool) (*log.Logger, func(), error) {
	if !enabled {
		return nil, func() {}, nil
	}

	path, err := config.LogPath()
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	return log.New(f, "trackerbot: ", log.LstdFlags|log.Lshortfile), func() { f.Close() }, nil
}
