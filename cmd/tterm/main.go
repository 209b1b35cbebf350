// Command tterm renders a single editable line of text with a TrueType
// font into a CPU framebuffer and presents it in a window, the terminal,
// or a PNG file. Lines submitted with Enter are printed on exit.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/spf13/pflag"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/term"

	"github.com/tterm/tterm"
	"github.com/tterm/tterm/backend"
	_ "github.com/tterm/tterm/backend/snapshot"
	_ "github.com/tterm/tterm/backend/terminal"
	"github.com/tterm/tterm/internal/app"
	"github.com/tterm/tterm/internal/config"
	"github.com/tterm/tterm/text"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func run(args []string, stdout, stderr io.Writer) int {
	var (
		configPath  string
		showVersion bool
		showHelp    bool
	)

	fs := pflag.NewFlagSet("tterm", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&configPath, "config", "c", "", "YAML or TOML config file")
	config.DefineFlags(fs)
	fs.BoolVarP(&showVersion, "version", "v", false, "Show version information")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show help message")
	fs.Usage = func() { printHelp(stderr, fs) }

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	if showHelp {
		printHelp(stdout, fs)
		return exitOK
	}
	if showVersion {
		fmt.Fprintf(stdout, "tterm version %s (commit: %s, built: %s)\n", version, commit, date)
		return exitOK
	}

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitUsage
		}
	}
	if err := cfg.BindFlags(fs); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	// Positional arguments are the initial text unless --text was given.
	if fs.NArg() > 0 && !fs.Changed("text") {
		cfg.Text = strings.Join(fs.Args(), " ")
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	// The terminal backend owns the tty; hold log output until it exits.
	logOut := stderr
	if cfg.Backend == config.BackendTerminal && isTerminal(stderr) {
		var held bytes.Buffer
		logOut = &held
		defer func() { _, _ = held.WriteTo(stderr) }()
	}
	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))
	tterm.SetLogger(logger)
	defer tterm.SetLogger(nil)

	cache, err := loadFont(&cfg)
	if err != nil {
		logger.Error("cannot load font", "font", fontLabel(cfg.Font), "err", err)
		return exitError
	}

	background, _ := cfg.BackgroundPixel()
	renderer, err := tterm.NewRenderer(cache, tterm.WithBackground(background))
	if err != nil {
		logger.Error("cannot create renderer", "err", err)
		return exitError
	}
	// Submitted lines are printed once the backend has released the tty.
	var submitted []string
	handler := app.New(renderer,
		app.WithText(cfg.Text),
		app.WithSubmitFunc(func(line string) { submitted = append(submitted, line) }))

	if !backend.IsRegistered(cfg.Backend) {
		logger.Error("backend not compiled in", "backend", cfg.Backend, "available", backend.Available())
		return exitError
	}
	b, err := backend.New(cfg.Backend, backend.Options{
		Width:  cfg.Width,
		Height: cfg.Height,
		Title:  cfg.Title,
		Output: cfg.Output,
	})
	if err != nil {
		logger.Error("cannot create backend", "backend", cfg.Backend, "err", err)
		return exitError
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = b.Run(ctx, handler)
	logger.Info("session ended", "backend", b.Name(), "frames", renderer.Frames())
	for _, line := range submitted {
		if line != "" {
			fmt.Fprintln(stdout, line)
		}
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("backend failed", "backend", b.Name(), "err", err)
		return exitError
	}
	return exitOK
}

// loadFont builds the glyph cache from the configured font, or from the
// embedded Go Mono when none is set.
func loadFont(cfg *config.Config) (*text.FontCache, error) {
	hinting, err := cfg.FontHinting()
	if err != nil {
		return nil, err
	}
	opts := []text.Option{text.WithHinting(hinting)}

	if cfg.Font == "" {
		return text.Build(gomono.TTF, cfg.Size, opts...)
	}
	return text.BuildFromFile(cfg.Font, cfg.Size, opts...)
}

func fontLabel(path string) string {
	if path == "" {
		return "embedded Go Mono"
	}
	return path
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func printHelp(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintln(w, "Usage: tterm [flags] [text...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render one editable line of text with a TrueType font.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Keys: type to insert, Backspace deletes, Enter submits the line.")
	fmt.Fprintln(w, "Escape exits; the terminal backend also exits on Ctrl-C.")
	fmt.Fprintln(w, "Submitted lines are printed to stdout when the session ends.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  tterm Hello")
	fmt.Fprintln(w, "  tterm -b terminal -s 12 'Hello, World!'")
	fmt.Fprintln(w, "  tterm -b png -o hello.png --width 400 --height 40 Hello")
}
