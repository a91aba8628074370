// Command scribe edits a text file in the terminal using the scribe editor
// core.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/scribe"
	"github.com/iw2rmb/scribe/document"
	"github.com/iw2rmb/scribe/editor"
	"github.com/iw2rmb/scribe/glyph"
	"github.com/iw2rmb/scribe/term"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("scribe", flag.ContinueOnError)
	fs.SetOutput(stderr)
	logFile := fs.String("log-file", "", "write logs to this file")
	logLevel := fs.String("log-level", "info", "log level: debug, info, warn, error")
	codepointWidths := fs.Bool("codepoint-widths", false, "treat every code point above 255 as wide")
	readOnly := fs.Bool("read-only", false, "open the file without editing")
	showVersion := fs.Bool("version", false, "print the version and exit")
	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "usage: scribe [flags] file\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		_, err := fmt.Fprintln(stdout, "scribe", scribe.VersionTag())
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected exactly one file argument, got %d", fs.NArg())
	}
	path := fs.Arg(0)

	lc, err := resolveLogConfig(*logFile, *logLevel)
	if err != nil {
		return err
	}
	defer lc.Close()
	logger := lc.logger()

	metrics := glyph.DefaultMetrics()
	if *codepointWidths {
		metrics.Classify = glyph.ClassifyCodepoint
	}

	renderer := lipgloss.NewRenderer(os.Stdout, termenv.WithColorCache(true))
	m := term.New(term.Config{
		Editor: editor.Config{
			Metrics:  metrics,
			ReadOnly: *readOnly,
			Logger:   logger,
		},
		Store:    document.FSStore{Logger: logger},
		Path:     path,
		Renderer: renderer,
		Logger:   logger,
	})
	if err := m.Load(context.Background()); err != nil {
		return err
	}

	logger.Info("scribe: starting", "path", path, "version", scribe.Version())
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithReportFocus())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
