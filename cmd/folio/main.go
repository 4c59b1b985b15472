package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/iw2rmb/folio"
	"github.com/iw2rmb/folio/editor"
	"github.com/iw2rmb/folio/notebook"
)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

type model struct {
	editor editor.Model
	status string
}

func newModel(cfg editor.Config) model {
	status := "ctrl+s save · ctrl+q quit"
	if cfg.Path != "" {
		status = cfg.Path + " · " + status
	}
	return model{editor: editor.New(cfg), status: status}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.editor = m.editor.SetSize(msg.Width, editorHeight(msg.Height))
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+q" {
			return m, tea.Quit
		}
	case editor.SavedMsg:
		if msg.Err != nil {
			m.status = "save failed: " + msg.Err.Error()
		} else {
			m.status = "saved " + msg.Path
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return m.editor.View() + "\n" + statusStyle.Render(m.status)
}

func editorHeight(total int) int {
	h := total - 1
	if h < 0 {
		return 0
	}
	return h
}

func newLogger(path string, level zerolog.Level) (zerolog.Logger, io.Closer, error) {
	if path == "" {
		return zerolog.Nop(), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log: %w", err)
	}
	logger := zerolog.New(f).Level(level).With().Timestamp().Str("app", folio.UserAgent()).Logger()
	return logger, f, nil
}

// load reads the snapshot at path. A missing file starts an empty notebook.
func load(path string, logger *zerolog.Logger) (*notebook.Notebook, error) {
	nb := notebook.New(notebook.Options{})
	if path == "" {
		return nb, nil
	}
	snap, err := notebook.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Info().Str("path", path).Msg("new notebook")
		return nb, nil
	}
	if err != nil {
		return nil, err
	}
	nb.Load(snap.Lines)
	logger.Info().Str("path", path).Int("lines", nb.Len()).Str("schema", snap.Version).Msg("loaded")
	return nb, nil
}

func run() error {
	logPath := flag.String("log", "", "write JSON logs to `file`")
	debug := flag.Bool("debug", false, "log every input action")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: folio [flags] [notebook.json]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println(folio.VersionTag())
		return nil
	}

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	logger, closer, err := newLogger(*logPath, level)
	if err != nil {
		return err
	}
	defer closer.Close()

	path := flag.Arg(0)
	nb, err := load(path, &logger)
	if err != nil {
		return err
	}

	cfg := editor.Config{
		Notebook:  nb,
		Path:      path,
		Style:     editor.DefaultStyle(),
		Clipboard: editor.SystemClipboard{},
		Logger:    &logger,
	}
	p := tea.NewProgram(newModel(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

func main() {
	if err := run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
