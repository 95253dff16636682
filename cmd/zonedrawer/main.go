package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"zonedrawer/internal/config"
	"zonedrawer/internal/log"
	"zonedrawer/internal/scenario"
	"zonedrawer/internal/tui"
)

func main() {
	cfgPath := flag.String("config", "", "config file (default "+config.DefaultPath()+")")
	level := flag.String("log-level", "", "override the configured log level: debug, info, warn, error")
	check := flag.Bool("check", false, "decode the scenario file, print a summary and exit")
	flag.Parse()

	path, required := *cfgPath, *cfgPath != ""
	if !required {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path, required)
	if err != nil {
		fatal(err)
	}
	if *level != "" {
		cfg.LogLevel = *level
	}

	if *check {
		if flag.NArg() != 1 {
			fatal(fmt.Errorf("-check needs exactly one scenario file"))
		}
		if err := checkFile(os.Stdout, cfg, flag.Arg(0)); err != nil {
			fatal(err)
		}
		return
	}

	lg := log.New(cfg.LogLevel, cfg.LogDir)
	lg.Info("starting", slog.String("config", path), slog.String("log", lg.LogFile))

	var m tea.Model
	if flag.NArg() > 0 {
		m = tui.NewWithPath(cfg, lg, flag.Arg(0))
	} else {
		m = tui.New(cfg, lg)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		lg.Error("program failed", slog.Any("error", err))
		fatal(err)
	}
}

// checkFile validates a scenario file without starting the editor.
func checkFile(w io.Writer, cfg config.Config, path string) error {
	codec := scenario.NewCodec(cfg.Scale)
	s, err := codec.ReadFile(path)
	if err != nil {
		return err
	}
	start, _ := s.Start()
	finish, _ := s.Finish()
	k := codec.Scale
	fmt.Fprintf(w, "%s: ok\n", path)
	fmt.Fprintf(w, "  start  %.2f %.2f\n", start.X*k, start.Y*k)
	fmt.Fprintf(w, "  finish %.2f %.2f\n", finish.X*k, finish.Y*k)
	fmt.Fprintf(w, "  zones  %d\n", s.Len())
	return nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "zonedrawer:", err)
	os.Exit(1)
}
