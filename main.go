package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/pullrefresh/internal/app"
	"github.com/llehouerou/pullrefresh/internal/config"
	"github.com/llehouerou/pullrefresh/internal/errmsg"
	"github.com/llehouerou/pullrefresh/internal/icons"
	"github.com/llehouerou/pullrefresh/internal/logging"
	"github.com/llehouerou/pullrefresh/internal/state"
)

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	icons.Init(cfg.Icons)

	logPath, err := cfg.GetLogFile()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpLogOpen, err))
	}
	logger, logFile, err := logging.Setup(logPath, cfg.Log.Debug)
	if err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpLogOpen, logPath, err))
	}
	defer logFile.Close()

	// Anything a dependency prints to stderr would corrupt the screen.
	if cfg.Log.Debug {
		stop, err := logging.CaptureStderr(logger)
		if err != nil {
			logger.Warn("stderr capture unavailable", "err", err)
		} else {
			defer stop()
		}
	}

	stateMgr, err := state.Open()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpStateOpen, err))
	}
	defer stateMgr.Close()

	m, err := app.New(cfg, stateMgr, logger)
	if err != nil {
		return err
	}
	logger.Info("starting", "folder", m.Folder, "page_size", m.PageSize)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.MouseEnabled() {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(m, opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
