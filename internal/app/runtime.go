package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"hanpad/internal/cli"
	"hanpad/internal/common"
	"hanpad/internal/logging"
	"hanpad/internal/pad"
	"hanpad/pkg/config"
	"hanpad/pkg/keymap"
)

type Runtime struct {
	opts     cli.Options
	cfg      config.Config
	layout   keymap.Layout
	logger   *slog.Logger
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	openKeys func() (pad.KeyReader, error)
	cleanups []func()
}

func NewRuntime(opts cli.Options, stdin io.Reader, stdout, stderr io.Writer) *Runtime {
	return &Runtime{
		opts:     opts,
		stdin:    stdin,
		stdout:   stdout,
		stderr:   stderr,
		openKeys: pad.OpenTerminal,
	}
}

func (rt *Runtime) Run() error {
	defer rt.cleanup()

	if err := rt.prepareConfig(); err != nil {
		return err
	}
	if err := rt.prepareLayout(); err != nil {
		return err
	}

	switch {
	case rt.opts.Serve:
		return rt.runServer()
	case rt.opts.Convert:
		return rt.runConvert()
	default:
		return rt.runPad()
	}
}

func (rt *Runtime) prepareConfig() error {
	cfg, err := config.Resolve(rt.opts.ConfigPath)
	if err != nil {
		return err
	}
	if rt.opts.LogLevel != "" {
		cfg.LogLevel = rt.opts.LogLevel
	}
	logger, err := logging.FromSettings(cfg.LogLevel, cfg.LogFormat, rt.stderr)
	if err != nil {
		return err
	}
	rt.cfg = cfg
	rt.logger = logger
	return nil
}

func (rt *Runtime) prepareLayout() error {
	name := rt.opts.LayoutName
	if name == "" {
		name = rt.cfg.Layout
	}
	layout, err := ResolveLayout(name, rt.cfg.Keymap)
	if err != nil {
		return err
	}
	rt.layout = layout
	rt.logger.Debug("layout ready", "layout", layout.Name(), "overrides", len(rt.cfg.Keymap))
	return nil
}

func (rt *Runtime) runConvert() error {
	writer := bufio.NewWriter(rt.stdout)
	defer writer.Flush()

	if rt.opts.Text != "" {
		_, err := fmt.Fprintln(writer, Translate(rt.layout, rt.opts.Text))
		return err
	}

	scanner := bufio.NewScanner(rt.stdin)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)
	lines := 0
	for scanner.Scan() {
		if _, err := writer.WriteString(Translate(rt.layout, scanner.Text())); err != nil {
			return err
		}
		if err := writer.WriteByte('\n'); err != nil {
			return err
		}
		lines++
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	rt.logger.Debug("converted input", "lines", lines)
	return nil
}

func (rt *Runtime) runPad() error {
	toggle, err := pad.ParseToggleKey(rt.cfg.ToggleKey)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	reader, err := rt.openKeys()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	rt.registerCleanup(func() { _ = reader.Close() })

	p := pad.New(rt.layout, toggle, rt.stderr, rt.logger)
	text, err := p.Run(reader)
	if errors.Is(err, pad.ErrCancelled) {
		return nil
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(rt.stdout, text)
	return err
}

func (rt *Runtime) runServer() error {
	socket := common.SocketPath(rt.opts.SocketPath, rt.cfg.Socket)
	server, err := StartTranslationServer(socket, rt.layout, rt.logger)
	if err != nil {
		return err
	}
	rt.registerCleanup(server.Close)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer signal.Stop(sigs)

	return rt.waitServer(server.Err(), sigs)
}

func (rt *Runtime) waitServer(serverErrCh <-chan error, sigs <-chan os.Signal) error {
	for {
		select {
		case err, ok := <-serverErrCh:
			if !ok {
				return nil
			}
			if err != nil {
				return fmt.Errorf("translation server: %w", err)
			}
		case sig := <-sigs:
			rt.logger.Info("shutting down", "signal", sig.String())
			return nil
		}
	}
}

func (rt *Runtime) registerCleanup(fn func()) {
	if fn == nil {
		return
	}
	rt.cleanups = append([]func(){fn}, rt.cleanups...)
}

func (rt *Runtime) cleanup() {
	for _, fn := range rt.cleanups {
		fn()
	}
	rt.cleanups = nil
}
