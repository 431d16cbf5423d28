package app

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"hanpad/internal/common"
	"hanpad/pkg/edit"
	"hanpad/pkg/keymap"
)

const (
	maxLineBytes = 1024 * 1024
	dialTimeout  = 2 * time.Second

	translateWindow = 4
)

type TranslationServer struct {
	listener net.Listener
	socket   string
	errCh    chan error
	logger   *slog.Logger
}

func StartTranslationServer(path string, layout keymap.Layout, logger *slog.Logger) (*TranslationServer, error) {
	if path == "" {
		return nil, nil
	}
	if logger == nil {
		logger = slog.Default()
	}
	if err := common.EnsureSocketDir(path); err != nil {
		return nil, fmt.Errorf("create socket dir: %w", err)
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	listener, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", path, err)
	}
	if err := os.Chmod(path, 0o660); err != nil && !errors.Is(err, os.ErrNotExist) {
		listener.Close()
		_ = os.Remove(path)
		return nil, fmt.Errorf("chmod socket: %w", err)
	}
	srv := &TranslationServer{listener: listener, socket: path, errCh: make(chan error, 1), logger: logger}
	go func() {
		srv.errCh <- srv.serve(layout)
		close(srv.errCh)
	}()
	logger.Info("translation server listening", "socket", path, "layout", layout.Name())
	return srv, nil
}

func (s *TranslationServer) Close() {
	if s == nil {
		return
	}
	s.listener.Close()
	for range s.errCh {
	}
	_ = os.Remove(s.socket)
}

func (s *TranslationServer) Err() <-chan error {
	if s == nil {
		return nil
	}
	return s.errCh
}

func (s *TranslationServer) Addr() string {
	if s == nil {
		return ""
	}
	return s.socket
}

func (s *TranslationServer) serve(layout keymap.Layout) error {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				continue
			}
			return err
		}
		go func(c net.Conn) {
			defer c.Close()
			if err := handleTranslationConnection(c, layout); err != nil {
				s.logger.Warn("translation error", "error", err)
			}
		}(conn)
	}
}

// handleTranslationConnection answers every newline-terminated line with its
// translation until the client hangs up.
func handleTranslationConnection(conn net.Conn, layout keymap.Layout) error {
	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)
	writer := bufio.NewWriter(conn)
	for scanner.Scan() {
		response := Translate(layout, scanner.Text())
		if _, err := writer.WriteString(response); err != nil {
			return err
		}
		if err := writer.WriteByte('\n'); err != nil {
			return err
		}
		if err := writer.Flush(); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, net.ErrClosed) {
			return nil
		}
		return err
	}
	return nil
}

// Translate types text on layout as if each rune were a key press (upper
// case meaning shift). Keys that are not jamo on the layout pass through
// unchanged.
//
// An insert at the end of the text only recomposes the last few runes, so
// only that tail is kept in the edit buffer and the rest is flushed as it
// settles.
func Translate(layout keymap.Layout, text string) string {
	out := make([]rune, 0, len(text))
	var tail []rune
	for _, r := range norm.NFC.String(text) {
		if jamo, ok := layout.MapTyped(r); ok {
			tail = edit.Insert(tail, len(tail), len(tail), jamo).Text
		} else {
			tail = append(tail, r)
		}
		if n := len(tail) - translateWindow; n > 0 {
			out = append(out, tail[:n]...)
			tail = append([]rune(nil), tail[n:]...)
		}
	}
	return string(append(out, tail...))
}

// TranslateViaSocket sends one line to a running translation server.
func TranslateViaSocket(socketPath, text string) (string, error) {
	conn, err := net.DialTimeout("unix", socketPath, dialTimeout)
	if err != nil {
		return "", err
	}
	defer conn.Close()

	line := strings.ReplaceAll(text, "\n", " ")
	if _, err := fmt.Fprintln(conn, line); err != nil {
		return "", err
	}

	reader := bufio.NewReader(conn)
	response, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(response, "\n"), nil
}
