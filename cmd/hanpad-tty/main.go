package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"hanpad/internal/app"
	"hanpad/internal/common"
	"hanpad/internal/logging"
	"hanpad/pkg/keymap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "hanpad-tty: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	layoutName := flag.String("layout", keymap.DefaultLayoutName, fmt.Sprintf("keyboard layout (%s)", strings.Join(keymap.Available(), ", ")))
	socketPath := flag.String("socket", common.DefaultSocketPath(), "unix socket of a running hanpad --serve")
	localOnly := flag.Bool("local", true, "convert locally without contacting the server")
	remote := flag.Bool("remote", false, "force use of the server for conversion")
	logLevel := flag.String("log-level", "warn", "log level (debug, info, warn, error)")
	flag.Parse()

	if *remote {
		*localOnly = false
	}

	logger, err := logging.FromSettings(*logLevel, "text", os.Stderr)
	if err != nil {
		return err
	}

	layout, err := keymap.ByName(*layoutName)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	writer := bufio.NewWriter(os.Stdout)
	defer writer.Flush()

	for scanner.Scan() {
		line := scanner.Text()
		var converted string
		if !*localOnly {
			converted, err = app.TranslateViaSocket(*socketPath, line)
			if err != nil {
				logger.Warn("falling back to local conversion", "socket", *socketPath, "error", err)
				*localOnly = true
			}
		}
		if *localOnly {
			converted = app.Translate(layout, line)
		}
		if _, err := writer.WriteString(converted); err != nil {
			return err
		}
		if err := writer.WriteByte('\n'); err != nil {
			return err
		}
	}
	return scanner.Err()
}
