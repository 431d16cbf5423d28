package cli

import (
	"fmt"
	"strings"
)

type Options struct {
	ShowHelp    bool
	ListLayouts bool
	Serve       bool
	Convert     bool
	ConfigPath  string
	LayoutName  string
	SocketPath  string
	Text        string
	LogLevel    string
}

func Parse(args []string) (Options, error) {
	var opts Options
	for i := 1; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--help" || arg == "-h":
			opts.ShowHelp = true
		case arg == "--list-layouts":
			opts.ListLayouts = true
		case arg == "--serve":
			opts.Serve = true
		case arg == "--convert":
			opts.Convert = true
		case hasOption(arg, "--config"):
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.ConfigPath = value
			i = next
		case hasOption(arg, "--layout"):
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.LayoutName = value
			i = next
		case hasOption(arg, "--socket"):
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.SocketPath = value
			i = next
		case hasOption(arg, "--text"):
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.Text = value
			opts.Convert = true
			i = next
		case hasOption(arg, "--log-level"):
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.LogLevel = value
			i = next
		default:
			return Options{}, fmt.Errorf("unknown option: %s", arg)
		}
	}
	if opts.Serve && opts.Convert {
		return Options{}, fmt.Errorf("--serve and --convert are mutually exclusive")
	}
	return opts, nil
}

// hasOption matches "--name" and "--name=value" but not "--names".
func hasOption(arg, name string) bool {
	return arg == name || strings.HasPrefix(arg, name+"=")
}

func extractValue(current string, index int, args []string) (string, int, error) {
	if eq := strings.IndexRune(current, '='); eq >= 0 {
		return current[eq+1:], index, nil
	}
	if index+1 >= len(args) {
		return "", index, fmt.Errorf("option %s requires a value", current)
	}
	return args[index+1], index + 1, nil
}

func Usage() string {
	return `hanpad - Hangul composition pad
Usage: hanpad [options]

Without --serve or --convert hanpad opens an interactive pad on the terminal.

Options:
  --config PATH       Config file (.ini, .toml or .yaml; default: ./hanpad.ini if present)
  --layout NAME       Keyboard layout (default: dubeolsik)
  --socket PATH       Translation unix socket (default: $XDG_RUNTIME_DIR/hanpad.sock)
  --serve             Run the translation server on the socket
  --convert           Convert stdin line by line and print the Hangul text
  --text KEYS         Convert KEYS and print the result (implies --convert)
  --log-level LEVEL   debug, info, warn or error (overrides the config file)
  --list-layouts      List available layouts
  -h, --help          Show this help message

Pad keys:
  Ctrl+Space          Toggle Hangul / Latin input (configurable)
  Ctrl+Z              Undo
  Ctrl+A              Select all
  Ctrl+L              Clear
  Left/Right/Home/End Move the cursor
  Enter, Esc          Print the text and exit`
}
