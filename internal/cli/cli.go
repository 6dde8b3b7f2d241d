package cli

import (
	"fmt"
	"strings"
)

type Options struct {
	ShowHelp    bool
	ListLayouts bool
	Detect      bool
	Clipboard   bool
	Interactive bool
	Serve       bool
	ConfigPath  string
	SocketPath  string
	Layouts     []string
	Text        []string
}

func Parse(args []string) (Options, error) {
	opts := Options{}
	for i := 1; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--help" || arg == "-h":
			opts.ShowHelp = true
		case arg == "--list-layouts":
			opts.ListLayouts = true
		case arg == "--detect":
			opts.Detect = true
		case arg == "--clipboard":
			opts.Clipboard = true
		case arg == "--interactive":
			opts.Interactive = true
		case arg == "--serve":
			opts.Serve = true
		case strings.HasPrefix(arg, "--layouts"):
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.Layouts = splitList(value)
			i = next
		case strings.HasPrefix(arg, "--config"):
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.ConfigPath = value
			i = next
		case strings.HasPrefix(arg, "--socket"):
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.SocketPath = value
			i = next
		case strings.HasPrefix(arg, "-"):
			return Options{}, fmt.Errorf("unknown option: %s", arg)
		default:
			opts.Text = append(opts.Text, arg)
		}
	}
	return opts, nil
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

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func Usage() string {
	return `retype - corrects text typed with the wrong keyboard layout
Usage: retype [options] [text ...]

Text is taken from the arguments, from the clipboard with --clipboard, or
from stdin when neither is given.

Options:
  --layouts LIST      Comma-separated layout identifiers in priority order
  --config PATH       Path to retype.ini (default: ./retype.ini if present)
  --clipboard         Convert the clipboard contents in place
  --interactive       Read keys from the terminal with a live preview
  --detect            Print the detected script and exit
  --serve             Run the unix-socket conversion server
  --socket PATH       Conversion server socket (default: $XDG_RUNTIME_DIR/retype.sock)
  --list-layouts      List the tabulated Cyrillic layout variants
  -h, --help          Show this help message`
}
