package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/eiannone/keyboard"

	"retype/internal/app"
	"retype/internal/cli"
	"retype/internal/common"
	"retype/internal/config"
	"retype/internal/convert"
	"retype/internal/layout"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "retype: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	opts, err := cli.Parse(os.Args)
	if err != nil {
		return err
	}

	if opts.ShowHelp {
		fmt.Println(cli.Usage())
		return nil
	}

	if opts.ListLayouts {
		for _, v := range layout.Variants() {
			fmt.Printf("%s (%s)\n", v, v.Code())
		}
		return nil
	}

	cfg, err := config.Resolve(opts.ConfigPath)
	if err != nil {
		return err
	}

	layoutIDs := cfg.Layouts
	if len(opts.Layouts) > 0 {
		layoutIDs = opts.Layouts
	}

	if opts.Serve {
		socket := opts.SocketPath
		if socket == "" {
			socket = cfg.Socket
		}
		if socket == "" {
			socket = common.DefaultSocketPath()
		}
		srv, err := app.StartConvertServer(socket, layoutIDs)
		if err != nil {
			return err
		}
		defer srv.Close()
		fmt.Fprintf(os.Stderr, "retype: serving on %s\n", socket)
		return <-srv.Err()
	}

	if opts.Interactive {
		return runInteractive(layoutIDs)
	}

	useClipboard := opts.Clipboard || cfg.Clipboard
	text, err := readInput(opts, useClipboard)
	if err != nil {
		return err
	}

	if opts.Detect {
		fmt.Println(convert.DetectScript(text))
		return nil
	}

	out := convert.AutoConvert(text, layoutIDs)
	fmt.Println(out.Text)
	if useClipboard {
		if err := clipboard.WriteAll(out.Text); err != nil {
			return fmt.Errorf("write clipboard: %w", err)
		}
	}
	if out.TargetID != "" {
		fmt.Fprintf(os.Stderr, "retype: switch layout to %s (%s)\n", out.TargetID, layout.DisplayCode(out.TargetID))
	}
	return nil
}

func readInput(opts cli.Options, useClipboard bool) (string, error) {
	if useClipboard {
		text, err := clipboard.ReadAll()
		if err != nil {
			return "", fmt.Errorf("read clipboard: %w", err)
		}
		return text, nil
	}
	if len(opts.Text) > 0 {
		return strings.Join(opts.Text, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func runInteractive(layoutIDs []string) error {
	if err := keyboard.Open(); err != nil {
		return fmt.Errorf("open keyboard: %w", err)
	}
	defer keyboard.Close()

	fmt.Println("type to preview the conversion; enter commits, esc quits")

	buf := make([]rune, 0, 64)
	for {
		r, key, err := keyboard.GetKey()
		if err != nil {
			return err
		}
		switch key {
		case keyboard.KeyEsc, keyboard.KeyCtrlC:
			fmt.Println()
			return nil
		case keyboard.KeyEnter:
			out := convert.AutoConvert(string(buf), layoutIDs)
			fmt.Printf("\r\033[K%s\n", out.Text)
			if out.TargetID != "" {
				fmt.Fprintf(os.Stderr, "retype: switch layout to %s (%s)\n", out.TargetID, layout.DisplayCode(out.TargetID))
			}
			buf = buf[:0]
			continue
		case keyboard.KeyBackspace, keyboard.KeyBackspace2:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		case keyboard.KeySpace:
			buf = append(buf, ' ')
		default:
			if r != 0 {
				buf = append(buf, r)
			}
		}
		preview := convert.AutoConvert(string(buf), layoutIDs)
		fmt.Printf("\r\033[K%s -> %s", string(buf), preview.Text)
	}
}
