package main

import (
	"bufio"
	"flag"
	"fmt"
	"net"
	"os"
	"strings"

	"retype/internal/common"
	"retype/internal/config"
	"retype/internal/convert"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "retype-tty: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	defaultSocket := common.DefaultSocketPath()

	layoutsFlag := flag.String("layouts", "", "comma-separated layout identifiers in priority order")
	socketPath := flag.String("socket", defaultSocket, "unix socket used to talk with the retype server")
	localOnly := flag.Bool("local", true, "convert locally without contacting the retype server")
	remote := flag.Bool("remote", false, "force use of the retype server for conversion")
	flag.Parse()

	if *remote {
		*localOnly = false
	}

	layoutIDs := splitList(*layoutsFlag)
	if len(layoutIDs) == 0 {
		cfg, err := config.Resolve("")
		if err != nil {
			return err
		}
		layoutIDs = cfg.Layouts
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	writer := bufio.NewWriter(os.Stdout)
	defer writer.Flush()

	warned := false

	for scanner.Scan() {
		line := scanner.Text()
		var converted string
		var err error
		if !*localOnly {
			converted, err = convertViaSocket(*socketPath, line)
			if err != nil {
				if !warned {
					fmt.Fprintf(os.Stderr, "retype-tty: falling back to local conversion: %v\n", err)
					warned = true
				}
				*localOnly = true
			}
		}
		if *localOnly {
			converted = convert.AutoConvert(line, layoutIDs).Text
		}
		if _, err := writer.WriteString(converted); err != nil {
			return err
		}
		if err := writer.WriteByte('\n'); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return nil
}

func convertViaSocket(socketPath, text string) (string, error) {
	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return "", err
	}
	defer conn.Close()

	if _, err := fmt.Fprintf(conn, "%s\n", text); err != nil {
		return "", err
	}
	reader := bufio.NewReader(conn)
	reply, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	reply = strings.TrimRight(reply, "\n")
	if tab := strings.IndexByte(reply, '\t'); tab >= 0 {
		reply = reply[:tab]
	}
	return reply, nil
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
