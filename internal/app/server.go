package app

import (
	"bufio"
	"errors"
	"fmt"
	"net"
	"os"

	"retype/internal/common"
	"retype/internal/convert"
)

// ConvertServer answers line-oriented conversion requests over a unix
// domain socket. Each request line is auto-converted against the server's
// configured layout list; the reply is "converted\ttarget-id" where the
// target field is empty when no usable target exists.
type ConvertServer struct {
	listener net.Listener
	socket   string
	errCh    chan error
}

func StartConvertServer(path string, layoutIDs []string) (*ConvertServer, error) {
	if path == "" {
		return nil, nil
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
	srv := &ConvertServer{listener: listener, socket: path, errCh: make(chan error, 1)}
	go func() {
		srv.errCh <- serveConversions(listener, layoutIDs)
		close(srv.errCh)
	}()
	return srv, nil
}

func (s *ConvertServer) Close() {
	if s == nil {
		return
	}
	s.listener.Close()
	for range s.errCh {
	}
	_ = os.Remove(s.socket)
}

func (s *ConvertServer) Err() <-chan error {
	if s == nil {
		return nil
	}
	return s.errCh
}

func serveConversions(listener net.Listener, layoutIDs []string) error {
	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			if ne, ok := err.(net.Error); ok && ne.Temporary() {
				continue
			}
			return err
		}
		go func(c net.Conn) {
			defer c.Close()
			if err := handleConnection(c, layoutIDs); err != nil {
				fmt.Fprintf(os.Stderr, "retype: conversion error: %v\n", err)
			}
		}(conn)
	}
}

func handleConnection(conn net.Conn, layoutIDs []string) error {
	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	writer := bufio.NewWriter(conn)
	for scanner.Scan() {
		out := convert.AutoConvert(scanner.Text(), layoutIDs)
		if _, err := writer.WriteString(out.Text); err != nil {
			return err
		}
		if err := writer.WriteByte('\t'); err != nil {
			return err
		}
		if _, err := writer.WriteString(out.TargetID); err != nil {
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
