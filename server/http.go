package server

import (
	"fmt"
	"net"
	"net/http"
)

func StartHTTPServer(host string, port int, handler http.Handler) error {
	addr := net.JoinHostPort(host, fmt.Sprintf("%d", port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	go func() {
		_ = http.Serve(ln, handler)
	}()
	return nil
}
