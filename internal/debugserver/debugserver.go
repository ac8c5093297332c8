// Package debugserver serves profiling and metrics endpoints on a loopback address.
package debugserver

import (
	"context"
	"github.com/myrjola/droneconfigurator/internal/errors"
	"log/slog"
	"net"
	"net/http"
	"net/http/pprof"
	"time"
)

func Handle(mux *http.ServeMux, metrics http.Handler) {
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.Handle("/metrics", metrics)
}

// Launch starts the debug server at addr in the background and stops it when ctx is done.
//
// The host part of addr must be a loopback address so that the endpoints are not exposed to the world. An empty addr
// disables the server.
func Launch(ctx context.Context, addr string, metrics http.Handler, logger *slog.Logger) error {
	if addr == "" {
		return nil
	}
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return errors.Wrap(err, "split debug address", slog.String("addr", addr))
	}
	if ip := net.ParseIP(host); host != "localhost" && (ip == nil || !ip.IsLoopback()) {
		return errors.New("debug server must listen on loopback", slog.String("addr", addr))
	}

	mux := http.NewServeMux()
	Handle(mux, metrics)
	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: time.Second,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrap(err, "debug listen", slog.String("addr", addr))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "starting debug server", slog.String("debug_addr", listener.Addr().String()))

	go func() {
		if serveErr := srv.Serve(listener); !errors.Is(serveErr, http.ErrServerClosed) {
			serveErr = errors.Wrap(serveErr, "debug server serve")
			logger.LogAttrs(ctx, slog.LevelError, "debug server stopped", errors.SlogError(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	return nil
}
