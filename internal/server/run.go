package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/quic-go/quic-go/http3"

	"github.com/dixxanta08/dixxanta-portfoilio/internal/logger"
)

const shutdownTimeout = 5 * time.Second

// RunOptions configures Run.
type RunOptions struct {
	Addr string
	TLS  TLSOptions
	// ChallengeAddr serves ACME HTTP-01 challenges when TLS uses a domain.
	ChallengeAddr string
}

// Run serves h until ctx is cancelled, then shuts down within five seconds.
// With TLS configured it serves HTTPS and, if requested, HTTP/3 on the same
// port.
func Run(ctx context.Context, h http.Handler, opts RunOptions, log *logger.Logger) error {
	if log == nil {
		log = logger.Nop()
	}
	tlsConf, challenge, err := BuildTLS(ctx, opts.TLS)
	if err != nil {
		return err
	}

	var h3 *http3.Server
	if tlsConf != nil && opts.TLS.HTTP3 {
		h3 = &http3.Server{Addr: opts.Addr, Handler: h, TLSConfig: http3.ConfigureTLSConfig(tlsConf.Clone())}
		h = altSvc(h3, h)
	}

	srv := &http.Server{
		Addr:              opts.Addr,
		Handler:           h,
		TLSConfig:         tlsConf,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	servers := []func() error{}
	if tlsConf != nil {
		servers = append(servers, func() error { return srv.ListenAndServeTLS("", "") })
	} else {
		servers = append(servers, srv.ListenAndServe)
	}

	var chal *http.Server
	if challenge != nil {
		addr := opts.ChallengeAddr
		if addr == "" {
			addr = ":80"
		}
		chal = &http.Server{Addr: addr, Handler: challenge, ReadHeaderTimeout: 10 * time.Second}
		servers = append(servers, chal.ListenAndServe)
	}
	if h3 != nil {
		servers = append(servers, h3.ListenAndServe)
	}

	errc := make(chan error, len(servers))
	for _, serve := range servers {
		go func(serve func() error) {
			if err := serve(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errc <- err
			}
		}(serve)
	}
	log.Info("listening", "addr", opts.Addr, "tls", tlsConf != nil, "http3", h3 != nil)

	select {
	case <-ctx.Done():
	case err = <-errc:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if serr := srv.Shutdown(shutdownCtx); serr != nil {
		log.Warn("shutdown", "err", serr)
	}
	if chal != nil {
		_ = chal.Shutdown(shutdownCtx)
	}
	if h3 != nil {
		_ = h3.Close()
	}
	log.Info("stopped")
	return err
}

// altSvc advertises HTTP/3 on every TCP response.
func altSvc(h3 *http3.Server, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = h3.SetQUICHeaders(w.Header())
		next.ServeHTTP(w, r)
	})
}
