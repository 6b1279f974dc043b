package server

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/caddyserver/certmagic"
)

// ErrMissingTLS is returned when HTTP/3 is requested without certificates.
var ErrMissingTLS = errors.New("missing TLS configuration")

// TLSOptions selects where certificates come from: an ACME-managed domain,
// PEM files, or nothing for plain HTTP.
type TLSOptions struct {
	Domain     string
	Email      string
	StorageDir string
	CertFile   string
	KeyFile    string
	HTTP3      bool
}

// Enabled reports whether any certificate source is configured.
func (o TLSOptions) Enabled() bool {
	return o.Domain != "" || (o.CertFile != "" && o.KeyFile != "")
}

// BuildTLS returns the TLS config for o and, for ACME, the HTTP-01 challenge
// handler to mount on the plain HTTP listener. It returns nil, nil, nil when
// TLS is off.
func BuildTLS(ctx context.Context, o TLSOptions) (*tls.Config, http.Handler, error) {
	switch {
	case o.Domain != "":
		return BuildCertMagicTLS(ctx, o)
	case o.CertFile != "" || o.KeyFile != "":
		conf, err := BuildFileTLS(o.CertFile, o.KeyFile)
		return conf, nil, err
	}
	if o.HTTP3 {
		return nil, nil, ErrMissingTLS
	}
	return nil, nil, nil
}

// BuildCertMagicTLS obtains or loads certificates for o.Domain from Let's
// Encrypt.
func BuildCertMagicTLS(ctx context.Context, o TLSOptions) (*tls.Config, http.Handler, error) {
	if o.Domain == "" {
		return nil, nil, errors.New("domain is required")
	}
	cm := certmagic.NewDefault()
	dir := o.StorageDir
	if dir == "" {
		dir = defaultCertDir()
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, nil, fmt.Errorf("cert storage: %w", err)
	}
	cm.Storage = &certmagic.FileStorage{Path: dir}

	issuer := certmagic.NewACMEIssuer(cm, certmagic.ACMEIssuer{
		CA:     certmagic.LetsEncryptProductionCA,
		Email:  o.Email,
		Agreed: true,
	})
	cm.Issuers = []certmagic.Issuer{issuer}

	if err := cm.ManageSync(ctx, []string{o.Domain}); err != nil {
		return nil, nil, err
	}
	conf := cm.TLSConfig()
	conf.NextProtos = append([]string{"h2", "http/1.1"}, conf.NextProtos...)
	conf.MinVersion = tls.VersionTLS12
	return conf, issuer.HTTPChallengeHandler(http.NotFoundHandler()), nil
}

func defaultCertDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "portfolio", "certmagic")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "portfolio", "certmagic")
}

// BuildFileTLS loads a certificate pair from PEM files and rejects
// certificates outside their validity window.
func BuildFileTLS(certFile, keyFile string) (*tls.Config, error) {
	if certFile == "" || keyFile == "" {
		return nil, errors.New("both cert_file and key_file are required")
	}
	c, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return nil, fmt.Errorf("load keypair: %w", err)
	}
	now := time.Now()
	for i, b := range c.Certificate {
		cert, err := x509.ParseCertificate(b)
		if err != nil {
			return nil, fmt.Errorf("invalid certificate at index %d: %w", i, err)
		}
		if now.Before(cert.NotBefore) {
			return nil, fmt.Errorf("certificate not yet valid (starts %s)", cert.NotBefore)
		}
		if now.After(cert.NotAfter) {
			return nil, fmt.Errorf("certificate expired on %s", cert.NotAfter)
		}
	}
	return &tls.Config{
		Certificates: []tls.Certificate{c},
		NextProtos:   []string{"h2", "http/1.1"},
		MinVersion:   tls.VersionTLS12,
	}, nil
}
