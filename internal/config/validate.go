package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"

	"github.com/dixxanta08/dixxanta-portfoilio/internal/db"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/logger"
)

// CheckConfigValidity reports every problem in v at once.
func CheckConfigValidity(v *viper.Viper) error {
	var errs []error
	add := func(format string, args ...any) { errs = append(errs, fmt.Errorf(format, args...)) }

	if strings.TrimSpace(v.GetString("content_dir")) == "" {
		add("content_dir is required")
	}
	if err := checkBaseURL(v.GetString("site.base_url")); err != nil {
		add("site.base_url %v", err)
	}
	if store := v.GetString("store"); store != "file" && !db.IsDSN(store) {
		add("store must be \"file\" or a sqlite:// url, got %q", store)
	}
	for _, key := range []string{"watch.debounce_ms", "output.width"} {
		if v.GetInt(key) <= 0 {
			add("%s must be greater than 0", key)
		}
	}
	if err := logger.CheckMode(v.GetString("log.mode")); err != nil {
		add("log.mode: %v", err)
	}
	if _, err := logger.ParseLevel(v.GetString("log.level")); err != nil {
		add("log.level: %v", err)
	}

	cert := strings.TrimSpace(v.GetString("tls.cert_file"))
	key := strings.TrimSpace(v.GetString("tls.key_file"))
	if cert != "" && key == "" {
		add("tls.cert_file requires tls.key_file")
	}
	if key != "" && cert == "" {
		add("tls.key_file requires tls.cert_file")
	}
	if v.GetBool("tls.http3") && cert == "" && strings.TrimSpace(v.GetString("tls.domain")) == "" {
		add("tls.http3 requires tls.domain or tls.cert_file")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func checkBaseURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("is not a url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("must use http or https, got %q", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("has no host")
	}
	return nil
}
