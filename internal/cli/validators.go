package cli

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/seedpad/seedpad-terminal/pkg/export"
	"github.com/seedpad/seedpad-terminal/pkg/log"
	"github.com/seedpad/seedpad-terminal/pkg/models"
	"github.com/seedpad/seedpad-terminal/pkg/store"
)

// ValidateBackend validates a store backend name
func ValidateBackend(name string) error {
	valid := []string{store.BackendSQLite, store.BackendREST, store.BackendMemory}
	if Contains(valid, strings.ToLower(name)) {
		return nil
	}
	return fmt.Errorf("invalid store backend: %s (must be: sqlite, rest, or memory)", name)
}

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	for _, valid := range validFormats {
		if format == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateSettings checks a loaded settings file before anything is opened
func ValidateSettings(s *models.Settings) error {
	var errs []error

	if s.Store.Backend != "" {
		if err := ValidateBackend(s.Store.Backend); err != nil {
			errs = append(errs, err)
		}
	}
	if strings.EqualFold(s.Store.Backend, store.BackendREST) {
		if s.Store.REST.URL == "" {
			errs = append(errs, errors.New("store.rest.url is required for the rest backend"))
		} else if u, err := url.Parse(s.Store.REST.URL); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("store.rest.url is not an absolute URL: %s", s.Store.REST.URL))
		}
	}
	if _, err := log.ParseLevel(s.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if _, err := export.ParseLevel(s.Export.Level); err != nil {
		errs = append(errs, err)
	}
	if s.Export.Size < 0 {
		errs = append(errs, fmt.Errorf("export.size must not be negative: %d", s.Export.Size))
	}
	if s.UI.NoticeMillis < 0 {
		errs = append(errs, fmt.Errorf("ui.notice_ms must not be negative: %d", s.UI.NoticeMillis))
	}

	return errors.Join(errs...)
}

// Contains checks if a string is in a slice
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
