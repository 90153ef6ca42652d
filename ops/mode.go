package ops

import (
	"encoding/json"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"sync"

	"github.com/evan-idocoding/dirtyconst"
)

type modeConfig struct {
	format Format
}

// ModeOption configures ModeHandler.
type ModeOption func(*modeConfig)

// WithModeDefaultFormat sets the default response format.
//
// This default can be overridden per request by URL query:
//   - ?format=json
//   - ?format=text
//
// Default is FormatText.
func WithModeDefaultFormat(f Format) ModeOption {
	return func(c *modeConfig) { c.format = f }
}

func applyModeOptions(opts []ModeOption) modeConfig {
	cfg := modeConfig{format: FormatText}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.format != FormatText && cfg.format != FormatJSON {
		cfg.format = FormatText
	}
	return cfg
}

// ModeInfo is a point-in-time view of the dirtyconst build configuration.
type ModeInfo struct {
	Mode     string `json:"mode"`
	Profile  string `json:"profile"`
	Override string `json:"override"`

	// Warnings is dirtyconst.WarningCount() at the time of the snapshot.
	Warnings uint64 `json:"warnings"`

	// Tags is the -tags build setting recorded in the binary, if available.
	Tags string `json:"tags,omitempty"`
}

type modeResponse struct {
	OK    bool      `json:"ok"`
	Error string    `json:"error,omitempty"`
	Mode  *ModeInfo `json:"mode,omitempty"`
}

// ModeSnapshot returns the current ModeInfo.
func ModeSnapshot() ModeInfo {
	b := dirtyconst.Build()
	return ModeInfo{
		Mode:     b.Mode.String(),
		Profile:  b.Profile.String(),
		Override: b.Override.String(),
		Warnings: dirtyconst.WarningCount(),
		Tags:     buildTags(),
	}
}

// ModeHandler returns a handler that outputs the dirtyconst build configuration.
//
// Behavior:
//   - GET/HEAD only; other methods return 405.
//   - By default, it renders text. You can change the default with options.
//   - The response format can be overridden per request by URL query (?format=json|text).
func ModeHandler(opts ...ModeOption) http.Handler {
	cfg := applyModeOptions(opts)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			panic("ops: nil request")
		}
		format := formatFromRequest(r, cfg.format)
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			writeMode(w, r, format, http.StatusMethodNotAllowed, modeResponse{
				OK:    false,
				Error: "method not allowed",
			})
			return
		}
		info := ModeSnapshot()
		writeMode(w, r, format, http.StatusOK, modeResponse{OK: true, Mode: &info})
	})
}

func writeMode(w http.ResponseWriter, r *http.Request, f Format, code int, resp modeResponse) {
	w.Header().Set("Cache-Control", "no-store")
	switch f {
	case FormatJSON:
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(code)
		if r.Method == http.MethodHead {
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	default:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(code)
		if r.Method == http.MethodHead {
			return
		}
		if !resp.OK || resp.Mode == nil {
			if resp.Error != "" {
				_, _ = w.Write([]byte(resp.Error + "\n"))
			} else {
				_, _ = w.Write([]byte("error\n"))
			}
			return
		}
		_, _ = w.Write([]byte(renderModeText(*resp.Mode)))
	}
}

func renderModeText(m ModeInfo) string {
	var b strings.Builder
	b.Grow(96)

	// One key per line, tab-separated.
	writeKV := func(k, v string) {
		if v == "" {
			return
		}
		b.WriteString(k)
		b.WriteByte('\t')
		b.WriteString(v)
		b.WriteByte('\n')
	}
	writeKV("mode", m.Mode)
	writeKV("profile", m.Profile)
	writeKV("override", m.Override)
	writeKV("warnings", strconv.FormatUint(m.Warnings, 10))
	writeKV("tags", m.Tags)
	return b.String()
}

var (
	tagsOnce   sync.Once
	cachedTags string
)

// Build info is immutable for the lifetime of the process; read it once.
func buildTags() string {
	tagsOnce.Do(func() {
		bi, ok := debug.ReadBuildInfo()
		if !ok || bi == nil {
			return
		}
		cachedTags = tagsFromSettings(bi.Settings)
	})
	return cachedTags
}

func tagsFromSettings(settings []debug.BuildSetting) string {
	for _, kv := range settings {
		if kv.Key == "-tags" {
			return kv.Value
		}
	}
	return ""
}
