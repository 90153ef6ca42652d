package ops

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/evan-idocoding/dirtyconst"
)

func TestMode_Text_OK(t *testing.T) {
	h := ModeHandler()
	r := httptest.NewRequest(http.MethodGet, "http://example/mode", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	resp := w.Result()
	t.Cleanup(func() { _ = resp.Body.Close() })

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d, want=%d", resp.StatusCode, http.StatusOK)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("Content-Type=%q, want text/plain", ct)
	}
	if cc := resp.Header.Get("Cache-Control"); cc != "no-store" {
		t.Fatalf("Cache-Control=%q, want no-store", cc)
	}
	body := w.Body.String()
	want := "mode\t" + dirtyconst.CurrentMode.String() + "\n"
	if !strings.HasPrefix(body, want) {
		t.Fatalf("body=%q, want prefix %q", body, want)
	}
	for _, k := range []string{"profile\t", "override\t", "warnings\t"} {
		if !strings.Contains(body, k) {
			t.Fatalf("body=%q, want contain %q", body, k)
		}
	}
}

func TestMode_JSON_OK(t *testing.T) {
	h := ModeHandler(WithModeDefaultFormat(FormatJSON))
	r := httptest.NewRequest(http.MethodGet, "http://example/mode", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	resp := w.Result()
	t.Cleanup(func() { _ = resp.Body.Close() })

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d, want=%d", resp.StatusCode, http.StatusOK)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("Content-Type=%q, want application/json", ct)
	}
	var got modeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.OK || got.Mode == nil {
		t.Fatalf("got=%+v, want ok with mode", got)
	}
	b := dirtyconst.Build()
	if got.Mode.Mode != b.Mode.String() || got.Mode.Profile != b.Profile.String() || got.Mode.Override != b.Override.String() {
		t.Fatalf("mode=%+v, want %+v", *got.Mode, b)
	}
}

func TestMode_QueryFormatOverridesOption(t *testing.T) {
	h := ModeHandler(WithModeDefaultFormat(FormatJSON))
	r := httptest.NewRequest(http.MethodGet, "http://example/mode?format=text", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	if ct := w.Result().Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("Content-Type=%q, want text/plain", ct)
	}
	if body := w.Body.String(); !strings.Contains(body, "mode\t") {
		t.Fatalf("body=%q, want contain %q", body, "mode\t")
	}
}

func TestMode_InvalidFormatOptionFallsBackToText(t *testing.T) {
	h := ModeHandler(WithModeDefaultFormat(Format(42)), nil)
	r := httptest.NewRequest(http.MethodGet, "http://example/mode", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	if ct := w.Result().Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("Content-Type=%q, want text/plain", ct)
	}
}

func TestMode_MethodNotAllowed(t *testing.T) {
	h := ModeHandler()
	r := httptest.NewRequest(http.MethodPost, "http://example/mode", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	resp := w.Result()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("status=%d, want=%d", resp.StatusCode, http.StatusMethodNotAllowed)
	}
	if allow := resp.Header.Get("Allow"); allow != "GET, HEAD" {
		t.Fatalf("Allow=%q, want %q", allow, "GET, HEAD")
	}
	if body := w.Body.String(); body != "method not allowed\n" {
		t.Fatalf("body=%q", body)
	}
}

func TestMode_HeadHasNoBody(t *testing.T) {
	h := ModeHandler()
	r := httptest.NewRequest(http.MethodHead, "http://example/mode", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want=%d", w.Code, http.StatusOK)
	}
	if w.Body.Len() != 0 {
		t.Fatalf("body=%q, want empty", w.Body.String())
	}
}

func TestModeSnapshot_TracksWarningCount(t *testing.T) {
	prev := dirtyconst.SetWarningHandler(func(dirtyconst.Warning) {})
	t.Cleanup(func() { dirtyconst.SetWarningHandler(prev) })

	before := ModeSnapshot().Warnings
	dirtyconst.New(1).UnsafeReplace(2)
	after := ModeSnapshot().Warnings

	var want uint64
	if dirtyconst.CurrentMode == dirtyconst.ModeFrozen {
		want = 1
	}
	if after-before != want {
		t.Fatalf("warnings delta=%d, want=%d", after-before, want)
	}
}

func TestRenderModeText_SkipsEmpty(t *testing.T) {
	got := renderModeText(ModeInfo{Mode: "frozen", Profile: "release", Override: "none", Warnings: 3})
	want := "mode\tfrozen\nprofile\trelease\noverride\tnone\nwarnings\t3\n"
	if got != want {
		t.Fatalf("got=%q, want=%q", got, want)
	}
}

func TestTagsFromSettings(t *testing.T) {
	s := []debug.BuildSetting{
		{Key: "-compiler", Value: "gc"},
		{Key: "-tags", Value: "release,dirtyconst_force_dynamic"},
	}
	if got := tagsFromSettings(s); got != "release,dirtyconst_force_dynamic" {
		t.Fatalf("got=%q", got)
	}
	if got := tagsFromSettings(nil); got != "" {
		t.Fatalf("got=%q, want empty", got)
	}
}
