package statebar

import (
	"strings"
	"testing"
)

func TestVerificationURLCaliforniaAppendsBarNumber(t *testing.T) {
	got := VerificationURL("CA", "123456")
	want := "https://apps.calbar.ca.gov/attorney/Licensee/Detail/123456"
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestVerificationURLCaliforniaWithoutBarNumber(t *testing.T) {
	got := VerificationURL("CA", "")
	if got != barTable["CA"].URL {
		t.Fatalf("expected base CA URL, got %s", got)
	}
}

func TestVerificationURLOtherStatesUnmodified(t *testing.T) {
	for _, state := range []string{"TX", "NY", "FL", "WY"} {
		got := VerificationURL(state, "99999")
		if got != barTable[state].URL {
			t.Fatalf("%s: expected base URL %s, got %s", state, barTable[state].URL, got)
		}
		if strings.Contains(got, "99999") {
			t.Fatalf("%s: bar number must not leak into URL", state)
		}
	}
}

func TestVerificationURLUnknownStateFallsBack(t *testing.T) {
	got := VerificationURL("ZZ", "123")
	if got != fallback.URL {
		t.Fatalf("expected ABA fallback URL, got %s", got)
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	if Lookup("ca").Name != "State Bar of California" {
		t.Fatal("expected lowercase code to resolve")
	}
	if !Known(" tx ") {
		t.Fatal("expected trimmed code to resolve")
	}
}

func TestLookupUnknownStateBuildsFallbackEntry(t *testing.T) {
	info := Lookup("ZZ")
	if info.Name != "ZZ State Bar" {
		t.Fatalf("expected generic name, got %s", info.Name)
	}
	if info.URL != fallback.URL {
		t.Fatalf("expected fallback URL, got %s", info.URL)
	}
}

func TestTableCoversAllStatesPlusDC(t *testing.T) {
	if len(States()) != 51 {
		t.Fatalf("expected 51 entries (50 states + DC), got %d", len(States()))
	}
	for code, info := range States() {
		if info.Name == "" || info.URL == "" || info.Instructions == "" {
			t.Fatalf("%s: incomplete entry %+v", code, info)
		}
	}
}
