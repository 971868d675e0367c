package screenshotone

import (
	"strings"
	"testing"
)

func TestQueryEncodeInsertionOrder(t *testing.T) {
	q := NewQuery()
	q.Set("url", "https://example.com")
	q.Set("block_ads", "true")
	q.Set("full_page", "true")

	want := "url=https%3A%2F%2Fexample.com&block_ads=true&full_page=true"
	if got := q.Encode(); got != want {
		t.Fatalf("Encode() = %q, want %q", got, want)
	}

	// Inserting the same keys in a different order changes the bytes.
	q2 := NewQuery()
	q2.Set("block_ads", "true")
	q2.Set("full_page", "true")
	q2.Set("url", "https://example.com")
	if q2.Encode() == q.Encode() {
		t.Fatalf("different insertion orders produced identical encodings")
	}
}

func TestQuerySetOverwritesInPlace(t *testing.T) {
	q := NewQuery()
	q.Set("url", "https://example.com")
	q.Set("block_ads", "true")
	q.Set("url", "https://example.org")

	want := "url=https%3A%2F%2Fexample.org&block_ads=true"
	if got := q.Encode(); got != want {
		t.Fatalf("Encode() = %q, want %q", got, want)
	}
	if q.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", q.Len())
	}
}

func TestQueryAddAppends(t *testing.T) {
	q := NewQuery()
	q.Set("url", "https://example.com")
	q.Add("hide_selectors", ".banner", ".modal")
	q.Add("hide_selectors", "#footer")

	want := "url=https%3A%2F%2Fexample.com&hide_selectors=.banner&hide_selectors=.modal&hide_selectors=%23footer"
	if got := q.Encode(); got != want {
		t.Fatalf("Encode() = %q, want %q", got, want)
	}

	vs := q.Values("hide_selectors")
	if len(vs) != 3 || vs[2] != "#footer" {
		t.Fatalf("Values() = %v, want three selectors ending in #footer", vs)
	}
}

func TestQueryEncodeEscaping(t *testing.T) {
	q := NewQuery()
	q.Set("user_agent", "Mozilla/5.0 (X11; Linux x86_64)")

	want := "user_agent=Mozilla%2F5.0+%28X11%3B+Linux+x86_64%29"
	if got := q.Encode(); got != want {
		t.Fatalf("Encode() = %q, want %q", got, want)
	}
}

func TestQueryCloneIsIndependent(t *testing.T) {
	q := NewQuery()
	q.Set("url", "https://example.com")
	q.Add("cookies", "a=1")

	c := q.Clone()
	c.Set("url", "https://changed.example")
	c.Add("cookies", "b=2")

	if got := q.Get("url"); got != "https://example.com" {
		t.Fatalf("mutating the clone changed the original: url = %q", got)
	}
	if len(q.Values("cookies")) != 1 {
		t.Fatalf("mutating the clone changed the original's multi-values")
	}

	q.Set("block_ads", "true")
	if c.Has("block_ads") {
		t.Fatalf("mutating the original changed the clone")
	}
}

func TestFormatCoordinate(t *testing.T) {
	cases := map[float64]string{
		40.0:   "40",
		2.5:    "2.5",
		-0.25:  "-0.25",
		0:      "0",
		-122.0: "-122",
	}

	for input, want := range cases {
		if got := formatCoordinate(input); got != want {
			t.Fatalf("formatCoordinate(%v) = %q, want %q", input, got, want)
		}
	}

	// Values that would take exponential form under %g must stay
	// fixed-point.
	if got := formatCoordinate(40); strings.ContainsAny(got, "eE") {
		t.Fatalf("formatCoordinate emitted exponential notation: %q", got)
	}
	if got := formatCoordinate(0.0000125); got != "0.0000125" {
		t.Fatalf("formatCoordinate(0.0000125) = %q, want %q", got, "0.0000125")
	}
}
