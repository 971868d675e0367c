package screenshotone

import (
	"errors"
	"testing"
)

func TestSignKnownAnswer(t *testing.T) {
	query := "url=https%3A%2F%2Fexample.com&block_ads=true&access_key=RcLsdM6uhIN6gw"

	got, err := Sign(query, "MW2vfkkgLTzGGw")
	if err != nil {
		t.Fatalf("Sign returned error: %v", err)
	}

	want := "3cf1edeafc139f41191928c1c5b8b04fe1d5722560244ccdd76a55d69120bbac"
	if got != want {
		t.Fatalf("Sign() = %q, want %q", got, want)
	}
}

func TestSignIsDeterministic(t *testing.T) {
	first, err := Sign("url=https%3A%2F%2Fexample.com", "secret")
	if err != nil {
		t.Fatalf("Sign returned error: %v", err)
	}
	second, err := Sign("url=https%3A%2F%2Fexample.com", "secret")
	if err != nil {
		t.Fatalf("Sign returned error: %v", err)
	}
	if first != second {
		t.Fatalf("identical inputs produced different signatures: %q vs %q", first, second)
	}
}

func TestSignRejectsEmptyKey(t *testing.T) {
	_, err := Sign("url=https%3A%2F%2Fexample.com", "")
	if !errors.Is(err, ErrMissingSecretKey) {
		t.Fatalf("Sign with empty key returned %v, want ErrMissingSecretKey", err)
	}
}
