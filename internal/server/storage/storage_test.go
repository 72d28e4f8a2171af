package storage

import (
	"strings"
	"testing"
)

func TestMakeStorageKey(t *testing.T) {
	k1 := MakeStorageKey()
	k2 := MakeStorageKey()

	if !strings.HasPrefix(k1, "photos/") {
		t.Fatalf("key must be under photos/: %q", k1)
	}
	if k1 == k2 {
		t.Fatalf("keys must be unique: %q", k1)
	}
}

func TestKeyFromURL(t *testing.T) {
	s := &S3Store{publicBaseURL: "http://cdn.example/agro-media"}

	key, ok := s.KeyFromURL("http://cdn.example/agro-media/photos/2026/9/1/abc")
	if !ok || key != "photos/2026/9/1/abc" {
		t.Fatalf("unexpected key: %q ok=%v", key, ok)
	}

	if _, ok := s.KeyFromURL("http://elsewhere.example/photos/x"); ok {
		t.Fatalf("foreign URL must not resolve to a key")
	}
}
