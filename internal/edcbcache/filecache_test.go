package edcbcache

import (
	"bytes"
	"testing"
)

func TestFileCacheRoundTrip(t *testing.T) {
	c := NewFileCache(t.TempDir())
	want := []byte("some recorded TS bytes, repeated repeated repeated for compressibility")

	if err := c.Put("Recorded\\Show 2024-01-01.ts", want); err != nil {
		t.Fatal(err)
	}
	got, ok, err := c.Get("Recorded\\Show 2024-01-01.ts")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected cache hit")
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFileCacheMiss(t *testing.T) {
	c := NewFileCache(t.TempDir())
	_, ok, err := c.Get("does-not-exist")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected cache miss")
	}
}
