package edcbcache

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/edcb-go/ctrlcmd/edcb"
)

func TestServicesRoundTrip(t *testing.T) {
	dir := t.TempDir()
	c, err := Open(filepath.Join(dir, "cache.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	ctx := context.Background()
	in := []edcb.ServiceInfo{
		{ONID: 1, TSID: 2, SID: 3, ServiceName: "NHK"},
		{ONID: 1, TSID: 2, SID: 4, ServiceName: "ETV"},
	}
	if err := c.SaveServices(ctx, in); err != nil {
		t.Fatal(err)
	}
	out, err := c.LoadServices(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 || out[0].ServiceName != "NHK" || out[1].ServiceName != "ETV" {
		t.Fatalf("unexpected round trip: %+v", out)
	}

	// saving again replaces rather than appends.
	if err := c.SaveServices(ctx, in[:1]); err != nil {
		t.Fatal(err)
	}
	out, err = c.LoadServices(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 {
		t.Fatalf("expected replace semantics, got %d rows", len(out))
	}
}

func TestReservesRoundTrip(t *testing.T) {
	dir := t.TempDir()
	c, err := Open(filepath.Join(dir, "cache.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	ctx := context.Background()
	in := []edcb.ReserveData{{ReserveID: 10, Title: "Show A"}}
	if err := c.SaveReserves(ctx, in); err != nil {
		t.Fatal(err)
	}
	out, err := c.LoadReserves(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].Title != "Show A" {
		t.Fatalf("unexpected round trip: %+v", out)
	}
}

func TestRecInfoRoundTrip(t *testing.T) {
	dir := t.TempDir()
	c, err := Open(filepath.Join(dir, "cache.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	ctx := context.Background()
	in := []edcb.RecFileInfo{{ID: 5, Title: "Recorded Show"}}
	if err := c.SaveRecInfo(ctx, in); err != nil {
		t.Fatal(err)
	}
	out, err := c.LoadRecInfo(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].Title != "Recorded Show" {
		t.Fatalf("unexpected round trip: %+v", out)
	}
}
