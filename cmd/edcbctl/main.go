// Command edcbctl is a small diagnostic client for an EDCB CtrlCmd server:
// it wires edcb.Client up from flags/env, runs one operation, and prints
// the result as JSON. If the result can't be fetched live and a cache
// database is configured, it falls back to the last cached snapshot.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/edcb-go/ctrlcmd/edcb"
	"github.com/edcb-go/ctrlcmd/internal/edcbcache"
	"github.com/edcb-go/ctrlcmd/internal/edcbconfig"
)

func main() {
	op := flag.String("op", "enum-service", "operation to run: enum-service, enum-reserve, pipe-exists")
	metricsAddr := flag.String("metrics-addr", "", "if set, serve Prometheus metrics on this address instead of running an operation")
	timeout := flag.Duration("timeout", 10*time.Second, "overall operation timeout")
	flag.Parse()

	cfg := edcbconfig.Load()
	if *metricsAddr != "" {
		cfg.MetricsEnabled = true
	}
	client := cfg.NewClient()

	if *metricsAddr != "" {
		serveMetrics(client, *metricsAddr)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	var cache *edcbcache.Cache
	if cfg.CacheDBPath != "" {
		var err error
		cache, err = edcbcache.Open(cfg.CacheDBPath)
		if err != nil {
			log.Fatalf("edcbctl: open cache: %v", err)
		}
		defer cache.Close()
	}

	switch *op {
	case "enum-service":
		runEnumService(ctx, client, cache)
	case "enum-reserve":
		runEnumReserve(ctx, client, cache)
	case "pipe-exists":
		printJSON(map[string]bool{"exists": client.PipeExists()})
	default:
		log.Fatalf("edcbctl: unknown -op %q", *op)
	}
}

func runEnumService(ctx context.Context, client *edcb.Client, cache *edcbcache.Cache) {
	services, err := client.EnumService(ctx)
	if err != nil {
		if !errors.Is(err, edcb.ErrNoResult) || cache == nil {
			log.Fatalf("edcbctl: EnumService: %v", err)
		}
		log.Printf("edcbctl: EnumService failed (%v), falling back to cache", err)
		services, err = cache.LoadServices(ctx)
		if err != nil {
			log.Fatalf("edcbctl: load cached services: %v", err)
		}
		printJSON(services)
		return
	}
	if cache != nil {
		if err := cache.SaveServices(ctx, services); err != nil {
			log.Printf("edcbctl: save services to cache: %v", err)
		}
	}
	printJSON(services)
}

func runEnumReserve(ctx context.Context, client *edcb.Client, cache *edcbcache.Cache) {
	reserves, err := client.EnumReserve2(ctx)
	if err != nil {
		if !errors.Is(err, edcb.ErrNoResult) || cache == nil {
			log.Fatalf("edcbctl: EnumReserve2: %v", err)
		}
		log.Printf("edcbctl: EnumReserve2 failed (%v), falling back to cache", err)
		reserves, err = cache.LoadReserves(ctx)
		if err != nil {
			log.Fatalf("edcbctl: load cached reserves: %v", err)
		}
		printJSON(reserves)
		return
	}
	if cache != nil {
		if err := cache.SaveReserves(ctx, reserves); err != nil {
			log.Printf("edcbctl: save reserves to cache: %v", err)
		}
	}
	printJSON(reserves)
}

func serveMetrics(client *edcb.Client, addr string) {
	reg := prometheus.NewRegistry()
	if err := edcbconfig.RegisterMetrics(reg, client); err != nil {
		log.Fatalf("edcbctl: register metrics: %v", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	log.Printf("edcbctl: serving metrics on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("edcbctl: http: %v", err)
	}
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Printf("edcbctl: encode: %v", err)
	}
}
