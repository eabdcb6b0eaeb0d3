package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/williamhogman/kubedash/dashboard/internal/transport/rpc"
	"github.com/williamhogman/kubedash/dashboard/internal/view"
)

var (
	serverAddr = flag.String("server", "http://localhost:8080", "The dashboard server address")
	filter     = flag.String("filter", "", "Search text to apply")
	preset     = flag.String("preset", "", "Preset filter to apply (All, Database, Running, Failed)")
	sortKey    = flag.String("sort", "", "Sort key to apply")
	exportTo   = flag.String("export", "", "Write a snapshot to this file instead of listing")
	format     = flag.String("format", "", "Export format (xlsx or yaml)")
)

func main() {
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := rpc.NewClient(&http.Client{Timeout: 10 * time.Second}, *serverAddr)

	if *exportTo != "" {
		resp, err := client.Export(ctx, *format)
		if err != nil {
			log.Fatalf("Failed to export snapshot: %v", err)
		}
		if err := os.WriteFile(*exportTo, resp.Data, 0o644); err != nil {
			log.Fatalf("Failed to write %s: %v", *exportTo, err)
		}
		log.Printf("Snapshot saved:")
		log.Printf("  File: %s (suggested name %s)", *exportTo, resp.FileName)
		log.Printf("  Records: %d", resp.Records)
		return
	}

	actions := []view.Action{{Type: view.ActionRefresh}}
	switch {
	case *preset != "":
		actions = append(actions, view.Action{Type: view.ActionApplyPreset, Preset: *preset})
	case *filter != "":
		actions = append(actions, view.Action{Type: view.ActionSetFilter, Text: *filter})
	}
	if *sortKey != "" {
		actions = append(actions, view.Action{Type: view.ActionSetSort, Sort: *sortKey})
	}

	var resp *rpc.DispatchResponse
	state := view.State{}
	for _, action := range actions {
		var err error
		resp, err = client.Dispatch(ctx, state, action)
		if err != nil {
			log.Fatalf("Failed to dispatch %s: %v", action.Type, err)
		}
		state = resp.State
	}

	log.Printf("Page %d of %d (%d workloads):", resp.Page.Page, resp.Page.PageCount, resp.Page.Total)
	for _, w := range resp.Page.Rows {
		log.Printf("  %-4d %-20s %-14s %-13s %6s %6s %s", w.ID, w.Name, w.Cluster, w.Status, w.CPU, w.Memory, w.CreatedAt)
	}
}
