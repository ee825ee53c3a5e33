package main

import (
	"encoding/csv"
	"runtime"
	"strconv"
)

// BenchResult is one CSV row: a structure/config pair, what was measured,
// and the heap right after it ran.
type BenchResult struct {
	Name      string
	Config    string
	Operation string
	LatencyNs int64
	Mem       MemoryStats
}

type MemoryStats struct {
	AllocMB      uint64
	TotalAllocMB uint64 // cumulative, so churn shows up even after GC
	HeapObjects  uint64
}

// SampleMemory forces a GC first so AllocMB reflects live data.
func SampleMemory() MemoryStats {
	var m runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m)
	return MemoryStats{
		AllocMB:      m.Alloc >> 20,
		TotalAllocMB: m.TotalAlloc >> 20,
		HeapObjects:  m.HeapObjects,
	}
}

var csvHeader = []string{"Structure", "Config", "TestType", "LatencyNs", "MemMB", "TotalAllocMB", "HeapObjects"}

func (r BenchResult) row() []string {
	return []string{
		r.Name,
		r.Config,
		r.Operation,
		strconv.FormatInt(r.LatencyNs, 10),
		strconv.FormatUint(r.Mem.AllocMB, 10),
		strconv.FormatUint(r.Mem.TotalAllocMB, 10),
		strconv.FormatUint(r.Mem.HeapObjects, 10),
	}
}

func Record(w *csv.Writer, r BenchResult) error {
	return w.Write(r.row())
}
