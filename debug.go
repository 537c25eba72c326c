package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/tesselslate/hazel/internal/engine"
	"github.com/tesselslate/hazel/internal/log"
)

// printDebug logs statistics about the running loop and the runtime.
func printDebug(eng *engine.Engine, sandbox *sandbox) {
	printLoop(eng, sandbox)
	printGc()
}

func printLoop(eng *engine.Engine, sandbox *sandbox) {
	conf := eng.Config()
	s := &strings.Builder{}
	s.WriteString("\nLoop: \n")
	fmt.Fprintf(s, "Mode: %s\n", conf.Mode)
	fmt.Fprintf(s, "Tick interval: %s\n", eng.Interval())
	fmt.Fprintf(s, "Queue capacity: %d\n", conf.QueueCapacity)
	fmt.Fprintf(s, "Ticks: %d\n", sandbox.ticks.Load())
	fmt.Fprintf(s, "Updates: %d", sandbox.updates.Load())
	log.Info(s.String())
}

func printGc() {
	mem := runtime.MemStats{}
	runtime.ReadMemStats(&mem)
	s := &strings.Builder{}
	s.WriteString("\nGC: \n")
	fmt.Fprintf(s, "Heap size: %.2f MB\n", float64(mem.Sys)/1e6)
	fmt.Fprintf(s, "Live objects: %d\n", mem.HeapObjects)
	fmt.Fprintf(s, "Mallocs/frees: %d/%d\n", mem.Mallocs, mem.Frees)
	fmt.Fprintf(s, "Current alloc: %.2f MB\n", float64(mem.HeapAlloc)/1e6)
	fmt.Fprintf(s, "Pause time: %.4f ms\n", float64(mem.PauseTotalNs)/1e6)
	fmt.Fprintf(s, "GC cycles: %d", mem.NumGC)
	log.Info(s.String())
}
