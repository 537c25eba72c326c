//go:build pprof

package main

import (
	"net/http"
	_ "net/http/pprof"

	"github.com/tesselslate/hazel/internal/log"
)

const pprofAddress = "localhost:6060"

func init() {
	log.Info("Started pprof server on %s.", pprofAddress)
	go func() {
		log.Error("pprof server: %s", http.ListenAndServe(pprofAddress, nil))
	}()
}
