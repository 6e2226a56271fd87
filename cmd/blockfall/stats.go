package main

import (
	"net/http"

	"github.com/arl/statsviz"

	blog "github.com/plus3/blockfall/log"
)

// serveStats exposes runtime charts at http://addr/debug/statsviz/.
func serveStats(addr string) {
	mux := http.NewServeMux()
	if err := statsviz.Register(mux); err != nil {
		blog.Error("statsviz: %v", err)
		return
	}

	go func() {
		blog.Info("runtime stats at http://%s/debug/statsviz/", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			blog.Error("statsviz server: %v", err)
		}
	}()
}
