package main

import (
	"github.com/spotit/spotit/internal/config"
	"github.com/spotit/spotit/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
)

func main() {
	cfg := config.NewConfig()
	entrypoint.Run(cfg, Version)
}
