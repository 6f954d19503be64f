// Package main rolls a dice expression from the command line.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	dicercmd "github.com/louisbranch/dicer/internal/cmd/dicer"
	"github.com/louisbranch/dicer/internal/platform/config"
)

func main() {
	log.SetPrefix("[DICER] ")
	cfg, err := dicercmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := dicercmd.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		stop()
		config.Exitf("error: %v", err)
	}
}
