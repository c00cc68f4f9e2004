// Command server runs the resource registry HTTP API until it receives
// SIGINT or SIGTERM.
//
// Configuration comes from CONFIG_PATH (default ./config.yaml) and the
// environment; run with -h to list the supported variables.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/resource-registry/internal/app"
	"github.com/heartmarshall/resource-registry/internal/config"
)

func main() {
	showVersion := flag.Bool("version", false, "print the build version and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-version]\n\n", os.Args[0])
		config.Usage(flag.CommandLine.Output())
	}
	flag.Parse()

	if *showVersion {
		fmt.Println(app.BuildVersion())
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
