package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/lifelattice/utils"
)

func main() {
	config, err := utils.ParseArgs(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	lattice, err := loadLattice(config)
	if err != nil {
		log.Fatal(err)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g := newGame(config, lattice, os.Stdout)
	g.displayGameInfo()

	switch err = g.run(ctx); {
	case errors.Is(err, errFinished):
		fmt.Printf("\n🏁 Stopped: %s\n", g.reason)
	case errors.Is(err, context.Canceled):
		fmt.Println("\n🛑 Shutting down gracefully...")
	case err != nil:
		stop()
		log.Fatal(err)
	}
	g.displayFinalStats()
}
