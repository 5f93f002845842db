package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/handiism/motogp-nospoiler/internal/config"
	"github.com/handiism/motogp-nospoiler/internal/tui"
)

func main() {
	configFlag := flag.String("config", "nospoiler.toml", "Path to config file")
	flag.Parse()

	settings, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	settings.ApplyEnv()

	// The alternate screen owns the terminal; request logs are discarded.
	logger := log.New(io.Discard)

	if err := tui.Run(settings, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
