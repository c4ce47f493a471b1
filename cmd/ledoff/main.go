package main

import (
	"flag"
	"fmt"
	"os"

	logxi "github.com/mgutz/logxi/v1"

	planetarium "github.com/gvard/planetarium-led"
	"github.com/gvard/planetarium-led/internal/options"
	"github.com/gvard/planetarium-led/version"
)

var (
	logger = logxi.New("ledoff")
)

func init() {
	flag.Usage = options.Usage("[options]       off → Art-Net (ledoff)",
		"ledoff sends a single frame with every channel at zero, switching the strip off")
}

func main() {
	options.Parse()

	if *options.Verbose {
		logger.SetLevel(logxi.LevelDebug)
		planetarium.SetLogLevel(logxi.LevelDebug)
	}
	logger.Debug(fmt.Sprintf("%s built at %s, against commit id %s", os.Args[0], version.BuildTime, version.GitHash))

	cfg, err := options.Config()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(-1)
	}

	if err = planetarium.NewController(cfg).TurnOff(); err != nil {
		fmt.Fprintf(os.Stderr, "Error sending packet: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Printf("ArtNet DMX packet sent to %s:%d to turn off LEDs.\n", cfg.Addr(), cfg.Port)
}
