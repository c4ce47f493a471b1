package main

// artmon listens for Art-Net DMX traffic and prints a line whenever the
// contents of a universe change.  It is useful when testing the other tools
// without a node attached, run it on the same host and point them at
// 127.0.0.1.

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
	logger = logxi.New("artmon")

	listen = flag.String("listen", ":6454", "Address on which to receive Art-Net datagrams")
)

func init() {
	flag.Usage = options.Usage("[options]       Art-Net → terminal (artmon)",
		"artmon prints the ArtDMX traffic on the local segment, one line for every change of a universe")
}

func describe(change *planetarium.Change) string {
	msg := change.Msg
	return fmt.Sprintf("[ArtNet-IN] Source: %s | Universe: %d | Lit: %d | Pixel[0]: %s\n",
		msg.Source, msg.Universe, change.Lit, msg.Frame.Pixel(0))
}

func main() {
	options.Parse()

	if *options.Verbose {
		logger.SetLevel(logxi.LevelDebug)
		planetarium.SetLogLevel(logxi.LevelDebug)
	}
	logger.Debug(fmt.Sprintf("%s built at %s, against commit id %s", os.Args[0], version.BuildTime, version.GitHash))

	quitC := options.QuitOnSignal()

	mon, subscribeC, err := planetarium.StartMonitor(*listen, quitC)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(-1)
	}
	fmt.Printf("Listening on: %s\n", mon.Addr())

	planetarium.WatchChanges(subscribeC, func(change *planetarium.Change) {
		fmt.Print(describe(change))
	}, quitC)
	fmt.Println()
}
