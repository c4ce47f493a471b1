package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	logxi "github.com/mgutz/logxi/v1"

	planetarium "github.com/gvard/planetarium-led"
	"github.com/gvard/planetarium-led/internal/options"
	"github.com/gvard/planetarium-led/model"
	"github.com/gvard/planetarium-led/version"
)

const (
	defaultColor      = "red"
	defaultBackground = "blue"

	// Pause between the steps of the closing fade, in hundredths of a second
	closingDelay = 4
)

var (
	logger = logxi.New("ledchase")

	steps    = model.DefaultSteps
	startLED = 0
	length   = 5
	duration = 10
	speed    = 0.1
)

func init() {
	flag.IntVar(&steps, "s", model.DefaultSteps, "Set the number of steps of the closing fade")
	flag.IntVar(&steps, "steps", model.DefaultSteps, "Set the number of steps of the closing fade")
	flag.IntVar(&startLED, "b", 0, "Set the starting LED number")
	flag.IntVar(&startLED, "startled", 0, "Set the starting LED number")
	flag.IntVar(&length, "l", 5, "Set the number of LEDs in the fragment")
	flag.IntVar(&length, "length", 5, "Set the number of LEDs in the fragment")
	flag.IntVar(&duration, "d", 10, "Set the total time to run the chase in seconds")
	flag.IntVar(&duration, "duration", 10, "Set the total time to run the chase in seconds")
	flag.Float64Var(&speed, "p", 0.1, "Set the delay between steps in seconds (lower = faster)")
	flag.Float64Var(&speed, "speed", 0.1, "Set the delay between steps in seconds (lower = faster)")

	flag.Usage = options.Usage("[options] [color] [bkgcolor]       chase → Art-Net (ledchase)",
		"ledchase runs a fragment of one color along the strip over a background color,\n"+
			"the strip is switched off first and faded to the fragment color at the end")
}

func main() {
	args := options.Parse()

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

	name := options.Positional(args, 0, defaultColor)
	color, found := cfg.Colors.Resolve(name, defaultColor)
	if !found {
		logger.Warn("Unknown color, switch to "+defaultColor, "color", name)
	}

	bkgName := options.Positional(args, 1, defaultBackground)
	background, found := cfg.Colors.Resolve(bkgName, defaultBackground)
	if !found {
		logger.Warn("Unknown color for bkgcolor, switch to "+defaultBackground, "color", bkgName)
	}

	quitC := options.QuitOnSignal()
	ctl := planetarium.NewController(cfg)

	if err = ctl.TurnOff(); err != nil {
		fmt.Fprintf(os.Stderr, "Error sending packet: %s\n", err.Error())
		os.Exit(1)
	}

	err = ctl.Chase(planetarium.ChaseOptions{
		Start:      startLED,
		Length:     length,
		Color:      color.RGB(),
		Background: background.RGB(),
		Speed:      time.Duration(speed * float64(time.Second)),
		Duration:   time.Duration(duration) * time.Second,
	}, quitC)
	switch {
	case err == planetarium.ErrInterrupted:
		fmt.Println()
		return
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error during chase: %s\n", err.Error())
		os.Exit(1)
	}

	err = ctl.Fade(planetarium.FadeOptions{
		Target: color.RGB(),
		Steps:  steps,
		Delay:  planetarium.Centiseconds(closingDelay),
	}, quitC)
	switch {
	case err == nil:
		fmt.Printf("Faded to color %s.\n", color)
	case err == planetarium.ErrInterrupted:
		fmt.Println()
	default:
		fmt.Fprintf(os.Stderr, "Error during fade to color: %s\n", err.Error())
		os.Exit(1)
	}
}
