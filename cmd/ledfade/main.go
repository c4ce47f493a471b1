package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	logxi "github.com/mgutz/logxi/v1"

	planetarium "github.com/gvard/planetarium-led"
	"github.com/gvard/planetarium-led/internal/options"
	"github.com/gvard/planetarium-led/model"
	"github.com/gvard/planetarium-led/version"
)

const (
	defaultColor = "white"
	defaultMode  = "asc"
	defaultDelay = "5"
)

var (
	logger = logxi.New("ledfade")

	steps = model.DefaultSteps
)

func init() {
	flag.IntVar(&steps, "s", model.DefaultSteps, "Set the number of steps")
	flag.IntVar(&steps, "steps", model.DefaultSteps, "Set the number of steps")

	flag.Usage = options.Usage("[options] [color] [asc|desc] [delay]       fade → Art-Net (ledfade)",
		"ledfade gradually raises, or lowers, the brightness of a named color across the whole strip.\n"+
			"delay is the pause between steps in hundredths of a second, for example\n"+
			"\"ledfade maxlight desc 1 -s 300\"")
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
	target, found := cfg.Colors.Resolve(name, defaultColor)
	if !found {
		logger.Warn("Unknown color, switch to "+defaultColor, "color", name)
	}

	descending := false
	switch mode := options.Positional(args, 1, defaultMode); mode {
	case "asc":
	case "desc":
		descending = true
	default:
		fmt.Fprintf(os.Stderr, "mode must be asc or desc, not %q\n", mode)
		os.Exit(-1)
	}

	delay, errGo := strconv.ParseFloat(options.Positional(args, 2, defaultDelay), 64)
	if errGo != nil {
		fmt.Fprintf(os.Stderr, "delay must be a number: %s\n", errGo.Error())
		os.Exit(-1)
	}

	ctl := planetarium.NewController(cfg)
	err = ctl.Fade(planetarium.FadeOptions{
		Target:     target.RGB(),
		Steps:      steps,
		Delay:      planetarium.Centiseconds(delay),
		Descending: descending,
	}, options.QuitOnSignal())

	switch {
	case err == nil:
		fmt.Printf("Faded to color %s.\n", target)
	case err == planetarium.ErrInterrupted:
		fmt.Println()
	default:
		fmt.Fprintf(os.Stderr, "Error during fade to color: %s\n", err.Error())
		os.Exit(1)
	}
}
