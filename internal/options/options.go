package options

// This package holds the options common to the planetarium command line tools,
// the location of the Art-Net node and the geometry of the strip.  Options can
// also be supplied using environment variables, command line flags take
// precedence over the environment which takes precedence over the
// configuration file.

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path"
	"syscall"

	"github.com/ianschenck/envflag"
	"github.com/pkg/errors"

	"github.com/gvard/planetarium-led/model"
	"github.com/gvard/planetarium-led/version"
)

var (
	configFn = flag.String("config", "", "YAML file holding the controller address, pixel count and named colors")
	ip       = flag.String("ip", "", "IP address of the Art-Net node, the broadcast address is used when empty")
	port     = flag.Int("port", 0, "UDP port of the Art-Net node (default 6454)")
	universe = flag.Int("universe", -1, "Art-Net universe the strip listens on (default 0)")
	pixels   = flag.Int("pixels", 0, "number of RGB pixels on the strip, at most 170 (default 170)")

	Verbose = flag.Bool("v", false, "When enabled will print internal logging for this tool")

	envConfigFn = envflag.String("PLANETARIUM_CONFIG", "", "YAML configuration file")
	envIP       = envflag.String("PLANETARIUM_IP", "", "IP address of the Art-Net node")
	envPixels   = envflag.Int("PLANETARIUM_PIXELS", 0, "number of RGB pixels on the strip")
)

// Usage returns a flag.Usage function that prints the synopsis and description
// of a tool followed by the options it accepts
func Usage(synopsis string, description string) func() {
	return func() {
		fmt.Fprintln(os.Stderr, path.Base(os.Args[0]))
		fmt.Fprintln(os.Stderr, "usage: ", os.Args[0], synopsis, "     ", version.GitHash, "    ", version.BuildTime)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, description)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Options:")
		fmt.Fprintln(os.Stderr, "")
		flag.PrintDefaults()
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Environment Variables:")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "PLANETARIUM_CONFIG, PLANETARIUM_IP and PLANETARIUM_PIXELS are used when the matching option is not given.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "log levels are handled by the LOGXI env variables, these are documented at https://github.com/mgutz/logxi")
	}
}

// Parse processes the environment and the command line.  Positional arguments
// may be interleaved with flags, as in "maxlight desc 1 -s 300", and are
// returned in order.
func Parse() (positional []string) {
	if !envflag.Parsed() {
		envflag.Parse()
	}
	if !flag.Parsed() {
		flag.Parse()
	}
	return interleaved(flag.CommandLine)
}

func interleaved(fs *flag.FlagSet) (positional []string) {
	for fs.NArg() != 0 {
		args := fs.Args()
		positional = append(positional, args[0])
		// The flag set was created with ExitOnError so Parse only returns on success
		fs.Parse(args[1:])
	}
	return positional
}

// Config assembles the controller configuration from the file, environment
// and command line
func Config() (cfg *model.Config, err error) {
	fn := *configFn
	if len(fn) == 0 {
		fn = *envConfigFn
	}

	cfg = model.DefaultConfig()
	if len(fn) != 0 {
		if cfg, err = model.LoadConfig(fn); err != nil {
			return nil, err
		}
	}

	switch {
	case len(*ip) != 0:
		cfg.IP = *ip
	case len(*envIP) != 0:
		cfg.IP = *envIP
	}
	switch {
	case *pixels != 0:
		cfg.Pixels = *pixels
	case *envPixels != 0:
		cfg.Pixels = *envPixels
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if *universe >= 0 {
		cfg.Universe = *universe
	}

	if err = cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid options")
	}
	return cfg, nil
}

// QuitOnSignal returns a channel that is closed when the process is asked to
// stop, animations use it to end early
func QuitOnSignal() (quitC <-chan struct{}) {
	sigC := make(chan os.Signal, 1)
	signal.Notify(sigC, syscall.SIGINT, syscall.SIGTERM)

	stopC := make(chan struct{})
	go func() {
		<-sigC
		close(stopC)
	}()
	return stopC
}

// Positional returns the argument at idx or def when fewer were given
func Positional(args []string, idx int, def string) string {
	if idx < len(args) {
		return args[idx]
	}
	return def
}
