package options

import (
	"flag"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gvard/planetarium-led/model"
)

func TestInterleaved(t *testing.T) {
	fs := flag.NewFlagSet("ledfade", flag.ContinueOnError)
	steps := fs.Int("s", 200, "steps")

	require.NoError(t, fs.Parse([]string{"maxlight", "desc", "1", "-s", "300"}))
	args := interleaved(fs)

	assert.Equal(t, []string{"maxlight", "desc", "1"}, args)
	assert.Equal(t, 300, *steps)

	fs = flag.NewFlagSet("ledchase", flag.ContinueOnError)
	length := fs.Int("l", 5, "length")
	require.NoError(t, fs.Parse([]string{"-l", "3", "green", "-l", "7", "black"}))
	assert.Equal(t, []string{"green", "black"}, interleaved(fs))
	assert.Equal(t, 7, *length)
}

func TestPositional(t *testing.T) {
	args := []string{"red"}
	assert.Equal(t, "red", Positional(args, 0, "white"))
	assert.Equal(t, "asc", Positional(args, 1, "asc"))
	assert.Equal(t, "5", Positional(nil, 2, "5"))
}

func resetOptions() {
	*configFn, *envConfigFn = "", ""
	*ip, *envIP = "", ""
	*pixels, *envPixels = 0, 0
	*port = 0
	*universe = -1
}

func TestConfigPrecedence(t *testing.T) {
	defer resetOptions()

	dir, errGo := ioutil.TempDir("", "options")
	require.NoError(t, errGo)
	defer os.RemoveAll(dir)

	fn := filepath.Join(dir, "led.yaml")
	require.NoError(t, ioutil.WriteFile(fn, []byte("ip: 10.0.0.9\npixels: 60\nuniverse: 2\n"), 0600))

	resetOptions()
	*envConfigFn = fn
	cfg, err := Config()
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.9", cfg.IP)
	assert.Equal(t, 60, cfg.Pixels)
	assert.Equal(t, 2, cfg.Universe)

	*envIP = "10.0.0.10"
	*envPixels = 50
	cfg, err = Config()
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.10", cfg.IP)
	assert.Equal(t, 50, cfg.Pixels)

	*ip = "10.0.0.11"
	*pixels = 40
	*universe = 0
	*port = 6455
	cfg, err = Config()
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.11", cfg.IP)
	assert.Equal(t, 40, cfg.Pixels)
	assert.Equal(t, 0, cfg.Universe)
	assert.Equal(t, 6455, cfg.Port)
}

func TestConfigDefaultsAndRejects(t *testing.T) {
	defer resetOptions()

	resetOptions()
	cfg, err := Config()
	require.NoError(t, err)
	assert.Equal(t, model.BroadcastIP, cfg.Addr())
	assert.Equal(t, model.MaxPixels, cfg.Pixels)

	*pixels = 500
	_, err = Config()
	assert.Error(t, err)

	resetOptions()
	*configFn = "/nonexistent/led.yaml"
	_, err = Config()
	assert.Error(t, err)
}
