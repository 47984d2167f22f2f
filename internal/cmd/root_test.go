package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoppxi/shades/pkg/backlight"
)

func newDevice(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range map[string]string{
		backlight.ActualBrightnessFile: "120\n",
		backlight.BrightnessFile:       "100\n",
		backlight.MaxBrightnessFile:    "255\n",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func brightnessFile(t *testing.T, dir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, backlight.BrightnessFile))
	require.NoError(t, err)
	return string(data)
}

func TestGet(t *testing.T) {
	dir := newDevice(t)

	out, err := execute(t, "get", "--path", dir)
	require.NoError(t, err)

	want := "Sysfs path: " + dir + "\n" +
		"Actual brightness: 120\n" +
		"Brightness: 100\n" +
		"Max brightness: 255\n"
	assert.Equal(t, want, out)
}

func TestGet_JSON(t *testing.T) {
	dir := newDevice(t)

	out, err := execute(t, "get", "--path", dir, "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"actual_brightness": 120`)
	assert.Contains(t, out, `"level": 39`)
}

func TestGet_InvalidPath(t *testing.T) {
	out, err := execute(t, "get", "--path", filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, backlight.ErrInvalidDevicePath)
	assert.Empty(t, out)
}

func TestGet_NoPath(t *testing.T) {
	_, err := execute(t, "get")
	assert.ErrorContains(t, err, "no device path")
}

func TestSet(t *testing.T) {
	dir := newDevice(t)

	_, err := execute(t, "set", "--path", dir, "--brightness", "200")
	require.NoError(t, err)
	assert.Equal(t, "200", brightnessFile(t, dir))

	_, err = execute(t, "set", "--path", dir, "--brightness", "300")
	assert.ErrorIs(t, err, backlight.ErrOutOfRange)
	assert.Equal(t, "200", brightnessFile(t, dir))

	_, err = execute(t, "set", "--path", dir, "--brightness", "abc")
	assert.ErrorIs(t, err, backlight.ErrMalformedInput)
	assert.Equal(t, "200", brightnessFile(t, dir))
}

func TestSet_RequiresBrightness(t *testing.T) {
	dir := newDevice(t)

	_, err := execute(t, "set", "--path", dir)
	assert.Error(t, err)
	assert.Equal(t, "100\n", brightnessFile(t, dir))
}

func TestSet_DeviceFromConfig(t *testing.T) {
	dir := newDevice(t)
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("device: "+dir+"\n"), 0644))

	_, err := execute(t, "--config", configPath, "set", "--brightness", "17")
	require.NoError(t, err)
	assert.Equal(t, "17", brightnessFile(t, dir))
}

func TestSet_UnknownWriter(t *testing.T) {
	dir := newDevice(t)

	_, err := execute(t, "--writer", "ddc", "set", "--path", dir, "--brightness", "10")
	assert.ErrorContains(t, err, "unknown writer")
	assert.Equal(t, "100\n", brightnessFile(t, dir))
}
