package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goblimey/go-tools/testsupport"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/goblimey/go-rtcm2rinex/jsonconfig"
	"github.com/goblimey/go-rtcm2rinex/rtcm/rtcmtest"
)

// input is one epoch of GPS, Galileo and BeiDou data.
func input() []byte {
	var buf bytes.Buffer
	buf.Write(rtcmtest.Frame1077)
	buf.Write(rtcmtest.Frame1097)
	buf.Write(rtcmtest.Frame1127)
	return buf.Bytes()
}

// run runs the command with the given arguments and returns what it wrote
// to stderr.
func run(args ...string) (string, error) {
	cmd := newRootCommand()
	var stderr bytes.Buffer
	cmd.SetOut(&stderr)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stderr.String(), err
}

func workingDirectory(t *testing.T) string {
	t.Helper()
	dir, err := testsupport.CreateWorkingDirectory()
	require.NoError(t, err)
	t.Cleanup(func() { testsupport.RemoveWorkingDirectory(dir) })
	return dir
}

// TestConvert checks that a file is converted to the expected .rnx name.
func TestConvert(t *testing.T) {
	dir := workingDirectory(t)
	in := filepath.Join(dir, "data.rtcm3")
	require.NoError(t, os.WriteFile(in, input(), 0644))

	_, err := run("convert", "--date", "2020-11-13", "--marker", "LEEDS", in)
	require.NoError(t, err)

	contents, err := os.ReadFile(in + ".rnx")
	require.NoError(t, err)
	text := string(contents)
	require.True(t, strings.HasPrefix(text, "     3.04           OBSERVATION DATA    M: Mixed"))
	require.Contains(t, text, "\nLEEDS ")
	require.Contains(t, text, "> 2020 11 13 00 00 23.0000000  0 21\n")
}

// TestRTKLIBName checks the output name with the RTKLIB LLI method.
func TestRTKLIBName(t *testing.T) {
	dir := workingDirectory(t)
	in := filepath.Join(dir, "data.rtcm3")
	require.NoError(t, os.WriteFile(in, input(), 0644))

	_, err := run("convert", "--date", "2020-11-13", "--use-rtklib-lli", in)
	require.NoError(t, err)

	_, err = os.Stat(in + ".rtklib.rnx")
	require.NoError(t, err)
}

// TestConfigFile checks that the config file is used and that the flags
// override it.
func TestConfigFile(t *testing.T) {
	dir := workingDirectory(t)
	in := filepath.Join(dir, "data.rtcm3")
	require.NoError(t, os.WriteFile(in, input(), 0644))
	metrics := filepath.Join(dir, "metrics.prom")
	configFile := filepath.Join(dir, "config.json")
	config := `{
		"reference_date": "2020-11-13",
		"marker_name": "FILE",
		"observer": "simon",
		"metrics_file": "` + metrics + `"
	}`
	require.NoError(t, os.WriteFile(configFile, []byte(config), 0644))

	out := filepath.Join(dir, "out.obs")
	_, err := run("convert", "-c", configFile, "--marker", "FLAG", "-o", out, in)
	require.NoError(t, err)

	contents, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(contents), "\nFLAG ")
	require.Contains(t, string(contents), "\nsimon ")

	m, err := os.ReadFile(metrics)
	require.NoError(t, err)
	require.Contains(t, string(m), `rtcm2rinex_frames_total{message_type="1077"} 1`)
	require.Contains(t, string(m), `rtcm2rinex_epochs_total{constellation="GPS"} 1`)
}

// TestLogDirectory checks that the event log goes to a daily file.
func TestLogDirectory(t *testing.T) {
	dir := workingDirectory(t)
	in := filepath.Join(dir, "data.rtcm3")
	require.NoError(t, os.WriteFile(in, input(), 0644))
	logDir := filepath.Join(dir, "logs")

	stderr, err := run("convert", "--date", "2020-11-13", "--log-dir", logDir, in)
	require.NoError(t, err)
	require.NotContains(t, stderr, "converted")

	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	require.True(t, strings.HasPrefix(entries[0].Name(), "rtcm2rinex."))
}

// TestFailures checks that bad arguments and missing files give an error.
func TestFailures(t *testing.T) {
	dir := workingDirectory(t)
	in := filepath.Join(dir, "data.rtcm3")
	require.NoError(t, os.WriteFile(in, input(), 0644))

	var testData = []struct {
		description string
		args        []string
		want        string
	}{
		{"no input", []string{"convert"}, "requires at least 1 arg"},
		{"missing file", []string{"convert", "--date", "2020-11-13", filepath.Join(dir, "junk")}, "junk"},
		{"bad date", []string{"convert", "--date", "13/11/2020", in}, "bad reference date"},
		{"bad workers", []string{"convert", "--workers", "0", in}, "workers must be at least 1"},
		{"missing config", []string{"convert", "-c", filepath.Join(dir, "junk.json"), in}, "cannot read the JSON control file"},
		{"two inputs one output", []string{"convert", "-o", "x", in, in}, "single input"},
	}
	for _, td := range testData {
		_, err := run(td.args...)
		if err == nil {
			t.Errorf("%s: expected an error", td.description)
			continue
		}
		if !strings.Contains(err.Error(), td.want) {
			t.Errorf("%s: want %q in %q", td.description, td.want, err.Error())
		}
	}
}

// TestBindFlags checks that every config flag is bound and that a missing
// flag is reported.
func TestBindFlags(t *testing.T) {
	cmd := newConvertCommand()
	v := jsonconfig.NewViper()
	require.NoError(t, bindFlags(v, cmd.Flags()))

	require.NoError(t, cmd.Flags().Set("workers", "3"))
	require.Equal(t, 3, v.GetInt(jsonconfig.KeyWorkers))

	flags := pflag.NewFlagSet("partial", pflag.ContinueOnError)
	flags.Bool("use-rtklib-lli", false, "")
	err := bindFlags(jsonconfig.NewViper(), flags)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no --")
}
