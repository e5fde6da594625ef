// The rtcm2rinex tool converts files of RTCM3 messages to RINEX 3.04
// observation files.
//
//	rtcm2rinex convert --date 2020-11-13 data.20201113.rtcm3
//
// creates data.20201113.rtcm3.rnx.  The Multiple Signal Messages (MSM4 to
// MSM7) for GPS, Galileo and BeiDou are converted.  The station position
// comes from any 1005 or 1006 message.
//
// An MSM carries a time of week, so the week must come from somewhere.
// The --date flag gives any day in the week that the data was collected.
// Without it, the week for each constellation is taken from its first
// ephemeris message and any MSMs before that are skipped.
//
// The settings can also be given in a JSON config file (see the jsonconfig
// package).  The command line flags override the file.  Problems with the
// data are written to the event log, which is stderr unless a log
// directory is given.  The exit status is non-zero if any of the files
// could not be read or written.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/goblimey/go-tools/clock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"github.com/goblimey/go-rtcm2rinex/apps/appcore"
	"github.com/goblimey/go-rtcm2rinex/jsonconfig"
	"github.com/goblimey/go-rtcm2rinex/rtcm/stats"
	"github.com/goblimey/go-rtcm2rinex/rtcm/utils"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// newRootCommand creates the command tree.
func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rtcm2rinex",
		Short: "convert RTCM3 to RINEX observation files",
	}
	rootCmd.AddCommand(newConvertCommand())
	return rootCmd
}

// flagKeys maps the convert flags to the config keys.
var flagKeys = map[string]string{
	"use-rtklib-lli": jsonconfig.KeyUseRTKLIBLLI,
	"date":           jsonconfig.KeyReferenceDate,
	"marker":         jsonconfig.KeyMarkerName,
	"observer":       jsonconfig.KeyObserver,
	"agency":         jsonconfig.KeyAgency,
	"log-dir":        jsonconfig.KeyLogDirectory,
	"log-level":      jsonconfig.KeyLogLevel,
	"metrics-file":   jsonconfig.KeyMetricsFile,
	"workers":        jsonconfig.KeyWorkers,
}

func newConvertCommand() *cobra.Command {
	var configFileName string
	var output string

	v := jsonconfig.NewViper()

	cmd := &cobra.Command{
		Use:   "convert [flags] file_path...",
		Short: "convert RTCM3 files to RINEX",
		Long: `Convert each RTCM3 file to a RINEX 3.04 observation file.  The
output file is the input file name with ".rnx" added, or ".rtklib.rnx" with
--use-rtklib-lli.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if err := bindFlags(v, cmd.Flags()); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}
			return runConvert(cmd, v, configFileName, output, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configFileName, "config", "c", "", "JSON config file")
	flags.StringVarP(&output, "output", "o", "", "output file (single input only)")
	flags.Bool("use-rtklib-lli", false, "use the simplified RTKLIB loss of lock method")
	flags.String("date", "", "reference date yyyy-mm-dd (otherwise the week comes from ephemerides)")
	flags.String("marker", "", "RINEX marker name")
	flags.String("observer", "", "RINEX observer")
	flags.String("agency", "", "RINEX agency")
	flags.String("log-dir", "", "write a daily event log in this directory instead of stderr")
	flags.String("log-level", "info", "debug, info, warn or error")
	flags.String("metrics-file", "", "write the counters in Prometheus text format to this file")
	flags.Int("workers", 1, "number of files to convert at the same time")

	return cmd
}

// bindFlags makes the flags override the config settings.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for flag, key := range flagKeys {
		f := flags.Lookup(flag)
		if f == nil {
			return fmt.Errorf("no --%s flag for config key %s", flag, key)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("cannot bind --%s to %s - %w", flag, key, err)
		}
	}
	return nil
}

// runConvert gets the config and converts the files.
func runConvert(cmd *cobra.Command, v *viper.Viper, configFileName, output string, inputs []string) error {
	if configFileName != "" {
		if err := jsonconfig.ReadFile(v, configFileName); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			return err
		}
	}

	conf, err := jsonconfig.Unmarshal(v)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return err
	}

	level, _ := conf.Level()
	logger := utils.NewLogger(cmd.ErrOrStderr(), level)
	if conf.LogDirectory != "" {
		if err := os.MkdirAll(conf.LogDirectory, 0755); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			return err
		}
		logger = utils.NewEventLogger(conf.LogDirectory, level)
	}

	registry := prometheus.NewRegistry()
	st := stats.New(registry)

	core := appcore.New(conf, logger, st, clock.NewSystemClock())
	err = core.ConvertFiles(cmd.Context(), inputs, output)

	if conf.MetricsFile != "" {
		if metricsErr := stats.WriteToFile(conf.MetricsFile, registry); metricsErr != nil {
			logger.Error("cannot write metrics", "file", conf.MetricsFile, "error", metricsErr)
			err = multierr.Append(err, metricsErr)
		}
	}

	return err
}
