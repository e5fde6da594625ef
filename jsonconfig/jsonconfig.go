// The jsonconfig package reads the JSON configuration file for the
// rtcm2rinex tools.
//
// An example config file:
//
//	{
//	    "use_rtklib_lli": false,
//	    "reference_date": "2020-11-13",
//	    "marker_name": "LEEDS",
//	    "observer": "simon",
//	    "agency": "goblimey.com",
//	    "log_directory": "logs",
//	    "log_level": "info",
//	    "metrics_file": "metrics.prom",
//	    "workers": 4
//	}
//
// All the fields are optional.  The file is read through viper, so the
// command line flags can be bound to the same keys and override the
// values in the file.
package jsonconfig

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/viper"

	"github.com/goblimey/go-rtcm2rinex/rtcm/lockstatus"
	"github.com/goblimey/go-rtcm2rinex/rtcm/utils"
)

// The config keys.
const (
	KeyUseRTKLIBLLI  = "use_rtklib_lli"
	KeyReferenceDate = "reference_date"
	KeyMarkerName    = "marker_name"
	KeyObserver      = "observer"
	KeyAgency        = "agency"
	KeyLogDirectory  = "log_directory"
	KeyLogLevel      = "log_level"
	KeyMetricsFile   = "metrics_file"
	KeyWorkers       = "workers"
)

// DateLayout is the layout of the reference date.
const DateLayout = "2006-01-02"

// Config contains the values from the JSON config file.
type Config struct {
	// UseRTKLIBLLI selects the simplified RTKLIB loss of lock rule.
	UseRTKLIBLLI bool `json:"use_rtklib_lli" mapstructure:"use_rtklib_lli"`

	// ReferenceDate (yyyy-mm-dd) is any day in the week that the data was
	// collected.  If it's empty the week comes from ephemeris messages.
	ReferenceDate string `json:"reference_date" mapstructure:"reference_date"`

	MarkerName string `json:"marker_name" mapstructure:"marker_name"`
	Observer   string `json:"observer" mapstructure:"observer"`
	Agency     string `json:"agency" mapstructure:"agency"`

	// LogDirectory is where the daily event log is written.  If it's
	// empty the log goes to stderr.
	LogDirectory string `json:"log_directory" mapstructure:"log_directory"`
	LogLevel     string `json:"log_level" mapstructure:"log_level"`

	// MetricsFile is where the counters are written at the end of the
	// run.  If it's empty they are not written.
	MetricsFile string `json:"metrics_file" mapstructure:"metrics_file"`

	// Workers is the number of files converted at the same time.
	Workers int `json:"workers" mapstructure:"workers"`
}

// NewViper creates a viper instance that reads JSON and has the default
// values set.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("json")
	v.SetDefault(KeyUseRTKLIBLLI, false)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyWorkers, 1)
	return v
}

// GetJSONConfigFromFile gets the config from the file given by
// configFileName.
func GetJSONConfigFromFile(configFileName string) (*Config, error) {
	v := NewViper()
	if err := ReadFile(v, configFileName); err != nil {
		return nil, err
	}
	return Unmarshal(v)
}

// ReadFile reads a JSON config file into v.
func ReadFile(v *viper.Viper, configFileName string) error {
	v.SetConfigFile(configFileName)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("cannot read the JSON control file %s - %w", configFileName, err)
	}
	return nil
}

// getJSONConfig reads from the given source and returns the config.
func getJSONConfig(jsonSource io.Reader) (*Config, error) {
	v := NewViper()
	if err := v.ReadConfig(jsonSource); err != nil {
		return nil, fmt.Errorf("cannot parse the JSON control file - %w", err)
	}
	return Unmarshal(v)
}

// Unmarshal gets the config from v and checks it.
func Unmarshal(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("cannot unmarshal the config - %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the values.
func (config *Config) Validate() error {
	if config.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", config.Workers)
	}
	if _, err := config.ReferenceTime(); err != nil {
		return err
	}
	if _, err := config.Level(); err != nil {
		return err
	}
	return nil
}

// ReferenceTime returns the reference date as the start of the day, UTC.
// The result is the zero time if there is no reference date.
func (config *Config) ReferenceTime() (time.Time, error) {
	if config.ReferenceDate == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(DateLayout, config.ReferenceDate, utils.LocationUTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad reference date %q - want yyyy-mm-dd", config.ReferenceDate)
	}
	return t, nil
}

// Level returns the log level.
func (config *Config) Level() (slog.Level, error) {
	return utils.ParseLogLevel(config.LogLevel)
}

// LLIMethod returns the loss of lock rule chosen by the config.
func (config *Config) LLIMethod() lockstatus.Method {
	if config.UseRTKLIBLLI {
		return lockstatus.RTKLIB
	}
	return lockstatus.RTCM
}
