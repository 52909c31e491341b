package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Report formats accepted by REPORT_FORMAT.
const (
	FormatText = "text"
	FormatPDF  = "pdf"
)

type Config struct {
	Env string

	Log     LogConfig
	Report  ReportConfig
	Metrics MetricsConfig
}

type LogConfig struct {
	Level  string
	Format string
}

// ReportConfig locates the input files and the generated report.
type ReportConfig struct {
	Dir         string
	NamesFile   string
	CoursesFile string
	OutputFile  string
	Format      string
}

// MetricsConfig controls the optional Prometheus textfile written after a run.
type MetricsConfig struct {
	File string
}

// Load reads .env and the environment. It does not validate, so callers can
// apply overrides first and then call Validate.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Report = ReportConfig{
		Dir:         v.GetString("REPORT_DIR"),
		NamesFile:   v.GetString("NAMES_FILE"),
		CoursesFile: v.GetString("COURSES_FILE"),
		OutputFile:  v.GetString("REPORT_FILE"),
		Format:      strings.ToLower(strings.TrimSpace(v.GetString("REPORT_FORMAT"))),
	}

	cfg.Metrics = MetricsConfig{
		File: v.GetString("METRICS_FILE"),
	}

	return cfg, nil
}

// Validate checks values that cannot be defaulted silently.
func (c *Config) Validate() error {
	switch c.Report.Format {
	case FormatText, FormatPDF:
	default:
		return fmt.Errorf("unsupported REPORT_FORMAT %q", c.Report.Format)
	}
	if strings.TrimSpace(c.Report.NamesFile) == "" {
		return fmt.Errorf("NAMES_FILE must not be empty")
	}
	if strings.TrimSpace(c.Report.CoursesFile) == "" {
		return fmt.Errorf("COURSES_FILE must not be empty")
	}
	if strings.TrimSpace(c.Report.OutputFile) == "" {
		return fmt.Errorf("REPORT_FILE must not be empty")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("REPORT_DIR", ".")
	v.SetDefault("NAMES_FILE", "name.txt")
	v.SetDefault("COURSES_FILE", "course.txt")
	v.SetDefault("REPORT_FILE", "coursereport.txt")
	v.SetDefault("REPORT_FORMAT", FormatText)

	v.SetDefault("METRICS_FILE", "")
}
