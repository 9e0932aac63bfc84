// Package config builds the immutable run configuration shared by every command.
package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type APIType string

const (
	RESTAPI APIType = "REST"
	BulkAPI APIType = "BULK"
)

// Keys shared by flags, environment variables and the config file.
const (
	RefreshTokenKey          = "refresh_token"
	ClientIDKey              = "client_id"
	ClientSecretKey          = "client_secret"
	StartDateKey             = "start_date"
	APITypeKey               = "api_type"
	SelectFieldsByDefaultKey = "select_fields_by_default"
	IsSandboxKey             = "is_sandbox"
	QuotaPercentTotalKey     = "quota_percent_total"
	QuotaPercentPerRunKey    = "quota_percent_per_run"
	InputPathKey             = "input_path"
	PriorityObjectsKey       = "priority_objects"
	APIVersionKey            = "api_version"
	LoginURLKey              = "login_url"
	RequestTimeoutKey        = "request_timeout"
	RequestsPerSecondKey     = "requests_per_second"
	SkipTLSVerifyKey         = "insecure_skip_tls_verify"
	LogLevelKey              = "log_level"
	LogFormatKey             = "log_format"
)

const (
	InvalidAPITypeErrorFormat      = "Invalid api_type %q. Valid options: %s, %s"
	InvalidStartDateErrorFormat    = "Invalid start_date %q, expected an RFC3339 timestamp"
	InvalidQuotaPercentErrorFormat = "Invalid %s %v, expected a percentage between 0 and 100"
	ReadConfigFileErrorFormat      = "Failed reading config file %s"
)

var DefaultPriorityObjects = []string{"Account", "Contact"}

// Config is built once at startup and passed by pointer; nothing mutates it afterwards.
type Config struct {
	RefreshToken          string
	ClientID              string
	ClientSecret          string
	StartDate             time.Time
	APIType               APIType
	SelectFieldsByDefault bool
	IsSandbox             bool
	QuotaPercentTotal     float64
	QuotaPercentPerRun    float64

	InputPath       string
	ConfigFile      string
	PriorityObjects []string

	APIVersion        string
	LoginURL          string
	RequestTimeout    time.Duration
	RequestsPerSecond float64
	SkipTLSVerify     bool

	LogLevel  string
	LogFormat string
}

// LoadEnvFile loads a .env file into the process environment if one exists.
func LoadEnvFile(path string) {
	_ = godotenv.Load(path)
}

// ReadConfigFile merges a JSON, YAML or TOML config file into v.
func ReadConfigFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil {
		return errors.Wrapf(err, ReadConfigFileErrorFormat, path)
	}
	return nil
}

func ParseAPIType(value string) (APIType, error) {
	switch APIType(strings.ToUpper(strings.TrimSpace(value))) {
	case RESTAPI:
		return RESTAPI, nil
	case BulkAPI:
		return BulkAPI, nil
	}
	return "", errors.Errorf(InvalidAPITypeErrorFormat, value, RESTAPI, BulkAPI)
}

// Load validates the values held by v and returns the run configuration.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	apiType, err := ParseAPIType(v.GetString(APITypeKey))
	if err != nil {
		return nil, err
	}

	startDate, err := time.Parse(time.RFC3339, v.GetString(StartDateKey))
	if err != nil {
		return nil, errors.Wrapf(err, InvalidStartDateErrorFormat, v.GetString(StartDateKey))
	}

	quotaTotal, err := percentage(v, QuotaPercentTotalKey)
	if err != nil {
		return nil, err
	}
	quotaPerRun, err := percentage(v, QuotaPercentPerRunKey)
	if err != nil {
		return nil, err
	}

	priority := v.GetStringSlice(PriorityObjectsKey)
	if len(priority) == 0 {
		priority = DefaultPriorityObjects
	}

	if configFile != "" {
		if abs, err := filepath.Abs(configFile); err == nil {
			configFile = abs
		}
	}

	return &Config{
		RefreshToken:          v.GetString(RefreshTokenKey),
		ClientID:              v.GetString(ClientIDKey),
		ClientSecret:          v.GetString(ClientSecretKey),
		StartDate:             startDate,
		APIType:               apiType,
		SelectFieldsByDefault: v.GetBool(SelectFieldsByDefaultKey),
		IsSandbox:             v.GetBool(IsSandboxKey),
		QuotaPercentTotal:     quotaTotal,
		QuotaPercentPerRun:    quotaPerRun,
		InputPath:             v.GetString(InputPathKey),
		ConfigFile:            configFile,
		PriorityObjects:       append([]string(nil), priority...),
		APIVersion:            v.GetString(APIVersionKey),
		LoginURL:              v.GetString(LoginURLKey),
		RequestTimeout:        time.Duration(v.GetInt(RequestTimeoutKey)) * time.Second,
		RequestsPerSecond:     v.GetFloat64(RequestsPerSecondKey),
		SkipTLSVerify:         v.GetBool(SkipTLSVerifyKey),
		LogLevel:              v.GetString(LogLevelKey),
		LogFormat:             v.GetString(LogFormatKey),
	}, nil
}

// percentage returns 0 for an unset key so the client applies its default.
func percentage(v *viper.Viper, key string) (float64, error) {
	if !v.IsSet(key) {
		return 0, nil
	}
	p := v.GetFloat64(key)
	if p <= 0 || p > 100 {
		return 0, errors.Errorf(InvalidQuotaPercentErrorFormat, key, v.Get(key))
	}
	return p, nil
}
