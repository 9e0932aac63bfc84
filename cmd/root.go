package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofrs/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hotglue/target-salesforce/config"
	"github.com/hotglue/target-salesforce/logging"
	"github.com/hotglue/target-salesforce/network"
	"github.com/hotglue/target-salesforce/salesforce"
)

const (
	RequiredConfigErrorFormat = "Missing required flags: %s"
	LoginFailureMessage       = "Failed to log in to Salesforce"
	RunIDFailureMessage       = "Failed to generate run id"

	ConfigFileKey = "config"
	EnvFileName   = ".env"
	envPrefix     = "SALESFORCE_"
	toolName      = "target-salesforce"
)

var (
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   toolName,
		Short: "Uploads records to Salesforce and discovers its syncable objects",
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			config.LoadEnvFile(EnvFileName)
			return config.ReadConfigFile(viper.GetViper(), viper.GetString(ConfigFileKey))
		},
	}
)

var requiredConfig = []string{
	config.RefreshTokenKey,
	config.ClientIDKey,
	config.ClientSecretKey,
	config.StartDateKey,
	config.APITypeKey,
	config.SelectFieldsByDefaultKey,
}

func init() {
	flags := rootCmd.PersistentFlags()
	bindFlagAndEnvVar(flags, ConfigFileKey, "", "JSON, YAML or TOML file holding any of the settings below")
	bindFlagAndEnvVar(flags, config.RefreshTokenKey, "", "OAuth refresh token")
	bindFlagAndEnvVar(flags, config.ClientIDKey, "", "Connected app client id")
	bindFlagAndEnvVar(flags, config.ClientSecretKey, "", "Connected app client secret")
	bindFlagAndEnvVar(flags, config.StartDateKey, "", "RFC3339 timestamp replication starts from")
	bindFlagAndEnvVar(flags, config.APITypeKey, &apiTypeValue{}, fmt.Sprintf("Access mode. Valid options: %s, %s", config.RESTAPI, config.BulkAPI))
	bindFlagAndEnvVar(flags, config.SelectFieldsByDefaultKey, false, "Mark available fields selected in discovered metadata")
	bindFlagAndEnvVar(flags, config.IsSandboxKey, false, "Log in to a sandbox org")
	bindFlagAndEnvVar(flags, config.QuotaPercentTotalKey, salesforce.DefaultQuotaPercentTotal, "Stop once the org's daily API usage passes this percentage")
	bindFlagAndEnvVar(flags, config.QuotaPercentPerRunKey, salesforce.DefaultQuotaPercentPerRun, "Stop once this run has used this percentage of the daily API allocation")
	bindFlagAndEnvVar(flags, config.APIVersionKey, salesforce.DefaultAPIVersion, "REST API version")
	bindFlagAndEnvVar(flags, config.LoginURLKey, "", "Override the OAuth login host")
	bindFlagAndEnvVar(flags, config.RequestTimeoutKey, int(network.DefaultRequestTimeout/time.Second), "Timeout (in seconds) for Salesforce HTTP requests")
	bindFlagAndEnvVar(flags, config.RequestsPerSecondKey, 0.0, "Client side request rate limit, 0 for none")
	bindFlagAndEnvVar(flags, config.SkipTLSVerifyKey, false, "Skip TLS validation on http requests to Salesforce")
	bindFlagAndEnvVar(flags, config.LogLevelKey, "info", "Log level: debug, info, warn or error")
	bindFlagAndEnvVar(flags, config.LogFormatKey, logging.FormatAuto, "Log format: auto, console or json")
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd.Version = version
	rootCmd.Flags().BoolP("help", "h", false, fmt.Sprintf("Help for %s", toolName))
	rootCmd.Flags().BoolP("version", "v", false, fmt.Sprintf("Version for %s", toolName))
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

func envVar(key string) string {
	return envPrefix + strings.ToUpper(key)
}

func verifyRequiredConfig(keys ...string) error {
	var missingFlags []string
	for _, k := range keys {
		if !viper.IsSet(k) || viper.GetString(k) == "" {
			missingFlags = append(missingFlags, "--"+flagName(k))
		}
	}

	if len(missingFlags) > 0 {
		return errors.Errorf(RequiredConfigErrorFormat, strings.Join(missingFlags, ", "))
	}

	return nil
}

func bindFlagAndEnvVar(flags *pflag.FlagSet, key string, defaultValue interface{}, usageText string) {
	name := flagName(key)
	usage := fmt.Sprintf("%s [$%s]", usageText, envVar(key))
	switch val := defaultValue.(type) {
	case string:
		flags.String(name, val, usage)
	case int:
		flags.Int(name, val, usage)
	case bool:
		flags.Bool(name, val, usage)
	case float64:
		flags.Float64(name, val, usage)
	case []string:
		flags.StringSlice(name, val, usage)
	case pflag.Value:
		flags.Var(val, name, usage)
	}
	viper.BindPFlag(key, flags.Lookup(name))
	viper.BindEnv(key, envVar(key))
}

// loadRun validates the configuration and builds the run's logger, tagged with a fresh run id.
func loadRun(extraRequired ...string) (*config.Config, *zap.Logger, error) {
	if err := verifyRequiredConfig(append(append([]string{}, requiredConfig...), extraRequired...)...); err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(viper.GetViper(), viper.GetString(ConfigFileKey))
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, err
	}

	runID, err := uuid.NewV4()
	if err != nil {
		return nil, nil, errors.Wrap(err, RunIDFailureMessage)
	}
	return cfg, logger.With(zap.String("run_id", runID.String())), nil
}

func login(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*salesforce.Client, error) {
	loginURL := cfg.LoginURL
	if loginURL == "" {
		loginURL = salesforce.LoginURL(cfg.IsSandbox)
	}

	session, err := salesforce.Login(ctx, network.NewClient(cfg.SkipTLSVerify, cfg.RequestTimeout), salesforce.Credentials{
		LoginURL:     loginURL,
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RefreshToken: cfg.RefreshToken,
	})
	if err != nil {
		return nil, errors.Wrap(err, LoginFailureMessage)
	}
	logger.Info("logged in to Salesforce", zap.String("instance_url", session.InstanceURL))

	return salesforce.NewClient(session.HTTPClient, salesforce.Options{
		InstanceURL:        session.InstanceURL,
		APIVersion:         cfg.APIVersion,
		RequestsPerSecond:  cfg.RequestsPerSecond,
		QuotaPercentTotal:  cfg.QuotaPercentTotal,
		QuotaPercentPerRun: cfg.QuotaPercentPerRun,
	}, logger), nil
}

func logRequestCount(client *salesforce.Client, logger *zap.Logger) {
	logger.Info("REST API requests made toward quota", zap.Int("requests", client.RequestsAttempted()))
}
