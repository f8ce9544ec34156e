package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github/chapool/evm-gateway/internal/util"
)

type EchoServer struct {
	Debug                          bool
	ListenAddress                  string
	HideInternalServerErrorDetails bool
	BaseURL                        string
	EnableCORSMiddleware           bool
	EnableLoggerMiddleware         bool
	EnableRecoverMiddleware        bool
	EnableRequestIDMiddleware      bool
	EnableTrailingSlashMiddleware  bool
	EnableRateLimitMiddleware      bool
	// RateLimitPerMinute caps requests per client IP on the config and transfer routes.
	RateLimitPerMinute int
}

type LoggerServer struct {
	Level              zerolog.Level
	RequestLevel       zerolog.Level
	LogRequestBody     bool
	LogRequestHeader   bool
	LogRequestQuery    bool
	LogResponseBody    bool
	LogResponseHeader  bool
	LogCaller          bool
	PrettyPrintConsole bool
}

type ManagementServer struct {
	Secret                  string `json:"-"` // sensitive
	ReadinessTimeout        time.Duration
	LivenessTimeout         time.Duration
	ProbeWriteablePathsAbs  []string
	ProbeWriteableTouchfile string
}

type Gateway struct {
	// ChainsFile is the TOML file registered chains are persisted to.
	ChainsFile         string
	RPCTimeout         time.Duration
	BalanceConcurrency int

	SecretKey        string `json:"-"` // sensitive
	Account          string
	KeystoreFile     string
	KeystorePassword string `json:"-"` // sensitive
}

type Server struct {
	Echo       EchoServer
	Logger     LoggerServer
	Management ManagementServer
	Gateway    Gateway
}

// DefaultServiceConfigFromEnv returns the server config as parsed from environment variables
// and their respective defaults defined below.
// We don't expect that ENV_VARs change while we are running our application or our tests
// (and it would be a bad thing to do anyways with parallel testing).
// Do NOT use os.Setenv / os.Unsetenv in tests utilizing DefaultServiceConfigFromEnv()!
func DefaultServiceConfigFromEnv() Server {
	// An `.env.local` file in your project root can override the currently set ENV variables.
	//
	// We never automatically apply `.env.local` when running "go test" as these ENV variables
	// may be sensitive (e.g. secrets to external APIs) and applying them modifies the process
	// global "os.Env" state (it should be applied via t.Setenv instead).
	//
	// If you need dotenv ENV variables available in a test, do that explicitly within that
	// test before executing DefaultServiceConfigFromEnv (or test.WithTestServer).
	// See /internal/test/helper_dot_env.go: test.DotEnvLoadLocalOrSkipTest(t)
	if !util.RunningInTest() {
		DotEnvTryLoad(filepath.Join(util.GetProjectRootDir(), ".env.local"), os.Setenv)
	}

	v := newEnvViper()

	return Server{
		Echo: EchoServer{
			Debug:                          v.GetBool("SERVER_ECHO_DEBUG"),
			ListenAddress:                  v.GetString("SERVER_ECHO_LISTEN_ADDRESS"),
			HideInternalServerErrorDetails: v.GetBool("SERVER_ECHO_HIDE_INTERNAL_SERVER_ERROR_DETAILS"),
			BaseURL:                        v.GetString("SERVER_ECHO_BASE_URL"),
			EnableCORSMiddleware:           v.GetBool("SERVER_ECHO_ENABLE_CORS_MIDDLEWARE"),
			EnableLoggerMiddleware:         v.GetBool("SERVER_ECHO_ENABLE_LOGGER_MIDDLEWARE"),
			EnableRecoverMiddleware:        v.GetBool("SERVER_ECHO_ENABLE_RECOVER_MIDDLEWARE"),
			EnableRequestIDMiddleware:      v.GetBool("SERVER_ECHO_ENABLE_REQUEST_ID_MIDDLEWARE"),
			EnableTrailingSlashMiddleware:  v.GetBool("SERVER_ECHO_ENABLE_TRAILING_SLASH_MIDDLEWARE"),
			EnableRateLimitMiddleware:      v.GetBool("SERVER_ECHO_ENABLE_RATE_LIMIT_MIDDLEWARE"),
			RateLimitPerMinute:             v.GetInt("SERVER_ECHO_RATE_LIMIT_PER_MINUTE"),
		},
		Logger: LoggerServer{
			Level:              logLevel(v, "SERVER_LOGGER_LEVEL", zerolog.DebugLevel),
			RequestLevel:       logLevel(v, "SERVER_LOGGER_REQUEST_LEVEL", zerolog.DebugLevel),
			LogRequestBody:     v.GetBool("SERVER_LOGGER_LOG_REQUEST_BODY"),
			LogRequestHeader:   v.GetBool("SERVER_LOGGER_LOG_REQUEST_HEADER"),
			LogRequestQuery:    v.GetBool("SERVER_LOGGER_LOG_REQUEST_QUERY"),
			LogResponseBody:    v.GetBool("SERVER_LOGGER_LOG_RESPONSE_BODY"),
			LogResponseHeader:  v.GetBool("SERVER_LOGGER_LOG_RESPONSE_HEADER"),
			LogCaller:          v.GetBool("SERVER_LOGGER_LOG_CALLER"),
			PrettyPrintConsole: v.GetBool("SERVER_LOGGER_PRETTY_PRINT_CONSOLE"),
		},
		Management: ManagementServer{
			Secret:                  v.GetString("SERVER_MANAGEMENT_SECRET"),
			ReadinessTimeout:        v.GetDuration("SERVER_MANAGEMENT_READINESS_TIMEOUT"),
			LivenessTimeout:         v.GetDuration("SERVER_MANAGEMENT_LIVENESS_TIMEOUT"),
			ProbeWriteablePathsAbs:  v.GetStringSlice("SERVER_MANAGEMENT_PROBE_WRITEABLE_PATHS"),
			ProbeWriteableTouchfile: v.GetString("SERVER_MANAGEMENT_PROBE_WRITEABLE_TOUCHFILE"),
		},
		Gateway: Gateway{
			ChainsFile:         v.GetString("GATEWAY_CHAINS_FILE"),
			RPCTimeout:         v.GetDuration("GATEWAY_RPC_TIMEOUT"),
			BalanceConcurrency: v.GetInt("GATEWAY_BALANCE_CONCURRENCY"),
			SecretKey:          v.GetString("SECRET"),
			Account:            v.GetString("ACCOUNT"),
			KeystoreFile:       v.GetString("GATEWAY_KEYSTORE_FILE"),
			KeystorePassword:   v.GetString("GATEWAY_KEYSTORE_PASSWORD"),
		},
	}
}

func newEnvViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_ECHO_DEBUG", false)
	v.SetDefault("SERVER_ECHO_LISTEN_ADDRESS", "127.0.0.1:3000")
	v.SetDefault("SERVER_ECHO_HIDE_INTERNAL_SERVER_ERROR_DETAILS", true)
	v.SetDefault("SERVER_ECHO_BASE_URL", "http://localhost:3000")
	v.SetDefault("SERVER_ECHO_ENABLE_CORS_MIDDLEWARE", true)
	v.SetDefault("SERVER_ECHO_ENABLE_LOGGER_MIDDLEWARE", true)
	v.SetDefault("SERVER_ECHO_ENABLE_RECOVER_MIDDLEWARE", true)
	v.SetDefault("SERVER_ECHO_ENABLE_REQUEST_ID_MIDDLEWARE", true)
	v.SetDefault("SERVER_ECHO_ENABLE_TRAILING_SLASH_MIDDLEWARE", true)
	v.SetDefault("SERVER_ECHO_ENABLE_RATE_LIMIT_MIDDLEWARE", true)
	v.SetDefault("SERVER_ECHO_RATE_LIMIT_PER_MINUTE", 120)

	v.SetDefault("SERVER_LOGGER_LEVEL", zerolog.DebugLevel.String())
	v.SetDefault("SERVER_LOGGER_REQUEST_LEVEL", zerolog.DebugLevel.String())
	v.SetDefault("SERVER_LOGGER_LOG_REQUEST_BODY", false)
	v.SetDefault("SERVER_LOGGER_LOG_REQUEST_HEADER", false)
	v.SetDefault("SERVER_LOGGER_LOG_REQUEST_QUERY", false)
	v.SetDefault("SERVER_LOGGER_LOG_RESPONSE_BODY", false)
	v.SetDefault("SERVER_LOGGER_LOG_RESPONSE_HEADER", false)
	v.SetDefault("SERVER_LOGGER_LOG_CALLER", false)
	v.SetDefault("SERVER_LOGGER_PRETTY_PRINT_CONSOLE", false)

	v.SetDefault("SERVER_MANAGEMENT_SECRET", "mgmt-secret")
	v.SetDefault("SERVER_MANAGEMENT_READINESS_TIMEOUT", 4*time.Second)
	v.SetDefault("SERVER_MANAGEMENT_LIVENESS_TIMEOUT", 9*time.Second)
	v.SetDefault("SERVER_MANAGEMENT_PROBE_WRITEABLE_PATHS", []string{filepath.Join(util.GetProjectRootDir(), "toml")})
	v.SetDefault("SERVER_MANAGEMENT_PROBE_WRITEABLE_TOUCHFILE", ".healthy")

	v.SetDefault("GATEWAY_CHAINS_FILE", filepath.Join(util.GetProjectRootDir(), "toml", "config.toml"))
	v.SetDefault("GATEWAY_RPC_TIMEOUT", 15*time.Second)
	v.SetDefault("GATEWAY_BALANCE_CONCURRENCY", 4)
	v.SetDefault("SECRET", "")
	v.SetDefault("ACCOUNT", "")
	v.SetDefault("GATEWAY_KEYSTORE_FILE", "")
	v.SetDefault("GATEWAY_KEYSTORE_PASSWORD", "")

	return v
}

func logLevel(v *viper.Viper, key string, fallback zerolog.Level) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(v.GetString(key)))
	if err != nil || level == zerolog.NoLevel {
		return fallback
	}

	return level
}
