package config

import (
	"encoding/json"
	"os"

	"github.com/matchvault/matchvault/internal/flagx"
	"github.com/matchvault/matchvault/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "90s" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON configuration
// files. After unmarshalling, its fields are copied into the runtime Config
// struct which uses time.Duration.
type JsonConfig struct {
	EndpointAddrGRPC             string         `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP             string         `json:"endpoint_addr_http"`
	DatabaseDSN                  string         `json:"database_dsn"`
	SecretKey                    string         `json:"secret_key"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration"`
	S3RootUser                   string         `json:"s3_root_user"`
	S3RootPassword               string         `json:"s3_root_password"`
	S3Bucket                     string         `json:"s3_bucket"`
	S3Region                     string         `json:"s3_region"`
	S3BaseEndpoint               string         `json:"s3_base_endpoint"`
	MinFee                       int64          `json:"min_fee"`
	PlatformShareBps             int64          `json:"platform_share_bps"`
	MatchTimeout                 timex.Duration `json:"match_timeout"`
	RevealTimeout                timex.Duration `json:"reveal_timeout"`
	OracleEndpoint               string         `json:"oracle_endpoint"`
	CallbackBaseURL              string         `json:"callback_base_url"`
	OracleKeyHex                 string         `json:"oracle_key_hex"`
	OracleKeyGeneration          uint64         `json:"oracle_key_generation"`
	OwnerPrincipal               string         `json:"owner_principal"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path is taken from the -c/-config command-line
// flag; if the flag is absent, no JSON file is loaded. If the file cannot be
// read or contains invalid JSON, the function panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.EndpointAddrHTTP = c.EndpointAddrHTTP
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	config.RefreshTokenValidityDuration = c.RefreshTokenValidityDuration.Duration
	config.S3RootUser = c.S3RootUser
	config.S3RootPassword = c.S3RootPassword
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
	config.MinFee = c.MinFee
	config.PlatformShareBps = c.PlatformShareBps
	config.MatchTimeout = c.MatchTimeout.Duration
	config.RevealTimeout = c.RevealTimeout.Duration
	config.OracleEndpoint = c.OracleEndpoint
	config.CallbackBaseURL = c.CallbackBaseURL
	config.OracleKeyHex = c.OracleKeyHex
	config.OracleKeyGeneration = c.OracleKeyGeneration
	config.OwnerPrincipal = c.OwnerPrincipal
}
