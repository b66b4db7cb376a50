package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson_NoFlagIsNoop(t *testing.T) {
	os.Args = []string{"cmd"}

	c := &Config{}
	c.LoadDefaults()
	before := *c

	parseJson(c)

	assert.Equal(t, before, *c)
}

func TestParseJson_OverlaysValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	body := `{
		"endpoint_addr_grpc": ":7777",
		"endpoint_addr_http": ":7778",
		"database_dsn": "dsn",
		"secret_key": "sk",
		"access_token_validity_duration": "2m",
		"refresh_token_validity_duration": "10m",
		"s3_root_user": "u",
		"s3_root_password": "p",
		"s3_bucket": "b",
		"s3_region": "r",
		"s3_base_endpoint": "e",
		"min_fee": 900,
		"platform_share_bps": 150,
		"match_timeout": "30m",
		"reveal_timeout": "5m",
		"oracle_endpoint": "http://o",
		"callback_base_url": "http://cb",
		"oracle_key_hex": "ff",
		"oracle_key_generation": 3,
		"owner_principal": "root"
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	os.Args = []string{"cmd", "-c", path}

	c := &Config{}
	c.LoadDefaults()
	parseJson(c)

	assert.Equal(t, ":7777", c.EndpointAddrGRPC)
	assert.Equal(t, ":7778", c.EndpointAddrHTTP)
	assert.Equal(t, "dsn", c.DatabaseDSN)
	assert.Equal(t, "sk", c.SecretKey)
	assert.Equal(t, 2*time.Minute, c.AccessTokenValidityDuration)
	assert.Equal(t, 10*time.Minute, c.RefreshTokenValidityDuration)
	assert.Equal(t, int64(900), c.MinFee)
	assert.Equal(t, int64(150), c.PlatformShareBps)
	assert.Equal(t, 30*time.Minute, c.MatchTimeout)
	assert.Equal(t, 5*time.Minute, c.RevealTimeout)
	assert.Equal(t, "http://o", c.OracleEndpoint)
	assert.Equal(t, "http://cb", c.CallbackBaseURL)
	assert.Equal(t, "ff", c.OracleKeyHex)
	assert.Equal(t, uint64(3), c.OracleKeyGeneration)
	assert.Equal(t, "root", c.OwnerPrincipal)
}
