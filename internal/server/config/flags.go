package config

import (
	"flag"
	"os"
	"time"

	"github.com/matchvault/matchvault/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-w string   HTTP bind address for the oracle callback webhook
//	-d string   PostgreSQL DSN (empty selects the in-memory backend)
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-r int      refresh token validity, minutes
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-f int      minimum match fee, minor units
//	-k int      platform share, basis points
//	-m int      match timeout, minutes
//	-v int      reveal timeout, minutes
//	-o string   oracle submission endpoint
//	-n string   public callback base URL
//	-x string   hex-encoded ed25519 oracle public key
//	-j int      oracle key generation tag
//	-y string   owner principal
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components. Duration
// flags are accepted as integers in minutes.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-a", "-w", "-d", "-s", "-t", "-r", "-u", "-p", "-b", "-g", "-e",
		"-f", "-k", "-m", "-v", "-o", "-n", "-x", "-j", "-y",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run the gRPC server")
	fs.StringVar(&config.EndpointAddrHTTP, "w", config.EndpointAddrHTTP, "address and port for the callback webhook")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")
	refreshTokenValidityDuration := fs.Int("r", int(config.RefreshTokenValidityDuration.Minutes()), "refresh_token_validity_duration (in minutes)")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	fs.Int64Var(&config.MinFee, "f", config.MinFee, "minimum match fee (minor units)")
	fs.Int64Var(&config.PlatformShareBps, "k", config.PlatformShareBps, "platform share (basis points)")

	matchTimeout := fs.Int("m", int(config.MatchTimeout.Minutes()), "match timeout (in minutes)")
	revealTimeout := fs.Int("v", int(config.RevealTimeout.Minutes()), "reveal timeout (in minutes)")

	fs.StringVar(&config.OracleEndpoint, "o", config.OracleEndpoint, "oracle submission endpoint")
	fs.StringVar(&config.CallbackBaseURL, "n", config.CallbackBaseURL, "public callback base URL")
	fs.StringVar(&config.OracleKeyHex, "x", config.OracleKeyHex, "oracle public key (hex)")

	keyGeneration := fs.Uint64("j", config.OracleKeyGeneration, "oracle key generation")

	fs.StringVar(&config.OwnerPrincipal, "y", config.OwnerPrincipal, "owner principal")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
	config.RefreshTokenValidityDuration = time.Duration(*refreshTokenValidityDuration) * time.Minute
	config.MatchTimeout = time.Duration(*matchTimeout) * time.Minute
	config.RevealTimeout = time.Duration(*revealTimeout) * time.Minute
	config.OracleKeyGeneration = *keyGeneration
}
