package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds a host and port parsed from "host:port".
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from os.Args.
//
// Flags:
//
//	-a backend listen address in format [host]:[port]
//	-backend backend address used by the client (host:port or URL)
//	-d vault-source registry DSN
//	-vault-dir directory holding vault files
//	-c/-config json file path with configs
//	-hash-key body integrity hash key
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout backend request timeout (e.g., "30s")
//	-adapter-timeout client request timeout (e.g., "10s")
//	-reply-timeout add-vault reply timeout (e.g., "30s")
//	-log-file client log file
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var backendAddress string
	var databaseDSN string
	var vaultDir string
	var jsonConfigPath string
	var hashKey string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var adapterTimeout time.Duration
	var replyTimeout time.Duration
	var logFile string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&backendAddress, "backend", "", "Backend address used by the client")
	flag.StringVar(&databaseDSN, "d", "", "Vault source registry DSN")
	flag.StringVar(&vaultDir, "vault-dir", "", "Directory holding vault files")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&hashKey, "hash-key", "", "Body integrity hash key")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Backend request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Client request timeout (e.g., 10s)")
	flag.DurationVar(&replyTimeout, "reply-timeout", 0, "Add-vault reply timeout (e.g., 30s)")
	flag.StringVar(&logFile, "log-file", "", "Client log file")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			HashKey:       hashKey,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			LogFile:       logFile,
		},
		Adapter: Adapter{
			HTTPAddress:    backendAddress,
			RequestTimeout: adapterTimeout,
			ReplyTimeout:   replyTimeout,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Files: Files{VaultDir: vaultDir},
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string, or "" when unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses "host:port". The port must be positive and the host must be
// "localhost" or a valid IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
