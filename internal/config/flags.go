package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/pflag"
)

// Flag names shared by the CLI binaries.
const (
	FlagConfig               = "config"
	FlagAddress              = "address"
	FlagRequestTimeout       = "request-timeout"
	FlagDatabase             = "db"
	FlagSyncInterval         = "sync-interval"
	FlagMaxConflictRounds    = "max-conflict-rounds"
	FlagMaxTransportAttempts = "max-transport-attempts"
	FlagSessionPolicy        = "session-policy"
	FlagLogFile              = "log-file"
	FlagListen               = "listen"
	FlagKeySignKey           = "key-sign-key"
	FlagKeyTTL               = "key-ttl"
	FlagFixtures             = "fixtures"
)

// RegisterFlags declares all configuration flags on fs. The CLI registers
// them as persistent flags of its root command.
//
// Flags:
//
//	-c/--config                JSON file path with configs
//	-a/--address               remote API base URL
//	--request-timeout          per-call timeout (e.g. "30s")
//	-d/--db                    SQLite replica path
//	--sync-interval            background sync period (e.g. "15m")
//	--max-conflict-rounds      refetch-and-retry rounds after a conflict
//	--max-transport-attempts   attempts per network operation
//	--session-policy           join | ignore | queue
//	--log-file                 client log file path
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "JSON config file path")
	fs.StringP(FlagAddress, "a", "", "Remote API base URL")
	fs.Duration(FlagRequestTimeout, 0, "Per request timeout (e.g. 30s, 1m)")
	fs.StringP(FlagDatabase, "d", "", "Local SQLite replica path")
	fs.Duration(FlagSyncInterval, 0, "Background sync interval (e.g. 15m)")
	fs.Int(FlagMaxConflictRounds, 0, "Refetch-and-retry rounds after a version conflict")
	fs.Int(FlagMaxTransportAttempts, 0, "Attempts per network operation")
	fs.String(FlagSessionPolicy, "", "Concurrent sync request policy: join, ignore or queue")
	fs.String(FlagLogFile, "", "Client log file path")
}

// RegisterServerFlags declares the flags of the reference API server.
func RegisterServerFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "JSON config file path")
	fs.Var(&NetAddress{}, FlagListen, "Listen address host:port")
	fs.String(FlagKeySignKey, "", "Secret signing the issued API keys")
	fs.Duration(FlagKeyTTL, 0, "Lifetime of issued API keys (e.g. 720h)")
	fs.String(FlagFixtures, "", "JSON file with the served users and groups")
}

// parseFlags reads the values of flags registered by RegisterFlags. Flags
// that were not declared on fs are left at their zero value.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	var err error
	str := func(name string, dst *string) {
		if err != nil || fs.Lookup(name) == nil {
			return
		}
		*dst, err = fs.GetString(name)
	}

	str(FlagConfig, &cfg.JSONFilePath)
	str(FlagAddress, &cfg.Adapter.HTTPAddress)
	str(FlagDatabase, &cfg.Storage.DB.DSN)
	str(FlagSessionPolicy, &cfg.Sync.SessionPolicy)
	str(FlagLogFile, &cfg.Log.File)
	str(FlagKeySignKey, &cfg.Server.KeySignKey)
	str(FlagFixtures, &cfg.Server.FixturesPath)
	if f := fs.Lookup(FlagListen); f != nil {
		cfg.Server.HTTPAddress = f.Value.String()
	}

	if err == nil && fs.Lookup(FlagRequestTimeout) != nil {
		cfg.Adapter.RequestTimeout, err = fs.GetDuration(FlagRequestTimeout)
	}
	if err == nil && fs.Lookup(FlagKeyTTL) != nil {
		cfg.Server.KeyTTL, err = fs.GetDuration(FlagKeyTTL)
	}
	if err == nil && fs.Lookup(FlagSyncInterval) != nil {
		cfg.Workers.SyncInterval, err = fs.GetDuration(FlagSyncInterval)
	}
	if err == nil && fs.Lookup(FlagMaxConflictRounds) != nil {
		cfg.Sync.MaxConflictRounds, err = fs.GetInt(FlagMaxConflictRounds)
	}
	if err == nil && fs.Lookup(FlagMaxTransportAttempts) != nil {
		cfg.Sync.MaxTransportAttempts, err = fs.GetInt(FlagMaxTransportAttempts)
	}

	if err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}

	return cfg, nil
}

// NetAddress holds a listen address split into host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// String returns a canonical host:port string, or "" for an unset address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. An empty host means all interfaces; a non-empty host
// must be "localhost" or a literal IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	if port <= 0 || port > 65535 {
		return errors.New("port number is a positive integer up to 65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
