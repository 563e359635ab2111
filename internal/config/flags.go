package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d history database path
//	-exports directory for saved PNG files
//	-remote base URL of a remote qr-mint server (thin-client mode)
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-png-size default PNG edge length in pixels
//	-history-limit max history entries kept by the prune job
//	-prune-interval how often the prune job runs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var historyDBPath string
	var exportsDir string
	var remoteAddress string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var pngSize int
	var historyLimit int
	var pruneInterval time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&historyDBPath, "d", "", "History database path")
	flag.StringVar(&exportsDir, "exports", "", "Directory for saved PNG files")
	flag.StringVar(&remoteAddress, "remote", "", "Remote qr-mint server base URL")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.IntVar(&pngSize, "png-size", 0, "Default PNG edge length in pixels")
	flag.IntVar(&historyLimit, "history-limit", 0, "Max history entries kept")
	flag.DurationVar(&pruneInterval, "prune-interval", 0, "History prune interval (e.g., 10m)")

	flag.Parse()

	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Render: Render{
			PNGSize: pngSize,
		},
		Storage: Storage{
			DB:      DB{DSN: historyDBPath},
			Exports: Exports{Dir: exportsDir},
		},
		Adapter: Adapter{
			HTTPAddress: remoteAddress,
		},
		Workers: Workers{
			HistoryLimit:  historyLimit,
			PruneInterval: pruneInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so the merge
// step treats the flag as unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost", and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
