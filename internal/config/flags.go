package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"os"
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

// ParseFlags parses all configuration flags from args. When args is nil the
// process arguments are used.
//
// Flags:
//
//	-api-key chat application API key
//	-token user token
//	-user-id chat user ID
//	-display-name display name shown to other participants
//	-channel-limit number of channels loaded at setup
//	-server chat REST API base URL
//	-ws-server chat realtime base URL
//	-request-timeout request timeout (e.g., "15s", "1m")
//	-a dev server address in format [host]:[port]
//	-secret dev server token signing secret
//	-chatter-interval dev server synthetic message interval
//	-c/-config json file path with configs
//	-log-level minimum log level
//	-log-file client log file path
func ParseFlags(args []string) (*StructuredConfig, error) {
	if args == nil {
		args = os.Args[1:]
	}

	var devServerAddress NetAddress
	var apiKey, token, userID, displayName string
	var channelLimit int
	var httpAddress, wsAddress string
	var requestTimeout, chatterInterval time.Duration
	var secret string
	var jsonConfigPath string
	var logLevel, logFile string

	fs := flag.NewFlagSet("chat", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&apiKey, "api-key", "", "Chat application API key")
	fs.StringVar(&token, "token", "", "User token")
	fs.StringVar(&userID, "user-id", "", "Chat user ID")
	fs.StringVar(&displayName, "display-name", "", "Display name")
	fs.IntVar(&channelLimit, "channel-limit", 0, "Number of channels loaded at setup")
	fs.StringVar(&httpAddress, "server", "", "Chat REST API base URL")
	fs.StringVar(&wsAddress, "ws-server", "", "Chat realtime base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.Var(&devServerAddress, "a", "Dev server net address host:port")
	fs.StringVar(&secret, "secret", "", "Dev server token signing secret")
	fs.DurationVar(&chatterInterval, "chatter-interval", 0, "Dev server synthetic message interval")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Minimum log level")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Chat: Chat{
			APIKey:       apiKey,
			Token:        token,
			UserID:       userID,
			DisplayName:  displayName,
			ChannelLimit: channelLimit,
		},
		Adapter: Adapter{
			HTTPAddress:    httpAddress,
			WSAddress:      wsAddress,
			RequestTimeout: requestTimeout,
		},
		DevServer: DevServer{
			Address:         devServerAddress.String(),
			Secret:          secret,
			ChatterInterval: chatterInterval,
		},
		Log: Log{
			Level: logLevel,
			File:  logFile,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
