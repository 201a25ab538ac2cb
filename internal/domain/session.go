package domain

import (
	"net"
	"net/url"
	"strconv"
)

type Region struct {
	ID        string
	Handle    uint64
	Name      string
	ServerURI string
	HTTPPort  int
}

// SimulatorHost returns the region server URI with its port replaced by the
// region's HTTP port.
func (r Region) SimulatorHost() string {
	parsed, err := url.Parse(r.ServerURI)
	if err != nil || parsed.Host == "" {
		return r.ServerURI
	}

	host := parsed.Hostname()
	if r.HTTPPort > 0 {
		host = net.JoinHostPort(host, strconv.Itoa(r.HTTPPort))
	} else if port := parsed.Port(); port != "" {
		host = net.JoinHostPort(host, port)
	}

	return parsed.Scheme + "://" + host + "/"
}

type Session struct {
	AccountID       AccountID
	SessionID       string
	SecureSessionID string
	UserName        string
	Region          Region
}

func (s Session) Matches(sessionID, secureSessionID string) bool {
	if s.SessionID == "" || s.SecureSessionID == "" {
		return false
	}

	return s.SessionID == sessionID && s.SecureSessionID == secureSessionID
}
