package uri

import (
	"fmt"
	"strconv"
	"strings"
)

// Authority is the userinfo@host:port component. Host keeps IPv6 brackets
// verbatim and may be empty. Port 0 means no port was given.
type Authority struct {
	UserInfo *string
	Host     string
	Port     uint16
}

// HasUserInfo reports whether the authority carried a '@'.
func (a *Authority) HasUserInfo() bool {
	return a != nil && a.UserInfo != nil
}

// HasPort reports whether a non-zero port was parsed.
func (a *Authority) HasPort() bool {
	return a != nil && a.Port != 0
}

// Release clears every field. It is safe on a nil authority.
func (a *Authority) Release() {
	if a == nil {
		return
	}
	*a = Authority{}
}

// ParseAuthority splits raw into userinfo, host and port. raw must already be
// bounded: it is everything between the authority marker and the path.
//
// The returned authority is never nil. On failure it holds the fields that
// were read before the error.
func ParseAuthority(raw string) (*Authority, error) {
	auth := &Authority{}
	_, err := parseAuthority(auth, raw)
	return auth, err
}

// parseAuthority fills auth and returns, on failure, the offset within raw
// of the part that could not be read. Errors never quote raw.
func parseAuthority(auth *Authority, raw string) (int, error) {
	offset := 0
	rest := raw

	if userinfo, after, ok := strings.Cut(rest, "@"); ok {
		auth.UserInfo = &userinfo
		offset = len(userinfo) + 1
		rest = after
	}

	var (
		port    string
		hasPort bool
	)

	if strings.HasPrefix(rest, "[") {
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return offset, fmt.Errorf("%w: no closing ']'", ErrMalformedIPv6Host)
		}

		auth.Host = rest[:end+1]
		trailer := rest[end+1:]

		switch {
		case trailer == "":
		case trailer[0] == ':':
			port, hasPort = trailer[1:], true
		default:
			return offset + end + 1, fmt.Errorf("%w: unexpected content after ']'", ErrMalformedIPv6Host)
		}
	} else {
		auth.Host, port, hasPort = strings.Cut(rest, ":")
	}

	if !hasPort {
		return 0, nil
	}

	offset += len(auth.Host) + 1
	if port == "" {
		return offset, ErrEmptyPort
	}

	n, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return offset, fmt.Errorf("%w: not a number in 0-65535", ErrInvalidPort)
	}
	auth.Port = uint16(n)

	return 0, nil
}
