/*
Package joincode turns an IPv4 address and port into a short base62 code that
players can share out of band to find a game server, and back.

The six bytes of the address (four IP octets, then the port big-endian) are read
as one unsigned integer and written in base 62 with the digits 0-9, A-Z, a-z.
*/
package joincode

import (
	"errors"
	"math/big"
	"net/netip"
	"strings"
)

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const payloadSize = 6

var (
	ErrInvalidIP   = errors.New("join code needs an IPv4 address")
	ErrInvalidPort = errors.New("join code port out of range")
	ErrInvalidCode = errors.New("invalid join code")
)

var base = big.NewInt(int64(len(alphabet)))

// Encode returns the join code for ip:port.
func Encode(ip string, port uint16) (string, error) {
	addr, err := netip.ParseAddr(ip)
	if err != nil || !addr.Unmap().Is4() {
		return "", ErrInvalidIP
	}

	octets := addr.Unmap().As4()
	payload := append(octets[:], byte(port>>8), byte(port))

	value := new(big.Int).SetBytes(payload)
	if value.Sign() == 0 {
		return alphabet[:1], nil
	}

	var digits []byte
	rem := new(big.Int)
	for value.Sign() > 0 {
		value.DivMod(value, base, rem)
		digits = append(digits, alphabet[rem.Int64()])
	}
	for l, r := 0, len(digits)-1; l < r; l, r = l+1, r-1 {
		digits[l], digits[r] = digits[r], digits[l]
	}
	return string(digits), nil
}

// EncodeAddrPort returns the join code for an "ip:port" string.
func EncodeAddrPort(hostPort string) (string, error) {
	ap, err := netip.ParseAddrPort(hostPort)
	if err != nil {
		return "", ErrInvalidIP
	}
	return Encode(ap.Addr().String(), ap.Port())
}

// EncodeHostPort is Encode for a port held in an int, as configuration carries it.
func EncodeHostPort(ip string, port int) (string, error) {
	if port < 0 || port > 0xFFFF {
		return "", ErrInvalidPort
	}
	return Encode(ip, uint16(port))
}

// Decode returns the IPv4 address and port encoded in code.
func Decode(code string) (string, uint16, error) {
	if code == "" {
		return "", 0, ErrInvalidCode
	}

	value := new(big.Int)
	for _, c := range []byte(code) {
		digit := strings.IndexByte(alphabet, c)
		if digit < 0 {
			return "", 0, ErrInvalidCode
		}
		value.Mul(value, base)
		value.Add(value, big.NewInt(int64(digit)))
	}

	raw := value.Bytes()
	if len(raw) > payloadSize {
		return "", 0, ErrInvalidCode
	}
	var payload [payloadSize]byte
	copy(payload[payloadSize-len(raw):], raw)

	ip := netip.AddrFrom4([4]byte{payload[0], payload[1], payload[2], payload[3]})
	port := uint16(payload[4])<<8 | uint16(payload[5])
	return ip.String(), port, nil
}
