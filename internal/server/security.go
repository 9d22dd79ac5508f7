package server

import (
	"crypto/tls"
	"fmt"
	"net"

	"github.com/dtroode/simple-twitter-server/internal/model"
)

// TLSListener opens TLS listeners from a certificate and key pair on disk.
// The pair is read on each Listen.
type TLSListener struct {
	certFileName       string
	privateKeyFileName string
}

// NewTLSListener creates a new TLSListener instance.
func NewTLSListener(certFileName, privateKeyFileName string) *TLSListener {
	return &TLSListener{
		certFileName:       certFileName,
		privateKeyFileName: privateKeyFileName,
	}
}

// Listen announces on addr and wraps accepted connections in TLS 1.2+.
func (l *TLSListener) Listen(protocol, addr string) (net.Listener, error) {
	cert, err := tls.LoadX509KeyPair(l.certFileName, l.privateKeyFileName)
	if err != nil {
		return nil, fmt.Errorf("failed to load TLS certificate: %w", err)
	}

	return tls.Listen(protocol, addr, &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	})
}

// PlainListener opens unencrypted listeners.
type PlainListener struct{}

func NewPlainListener() *PlainListener {
	return &PlainListener{}
}

func (l *PlainListener) Listen(protocol, addr string) (net.Listener, error) {
	return net.Listen(protocol, addr)
}

// NewSecurityLayer picks the TLS or plain listener.
func NewSecurityLayer(enableTLS bool, certFileName, privateKeyFileName string) model.SecurityLayer {
	if enableTLS {
		return NewTLSListener(certFileName, privateKeyFileName)
	}
	return NewPlainListener()
}
