// Package defsync fetches and authenticates a remote event definitions
// bundle for stations that don't want to manage definitions.json by hand.
// The wire format reuses the same X25519 ECDH + HKDF + ChaCha20-Poly1305
// envelope the receive daemon's per-message crypto wrappers already
// implement, applied here to a whole bundle instead of a single payload.
package defsync

import "encoding/base64"

// bundleEnvelope is the JSON shape served by a definitions sync endpoint.
type bundleEnvelope struct {
	Ciphertext   string `json:"ciphertext"`
	EphemeralPub string `json:"ephemeralPub"`
	Nonce        string `json:"nonce"`
	SuiteID      uint8  `json:"suiteID"`
	SenderPub    string `json:"senderPub"`
}

func (b bundleEnvelope) decodeFields() (ciphertext, ephemeralPub, nonce, senderPub []byte, err error) {
	if ciphertext, err = base64.StdEncoding.DecodeString(b.Ciphertext); err != nil {
		return
	}
	if ephemeralPub, err = base64.StdEncoding.DecodeString(b.EphemeralPub); err != nil {
		return
	}
	if nonce, err = base64.StdEncoding.DecodeString(b.Nonce); err != nil {
		return
	}
	senderPub, err = base64.StdEncoding.DecodeString(b.SenderPub)
	return
}

// Syncer fetches definitions bundles from a single configured endpoint.
type Syncer struct {
	Endpoint         string
	TrustedPublicKey []byte
}
