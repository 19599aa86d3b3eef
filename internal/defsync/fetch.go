package defsync

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"eventlink/internal/crypto/wrappers"
	"eventlink/pkg/eventdef"
)

const fetchTimeout = 30 * time.Second

// Fetch retrieves the definitions bundle from s.Endpoint, decrypts it using
// privateKey against the sender's ephemeral public key, and checks the
// sender's static public key against s.TrustedPublicKey before handing the
// decrypted bundle to the definition loader. privateKey must already have
// been installed via wrappers.SetupDecryptInnerPayload by the caller.
func (s Syncer) Fetch(ctx context.Context) (store *eventdef.Store, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Endpoint, nil)
	if err != nil {
		err = fmt.Errorf("building sync request: %w", err)
		return
	}

	client := &http.Client{Timeout: fetchTimeout}
	resp, err := client.Do(req)
	if err != nil {
		err = fmt.Errorf("fetching definitions bundle: %w", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("sync endpoint returned status %d", resp.StatusCode)
		return
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		err = fmt.Errorf("reading sync response: %w", err)
		return
	}

	var envelope bundleEnvelope
	if err = json.Unmarshal(body, &envelope); err != nil {
		err = fmt.Errorf("invalid sync response envelope: %w", err)
		return
	}

	ciphertext, ephemeralPub, nonce, senderPub, err := envelope.decodeFields()
	if err != nil {
		err = fmt.Errorf("invalid sync response encoding: %w", err)
		return
	}

	if len(s.TrustedPublicKey) > 0 {
		if subtle.ConstantTimeCompare(senderPub, s.TrustedPublicKey) != 1 {
			err = fmt.Errorf("sync response signed by untrusted station key")
			return
		}
	}

	if wrappers.DecryptInnerPayload == nil {
		err = fmt.Errorf("decryption not initialized: missing station private key")
		return
	}

	plaintext, err := wrappers.DecryptInnerPayload(ciphertext, ephemeralPub, nonce, envelope.SuiteID)
	if err != nil {
		err = fmt.Errorf("decrypting definitions bundle: %w", err)
		return
	}

	store, err = eventdef.Load(plaintext)
	if err != nil {
		err = fmt.Errorf("parsing decrypted definitions bundle: %w", err)
		return
	}

	return
}
