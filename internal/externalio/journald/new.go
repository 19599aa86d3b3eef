package journald

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Creates new journald output module. Tests connection. Returns nil nil if no url.
func NewOutput(endpoint string) (module *OutModule, err error) {
	if endpoint == "" {
		return
	}

	new := &OutModule{}

	transport := &http.Transport{
		MaxIdleConns:          10,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		DisableKeepAlives:     false,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: -1, // Not supported by journal remote server
	}

	var baseURL *url.URL
	baseURL, err = url.Parse(endpoint)
	if err != nil {
		err = fmt.Errorf("invalid journald URL: %v", err)
		return
	}
	messagePublishPath := &url.URL{Path: "upload"} // Only path accepted by the remote server
	new.url = baseURL.ResolveReference(messagePublishPath).String()

	new.sink = &http.Client{
		Transport: transport,
		Timeout:   0, // no per-request timeout
	}

	testCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var req *http.Request
	req, err = http.NewRequestWithContext(
		testCtx,
		http.MethodPost,
		endpoint,
		bytes.NewReader(nil),
	)
	if err != nil {
		err = fmt.Errorf("failed to create test HTTP connection to journald: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/vnd.fdo.journal")

	var resp *http.Response
	resp, err = new.sink.Do(req)
	if err != nil {
		err = fmt.Errorf("failed to test HTTP connection to journald: %v", err)
		return
	}
	resp.Body.Close()

	module = new
	return
}
