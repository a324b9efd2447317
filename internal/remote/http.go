package remote

import (
	"fmt"
	"io"
	"net/http"
)

// maxBody caps how much of a response is read.
const maxBody = 32 << 20

// Response is a fully read HTTP response.
type Response struct {
	Header http.Header
	Body   []byte
}

// Do sends req and reads the whole body. Transport failures and non-2xx
// statuses come back as *NetworkError.
func Do(client *http.Client, req *http.Request) (*Response, error) {
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: req.URL.String(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxBody))
		return nil, &NetworkError{
			URL:        req.URL.String(),
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%s", resp.Status),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, &NetworkError{URL: req.URL.String(), Err: fmt.Errorf("failed to read body: %w", err)}
	}

	return &Response{Header: resp.Header, Body: body}, nil
}
