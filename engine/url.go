package engine

import (
	"io"
	"net/http"
	"net/url"
	"path"
)

// fetchURL downloads the document at rawURL. Only http and https schemes are
// accepted; any transport-level failure maps to an I/O error.
func (e *Extractor) fetchURL(rawURL string) ([]byte, string, Metadata, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, "", nil, newError(KindIO, "parse url", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, "", nil, errorf(KindIO, "fetch url", "unsupported url scheme %q", u.Scheme)
	}

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, "", nil, newError(KindIO, "fetch url", err)
	}
	resp, err := e.client.Do(req)
	if err != nil {
		return nil, "", nil, newError(KindIO, "fetch url", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", nil, errorf(KindIO, "fetch url", "unexpected status %d for %s", resp.StatusCode, rawURL)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", nil, newError(KindIO, "read response", err)
	}

	seed := Metadata{}
	seed.Set(MetaContentLocation, rawURL)

	name := path.Base(u.Path)
	if name == "/" || name == "." {
		name = ""
	}
	return data, name, seed, nil
}
