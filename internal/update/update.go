// Package update checks the project's published version manifest for a
// newer release.
package update

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Version is the running application version.
const Version = "1.0.0"

// manifestURL points at the published version manifest.
const manifestURL = "https://raw.githubusercontent.com/Mohammad-Negahdary/Fire-Extinguisher-Planner/main/version.json"

// Release describes a published version.
type Release struct {
	Version string `json:"version"`
	URL     string `json:"url"`
}

// NewClient returns the short-timeout HTTP client used for update checks.
func NewClient() *http.Client {
	return &http.Client{Timeout: 5 * time.Second}
}

// Check fetches the version manifest and reports whether it announces a
// version newer than current.
func Check(client *http.Client, current string) (*Release, bool, error) {
	return check(client, manifestURL, current)
}

func check(client *http.Client, url, current string) (*Release, bool, error) {
	resp, err := client.Get(url)
	if err != nil {
		return nil, false, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("update check failed: %d", resp.StatusCode)
	}

	var rel Release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil, false, err
	}
	return &rel, newerVersion(rel.Version, current), nil
}

// newerVersion compares dotted numeric versions segment by segment, so
// "1.10.0" orders after "1.9.0".
func newerVersion(remote, current string) bool {
	r := strings.Split(remote, ".")
	c := strings.Split(current, ".")
	for i := 0; i < len(r) || i < len(c); i++ {
		var rv, cv int
		if i < len(r) {
			rv, _ = strconv.Atoi(r[i])
		}
		if i < len(c) {
			cv, _ = strconv.Atoi(c[i])
		}
		if rv != cv {
			return rv > cv
		}
	}
	return false
}
