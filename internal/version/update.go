package version

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hashicorp/go-cleanhttp"
	hashiVersion "github.com/hashicorp/go-version"

	"github.com/anchore/libversion/internal"
	"github.com/anchore/libversion/internal/log"
	"github.com/anchore/libversion/libversion"
)

var latestAppVersionURL = struct {
	host string
	path string
}{
	host: "https://toolbox-data.anchore.io",
	path: fmt.Sprintf("/%s/releases/latest/VERSION", internal.ApplicationName),
}

// IsUpdateAvailable indicates if there is a newer application version available, and if so, what the new version is.
func IsUpdateAvailable() (bool, string, error) {
	current := FromBuild()
	if !current.isProvided() {
		// this is the default build arg and should be ignored (this is not an error case)
		return false, "", nil
	}

	latestVersion, err := fetchLatestApplicationVersion()
	if err != nil {
		return false, "", err
	}

	if libversion.Compare(latestVersion, strings.TrimPrefix(current.Version, "v")) > 0 {
		return true, latestVersion, nil
	}

	return false, "", nil
}

// fetchLatestApplicationVersion returns the normalized latest release version. Releases are tagged with semantic
// versions, anything else in the response is rejected.
func fetchLatestApplicationVersion() (string, error) {
	req, err := http.NewRequest(http.MethodGet, latestAppVersionURL.host+latestAppVersionURL.path, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request for latest version: %w", err)
	}

	resp, err := cleanhttp.DefaultClient().Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch latest version: %w", err)
	}
	defer log.CloseAndLogError(resp.Body, latestAppVersionURL.path)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d on fetching latest version: %s", resp.StatusCode, resp.Status)
	}

	versionBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read latest version: %w", err)
	}

	versionStr := strings.TrimSpace(string(versionBytes))
	v, err := hashiVersion.NewSemver(versionStr)
	if err != nil {
		return "", fmt.Errorf("invalid latest version %q: %w", versionStr, err)
	}
	return v.String(), nil
}
