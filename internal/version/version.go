// Package version reports build information and checks GitHub for newer releases.
package version

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// GitHubRepo is the GitHub repository artisan is released from.
const GitHubRepo = "wexinc/artisan"

// GitHubAPI is the GitHub REST API root.
const GitHubAPI = "https://api.github.com"

// Info contains version information about the running binary.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	GoVer   string `json:"go_version"`
	OS      string `json:"os"`
	Arch    string `json:"arch"`
}

// NewInfo creates a new Info from the build variables.
func NewInfo(version, commit, date string) *Info {
	return &Info{
		Version: version,
		Commit:  commit,
		Date:    date,
		GoVer:   runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}
}

// String returns a one-line version string.
func (i *Info) String() string {
	return fmt.Sprintf("artisan %s (commit: %s, built: %s)", i.Version, i.Commit, i.Date)
}

// FullString returns a detailed version string.
func (i *Info) FullString() string {
	return fmt.Sprintf(`artisan %s
  Commit:   %s
  Built:    %s
  Go:       %s
  OS/Arch:  %s/%s`, i.Version, i.Commit, i.Date, i.GoVer, i.OS, i.Arch)
}

// Release represents a GitHub release.
type Release struct {
	TagName     string `json:"tag_name"`
	Name        string `json:"name"`
	PublishedAt string `json:"published_at"`
	HTMLURL     string `json:"html_url"`
}

// Checker checks GitHub for newer releases.
type Checker struct {
	client *resty.Client
	Repo   string
}

// NewChecker creates a checker against the public GitHub API.
func NewChecker() *Checker {
	return NewCheckerWithBase(GitHubAPI)
}

// NewCheckerWithBase creates a checker against another API root, such as a
// GitHub Enterprise host or a test server.
func NewCheckerWithBase(base string) *Checker {
	return &Checker{
		client: resty.New().
			SetBaseURL(base).
			SetTimeout(10*time.Second).
			SetHeader("Accept", "application/vnd.github.v3+json").
			SetHeader("User-Agent", "artisan-version-checker"),
		Repo: GitHubRepo,
	}
}

// GetLatestRelease fetches the latest published release.
func (c *Checker) GetLatestRelease(ctx context.Context) (*Release, error) {
	var release Release
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("repo", c.Repo).
		SetResult(&release).
		Get("/repos/{repo}/releases/latest")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch release: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("GitHub API returned %d: %s", resp.StatusCode(), strings.TrimSpace(resp.String()))
	}
	return &release, nil
}

// CheckForUpdate returns the latest release if it is newer than
// currentVersion, or nil if currentVersion is up to date.
func (c *Checker) CheckForUpdate(ctx context.Context, currentVersion string) (*Release, error) {
	release, err := c.GetLatestRelease(ctx)
	if err != nil {
		return nil, err
	}
	if CompareVersions(release.TagName, currentVersion) > 0 {
		return release, nil
	}
	return nil, nil
}

// CompareVersions compares two semantic version strings, ignoring a leading
// "v" and any pre-release suffix. It returns 1 if a > b, -1 if a < b, 0 if equal.
func CompareVersions(a, b string) int {
	av, bv := parseVersion(a), parseVersion(b)
	for i := range av {
		switch {
		case av[i] > bv[i]:
			return 1
		case av[i] < bv[i]:
			return -1
		}
	}
	return 0
}

func parseVersion(v string) [3]int {
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	parts := strings.SplitN(v, ".", 3)
	var result [3]int
	for i, part := range parts {
		part, _, _ = strings.Cut(part, "-")
		part, _, _ = strings.Cut(part, "+")
		result[i], _ = strconv.Atoi(part)
	}
	return result
}
