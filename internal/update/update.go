package update

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	selfupdate "github.com/creativeprojects/go-selfupdate"
)

// DefaultTimeout bounds a single release lookup when the checker has none set.
const DefaultTimeout = 10 * time.Second

// ErrNoRepository is returned when a checker has no owner/name slug to query.
var ErrNoRepository = errors.New("no release repository configured")

// Info describes an application update that is available for installation.
type Info struct {
	CurrentVersion string `json:"current_version"`
	LatestVersion  string `json:"latest_version"`
	ReleaseURL     string `json:"release_url"`
	ReleaseNotes   string `json:"release_notes"`
}

// Checker reports whether a newer release exists. A nil Info with a nil
// error means the running build is current.
type Checker interface {
	CheckForUpdate(ctx context.Context) (*Info, error)
}

// CheckerFunc adapts an ordinary function to the Checker interface.
type CheckerFunc func(ctx context.Context) (*Info, error)

func (f CheckerFunc) CheckForUpdate(ctx context.Context) (*Info, error) {
	return f(ctx)
}

// release is the subset of a published release the checker needs.
type release struct {
	Version      string
	URL          string
	ReleaseNotes string
}

// releaseSource looks up the newest release of a repository. It returns a
// nil release when the repository has none.
type releaseSource interface {
	latest(ctx context.Context, repo string) (*release, error)
}

// selfupdateSource picks the newest release from a go-selfupdate Source
// listing. Assets are not considered, so a source-only release still counts.
type selfupdateSource struct {
	source     selfupdate.Source
	prerelease bool
}

func newSelfupdateSource(apiToken string, prerelease bool) (*selfupdateSource, error) {
	source, err := selfupdate.NewGitHubSource(selfupdate.GitHubConfig{APIToken: apiToken})
	if err != nil {
		return nil, fmt.Errorf("create github source: %w", err)
	}
	return &selfupdateSource{source: source, prerelease: prerelease}, nil
}

func (s *selfupdateSource) latest(ctx context.Context, repo string) (*release, error) {
	rels, err := s.source.ListReleases(ctx, selfupdate.ParseSlug(repo))
	if err != nil {
		return nil, err
	}

	var best selfupdate.SourceRelease
	for _, rel := range rels {
		if rel == nil || rel.GetDraft() {
			continue
		}
		v, err := parseSemver(rel.GetTagName())
		if err != nil {
			continue
		}
		if !s.prerelease && (rel.GetPrerelease() || v.Prerelease() != "") {
			continue
		}
		if best == nil || CompareVersions(best.GetTagName(), rel.GetTagName()) < 0 {
			best = rel
		}
	}
	if best == nil {
		return nil, nil
	}
	return &release{
		Version:      best.GetTagName(),
		URL:          best.GetURL(),
		ReleaseNotes: best.GetReleaseNotes(),
	}, nil
}

// GitHubChecker checks GitHub Releases of Repo for a version newer than
// CurrentVersion.
type GitHubChecker struct {
	CurrentVersion string
	Repo           string
	Timeout        time.Duration
	Prerelease     bool
	APIToken       string

	source releaseSource
}

// CheckForUpdate queries the latest release and returns its details when it
// is strictly newer than the running build. Development builds ("dev" or an
// empty version) and unparseable versions never report an update.
func (c *GitHubChecker) CheckForUpdate(ctx context.Context) (*Info, error) {
	if c.CurrentVersion == "dev" || c.CurrentVersion == "" {
		return nil, nil
	}

	if _, err := parseSemver(c.CurrentVersion); err != nil {
		return nil, nil // e.g. a dirty local build
	}

	if c.Repo == "" {
		return nil, ErrNoRepository
	}

	src := c.source
	if src == nil {
		s, err := newSelfupdateSource(c.APIToken, c.Prerelease)
		if err != nil {
			return nil, err
		}
		src = s
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	rel, err := src.latest(ctx, c.Repo)
	if err != nil {
		return nil, fmt.Errorf("detect latest release of %s: %w", c.Repo, err)
	}
	if rel == nil {
		return nil, nil
	}

	if CompareVersions(c.CurrentVersion, rel.Version) >= 0 {
		return nil, nil
	}

	return &Info{
		CurrentVersion: strings.TrimPrefix(c.CurrentVersion, "v"),
		LatestVersion:  strings.TrimPrefix(rel.Version, "v"),
		ReleaseURL:     rel.URL,
		ReleaseNotes:   rel.ReleaseNotes,
	}, nil
}

// SetLibraryLogger routes the release library's diagnostic output to l.
func SetLibraryLogger(l selfupdate.Logger) {
	selfupdate.SetLogger(l)
}

// CompareVersions compares two semver strings.
// Returns -1 if current < latest, 0 if equal, 1 if current > latest.
// Unparseable versions are treated as less than any valid version.
func CompareVersions(current, latest string) int {
	cv, errC := parseSemver(current)
	lv, errL := parseSemver(latest)

	if errC != nil && errL != nil {
		return 0
	}
	if errC != nil {
		return -1
	}
	if errL != nil {
		return 1
	}

	return cv.Compare(lv)
}

// parseSemver strips a leading "v" before parsing.
func parseSemver(s string) (*semver.Version, error) {
	s = strings.TrimPrefix(s, "v")
	return semver.NewVersion(s)
}
