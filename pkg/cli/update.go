package cli

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/blang/semver"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
)

// Version is the running build, stamped with -ldflags "-X ...cli.Version=1.2.3".
var Version = "0.0.0-dev"

var semverRe = regexp.MustCompile(`v?\d+\.\d+\.\d+(-[0-9A-Za-z.-]+)?(\+[0-9A-Za-z.-]+)?`)

// parseVersion finds a semantic version inside s, so tags like "rgbedit-v1.2.0"
// parse too.
func parseVersion(s string) (semver.Version, error) {
	m := semverRe.FindString(s)
	if m == "" {
		return semver.Version{}, fmt.Errorf("no semantic version in %q", s)
	}
	return semver.Parse(strings.TrimPrefix(m, "v"))
}

// needsUpdate reports whether latest is newer than current. An unparsable current
// version always updates.
func needsUpdate(current string, latest semver.Version) bool {
	cur, err := parseVersion(current)
	if err != nil {
		return true
	}
	return latest.GT(cur)
}

// CheckForUpdates looks up the newest GitHub release of repo ("owner/name") and,
// after confirmation on p, replaces the running executable with it.
func CheckForUpdates(repo string, p *Prompter) error {
	fmt.Fprintf(p.out, "Current version: %s\n", Version)
	latest, found, err := selfupdate.DetectLatest(repo)
	if err != nil {
		return fmt.Errorf("update check failed: %w", err)
	}
	if !found || latest == nil {
		fmt.Fprintf(p.out, "No releases found for %s.\n", repo)
		return nil
	}
	fmt.Fprintf(p.out, "Latest version: %s\n", latest.Version)

	if !needsUpdate(Version, latest.Version) {
		fmt.Fprintln(p.out, "You are already running the latest version.")
		return nil
	}
	if latest.AssetURL == "" {
		fmt.Fprintf(p.out, "Version %s is available but has no asset for this platform.\n", latest.Version)
		return nil
	}

	answer, err := p.Line(fmt.Sprintf("A new version (%s) is available. Update now? (y/N): ", latest.Version))
	if err != nil {
		return fmt.Errorf("failed reading input: %w", err)
	}
	if ok, _ := parseBoolLikeToString(answer); ok != "true" {
		fmt.Fprintln(p.out, "Update cancelled.")
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("could not locate executable: %w", err)
	}
	if err := selfupdate.UpdateTo(latest.AssetURL, exe); err != nil {
		return fmt.Errorf("update failed: %w", err)
	}
	fmt.Fprintf(p.out, "Updated to %s. Restart rgbedit to use it.\n", latest.Version)
	return nil
}
