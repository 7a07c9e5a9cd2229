package platform

import (
	"bufio"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Facts holds the raw platform strings the classifiers consume.
type Facts struct {
	OSFamily     string // e.g. "Debian", "RedHat", "Alpine"
	Arch         string // e.g. "x86_64", "aarch64", "armv7l", "i686"
	Distribution string // os-release ID, e.g. "ubuntu"
	PrettyName   string // human-readable name
}

// osReleasePath is a variable so tests can point at a fixture.
var osReleasePath = "/etc/os-release"

// Detect gathers platform facts for the current host. It always returns
// usable facts; an error only signals that distribution detection had to
// fall back to weaker sources.
func Detect() (*Facts, error) {
	facts := &Facts{Arch: detectArch()}

	rel, err := parseOSRelease(osReleasePath)
	if err != nil {
		rel, err = parseReleaseFiles()
	}
	if rel != nil {
		facts.Distribution = rel.id
		facts.PrettyName = rel.prettyName
		facts.OSFamily = familyFor(rel.id, rel.idLike)
	}

	return facts, err
}

// release is what we need from /etc/os-release.
type release struct {
	id         string
	idLike     []string
	prettyName string
}

func parseOSRelease(path string) (*release, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	rel := &release{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		parts := strings.SplitN(scanner.Text(), "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.Trim(strings.TrimSpace(parts[1]), "\"")

		switch key {
		case "ID":
			rel.id = value
		case "ID_LIKE":
			rel.idLike = strings.Fields(value)
		case "PRETTY_NAME":
			rel.prettyName = value
		}
	}

	return rel, scanner.Err()
}

// parseReleaseFiles checks distribution-specific release files on hosts
// too old or too minimal to ship /etc/os-release.
func parseReleaseFiles() (*release, error) {
	releaseFiles := []struct {
		path   string
		distro string
	}{
		{"/etc/debian_version", "debian"},
		{"/etc/fedora-release", "fedora"},
		{"/etc/centos-release", "centos"},
		{"/etc/redhat-release", "rhel"},
		{"/etc/alpine-release", "alpine"},
	}

	for _, rf := range releaseFiles {
		if _, err := os.Stat(rf.path); err == nil {
			return &release{id: rf.distro, prettyName: rf.distro}, nil
		}
	}

	return nil, os.ErrNotExist
}

// distroFamilyMap maps os-release IDs to the OS family names the
// classifier understands.
var distroFamilyMap = map[string]string{
	// Debian family
	"debian":     "Debian",
	"ubuntu":     "Debian",
	"linuxmint":  "Debian",
	"pop":        "Debian",
	"kali":       "Debian",
	"raspbian":   "Debian",
	"elementary": "Debian",

	// Red Hat family
	"rhel":      "RedHat",
	"fedora":    "RedHat",
	"centos":    "RedHat",
	"rocky":     "RedHat",
	"almalinux": "RedHat",
	"ol":        "RedHat",
	"amzn":      "RedHat",

	// Alpine
	"alpine": "Alpine",
}

// familyFor resolves the OS family for a distribution, checking the
// direct ID first and then the ID_LIKE chain.
func familyFor(id string, idLike []string) string {
	if fam, ok := distroFamilyMap[id]; ok {
		return fam
	}
	for _, like := range idLike {
		if fam, ok := distroFamilyMap[like]; ok {
			return fam
		}
	}
	return ""
}

// goarchMachineMap translates GOARCH values into the machine strings
// uname reports, for when uname itself is unavailable.
var goarchMachineMap = map[string]string{
	"amd64": "x86_64",
	"arm64": "aarch64",
	"arm":   "armv7l",
	"386":   "i686",
}

// detectArch returns the machine architecture string. uname is preferred
// because GOARCH "arm" cannot distinguish armv6l from armv7l.
func detectArch() string {
	if out, err := exec.Command("uname", "-m").Output(); err == nil {
		if machine := strings.TrimSpace(string(out)); machine != "" {
			return machine
		}
	}
	if machine, ok := goarchMachineMap[runtime.GOARCH]; ok {
		return machine
	}
	return runtime.GOARCH
}
