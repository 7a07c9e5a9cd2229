package resolve

import (
	"testing"

	"xpkg/internal/manifest"
	"xpkg/pkg/platform"
)

func testManifest() *manifest.Manifest {
	return &manifest.Manifest{
		Packages: map[platform.PackageType]manifest.Entry{
			platform.TypeDeb: {
				Name: "htop",
				URLs: map[platform.ArchKey]string{
					platform.ArchIa64:    "https://example.com/htop_amd64.deb",
					platform.ArchAarch64: "https://example.com/htop_arm64.deb",
				},
			},
			platform.TypeApk: {
				Name: "htop",
				URLs: map[platform.ArchKey]string{},
			},
		},
		Installed: true,
	}
}

func TestResolve(t *testing.T) {
	m := testManifest()

	tests := []struct {
		name        string
		ptype       platform.PackageType
		akey        platform.ArchKey
		wantInstall bool
		url         string
		pkgName     string
	}{
		{"deb amd64 install", platform.TypeDeb, platform.ArchIa64, true, "https://example.com/htop_amd64.deb", "htop"},
		{"deb arm64 install", platform.TypeDeb, platform.ArchAarch64, true, "https://example.com/htop_arm64.deb", "htop"},
		{"deb arch without url", platform.TypeDeb, platform.ArchArm, true, "", "htop"},
		{"remove skips url lookup", platform.TypeDeb, platform.ArchIa64, false, "", "htop"},
		{"apk with empty urls", platform.TypeApk, platform.ArchIa64, true, "", "htop"},
		{"type without entry", platform.TypeRpm, platform.ArchIa64, true, "", ""},
		{"unsupported type", platform.TypeUnsupported, platform.ArchIa64, true, "", ""},
		{"unsupported arch", platform.TypeDeb, platform.ArchUnsupported, true, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := Resolve(m, tt.ptype, tt.akey, tt.wantInstall)
			if target.Type != tt.ptype {
				t.Errorf("Type = %q, want %q", target.Type, tt.ptype)
			}
			if target.Arch != tt.akey {
				t.Errorf("Arch = %q, want %q", target.Arch, tt.akey)
			}
			if target.URL != tt.url {
				t.Errorf("URL = %q, want %q", target.URL, tt.url)
			}
			if target.Name != tt.pkgName {
				t.Errorf("Name = %q, want %q", target.Name, tt.pkgName)
			}
		})
	}
}

func TestResolveNilManifest(t *testing.T) {
	target := Resolve(nil, platform.TypeDeb, platform.ArchIa64, true)
	if target.URL != "" || target.Name != "" {
		t.Errorf("nil manifest should resolve empty, got %+v", target)
	}
}

func TestResolveUnsupportedArchSkipsLookupEvenWithEntry(t *testing.T) {
	// An unsupported arch must produce an empty target even when the
	// manifest carries a (bogus) entry under the "unsupported" key.
	m := &manifest.Manifest{
		Packages: map[platform.PackageType]manifest.Entry{
			platform.TypeDeb: {
				Name: "htop",
				URLs: map[platform.ArchKey]string{
					platform.ArchUnsupported: "https://example.com/should-not-resolve.deb",
				},
			},
		},
	}
	target := Resolve(m, platform.TypeDeb, platform.ArchUnsupported, true)
	if target.URL != "" || target.Name != "" {
		t.Errorf("unsupported arch must not resolve, got %+v", target)
	}
}
