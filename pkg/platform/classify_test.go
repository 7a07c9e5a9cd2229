package platform

import "testing"

func TestClassifyOS(t *testing.T) {
	tests := []struct {
		family   string
		expected PackageType
	}{
		{"Debian", TypeDeb},
		{"RedHat", TypeRpm},
		{"Alpine", TypeApk},
		{"Arch", TypeUnsupported},
		{"Windows", TypeUnsupported},
		{"debian", TypeUnsupported}, // case sensitive
		{"", TypeUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.family, func(t *testing.T) {
			if got := ClassifyOS(tt.family); got != tt.expected {
				t.Errorf("ClassifyOS(%q) = %q, want %q", tt.family, got, tt.expected)
			}
		})
	}
}

func TestClassifyArch(t *testing.T) {
	tests := []struct {
		arch     string
		expected ArchKey
	}{
		{"x86_64", ArchIa64},
		{"aarch64", ArchAarch64},
		{"armv7l", ArchArm},
		{"armv6l", ArchArm},
		{"i386", ArchX86},
		{"i686", ArchX86},
		{"riscv64", ArchUnsupported},
		{"amd64", ArchUnsupported}, // GOARCH names are not machine names
		{"", ArchUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.arch, func(t *testing.T) {
			if got := ClassifyArch(tt.arch); got != tt.expected {
				t.Errorf("ClassifyArch(%q) = %q, want %q", tt.arch, got, tt.expected)
			}
		})
	}
}

func TestArchIa64KeysAmd64(t *testing.T) {
	// The manifest key for x86_64 hosts is the literal string "ia64".
	// Manifests in the wild depend on it, so it must never drift.
	if string(ArchIa64) != "ia64" {
		t.Errorf("ArchIa64 = %q, want \"ia64\"", ArchIa64)
	}
	if ClassifyArch("x86_64") != ArchIa64 {
		t.Error("x86_64 must classify to the ia64 key")
	}
}
