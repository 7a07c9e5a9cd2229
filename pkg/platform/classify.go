// Package platform classifies the host into a package ecosystem and a
// CPU architecture bucket used as manifest lookup keys.
package platform

// PackageType identifies which native package ecosystem applies to a host.
type PackageType string

const (
	TypeDeb PackageType = "deb"
	TypeRpm PackageType = "rpm"
	TypeApk PackageType = "apk"
	// TypeUnsupported marks an OS family xpkg has no backend for.
	TypeUnsupported PackageType = "unsupported"
)

// ArchKey identifies the CPU architecture bucket used as a manifest key.
type ArchKey string

const (
	ArchX86 ArchKey = "x86"
	// ArchIa64 keys x86_64 hosts. Not Itanium: the key predates this tool
	// and manifests in the wild depend on it.
	ArchIa64        ArchKey = "ia64"
	ArchArm         ArchKey = "arm"
	ArchAarch64     ArchKey = "aarch64"
	ArchUnsupported ArchKey = "unsupported"
)

// ClassifyOS maps an OS family string to its package ecosystem.
// Total: unrecognized input maps to TypeUnsupported, never an error.
func ClassifyOS(family string) PackageType {
	switch family {
	case "Debian":
		return TypeDeb
	case "RedHat":
		return TypeRpm
	case "Alpine":
		return TypeApk
	default:
		return TypeUnsupported
	}
}

// ClassifyArch maps a raw machine architecture string to its manifest key.
// Total: unrecognized input maps to ArchUnsupported, never an error.
func ClassifyArch(arch string) ArchKey {
	switch arch {
	case "x86_64":
		return ArchIa64
	case "aarch64":
		return ArchAarch64
	case "armv7l", "armv6l":
		return ArchArm
	case "i386", "i686":
		return ArchX86
	default:
		return ArchUnsupported
	}
}
