package boundary

// DefaultDataRoots lists the absolute paths at which a data-volume
// hierarchy is mounted on the target layout (GLOSSARY: Data root).
var DefaultDataRoots = []string{
	"/System/Volumes/Data",
}

// DefaultFirmlinks is the illustrative default firmlink set from the
// spec's GLOSSARY: installed system-volume paths mapped to the relative
// path beneath a data root that actually backs them.
var DefaultFirmlinks = map[string]string{
	"/AppleInternal":                "AppleInternal",
	"/Applications":                 "Applications",
	"/Library":                      "Library",
	"/System/Library/Caches":        "System/Library/Caches",
	"/System/Library/Assets":        "System/Library/Assets",
	"/System/Library/PreinstalledAssets":   "System/Library/PreinstalledAssets",
	"/System/Library/AssetsV2":             "System/Library/AssetsV2",
	"/System/Library/PreinstalledAssetsV2": "System/Library/PreinstalledAssetsV2",
	"/System/Library/CoreServices/CoreTypes.bundle/Contents/Library": "System/Library/CoreServices/CoreTypes.bundle/Contents/Library",
	"/System/Library/Speech": "System/Library/Speech",
	"/Users":                 "Users",
	"/Volumes":               "Volumes",
	"/cores":                 "cores",
	"/opt":                   "opt",
	"/private":               "private",
	"/usr/local":             "usr/local",
	"/usr/libexec/cups":      "usr/libexec/cups",
	"/usr/share/snmp":        "usr/share/snmp",
}
