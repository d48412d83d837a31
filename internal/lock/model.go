package lock

// FormatVersion is the lock file schema version written by this tool.
const FormatVersion = "1.0"

// Store represents voidui.lock.json.
type Store struct {
	Schema     string            `json:"$schema,omitempty"`
	Version    string            `json:"version"`
	Components map[string]Record `json:"components"`
}

// Record captures the installed state of a single component. Checksum
// always reflects the content written on the last successful install or
// update, never the current on-disk content.
type Record struct {
	InstalledVersion string `json:"installedVersion"`
	InstalledAt      string `json:"installedAt"`
	Checksum         string `json:"checksum"`
	RegistryURL      string `json:"registryUrl,omitempty"`
}
