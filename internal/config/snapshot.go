package config

import (
	"crypto/sha256"
	"encoding/hex"

	"gopkg.in/yaml.v3"
)

// Snapshot computes a stable hash of the fields that affect generated settings:
// the project tree, the defaults and the output selection. Logging and metrics
// are excluded. Callers should run Prepare first so values are canonical.
func (c *Config) Snapshot() string {
	if c == nil {
		return ""
	}
	h := sha256.New()
	for _, part := range []any{c.Project, c.Defaults, c.Output} {
		data, err := yaml.Marshal(part)
		if err != nil {
			return ""
		}
		h.Write(data)
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
