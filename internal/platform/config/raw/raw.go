// Package raw reads environment variables during early bootstrap. It stays
// import-free of the logger so the logger can configure itself from it
// without a cycle
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Conf is a prefix-scoped view over the environment
type Conf struct{ prefix string }

// New returns the unscoped root view
func New() Conf { return Conf{} }

// Prefix narrows the view by appending p, e.g. "LOG_"
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) lookup(key string) string {
	return strings.TrimSpace(os.Getenv(c.prefix + key))
}

// Get returns the trimmed value or def when unset or empty
func (c Conf) Get(key, def string) string {
	if v := c.lookup(key); v != "" {
		return v
	}
	return def
}

// GetBool accepts 1, true and yes in any case as true
func (c Conf) GetBool(key string, def bool) bool {
	v := strings.ToLower(c.lookup(key))
	if v == "" {
		return def
	}
	return v == "1" || v == "true" || v == "yes"
}

// GetInt falls back to def on unset or unparsable values
func (c Conf) GetInt(key string, def int) int {
	v := c.lookup(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
