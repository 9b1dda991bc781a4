package database

import (
	"github.com/bradfitz/gomemcache/memcache"
)

// NewMemcached builds the client for the item payload cache. An empty server
// address disables caching; the item repository tolerates a nil client.
func NewMemcached(server string) *memcache.Client {
	if server == "" {
		return nil
	}
	return memcache.New(server)
}
