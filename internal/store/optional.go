// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// Optional holds a side-store capability that is either present or absent
// for the whole lifetime of the process. The zero value is absent.
type Optional struct {
	cache Cache
}

// Present wraps a connected cache. A nil cache yields an absent capability.
func Present(cache Cache) Optional {
	return Optional{cache: cache}
}

// Absent returns a capability with no side-store behind it.
func Absent() Optional {
	return Optional{}
}

// Get returns the cache and true when the capability is present.
func (o Optional) Get() (Cache, bool) {
	return o.cache, o.cache != nil
}

// Close releases the cache if present.
func (o Optional) Close() error {
	if cache, ok := o.Get(); ok {
		return cache.Close()
	}
	return nil
}
