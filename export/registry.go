// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package export

import (
	"sort"
	"sync"
)

// Registry state, protected by mutex for concurrent lookups.
var (
	registryMu sync.RWMutex
	encoders   = make(map[string]Encoder)
)

func init() {
	Register("png", PNGEncoder{})
	Register("jpeg", JPEGEncoder{})
	Register("pdf", PDFEncoder{})
}

// Register makes an encoder available under name.
//
// Register panics if enc is nil or if name is already registered, so that
// conflicting formats are caught during program initialization.
func Register(name string, enc Encoder) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if enc == nil {
		panic("export: Register encoder is nil")
	}
	if _, dup := encoders[name]; dup {
		panic("export: Register called twice for " + name)
	}
	encoders[name] = enc
}

// Unregister removes an encoder. Unknown names are ignored.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(encoders, name)
}

// Lookup returns the encoder registered under name.
func Lookup(name string) (Encoder, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	enc, ok := encoders[name]
	return enc, ok
}

// IsRegistered reports whether an encoder is registered under name.
func IsRegistered(name string) bool {
	_, ok := Lookup(name)
	return ok
}

// Formats returns the registered format names, sorted.
func Formats() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
