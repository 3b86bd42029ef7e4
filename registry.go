package inputmask

import (
	"reflect"
	"sync"
)

var (
	planRegistry   = make(map[reflect.Type]*typePlans)
	planRegistryMu sync.RWMutex
)

// getOrBuildPlans returns the cached field plans for T, scanning it on first use.
func getOrBuildPlans[T any]() (*typePlans, error) {
	typ := reflect.TypeFor[T]()

	// Fast path: read-lock cache check
	planRegistryMu.RLock()
	if cached, ok := planRegistry[typ]; ok {
		planRegistryMu.RUnlock()
		return cached, nil
	}
	planRegistryMu.RUnlock()

	// Slow path: build and cache with write-lock
	planRegistryMu.Lock()
	defer planRegistryMu.Unlock()

	// Double-check pattern
	if cached, ok := planRegistry[typ]; ok {
		return cached, nil
	}

	plans, err := buildFieldPlans[T]()
	if err != nil {
		return nil, err
	}

	planRegistry[typ] = plans
	return plans, nil
}

// Reset clears the field plan cache.
// This is primarily useful for test isolation.
func Reset() {
	planRegistryMu.Lock()
	defer planRegistryMu.Unlock()
	planRegistry = make(map[reflect.Type]*typePlans)
}
