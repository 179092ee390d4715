// Package registry provides the host-side registry the reconciliation engine
// reports to: category containers ("devices") and their member entities. The
// in-memory implementation stands in for a real host platform; hosts with
// their own registries implement reconcile.Registry instead.
package registry

import (
	"context"
	"sort"
	"sync"

	"catalog-sync/core/inventory"
)

const (
	manufacturer = "Moy Sklad"
	model        = "Product"
)

// Device is a category container grouping the entities created under it.
type Device struct {
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
}

// InMemory tracks devices and entity membership in process memory.
type InMemory struct {
	mu      sync.RWMutex
	devices map[string]Device
	// members maps entity id to its device (category) name.
	members map[string]string
}

// NewInMemory creates an empty registry.
func NewInMemory() *InMemory {
	return &InMemory{
		devices: make(map[string]Device),
		members: make(map[string]string),
	}
}

// EnsureDevice gets or creates the container for a category. Calling it again
// for an existing category is a no-op.
func (r *InMemory) EnsureDevice(_ context.Context, category string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.devices[category]; !ok {
		r.devices[category] = Device{
			Name:         category,
			Manufacturer: manufacturer,
			Model:        model,
		}
	}
	return nil
}

// CreateEntity registers an entity under its category's device. Idempotent
// with respect to the entity id; the device is created on demand so a direct
// call without EnsureDevice stays safe.
func (r *InMemory) CreateEntity(_ context.Context, e *inventory.LocalEntity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.devices[e.Category]; !ok {
		r.devices[e.Category] = Device{
			Name:         e.Category,
			Manufacturer: manufacturer,
			Model:        model,
		}
	}
	r.members[e.ID] = e.Category
	return nil
}

// RemoveEntity drops an entity's registration. Unknown ids are a no-op.
func (r *InMemory) RemoveEntity(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.members, id)
	return nil
}

// Devices returns all containers, sorted by name.
func (r *InMemory) Devices() []Device {
	r.mu.RLock()
	defer r.mu.RUnlock()
	devices := make([]Device, 0, len(r.devices))
	for _, d := range r.devices {
		devices = append(devices, d)
	}
	sort.Slice(devices, func(i, j int) bool { return devices[i].Name < devices[j].Name })
	return devices
}

// Members returns the entity ids registered under a device, sorted.
func (r *InMemory) Members(category string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var ids []string
	for id, dev := range r.members {
		if dev == category {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
