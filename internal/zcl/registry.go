package zcl

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
)

// Registry holds all known ZCL cluster definitions. It is built once by
// NewRegistry and never modified afterwards, so lookups need no locking.
// Returned definitions are shared and must not be modified.
type Registry struct {
	clusters map[uint16][]*ClusterDef // variants per ID, default (no manufacturer) first
	byName   map[string]*ClusterDef
	logger   *slog.Logger
}

// NewRegistry builds a registry from defs. Definitions sharing an ID and
// manufacturer code are merged in order, which lets custom definitions extend
// the built-in ones. Several manufacturer variants may share an ID as long as
// exactly one of them is the default.
func NewRegistry(logger *slog.Logger, defs ...ClusterDef) (*Registry, error) {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Registry{
		clusters: make(map[uint16][]*ClusterDef),
		byName:   make(map[string]*ClusterDef),
		logger:   logger,
	}
	for i := range defs {
		r.register(&defs[i])
	}
	for id, variants := range r.clusters {
		if err := r.index(id, variants); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) register(c *ClusterDef) {
	for _, existing := range r.clusters[c.ID] {
		if existing.ManufacturerCode == c.ManufacturerCode {
			existing.Merge(c)
			r.logger.Debug("cluster merged", "id", fmt.Sprintf("0x%04X", c.ID), "name", existing.Name)
			return
		}
	}
	r.clusters[c.ID] = append(r.clusters[c.ID], c.DeepCopy())
	r.logger.Debug("cluster registered", "id", fmt.Sprintf("0x%04X", c.ID), "name", c.Name,
		"manufacturer", c.ManufacturerCode)
}

func (r *Registry) index(id uint16, variants []*ClusterDef) error {
	slices.SortStableFunc(variants, func(a, b *ClusterDef) int {
		return cmp.Compare(a.ManufacturerCode, b.ManufacturerCode)
	})
	if len(variants) > 1 && variants[0].ManufacturerCode != 0 {
		return fmt.Errorf("zcl: cluster 0x%04X has %d manufacturer variants and no default", id, len(variants))
	}
	for _, c := range variants {
		if c.Name == "" {
			return fmt.Errorf("zcl: cluster 0x%04X (manufacturer 0x%04X) has no name", id, c.ManufacturerCode)
		}
		if other, dup := r.byName[c.Name]; dup {
			return fmt.Errorf("zcl: cluster name %q used by 0x%04X and 0x%04X", c.Name, other.ID, c.ID)
		}
		r.byName[c.Name] = c
	}
	return nil
}

// Cluster resolves a cluster by name or ID. For an ID with manufacturer
// variants, the variant matching manufacturerCode is returned, and the
// default variant otherwise. Names select a variant directly.
func (r *Registry) Cluster(key Key, manufacturerCode uint16) (*ClusterDef, error) {
	if name, ok := key.Name(); ok {
		if c := r.byName[name]; c != nil {
			return c, nil
		}
	} else if id, ok := key.ID(); ok {
		if variants := r.clusters[id]; len(variants) > 0 {
			if manufacturerCode != 0 {
				for _, c := range variants {
					if c.ManufacturerCode == manufacturerCode {
						return c, nil
					}
				}
			}
			return variants[0], nil
		}
	}
	return nil, &LookupError{Err: ErrUnknownCluster, Key: key}
}

// Get returns the default definition for id, or nil if not found.
func (r *Registry) Get(id uint16) *ClusterDef {
	c, err := r.Cluster(ByID(id), 0)
	if err != nil {
		return nil
	}
	return c
}

// All returns every cluster variant ordered by ID, default variant first.
func (r *Registry) All() []*ClusterDef {
	result := make([]*ClusterDef, 0, len(r.byName))
	for _, variants := range r.clusters {
		result = append(result, variants...)
	}
	slices.SortFunc(result, func(a, b *ClusterDef) int {
		if c := cmp.Compare(a.ID, b.ID); c != 0 {
			return c
		}
		return cmp.Compare(a.ManufacturerCode, b.ManufacturerCode)
	})
	return result
}
