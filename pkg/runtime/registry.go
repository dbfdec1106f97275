// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package runtime

import (
	"fmt"
	"slices"

	log "github.com/sirupsen/logrus"
)

// Registry holds the runtime table configurations declared when setting up a
// circuit, against which prover-time tables are subsequently bound.
type Registry[F any] struct {
	configs []Config[F]
	// Maps identifiers to their index in configs.
	index map[int32]uint
}

// NewRegistry constructs a registry from a given set of configurations.  This
// panics if two configurations share the same identifier.
func NewRegistry[F any](configs ...Config[F]) *Registry[F] {
	var index = make(map[int32]uint, len(configs))
	//
	for i, cfg := range configs {
		if _, ok := index[cfg.ID]; ok {
			panic(fmt.Sprintf("duplicate runtime table %d", cfg.ID))
		}
		//
		index[cfg.ID] = uint(i)
	}
	//
	return &Registry[F]{slices.Clone(configs), index}
}

// Len returns the number of configurations in this registry.
func (p *Registry[F]) Len() uint {
	return uint(len(p.configs))
}

// Lookup the configuration with a given identifier (if it exists).
func (p *Registry[F]) Lookup(id int32) (Config[F], bool) {
	if i, ok := p.index[id]; ok {
		return p.configs[i], true
	}
	//
	return Config[F]{}, false
}

// Specs returns the specifications of all registered configurations, in the
// order they were declared.
func (p *Registry[F]) Specs() []Spec {
	var specs = make([]Spec, len(p.configs))
	//
	for i, cfg := range p.configs {
		specs[i] = SpecOf(cfg)
	}
	//
	return specs
}

// Bind pairs a prover-time table with its registered configuration.  A table
// which has no matching configuration, or whose length differs from it, cannot
// be folded into the lookup argument and results in a panic.
func (p *Registry[F]) Bind(table Table[F]) Config[F] {
	cfg, ok := p.Lookup(table.ID)
	//
	if !ok {
		panic(fmt.Sprintf("unknown runtime table %d", table.ID))
	} else if !cfg.Compatible(table) {
		panic(fmt.Sprintf("runtime table %d has %d entries (expected %d)", table.ID, table.Len(), cfg.Len()))
	}
	//
	log.WithFields(log.Fields{"id": table.ID, "len": table.Len()}).Debug("bound runtime table")
	//
	return cfg
}
