// Copyright 2017-25 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package store is an in-memory element store.  Ways and relations in the
// model refer to other elements by id only; the store owns the resolved
// elements and turns those ids back into values.
//
// Each element kind has its own id space, so nodes, ways, and relations are
// kept in separate maps and a lookup always names the kind.
package store

import (
	"fmt"
	"slices"
	"sync"

	humanize "github.com/dustin/go-humanize"
	"golang.org/x/exp/constraints"

	"m4o.io/osm/model"
)

// Store holds elements keyed by kind and id.  The zero value is not usable;
// call New.  All methods are safe for concurrent use, though the expected
// discipline is a single populating goroutine followed by any number of
// concurrent readers.
type Store struct {
	mu        sync.RWMutex
	nodes     map[int64]model.Node
	ways      map[int64]model.Way
	relations map[int64]model.Relation
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		nodes:     make(map[int64]model.Node),
		ways:      make(map[int64]model.Way),
		relations: make(map[int64]model.Relation),
	}
}

// Add stores the element under its kind and id, replacing any previous
// version wholesale.
func (s *Store) Add(e model.Element) {
	switch e := e.(type) {
	case model.Node:
		s.AddNode(e)
	case model.Way:
		s.AddWay(e)
	case model.Relation:
		s.AddRelation(e)
	}
}

// AddNode stores the node, replacing any previous version.
func (s *Store) AddNode(n model.Node) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nodes[n.Info.ID] = n
}

// AddWay stores the way, replacing any previous version.
func (s *Store) AddWay(w model.Way) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ways[w.Info.ID] = w
}

// AddRelation stores the relation, replacing any previous version.
func (s *Store) AddRelation(r model.Relation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.relations[r.Info.ID] = r
}

// Node returns the node with the given id.
func (s *Store) Node(id int64) (model.Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.nodes[id]

	return n, ok
}

// Way returns the way with the given id.
func (s *Store) Way(id int64) (model.Way, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.ways[id]

	return w, ok
}

// Relation returns the relation with the given id.
func (s *Store) Relation(id int64) (model.Relation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.relations[id]

	return r, ok
}

// Resolve returns the element a relation member refers to.
func (s *Store) Resolve(m model.Member) (model.Element, bool) {
	switch m.Type {
	case model.NODE:
		if n, ok := s.Node(m.Ref); ok {
			return n, true
		}
	case model.WAY:
		if w, ok := s.Way(m.Ref); ok {
			return w, true
		}
	case model.RELATION:
		if r, ok := s.Relation(m.Ref); ok {
			return r, true
		}
	}

	return nil, false
}

// WayNodes resolves a way's node ids, in way order.  A reference to a node
// the store does not hold is an error.
func (s *Store) WayNodes(w model.Way) ([]model.Node, error) {
	nodes := make([]model.Node, 0, len(w.NodeIDs))

	for _, id := range w.NodeIDs {
		n, ok := s.Node(id)
		if !ok {
			return nil, fmt.Errorf("way %d references missing node %d", w.Info.ID, id)
		}

		nodes = append(nodes, n)
	}

	return nodes, nil
}

// Members resolves a relation's members, in member order.  A reference to an
// element the store does not hold is an error.
func (s *Store) Members(r model.Relation) ([]model.Element, error) {
	elements := make([]model.Element, 0, len(r.Members))

	for _, m := range r.Members {
		e, ok := s.Resolve(m)
		if !ok {
			return nil, fmt.Errorf("relation %d references missing %s %d", r.Info.ID, m.Type, m.Ref)
		}

		elements = append(elements, e)
	}

	return elements, nil
}

// Nodes returns a snapshot of all nodes, ordered by id.
func (s *Store) Nodes() []model.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sortedValues(s.nodes)
}

// Ways returns a snapshot of all ways, ordered by id.
func (s *Store) Ways() []model.Way {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sortedValues(s.ways)
}

// Relations returns a snapshot of all relations, ordered by id.
func (s *Store) Relations() []model.Relation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sortedValues(s.relations)
}

// BoundingBox returns the bounding box covering every node in the store.
func (s *Store) BoundingBox() *model.BoundingBox {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bbox := model.InitialBoundingBox()
	for _, n := range s.nodes {
		bbox.ExpandWithNode(n)
	}

	return bbox
}

// Stats are the element counts of a Store.
type Stats struct {
	Nodes     int64
	Ways      int64
	Relations int64
}

// Stats returns the store's element counts.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Stats{
		Nodes:     int64(len(s.nodes)),
		Ways:      int64(len(s.ways)),
		Relations: int64(len(s.relations)),
	}
}

// Len returns the total number of elements held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.nodes) + len(s.ways) + len(s.relations)
}

func (st Stats) String() string {
	return fmt.Sprintf("nodes: %s, ways: %s, relations: %s",
		humanize.Comma(st.Nodes), humanize.Comma(st.Ways), humanize.Comma(st.Relations))
}

// sortedValues returns the map's values ordered by key.
func sortedValues[K constraints.Ordered, V any](m map[K]V) []V {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	values := make([]V, 0, len(m))
	for _, k := range keys {
		values = append(values, m[k])
	}

	return values
}
