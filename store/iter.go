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

package store

import (
	"github.com/destel/rill"

	"m4o.io/osm/model"
)

// EachNode calls fn for every node in the store, running up to concurrency
// calls in parallel.  The first error stops the iteration and is returned.
// The store must not be mutated while an iteration runs.
func (s *Store) EachNode(concurrency int, fn func(model.Node) error) error {
	return rill.ForEach(rill.FromSlice(s.Nodes(), nil), concurrency, fn)
}

// EachWay calls fn for every way in the store, running up to concurrency
// calls in parallel.  The first error stops the iteration and is returned.
func (s *Store) EachWay(concurrency int, fn func(model.Way) error) error {
	return rill.ForEach(rill.FromSlice(s.Ways(), nil), concurrency, fn)
}

// EachRelation calls fn for every relation in the store, running up to
// concurrency calls in parallel.  The first error stops the iteration and is
// returned.
func (s *Store) EachRelation(concurrency int, fn func(model.Relation) error) error {
	return rill.ForEach(rill.FromSlice(s.Relations(), nil), concurrency, fn)
}
