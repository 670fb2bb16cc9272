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
	lru "github.com/hashicorp/golang-lru/v2"

	"m4o.io/osm/model"
)

// DefaultCacheSize is the default number of members a CachedResolver retains.
const DefaultCacheSize = 1024

// Resolver resolves a relation member to the element it references.  Store
// is the canonical implementation; anything backed by slower storage can sit
// behind a CachedResolver.
type Resolver interface {
	Resolve(m model.Member) (model.Element, bool)
}

// CachedResolver is a read-through LRU cache in front of a Resolver.
// Elements are immutable once constructed, so cached entries never go stale
// as long as the underlying resolver is not mutated mid-use.
type CachedResolver struct {
	inner Resolver
	cache *lru.Cache[model.Member, model.Element]
}

var _ Resolver = &CachedResolver{}

// NewCachedResolver wraps inner with an LRU cache of the given size.  A size
// less than one falls back to DefaultCacheSize.
func NewCachedResolver(inner Resolver, size int) (*CachedResolver, error) {
	if size < 1 {
		size = DefaultCacheSize
	}

	cache, err := lru.New[model.Member, model.Element](size)
	if err != nil {
		return nil, err
	}

	return &CachedResolver{inner: inner, cache: cache}, nil
}

// Resolve returns the element the member refers to, consulting the cache
// first.  Misses are not cached; an element absent now may be added to the
// underlying resolver later.
func (r *CachedResolver) Resolve(m model.Member) (model.Element, bool) {
	if e, ok := r.cache.Get(m); ok {
		return e, true
	}

	e, ok := r.inner.Resolve(m)
	if ok {
		r.cache.Add(m, e)
	}

	return e, ok
}

// Cached returns the number of members currently cached.
func (r *CachedResolver) Cached() int {
	return r.cache.Len()
}

// Purge empties the cache.
func (r *CachedResolver) Purge() {
	r.cache.Purge()
}
