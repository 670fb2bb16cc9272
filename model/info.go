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

package model

import (
	"time"
)

// Info holds the attributes common to Node, Way, and Relation elements.
//
// Only ID is required.  Every other attribute is a pointer so that an absent
// value stays distinguishable from a zero value; different OSM sources
// (minimal extracts, full history dumps) omit different subsets and the model
// must represent both without loss.
//
// See: https://wiki.openstreetmap.org/wiki/Elements#Common_attributes
type Info struct {
	ID        int64      `json:"id"`
	User      *string    `json:"user,omitempty"`
	UID       *int32     `json:"uid,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Visible   *bool      `json:"visible,omitempty"`
	Version   *int32     `json:"version,omitempty"`
	Changeset *int64     `json:"changeset,omitempty"`
}

// NewInfo returns an Info with the given id and every optional attribute
// absent.
func NewInfo(id int64) Info {
	return Info{ID: id}
}

// IsVisible reports whether the element is visible.  An absent Visible
// attribute means the element is assumed visible; an explicit false marks a
// deleted element in historical data.
func (i Info) IsVisible() bool {
	return i.Visible == nil || *i.Visible
}

// Equal reports whether two Info values match field by field.  Population
// counts: an absent attribute is not equal to a present one, even a present
// zero.  Note that this is stricter than Node.Equal, which ignores metadata
// entirely.
func (i Info) Equal(o Info) bool {
	if i.ID != o.ID {
		return false
	}

	if !timePtrEqual(i.Timestamp, o.Timestamp) {
		return false
	}

	return ptrEqual(i.User, o.User) &&
		ptrEqual(i.UID, o.UID) &&
		ptrEqual(i.Visible, o.Visible) &&
		ptrEqual(i.Version, o.Version) &&
		ptrEqual(i.Changeset, o.Changeset)
}

func ptrEqual[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}

// timePtrEqual compares instants, not representations, so the same moment in
// two locations still matches.
func timePtrEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Equal(*b)
}
