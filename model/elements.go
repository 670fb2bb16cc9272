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

// Package model is the canonical in-memory representation of OpenStreetMap
// elements.  It defines the three first-class element kinds (Node, Way,
// Relation), the attribute record they share, and the fixed-point coordinate
// encoding nodes store their position in.
//
// The model is representation only.  Ways and relations never embed the
// elements they refer to; they carry ids that a consumer resolves against a
// separately owned element store.  Every value is immutable once constructed
// and may be shared across goroutines without synchronization.
package model

import (
	"fmt"

	"github.com/golang/geo/s2"
)

// Tags are the free-form key/value pairs every element kind carries.  The
// model stores them opaquely; interpreting the vocabulary is the consumer's
// business.
type Tags map[string]string

// Has reports whether the key is present.
func (t Tags) Has(key string) bool {
	_, ok := t[key]

	return ok
}

// Element is the closed set of OSM element kinds.
type Element interface {
	isElement() // prevents extensions

	GetID() int64

	GetTags() Tags

	GetInfo() Info

	GetType() ElementType
}

// Node represents a specific point on the earth's surface defined by its
// latitude and longitude.  Coordinates are stored fixed-point, each the E7
// encoding of the degree value (degrees times 1e7, rounded).
type Node struct {
	Info Info  `json:"info"`
	Tags Tags  `json:"tags,omitempty"`
	Lat  int32 `json:"lat"`
	Lon  int32 `json:"lon"`
}

var _ Element = Node{}

func (n Node) isElement() {}

func (n Node) GetID() int64 {
	return n.Info.ID
}

func (n Node) GetTags() Tags {
	return n.Tags
}

func (n Node) GetInfo() Info {
	return n.Info
}

func (n Node) GetType() ElementType {
	return NODE
}

// Point returns the node's position as an x/y pair, longitude first.  The
// axis order is the opposite of the stored lat/lon field order; geometric
// consumers expect x=lon, y=lat.
func (n Node) Point() (x, y Degrees) {
	return FromE7(n.Lon), FromE7(n.Lat)
}

// LatLng returns the node's position as an s2.LatLng.
func (n Node) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(float64(FromE7(n.Lat)), float64(FromE7(n.Lon)))
}

// Equal reports whether two nodes have the same id and position.  Metadata is
// deliberately ignored; identity plus position defines a node geometrically,
// so two versions of the same unmoved node compare equal here even though
// their Info records do not.
func (n Node) Equal(o Node) bool {
	return n.Info.ID == o.Info.ID && n.Lat == o.Lat && n.Lon == o.Lon
}

// Way is an ordered list of nodes that defines a polyline.  The nodes are
// held by id only; resolving them is the element store's job, which keeps a
// node free to participate in any number of ways.
type Way struct {
	Info    Info    `json:"info"`
	Tags    Tags    `json:"tags,omitempty"`
	NodeIDs []int64 `json:"node_ids"`
}

var _ Element = Way{}

func (w Way) isElement() {}

func (w Way) GetID() int64 {
	return w.Info.ID
}

func (w Way) GetTags() Tags {
	return w.Tags
}

func (w Way) GetInfo() Info {
	return w.Info
}

func (w Way) GetType() ElementType {
	return WAY
}

// IsClosed reports whether the way starts and ends on the same node.
func (w Way) IsClosed() bool {
	return len(w.NodeIDs) >= 1 && w.NodeIDs[0] == w.NodeIDs[len(w.NodeIDs)-1]
}

// IsArea reports whether the way should be treated as an area.  Closed ways
// are areas unless tagged highway=* or barrier=*.
func (w Way) IsArea() bool {
	return w.IsClosed() && !w.Tags.Has("highway") && !w.Tags.Has("barrier")
}

// ElementType is an enumeration of element kinds.
type ElementType int32

const (
	// NODE denotes that the member is a node.
	NODE ElementType = iota

	// WAY denotes that the member is a way.
	WAY

	// RELATION denotes that the member is a relation.
	RELATION
)

var elementTypeNames = map[ElementType]string{
	NODE:     "node",
	WAY:      "way",
	RELATION: "relation",
}

var elementTypeValues = map[string]ElementType{
	"node":     NODE,
	"way":      WAY,
	"relation": RELATION,
}

func (t ElementType) String() string {
	if s, ok := elementTypeNames[t]; ok {
		return s
	}

	return fmt.Sprintf("ElementType(%d)", int32(t))
}

// ParseElementType converts a string to an ElementType instance.
func ParseElementType(s string) (ElementType, error) {
	t, ok := elementTypeValues[s]
	if !ok {
		return 0, fmt.Errorf("unknown element type %q", s)
	}

	return t, nil
}

// Member is a single reference held by a relation: the kind of element
// referred to, its id, and the role it plays within the relation.  The model
// does not check that the reference exists or is of the claimed kind.
type Member struct {
	Type ElementType `json:"type"`
	Ref  int64       `json:"ref"`
	Role string      `json:"role"`
}

// Relation is a multipurpose data structure that documents a relationship
// between two or more data elements (nodes, ways, and/or other relations).
// Member order is significant (multipolygon outer/inner ordering, route
// sequencing) and is preserved exactly as supplied; members are never
// deduplicated or sorted.
type Relation struct {
	Info    Info     `json:"info"`
	Tags    Tags     `json:"tags,omitempty"`
	Members []Member `json:"members"`
}

var _ Element = Relation{}

func (r Relation) isElement() {}

func (r Relation) GetID() int64 {
	return r.Info.ID
}

func (r Relation) GetTags() Tags {
	return r.Tags
}

func (r Relation) GetInfo() Info {
	return r.Info
}

func (r Relation) GetType() ElementType {
	return RELATION
}
