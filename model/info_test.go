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

package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"m4o.io/osm/model"
)

func ptr[T any](v T) *T { return &v }

func TestNewInfo(t *testing.T) {
	info := model.NewInfo(42)

	assert.Equal(t, int64(42), info.ID)
	assert.Nil(t, info.User)
	assert.Nil(t, info.UID)
	assert.Nil(t, info.Timestamp)
	assert.Nil(t, info.Visible)
	assert.Nil(t, info.Version)
	assert.Nil(t, info.Changeset)
}

func TestInfoIsVisible(t *testing.T) {
	assert.True(t, model.NewInfo(1).IsVisible())
	assert.True(t, model.Info{ID: 1, Visible: ptr(true)}.IsVisible())
	assert.False(t, model.Info{ID: 1, Visible: ptr(false)}.IsVisible())
}

func TestInfoEqual(t *testing.T) {
	ts, _ := time.Parse(time.RFC3339, "2024-10-28T14:21:30-07:00")

	full := model.Info{
		ID:        1,
		User:      ptr("wilma"),
		UID:       ptr(int32(77)),
		Timestamp: ptr(ts),
		Visible:   ptr(true),
		Version:   ptr(int32(3)),
		Changeset: ptr(int64(12345)),
	}

	test_cases := []struct {
		name     string
		a, b     model.Info
		expected bool
	}{
		{"bare", model.NewInfo(1), model.NewInfo(1), true},
		{"bare id differs", model.NewInfo(1), model.NewInfo(2), false},
		{"fully populated", full, full, true},
		{
			"absent visible is not present true",
			model.NewInfo(1),
			model.Info{ID: 1, Visible: ptr(true)},
			false,
		},
		{
			"absent version is not present zero",
			model.NewInfo(1),
			model.Info{ID: 1, Version: ptr(int32(0))},
			false,
		},
		{
			"user differs",
			model.Info{ID: 1, User: ptr("wilma")},
			model.Info{ID: 1, User: ptr("fred")},
			false,
		},
		{
			"changeset differs",
			model.Info{ID: 1, Changeset: ptr(int64(12345))},
			model.Info{ID: 1, Changeset: ptr(int64(12346))},
			false,
		},
		{
			"same instant different zone",
			model.Info{ID: 1, Timestamp: ptr(ts)},
			model.Info{ID: 1, Timestamp: ptr(ts.UTC())},
			true,
		},
		{
			"timestamp differs",
			model.Info{ID: 1, Timestamp: ptr(ts)},
			model.Info{ID: 1, Timestamp: ptr(ts.Add(time.Second))},
			false,
		},
	}

	for _, tc := range test_cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Equal(tc.b))
			assert.Equal(t, tc.expected, tc.b.Equal(tc.a))
		})
	}
}
