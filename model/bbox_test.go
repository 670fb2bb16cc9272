package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"m4o.io/osm/model"
)

func TestInitialBoundingBox(t *testing.T) {
	initial := model.InitialBoundingBox()
	assert.Equal(t, initial.Top, model.MinLat)
	assert.Equal(t, initial.Bottom, model.MaxLat)
	assert.Equal(t, initial.Right, model.MinLon)
	assert.Equal(t, initial.Left, model.MaxLon)
}

func TestBoundingBox_EqualWithin(t *testing.T) {
	bbox_1 := &model.BoundingBox{Top: 51.69344, Left: -0.511482, Bottom: 51.28554, Right: 0.335437}
	bbox_2 := &model.BoundingBox{
		Top:    bbox_1.Top + model.Degrees(model.E6),
		Left:   bbox_1.Left + model.Degrees(model.E6),
		Bottom: bbox_1.Bottom + model.Degrees(model.E6),
		Right:  bbox_1.Right + model.Degrees(model.E6),
	}

	assert.True(t, bbox_1.EqualWithin(bbox_2, model.E5))
	assert.False(t, bbox_1.EqualWithin(bbox_2, model.E7))
}

func TestBoundingBox_Contains(t *testing.T) {
	bbox_1 := &model.BoundingBox{Top: 51.69344, Left: -0.511482, Bottom: 51.28554, Right: 0.335437}

	test_cases := []struct {
		name     string
		lat      model.Degrees
		lng      model.Degrees
		expected bool
	}{
		{"bottom/left", bbox_1.Bottom, bbox_1.Left, true},
		{"top/left", bbox_1.Top, bbox_1.Left, true},
		{"top/right", bbox_1.Top, bbox_1.Right, true},
		{"bottom/right", bbox_1.Bottom, bbox_1.Right, true},

		{"bottom/left-E5", bbox_1.Bottom, bbox_1.Left - model.Degrees(model.E5), false},
		{"bottom-E5/left", bbox_1.Bottom - model.Degrees(model.E5), bbox_1.Left, false},
		{"bottom/left+E5", bbox_1.Bottom, bbox_1.Left + model.Degrees(model.E5), true},
		{"bottom+E5/left", bbox_1.Bottom + model.Degrees(model.E5), bbox_1.Left, true},

		{"top/right+E5", bbox_1.Top, bbox_1.Right + model.Degrees(model.E5), false},
		{"top+E5/right", bbox_1.Top + model.Degrees(model.E5), bbox_1.Right, false},
		{"top/right-E5", bbox_1.Top, bbox_1.Right - model.Degrees(model.E5), true},
		{"top-E5/right", bbox_1.Top - model.Degrees(model.E5), bbox_1.Right, true},
	}

	for _, tc := range test_cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, bbox_1.Contains(tc.lat, tc.lng))
		})
	}
}

func TestBoundingBox_ContainsNode(t *testing.T) {
	bbox := &model.BoundingBox{Top: 51.69344, Left: -0.511482, Bottom: 51.28554, Right: 0.335437}

	inside := model.Node{
		Info: model.NewInfo(1),
		Lat:  model.Degrees(51.509865).E7(),
		Lon:  model.Degrees(-0.118092).E7(),
	}
	outside := model.Node{
		Info: model.NewInfo(2),
		Lat:  model.Degrees(40.730610).E7(),
		Lon:  model.Degrees(-73.935242).E7(),
	}

	assert.True(t, bbox.ContainsNode(inside))
	assert.False(t, bbox.ContainsNode(outside))
}

func TestBoundingBox_ExpandWithLatLng(t *testing.T) {
	bbox := model.InitialBoundingBox()
	bbox.ExpandWithLatLng(-45, 90)
	bbox.ExpandWithLatLng(45, -90)

	assert.True(t, bbox.Contains(-45, 90))
	assert.True(t, bbox.Contains(45, -90))
	assert.True(t, bbox.Contains(-45, -90))
	assert.True(t, bbox.Contains(45, 90))
}

func TestBoundingBox_ExpandWithNode(t *testing.T) {
	bbox := model.InitialBoundingBox()

	n := model.Node{
		Info: model.NewInfo(1),
		Lat:  model.Degrees(51.509865).E7(),
		Lon:  model.Degrees(-0.118092).E7(),
	}

	bbox.ExpandWithNode(n)

	assert.True(t, bbox.ContainsNode(n))
	assert.True(t, bbox.Top.EqualWithin(51.509865, model.E7))
	assert.True(t, bbox.Left.EqualWithin(-0.118092, model.E7))
}

func TestBoundingBox_ExpandWithBoundingBox(t *testing.T) {
	bbox := model.InitialBoundingBox()
	bbox.ExpandWithBoundingBox(&model.BoundingBox{Top: 45.0, Left: 70.0, Bottom: 20.0, Right: 90.0})
	bbox.ExpandWithBoundingBox(&model.BoundingBox{Top: 20.0, Left: -20.0, Bottom: -20.0, Right: 20.0})
	bbox.ExpandWithBoundingBox(&model.BoundingBox{Top: -25.0, Left: -90.0, Bottom: -45.0, Right: -70.0})

	assert.True(t, bbox.Contains(-45, 90))
	assert.True(t, bbox.Contains(45, -90))
	assert.True(t, bbox.Contains(-45, -90))
	assert.True(t, bbox.Contains(45, 90))
}

func TestBoundingBoxString(t *testing.T) {
	bbox := &model.BoundingBox{Top: 51.69344, Left: -0.511482, Bottom: 51.28554, Right: 0.335437}
	assert.Equal(t, "[(51.69344, -0.511482) (51.28554, 0.335437)]", bbox.String())
}
