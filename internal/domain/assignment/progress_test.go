package assignment

import (
	"testing"

	"github.com/carebridge/careworker-go/internal/domain/template"
	"github.com/stretchr/testify/assert"
)

func TestFilledCount(t *testing.T) {
	cases := []struct {
		name   string
		fields FieldMap
		want   int
	}{
		{"empty map", FieldMap{}, 0},
		{"nil values skipped", FieldMap{"a": nil, "b": "x"}, 1},
		{"empty strings skipped", FieldMap{"a": "", "b": "x"}, 1},
		{"false and zero count as filled", FieldMap{"a": false, "b": 0}, 2},
		{"all filled", FieldMap{"a": "x", "b": 2.5, "c": true}, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.fields.FilledCount())
		})
	}
}

func TestTotalFields(t *testing.T) {
	schema := template.Schema{Fields: []template.Field{{Name: "a"}, {Name: "b"}, {Name: "c"}}}

	t.Run("cached count wins", func(t *testing.T) {
		assert.Equal(t, 7, TotalFields(7, schema, FieldMap{"a": "x"}))
	})

	t.Run("schema count when no cache", func(t *testing.T) {
		assert.Equal(t, 3, TotalFields(0, schema, FieldMap{"a": "x"}))
	})

	t.Run("sections are summed", func(t *testing.T) {
		s := template.Schema{Sections: []template.Section{
			{Fields: []template.Field{{Name: "a"}, {Name: "b"}}},
			{Fields: []template.Field{{Name: "c"}}},
		}}
		assert.Equal(t, 3, TotalFields(0, s, nil))
	})

	t.Run("estimate when schema is empty", func(t *testing.T) {
		fields := FieldMap{"a": "x", "b": "y"}
		assert.Equal(t, 12, TotalFields(0, template.Schema{}, fields))
	})
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, Percent(0, 0))
	assert.Equal(t, 0, Percent(3, 0))
	assert.Equal(t, 50, Percent(1, 2))
	assert.Equal(t, 33, Percent(1, 3))
	assert.Equal(t, 67, Percent(2, 3))
	assert.Equal(t, 100, Percent(3, 3))
}

func TestNextStatus(t *testing.T) {
	assert.Equal(t, StatusAssigned, NextStatus(StatusAssigned, 0))
	assert.Equal(t, StatusInProgress, NextStatus(StatusAssigned, 1))
	assert.Equal(t, StatusInProgress, NextStatus(StatusInProgress, 5))
	assert.Equal(t, StatusSubmitted, NextStatus(StatusSubmitted, 2))
	assert.Equal(t, StatusCompleted, NextStatus(StatusCompleted, 0))
}

func TestMissingRequired(t *testing.T) {
	schema := template.Schema{Fields: []template.Field{
		{Name: "first_name", Required: true},
		{Name: "nickname"},
		{Name: "dob", Required: true},
		{Name: "consent", Required: true},
	}}

	t.Run("reports absent, nil and empty", func(t *testing.T) {
		fields := FieldMap{"first_name": "Ada", "dob": "", "nickname": "A"}
		assert.Equal(t, []string{"dob", "consent"}, MissingRequired(schema, fields))
	})

	t.Run("false satisfies a required field", func(t *testing.T) {
		fields := FieldMap{"first_name": "Ada", "dob": "1990-01-01", "consent": false}
		assert.Empty(t, MissingRequired(schema, fields))
	})

	t.Run("empty map misses everything required", func(t *testing.T) {
		assert.Equal(t, []string{"first_name", "dob", "consent"}, MissingRequired(schema, FieldMap{}))
	})
}

func TestStatusCanSign(t *testing.T) {
	assert.True(t, StatusSignaturePending.CanSign())
	assert.True(t, StatusSubmitted.CanSign())
	assert.False(t, StatusAssigned.CanSign())
	assert.False(t, StatusInProgress.CanSign())
	assert.False(t, StatusCompleted.CanSign())
}

func TestStatusDisplay(t *testing.T) {
	assert.Equal(t, "Completed", StatusCompleted.Display())
	assert.Equal(t, "In Progress", StatusInProgress.Display())
	assert.Equal(t, "Sign Required", StatusSubmitted.Display())
	assert.Equal(t, "Sign Required", StatusSignaturePending.Display())
	assert.Equal(t, "Not Started", StatusAssigned.Display())
}
