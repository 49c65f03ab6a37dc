package screentext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []string
		want     string
	}{
		{"single marker", "Hello ~1~ world", []string{"r"}, "Hello r world"},
		{"args exhausted", "~1~Hello ~1~ world~1~", []string{"k", "h"}, "kHello h world~1~"},
		{"marker at end", "Hello world~1~", []string{"x"}, "Hello worldx"},
		{"surplus arg", "Hello world~1~", []string{"x", "k"}, "Hello worldx"},
		{"no markers", "Hello world", []string{"x"}, "Hello world"},
		{"no args", "Picked up ~1~ dollars", nil, "Picked up ~1~ dollars"},
		{"empty template", "", []string{"x"}, ""},
		{"partial marker", "~1 and 1~ and ~1", []string{"x"}, "~1 and 1~ and ~1"},
		{"adjacent markers", "~1~~1~", []string{"a", "b"}, "ab"},
		{"value holding marker", "~1~ ~1~", []string{"~1~", "z"}, "~1~ z"},
		{"empty value", "[~1~]", []string{""}, "[]"},
		{"pickup", "Picked up ~1~ dollars", []string{"250"}, "Picked up 250 dollars"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.template, tt.args...))
		})
	}
}

func TestFormat_ZeroArgsIsIdentity(t *testing.T) {
	for _, s := range []string{"", "~1~", "a~1~b~1~c", "~~1~~", "plain"} {
		assert.Equal(t, s, Format(s), "Format(%q)", s)
	}
}

func TestCountMarkers(t *testing.T) {
	assert.Equal(t, 0, CountMarkers("Hello"))
	assert.Equal(t, 3, CountMarkers("~1~Hello ~1~ world~1~"))
	assert.Equal(t, 1, CountMarkers("~1~1~"))
}
