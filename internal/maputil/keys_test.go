package maputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedKeys(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]any
		want []string
	}{
		{
			name: "model names",
			in:   map[string]any{"Tag": nil, "Pet": nil, "Category": nil},
			want: []string{"Category", "Pet", "Tag"},
		},
		{
			name: "paths sort bytewise",
			in:   map[string]any{"/pet/{petId}": 1, "/pet": 2, "/pet/findByStatus": 3},
			want: []string{"/pet", "/pet/findByStatus", "/pet/{petId}"},
		},
		{name: "empty map", in: map[string]any{}, want: []string{}},
		{name: "nil map", in: nil, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SortedKeys(tt.in))
		})
	}
}

func TestSortedKeys_IntKeys(t *testing.T) {
	codes := map[int]string{404: "Pet not found", 200: "Success", 400: "Invalid ID supplied"}
	assert.Equal(t, []int{200, 400, 404}, SortedKeys(codes))
}
