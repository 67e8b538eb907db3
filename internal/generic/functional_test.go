package generic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	tests := map[string]struct {
		input []string
		want  []string
	}{
		"Nil": {
			input: nil,
			want:  []string{},
		},
		"NoneMatch": {
			input: []string{"b", "c"},
			want:  []string{},
		},
		"SomeMatch": {
			input: []string{"a1", "b", "a2", "c", "a1"},
			want:  []string{"a1", "a2", "a1"},
		},
		"AllMatch": {
			input: []string{"a", "ab"},
			want:  []string{"a", "ab"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Filter(tt.input, func(s string) bool {
				return len(s) > 0 && s[0] == 'a'
			})

			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilter_DoesNotAlias(t *testing.T) {
	input := []int{1, 2, 3}
	got := Filter(input, func(int) bool { return true })

	got[0] = 100
	assert.Equal(t, []int{1, 2, 3}, input)
}

func TestMap(t *testing.T) {
	got := Map([]int{1, 2, 3}, func(v int) int64 { return int64(v) * 2 })
	assert.Equal(t, []int64{2, 4, 6}, got)
	assert.Equal(t, []string{}, Map([]int{}, func(int) string { return "" }))
}
