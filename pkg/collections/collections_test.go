package collections_test

import (
	"strings"
	"testing"

	"github.com/hanaburkart/portfolio/pkg/collections"

	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	t.Run("basic types", func(t *testing.T) {
		ints := []int{1, 2, 3, 4}
		squared := collections.Apply(ints, func(i int) int {
			return i * i
		})

		require.Equal(t, []int{1, 4, 9, 16}, squared)

		lengths := collections.Apply([]string{"a", "bb", "ccc"}, func(s string) int {
			return len(s)
		})
		require.Equal(t, []int{1, 2, 3}, lengths)
	})

	t.Run("structs", func(t *testing.T) {
		type Project struct {
			Title string
			Tags  []string
		}

		projects := []Project{
			{Title: "Rainfall Forecasting", Tags: []string{"Python"}},
			{Title: "VAE Study", Tags: []string{"PyTorch", "VAE"}},
		}

		titles := collections.Apply(projects, func(p Project) string {
			return p.Title
		})
		require.Equal(t, []string{"Rainfall Forecasting", "VAE Study"}, titles)
	})

	t.Run("empty", func(t *testing.T) {
		require.Empty(t, collections.Apply([]string(nil), strings.ToUpper))
	})
}

func TestFilter(t *testing.T) {
	got := collections.Filter([]string{"Python", "", "Pandas", ""}, func(s string) bool {
		return s != ""
	})
	require.Equal(t, []string{"Python", "Pandas"}, got)

	require.Nil(t, collections.Filter([]int{1, 3}, func(i int) bool { return i%2 == 0 }))
}
