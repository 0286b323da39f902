package recommend

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	t.Run("Computes mean rating rounded to one decimal", func(t *testing.T) {
		reviews := []Review{
			{Rating: 5},
			{Rating: 4},
			{Rating: 5},
		}

		stars, count := Aggregate(reviews)
		require.Equal(t, 4.7, stars)
		require.Equal(t, 3, count)
	})

	t.Run("Empty review set yields zero values", func(t *testing.T) {
		stars, count := Aggregate(nil)
		require.Equal(t, 0.0, stars)
		require.Equal(t, 0, count)

		stars, count = Aggregate([]Review{})
		require.Equal(t, 0.0, stars)
		require.Equal(t, 0, count)
	})

	t.Run("Result is order independent", func(t *testing.T) {
		forward := []Review{{Rating: 1}, {Rating: 3}, {Rating: 5}, {Rating: 4}}
		backward := []Review{{Rating: 4}, {Rating: 5}, {Rating: 3}, {Rating: 1}}

		starsA, countA := Aggregate(forward)
		starsB, countB := Aggregate(backward)
		require.Equal(t, starsA, starsB)
		require.Equal(t, countA, countB)
	})

	t.Run("Single review keeps its exact value", func(t *testing.T) {
		stars, count := Aggregate([]Review{{Rating: 3}})
		require.Equal(t, 3.0, stars)
		require.Equal(t, 1, count)
	})
}
