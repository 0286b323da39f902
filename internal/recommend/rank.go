package recommend

import "sort"

// Display categories used for bucketing cafes in the UI.
const (
	CategoryPopular     = "popular"
	CategoryRecommended = "recommended"
	CategoryNearby      = "nearby"
)

// DefaultPromoteThreshold is the score above which a cafe is relabeled
// "recommended" regardless of its stored category.
const DefaultPromoteThreshold = 25.0

// RankAndBucket scores every cafe against the profile, promotes those
// strictly above the threshold to the "recommended" category, and returns
// them sorted by score descending. The sort is stable, so equal scores keep
// their input order. The promotion is a display relabeling only; the stored
// category is untouched.
func RankAndBucket(cafes []Cafe, prefs Preferences, promoteThreshold float64) []ScoredCafe {
	scored := make([]ScoredCafe, len(cafes))
	for i, cafe := range cafes {
		score := Score(cafe, prefs)
		if score > promoteThreshold {
			cafe.Category = CategoryRecommended
		}
		scored[i] = ScoredCafe{Cafe: cafe, Score: score}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

// FilterByCategory restricts an already ranked result set to one category.
// It preserves the ranking order and never re-sorts.
func FilterByCategory(scored []ScoredCafe, category string) []ScoredCafe {
	filtered := make([]ScoredCafe, 0, len(scored))
	for _, cafe := range scored {
		if cafe.Category == category {
			filtered = append(filtered, cafe)
		}
	}
	return filtered
}
