package domain

// RangeBucket names a coarse numeric range used by the discovery filters.
// Values outside the three known buckets apply no filtering at all, which is
// also how absent filters behave.
type RangeBucket string

const (
	BucketShort  RangeBucket = "short"
	BucketMedium RangeBucket = "medium"
	BucketLong   RangeBucket = "long"
)

// RouteFilter selects published routes for discovery. Each field is
// independently optional; set fields compose with AND.
type RouteFilter struct {
	Category   *RouteCategory
	Duration   *RangeBucket
	Distance   *RangeBucket
	Difficulty *RouteDifficulty
}

// MatchesDuration buckets total minutes: short <60, medium 60-180, long >180.
func (b RangeBucket) MatchesDuration(minutes int) bool {
	switch b {
	case BucketShort:
		return minutes < 60
	case BucketMedium:
		return minutes >= 60 && minutes <= 180
	case BucketLong:
		return minutes > 180
	}
	return true
}

// MatchesDistance buckets kilometers: short <2, medium 2-5, long >5.
func (b RangeBucket) MatchesDistance(km float64) bool {
	switch b {
	case BucketShort:
		return km < 2
	case BucketMedium:
		return km >= 2 && km <= 5
	case BucketLong:
		return km > 5
	}
	return true
}

// Matches reports whether a route passes every set filter. Publication is
// not this filter's concern; the store only ever feeds it published routes.
func (f RouteFilter) Matches(r *Route) bool {
	if f.Category != nil && r.Category != *f.Category {
		return false
	}
	if f.Duration != nil && !f.Duration.MatchesDuration(r.Duration) {
		return false
	}
	if f.Distance != nil && !f.Distance.MatchesDistance(r.Distance) {
		return false
	}
	if f.Difficulty != nil && r.Difficulty != *f.Difficulty {
		return false
	}
	return true
}
