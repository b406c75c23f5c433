package domain

import "time"

// FavouriteThresholdSeconds is the call length a call must exceed (strictly)
// before the callee is offered as a favourite.
const FavouriteThresholdSeconds int64 = 600

// CallSeconds returns the whole seconds elapsed between start and end,
// truncating any fraction. A clock that went backwards yields zero.
func CallSeconds(start, end time.Time) int64 {
	elapsed := end.Sub(start)
	if elapsed <= 0 {
		return 0
	}

	return int64(elapsed / time.Second)
}

func QualifiesForFavourite(seconds int64) bool {
	return seconds > FavouriteThresholdSeconds
}
