package domain

import "sort"

// SortByID orders candidates by ascending id so that a given draw always maps
// to the same advertisement.
func SortByID(ads []Advertisement) {
	sort.Slice(ads, func(i, j int) bool { return ads[i].ID < ads[j].ID })
}

// TotalWeight sums the weights of ads.
func TotalWeight(ads []Advertisement) int64 {
	var total int64
	for i := range ads {
		total += int64(ads[i].Weight)
	}
	return total
}

// PickWeighted returns the index of the advertisement whose cumulative weight
// range contains r, where r is drawn from [1, TotalWeight(ads)]. Each ad owns
// a contiguous range of size Weight. It returns -1 when ads is empty or r
// falls outside the total.
func PickWeighted(ads []Advertisement, r int64) int {
	if r < 1 {
		return -1
	}
	var cumulative int64
	for i := range ads {
		cumulative += int64(ads[i].Weight)
		if r <= cumulative {
			return i
		}
	}
	return -1
}
