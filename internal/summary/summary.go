// Package summary computes price statistics over one item's observation
// sequence.
package summary

import "strconv"

// movingWindow is the number of most recent observations in the moving
// average.
const movingWindow = 10

// Summary holds the figures for one price series. When Available is false
// the series held no in-stock observations and none of the figures mean
// anything; presentation reports "N/A".
type Summary struct {
	Available bool

	Latest        int
	Min           int
	Max           int
	Average       int
	Midpoint      int
	MovingAverage int

	// Favorable is true when the latest price does not exceed the moving
	// average. Presentation colors on it; the ordering is computed here.
	Favorable bool
}

// Summarize computes the summary over prices in observation order.
// Out-of-stock sentinels and anything else non-numeric are dropped first.
// All divisions truncate: (100+300+100+300+100)/5 reports 180, (3+4)/2
// reports 3.
func Summarize(prices []string) Summary {
	nums := make([]int, 0, len(prices))
	for _, p := range prices {
		if v, err := strconv.Atoi(p); err == nil {
			nums = append(nums, v)
		}
	}

	if len(nums) == 0 {
		return Summary{}
	}

	sum := Summary{
		Available: true,
		Latest:    nums[len(nums)-1],
		Min:       nums[0],
		Max:       nums[0],
	}

	total := 0
	for _, v := range nums {
		total += v
		if v < sum.Min {
			sum.Min = v
		}
		if v > sum.Max {
			sum.Max = v
		}
	}
	sum.Average = total / len(nums)
	sum.Midpoint = (sum.Min + sum.Max) / 2

	window := nums
	if len(nums) > movingWindow {
		window = nums[len(nums)-movingWindow:]
	}
	windowTotal := 0
	for _, v := range window {
		windowTotal += v
	}
	sum.MovingAverage = windowTotal / len(window)

	sum.Favorable = sum.Latest <= sum.MovingAverage
	return sum
}
