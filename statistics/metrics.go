// File: /statistics/metrics.go
package statistics

import (
	"strconv"
)

// CPS September 2023 volunteering supplement variables
const (
	FieldVolunteered   = "PES16"  // volunteered through or for an organization
	FieldYouthActivity = "PES13"  // volunteered for a children's or youth activity
	FieldOnlineShare   = "PES16A" // how much of the volunteer work was done online
	FieldAnnualHours   = "PTS16E" // total volunteer hours in the past year
)

// Yes/no response codes used by the categorical supplement variables
const (
	codeYes = "1"
	codeNo  = "2"
)

// MaxHours bounds the hour histogram walked by the hour metrics
const MaxHours = 500

// VolunteerFrequency returns yes/(yes+no) for the volunteered field,
// or 0 when no responses are present.
func VolunteerFrequency(f Frequencies) float64 {
	return yesRatio(f)
}

// YouthActivityFrequency returns yes/(yes+no) for the children's activity
// field. The survey only asks it of respondents who already volunteered;
// that conditioning is not re-checked here.
func YouthActivityFrequency(f Frequencies) float64 {
	return yesRatio(f)
}

func yesRatio(f Frequencies) float64 {
	yes := f[codeYes]
	total := yes + f[codeNo]
	if total == 0 {
		return 0
	}
	return float64(yes) / float64(total)
}

// OnlineFrequency converts the five-point online-involvement scale into a
// 0..1 score. Code 1 (all in person) weighs 0 and only grows the
// denominator; codes 2..5 weigh 1..4.
func OnlineFrequency(f Frequencies) float64 {
	var weighted, total int
	for code := 1; code <= 5; code++ {
		count := f[strconv.Itoa(code)]
		weighted += (code - 1) * count
		total += count
	}

	if total == 0 {
		return 0
	}
	return float64(weighted) / 4 / float64(total)
}

// AverageHours returns the mean of the hour histogram over hours 1..500,
// or 0 when the histogram is empty.
func AverageHours(f Frequencies) float64 {
	var sum, total int
	for h := 1; h <= MaxHours; h++ {
		count := f[strconv.Itoa(h)]
		sum += h * count
		total += count
	}

	if total == 0 {
		return 0
	}
	return float64(sum) / float64(total)
}

// MedianHours walks the hour histogram in increasing order, subtracting
// counts from half the total population. The first hour that drives the
// running value strictly below zero is the median; landing exactly on zero
// does not stop the walk. Returns 0 for an empty histogram.
func MedianHours(f Frequencies) int {
	var total int
	for h := 1; h <= MaxHours; h++ {
		total += f[strconv.Itoa(h)]
	}
	if total == 0 {
		return 0
	}

	remaining := float64(total) / 2
	for h := 1; h <= MaxHours; h++ {
		remaining -= float64(f[strconv.Itoa(h)])
		if remaining < 0 {
			return h
		}
	}

	return 0
}
