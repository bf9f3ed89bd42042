package analytics

import (
	"time"

	"payflow/internal/models"

	"github.com/shopspring/decimal"
)

// DefaultWindowDays is used for any unsupported window.
const DefaultWindowDays = 30

// CategoryLayout formats bucket labels, e.g. "Mar 7".
const CategoryLayout = "Jan 2"

// SupportedWindows are the selectable chart ranges in days.
var SupportedWindows = []int{7, 30, 90}

// NormalizeWindow returns days when it is supported and DefaultWindowDays otherwise.
func NormalizeWindow(days int) int {
	for _, w := range SupportedWindows {
		if w == days {
			return days
		}
	}
	return DefaultWindowDays
}

// Day truncates t to its UTC calendar date.
func Day(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// Window returns the first and last calendar day of a window ending on the
// reference day. Both ends are inclusive.
func Window(windowDays int, reference time.Time) (first, last time.Time) {
	windowDays = NormalizeWindow(windowDays)
	last = Day(reference)
	first = last.AddDate(0, 0, -(windowDays - 1))
	return first, last
}

// InWindow returns the payments created on a calendar day inside the window.
func InWindow(payments []models.Payment, windowDays int, reference time.Time) []models.Payment {
	first, last := Window(windowDays, reference)
	out := make([]models.Payment, 0, len(payments))
	for _, p := range payments {
		day := Day(p.Created)
		if day.Before(first) || day.After(last) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// RevenueSeries buckets succeeded revenue per calendar day over the window.
// The series is dense: every day of the window has an entry, zero when no
// payment landed on it. Values are in major currency units.
func RevenueSeries(payments []models.Payment, windowDays int, reference time.Time) models.RevenueSeries {
	windowDays = NormalizeWindow(windowDays)
	first, last := Window(windowDays, reference)

	buckets := make([]int64, windowDays)
	for _, p := range payments {
		if !p.IsSucceeded() {
			continue
		}
		day := Day(p.Created)
		if day.Before(first) || day.After(last) {
			continue
		}
		idx := int(day.Sub(first) / (24 * time.Hour))
		buckets[idx] += minorUnits(p.Amount)
	}

	series := models.RevenueSeries{
		Categories: make([]string, windowDays),
		Data:       make([]float64, windowDays),
	}
	for i, sum := range buckets {
		series.Categories[i] = first.AddDate(0, 0, i).Format(CategoryLayout)
		series.Data[i] = MajorUnits(sum)
	}
	return series
}

// MajorUnits converts minor currency units to major units (cents to dollars).
func MajorUnits(minor int64) float64 {
	return decimal.New(minor, -2).InexactFloat64()
}
