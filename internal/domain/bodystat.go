package domain

import (
	"sort"
	"time"
)

// BodyStat is one body-weight measurement in kg.
type BodyStat struct {
	Date   time.Time `json:"date"`
	Weight float64   `json:"weight"`
}

// SortBodyStatsDesc orders entries newest first.
func SortBodyStatsDesc(stats []BodyStat) {
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Date.After(stats[j].Date)
	})
}
