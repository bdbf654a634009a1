// Package session parses pasted hunt session logs into structured stats.
package session

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/avelar/tibiasearch/internal/domain"
)

const timestampLayout = "2006-01-02T15:04:05"

var (
	sessionRange = regexp.MustCompile(
		`Session data:\s*From\s*(\d{4}-\d{2}-\d{2}),\s*(\d{2}:\d{2}:\d{2})\s*to\s*(\d{4}-\d{2}-\d{2}),\s*(\d{2}:\d{2}:\d{2})`)
	sessionDuration = regexp.MustCompile(`Session:\s*(\d{1,2}):(\d{2})h`)
	breakdownEntry  = regexp.MustCompile(`(\d+)x\s+([A-Za-z][A-Za-z '\-]+)`)
)

// Parse extracts session stats from a raw log paste. Unknown or malformed
// fields default to zero; the function never fails.
func Parse(raw string) domain.SessionStats {
	text := strings.TrimSpace(raw)
	stats := domain.SessionStats{
		KillsBreakdown: map[string]int{},
		LootedItems:    map[string]int{},
	}

	if m := sessionRange.FindStringSubmatch(text); m != nil {
		start, err1 := time.Parse("2006-01-02, 15:04:05", m[1]+", "+m[2])
		end, err2 := time.Parse("2006-01-02, 15:04:05", m[3]+", "+m[4])
		if err1 == nil && err2 == nil {
			// Logs around midnight can report an end date before the start.
			if end.Before(start) {
				end = end.Add(24 * time.Hour)
			}
			stats.StartAt = start.Format(timestampLayout)
			stats.EndAt = end.Format(timestampLayout)
			stats.DurationSeconds = int(end.Sub(start).Seconds())
		}
	} else if m := sessionDuration.FindStringSubmatch(text); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		stats.DurationSeconds = hours*3600 + minutes*60
	}

	stats.XPTotal = parseIntSafe(findNumber(text, "XP Gain"))
	stats.LootTotal = parseIntSafe(findNumber(text, "Loot"))
	stats.SuppliesTotal = parseIntSafe(findNumber(text, "Supplies"))
	stats.BalanceTotal = parseIntSafe(findNumber(text, "Balance"))
	stats.DamageTotal = parseIntSafe(findNumber(text, "Damage"))
	stats.HealingTotal = parseIntSafe(findNumber(text, "Healing"))

	xpRate, haveXPRate := parseFloatSafe(findNumber(text, "XP/h"))
	damageRate, haveDamageRate := parseFloatSafe(findNumber(text, "Damage/h"))
	healingRate, haveHealingRate := parseFloatSafe(findNumber(text, "Healing/h"))
	stats.XPPerHour = xpRate
	stats.DamagePerHour = damageRate
	stats.HealingPerHour = healingRate

	stats.KillsBreakdown = parseBreakdown(segment(text, "Killed Monsters:", "Looted Items:"), true)
	for _, count := range stats.KillsBreakdown {
		stats.KillsCount += count
	}
	stats.LootedItems = parseBreakdown(segment(text, "Looted Items:", ""), false)

	// Derive the per-hour rates the log did not carry.
	if stats.DurationSeconds > 0 {
		hours := float64(stats.DurationSeconds) / 3600
		if !haveXPRate {
			stats.XPPerHour = float64(stats.XPTotal) / hours
		}
		if !haveDamageRate {
			stats.DamagePerHour = float64(stats.DamageTotal) / hours
		}
		if !haveHealingRate {
			stats.HealingPerHour = float64(stats.HealingTotal) / hours
		}
	}
	return stats
}

// findNumber returns the raw number following "<label>:", or "".
func findNumber(text, label string) string {
	re := regexp.MustCompile(regexp.QuoteMeta(label) + `:\s*([-\d,]+)`)
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}

// segment returns the part of text between the from marker and the to
// marker, or "" when from is absent. An empty or absent to marker extends
// the segment to the end.
func segment(text, from, to string) string {
	start := strings.Index(text, from)
	if start < 0 {
		return ""
	}
	rest := text[start:]
	if to != "" {
		if end := strings.Index(rest, to); end >= 0 {
			rest = rest[:end]
		}
	}
	return rest
}

// parseBreakdown accumulates "<count>x <name>" entries. Kill names are
// folded to lower case so differently-cased spellings merge.
func parseBreakdown(text string, lower bool) map[string]int {
	breakdown := map[string]int{}
	for _, m := range breakdownEntry.FindAllStringSubmatch(text, -1) {
		count := parseIntSafe(m[1])
		name := strings.TrimSpace(m[2])
		if lower {
			name = strings.ToLower(name)
		}
		if name == "" {
			continue
		}
		breakdown[name] += count
	}
	return breakdown
}

func normalizeNumber(value string) string {
	return strings.TrimSpace(strings.ReplaceAll(value, ",", ""))
}

func parseIntSafe(value string) int {
	cleaned := normalizeNumber(value)
	if cleaned == "" || cleaned == "-" || cleaned == "+" {
		return 0
	}
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0
	}
	return n
}

func parseFloatSafe(value string) (float64, bool) {
	cleaned := normalizeNumber(value)
	if cleaned == "" || cleaned == "-" || cleaned == "+" {
		return 0, false
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
