package trend

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/bitmark-inc/vitals-api/schema"
)

var nonWordPattern = regexp.MustCompile(`\W`)

// NormalizeKey turns a biomarker name into the key reports index their
// attributes by
func NormalizeKey(name string) string {
	return nonWordPattern.ReplaceAllString(name, "_")
}

// ExtractFromReports builds the time series of a biomarker out of reports
// processed at or after `since`. Names are matched exactly as stored; there
// is no fuzzy matching here.
func ExtractFromReports(reports []schema.Report, biomarkerName string, since time.Time) schema.TimeSeries {
	key := NormalizeKey(biomarkerName)
	observations := make([]schema.Observation, 0)

	for _, r := range reports {
		if r.ProcessedAt.Before(since) {
			continue
		}

		attr, ok := findAttribute(r.Attributes, biomarkerName, key)
		if !ok {
			continue
		}

		raw := string(attr.Value)
		observations = append(observations, schema.Observation{
			Date:           r.ProcessedAt,
			ReportID:       r.ReportID,
			RawValue:       raw,
			NumericValue:   parseNumeric(raw),
			Unit:           attr.Unit,
			ReferenceRange: attr.Range,
			Verdict:        attr.Verdict,
			Remark:         attr.Remark,
		})
	}

	sort.SliceStable(observations, func(i, j int) bool {
		return observations[i].Date.Before(observations[j].Date)
	})

	return schema.TimeSeries{
		BiomarkerName: biomarkerName,
		Observations:  observations,
	}
}

// findAttribute prefers an exact name match and falls back to the
// normalized key. Keys are visited in order so that a report holding the
// same name twice always yields the same entry.
func findAttribute(attributes map[string]schema.Attribute, name, key string) (schema.Attribute, bool) {
	keys := make([]string, 0, len(attributes))
	for k := range attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if attributes[k].Name == name {
			return attributes[k], true
		}
	}

	attr, ok := attributes[key]
	return attr, ok
}

// parseNumeric reads a raw lab value as a number. Values such as "POSITIVE"
// or "NaN" are not numeric.
func parseNumeric(raw string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
