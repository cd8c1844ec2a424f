package checkrouteros

import (
	"regexp"
	"strconv"
)

// routeros returns every value as string, booleans as true/false (older
// firmwares use yes/no).
func parseDeviceBool(raw string) bool {
	switch raw {
	case "true", "yes":
		return true
	}

	return false
}

func parseDeviceFloat(field, raw string) (float64, error) {
	num, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, probeErrorf("cannot parse field %s from value %s", field, raw)
	}

	return num, nil
}

// requireField fetches a field from a device response row, a missing
// field is a protocol level failure.
func requireField(row map[string]string, field string) (string, error) {
	value, ok := row[field]
	if !ok {
		return "", probeErrorf("missing field %s in device response", field)
	}

	return value, nil
}

var timeValueRe = regexp.MustCompile(`^(\d+)(.*)$`)

// stripTimeValue splits values like "451us" or "12ms" into the leading
// number and its unit.
func stripTimeValue(raw string) (value float64, unit string, err error) {
	match := timeValueRe.FindStringSubmatch(raw)
	if match == nil {
		return 0, "", probeErrorf("cannot parse time value: %s", raw)
	}
	num, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, "", probeErrorf("cannot parse time value: %s", raw)
	}

	return num, match[2], nil
}

var uptimeRe = regexp.MustCompile(`^(?:(\d+)w)?(?:(\d+)d)?(\d+)h(\d+)m(\d+)s$`)

// parseDeviceUptime converts routeros uptime strings like "3h42m12s" or
// "2w1d4h0m9s" into seconds.
func parseDeviceUptime(raw string) (float64, error) {
	match := uptimeRe.FindStringSubmatch(raw)
	if match == nil {
		return 0, probeErrorf("unable to parse uptime: %s", raw)
	}

	seconds := int64(0)
	for i, factor := range []int64{7 * 24 * 3600, 24 * 3600, 3600, 60, 1} {
		if match[i+1] == "" {
			continue
		}
		num, err := strconv.ParseInt(match[i+1], 10, 64)
		if err != nil {
			return 0, probeErrorf("unable to parse uptime: %s", raw)
		}
		seconds += num * factor
	}

	return float64(seconds), nil
}
