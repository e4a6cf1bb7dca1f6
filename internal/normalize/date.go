// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"regexp"
	"time"
)

// rfc822Layout is the date format RSS readers expect, with a numeric
// timezone offset.
const rfc822Layout = "Mon, 02 Jan 2006 15:04:05 -0700"

// naiveDatetime matches ISO-8601 datetimes with no timezone designator.
// The site emits these for some articles; they are UTC by convention.
var naiveDatetime = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?$`)

// RFC822Date converts an ISO-8601 timestamp to RFC-822 form. Three input
// shapes are accepted: a trailing Z, an explicit offset, and no timezone
// at all (treated as UTC). Anything else yields "": the pubDate feed
// field is optional, so a bad date must never fail the pipeline.
func RFC822Date(iso string) string {
	if iso == "" {
		return ""
	}
	if naiveDatetime.MatchString(iso) {
		iso += "+00:00"
	}
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return ""
	}
	return t.Format(rfc822Layout)
}
