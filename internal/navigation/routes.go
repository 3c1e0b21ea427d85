package navigation

import (
	"strings"

	"github.com/vanmarkic/loyer-brussels/internal/domain"
)

// DefaultLocale prefixes routes when no locale is configured.
const DefaultLocale = "fr"

// stepSlugs is the fixed ordered route table; index i holds step i+1.
// Consumers must resolve steps through StepURL / StepFromURL, never by
// parsing paths themselves.
var stepSlugs = [domain.TotalSteps]string{
	"property-type",
	"property-details",
	"features",
	"energy",
	"address",
	"results",
}

// StepURL maps a step number to its locale-prefixed path. The boolean is
// false for step numbers outside [1, TotalSteps]; a caller must not
// navigate on false.
func StepURL(step int, locale string) (string, bool) {
	if step < 1 || step > domain.TotalSteps {
		return "", false
	}
	if locale == "" {
		locale = DefaultLocale
	}
	return "/" + locale + "/calculator/" + stepSlugs[step-1], true
}

// StepFromURL parses the step implied by a path. Unknown or missing
// segments resolve to step 1; the result is always in range and parsing
// never fails.
func StepFromURL(path string) int {
	path = strings.Trim(path, "/")
	if path == "" {
		return 1
	}
	segments := strings.Split(path, "/")
	last := segments[len(segments)-1]
	for i, slug := range stepSlugs {
		if slug == last {
			return i + 1
		}
	}
	return 1
}

// StepSlug returns the bare route segment for a step, or "" out of range.
func StepSlug(step int) string {
	if step < 1 || step > domain.TotalSteps {
		return ""
	}
	return stepSlugs[step-1]
}
