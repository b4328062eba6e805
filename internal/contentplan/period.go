// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package contentplan

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var monthNamesRu = [12]string{
	"январь", "февраль", "март", "апрель", "май", "июнь",
	"июль", "август", "сентябрь", "октябрь", "ноябрь", "декабрь",
}

var twoDigits = regexp.MustCompile(`^\d{2}$`)

// PeriodFormatter converts between a month input value ("YYYY-MM") and the
// period label stored by the backend ("MM, <месяц>").
//
// The label carries no year, so FromLabel always uses the year of Now.
type PeriodFormatter struct {
	// Now returns the current time. Nil means time.Now.
	Now func() time.Time
}

// NewPeriodFormatter returns a formatter bound to the wall clock.
func NewPeriodFormatter() PeriodFormatter {
	return PeriodFormatter{Now: time.Now}
}

// ToLabel formats the month of monthInput as "MM, <месяц>". It returns nil
// for empty input and for a month that is not an integer in 1..12.
func (f PeriodFormatter) ToLabel(monthInput string) *string {
	if monthInput == "" {
		return nil
	}

	_, month, ok := strings.Cut(monthInput, "-")
	if !ok {
		return nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(month))
	if err != nil || n < 1 || n > 12 {
		return nil
	}

	label := fmt.Sprintf("%02d, %s", n, monthNamesRu[n-1])
	return &label
}

// FromLabel extracts the month number in front of the first comma of label
// and returns "<current year>-MM". Any other shape yields "".
func (f PeriodFormatter) FromLabel(label *string) string {
	if label == nil {
		return ""
	}

	month, _, _ := strings.Cut(*label, ",")
	month = strings.TrimSpace(month)
	if len(month) == 1 {
		month = "0" + month
	}
	if !twoDigits.MatchString(month) {
		return ""
	}

	return fmt.Sprintf("%04d-%s", f.now().Year(), month)
}

func (f PeriodFormatter) now() time.Time {
	if f.Now == nil {
		return time.Now()
	}
	return f.Now()
}

// ToPeriodLabel is [PeriodFormatter.ToLabel] on the wall clock.
func ToPeriodLabel(monthInput string) *string {
	return NewPeriodFormatter().ToLabel(monthInput)
}

// FromPeriodLabel is [PeriodFormatter.FromLabel] on the wall clock.
func FromPeriodLabel(label *string) string {
	return NewPeriodFormatter().FromLabel(label)
}
