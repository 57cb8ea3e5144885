package extractly

import (
	"fmt"
	"strings"
	"time"

	ftime "github.com/viant/tagly/format/time"
)

type (
	//timeCandidate represents one concrete date/time sub-format: the form
	//it matches in text and the Go layout constructing the timestamp
	timeCandidate struct {
		form   string
		layout string
	}

	//timeConverter holds an ordered, most specific first candidate list
	//for one date/time conversion key; its matching sub-pattern is the
	//alternation of all candidate forms
	timeConverter struct {
		key        string
		candidates []timeCandidate
	}
)

func (c *timeConverter) Pattern() string {
	forms := make([]string, 0, len(c.candidates))
	for _, candidate := range c.candidates {
		forms = append(forms, candidate.form)
	}
	return "(?:" + strings.Join(forms, "|") + ")"
}

func (c *timeConverter) Convert(text string) (Value, error) {
	for _, candidate := range c.candidates {
		if ts, err := time.ParseInLocation(candidate.layout, text, time.UTC); err == nil {
			return TimeValue(ts), nil
		}
		//the assembled pattern may be case-insensitive; Go layouts accept
		//lowercase month names but not lowercase meridiem markers
		if upper := strings.ToUpper(text); upper != text {
			if ts, err := time.ParseInLocation(candidate.layout, upper, time.UTC); err == nil {
				return TimeValue(ts), nil
			}
		}
	}
	return Value{}, fmt.Errorf("%w: %v time %q", ErrTypeConversion, c.key, text)
}

func newTimeConverter(key string, candidates ...timeCandidate) *timeConverter {
	return &timeConverter{key: key, candidates: candidates}
}

//NewTimeConverter creates a converter parsing timestamps with the supplied
//ISO date format, e.g. "YYYY-MM-DD hh:mm:ss"; a Go time layout is accepted
//as well since layout fragments pass through the format conversion intact
func NewTimeConverter(dateFormat string) Converter {
	layout := ftime.DateFormatToTimeLayout(dateFormat)
	return NewConverter("", func(text string) (Value, error) {
		ts, err := time.ParseInLocation(layout, text, time.UTC)
		if err != nil {
			return Value{}, fmt.Errorf("%w: time %q: layout %v", ErrTypeConversion, text, layout)
		}
		return TimeValue(ts), nil
	})
}

const (
	dmy      = `\d{1,2}/\d{1,2}/\d{4}`
	ymd      = `\d{4}/\d{1,2}/\d{1,2}`
	clock    = `\d{1,2}:\d{2}`
	clockSec = `\d{1,2}:\d{2}:\d{2}`
	meridiem = ` [AaPp][Mm]`
	zone     = ` [-+]\d{4}`
	monthAbr = `[A-Za-z]{3}`
)

var genericTime = newTimeConverter(KeyGeneric,
	timeCandidate{dmy + " " + clockSec + meridiem, "2/1/2006 3:04:05 PM"},   // 27/12/2024 07:57:55 PM
	timeCandidate{dmy + " " + clockSec, "2/1/2006 15:04:05"},                // 27/12/2024 19:57:55
	timeCandidate{dmy + " " + clock + meridiem, "2/1/2006 3:04 PM"},         // 27/12/2024 07:57 PM
	timeCandidate{dmy + " " + clock, "2/1/2006 15:04"},                      // 27/12/2024 19:57
	timeCandidate{ymd + " " + clockSec + meridiem, "2006/1/2 3:04:05 PM"},   // 2024/12/27 07:57:55 PM
	timeCandidate{ymd + " " + clockSec, "2006/1/2 15:04:05"},                // 2024/12/27 19:57:55
	timeCandidate{ymd + " " + clock + meridiem, "2006/1/2 3:04 PM"},         // 2024/12/27 07:57 PM
	timeCandidate{ymd + " " + clock, "2006/1/2 15:04"},                      // 2024/12/27 19:57
	timeCandidate{dmy, "2/1/2006"},                                          // 27/12/2024
	timeCandidate{ymd, "2006/1/2"},                                          // 2024/12/27
	timeCandidate{clockSec + meridiem, "3:04:05 PM"},                        // 07:57:55 PM
	timeCandidate{clockSec, "15:04:05"},                                     // 19:57:55
	timeCandidate{clock + meridiem, "3:04 PM"},                              // 07:57 PM
	timeCandidate{clock, "15:04"},                                           // 19:57
)

var americanTime = newTimeConverter(KeyAmerican,
	timeCandidate{dmy + " " + clockSec + meridiem, "1/2/2006 3:04:05 PM"}, // 12/27/2024 07:57:55 PM
	timeCandidate{dmy + " " + clockSec, "1/2/2006 15:04:05"},              // 12/27/2024 19:57:55
	timeCandidate{dmy + " " + clock + meridiem, "1/2/2006 3:04 PM"},       // 12/27/2024 07:57 PM
	timeCandidate{dmy + " " + clock, "1/2/2006 15:04"},                    // 12/27/2024 19:57
	timeCandidate{dmy, "1/2/2006"},                                        // 12/27/2024
)

var emailTime = newTimeConverter(KeyEmail,
	timeCandidate{monthAbr + `, \d{1,2} ` + monthAbr + ` \d{4} ` + clockSec + zone, "Mon, 2 Jan 2006 15:04:05 -0700"}, // Fri, 27 Dec 2024 19:57:55 +0000
	timeCandidate{`\d{1,2} ` + monthAbr + ` \d{4} ` + clockSec + zone, "2 Jan 2006 15:04:05 -0700"},                   // 27 Dec 2024 19:57:55 +0000
	timeCandidate{`\d{1,2} ` + monthAbr + ` \d{4}`, "2 Jan 2006"},                                                     // 27 Dec 2024
)

var httpLogTime = newTimeConverter(KeyHTTPLog,
	timeCandidate{`\d{2}/` + monthAbr + `/\d{4}:` + clockSec + zone, "02/Jan/2006:15:04:05 -0700"}, // 27/Dec/2024:19:57:55 +0000
)

var syslogTime = newTimeConverter(KeySyslog,
	timeCandidate{monthAbr + ` \d{1,2} \d{4} ` + clockSec, "Jan 2 2006 15:04:05"}, // Dec 27 2024 19:57:55
)

var iso8601Time = newTimeConverter(KeyISO8601,
	timeCandidate{`\d{4}-\d{1,2}-\d{1,2}T` + clockSec + `\.\d{3}(?:Z|[-+]\d{2}:\d{2})`, "2006-01-02T15:04:05.000Z07:00"}, // 2024-12-27T19:57:55.000+00:00
	timeCandidate{`\d{4}-\d{1,2}-\d{1,2}T` + clockSec + `(?:Z|[-+]\d{2}:\d{2})`, "2006-01-02T15:04:05Z07:00"},            // 2024-12-27T19:57:55+00:00
	timeCandidate{`\d{4}-\d{1,2}-\d{1,2}T` + clockSec + `\.\d{3}`, "2006-01-02T15:04:05.000"},                            // 2024-12-27T19:57:55.000
	timeCandidate{`\d{4}-\d{1,2}-\d{1,2}T` + clockSec, "2006-01-02T15:04:05"},                                            // 2024-12-27T19:57:55
	timeCandidate{`\d{4}-\d{1,2}-\d{1,2}`, "2006-1-2"},                                                                   // 2024-12-27
)
