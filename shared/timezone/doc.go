// Package timezone keeps the hotel's local clock and the calendar-date helpers
// used for stays.
//
// Stay dates (check-in, check-out, report days) are plain calendar dates stored
// as midnight UTC, so arithmetic on them never crosses a DST boundary. Wall-clock
// values such as "now" or audit timestamps use the zone set by Init from
// APP_TIMEZONE, e.g. "Asia/Karachi".
package timezone
