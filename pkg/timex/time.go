// Package timex provides the wire/database time type and calendar slot
// arithmetic. All API timestamps are UTC milliseconds.
package timex

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"time"
)

// Time marshals as UTC milliseconds in JSON and stores as a millisecond
// integer column in the database.
type Time time.Time

func Now() Time {
	return Time(time.Now().UTC())
}

// FromMilli converts a UTC-millisecond timestamp.
func FromMilli(ms int64) Time {
	return Time(time.UnixMilli(ms).UTC())
}

func (t Time) Std() time.Time {
	return time.Time(t)
}

func (t Time) Unix() int64      { return time.Time(t).Unix() }
func (t Time) UnixMilli() int64 { return time.Time(t).UnixMilli() }
func (t Time) IsZero() bool     { return time.Time(t).IsZero() }

func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(t.UnixMilli(), 10)), nil
}

func (t *Time) UnmarshalJSON(data []byte) error {
	ms, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("timex: parse milliseconds: %w", err)
	}
	*t = FromMilli(ms)
	return nil
}

// Value implements driver.Valuer.
func (t Time) Value() (driver.Value, error) {
	return t.UnixMilli(), nil
}

// Scan implements sql.Scanner.
func (t *Time) Scan(src any) error {
	switch v := src.(type) {
	case int64:
		*t = FromMilli(v)
	case time.Time:
		*t = Time(v.UTC())
	case nil:
		*t = Time{}
	default:
		return fmt.Errorf("timex: cannot scan %T into Time", src)
	}
	return nil
}

// RoundSlot snaps a raw reservation window onto whole-hour room slots: the
// start rounds down to its hour, the end rounds up to the next hour unless
// it already sits on an hour boundary. A 1:30-2:30 request blocks 1:00-3:00.
func RoundSlot(rawStart, rawEnd time.Time) (time.Time, time.Time) {
	start := rawStart.Truncate(time.Hour)
	end := rawEnd.Truncate(time.Hour)
	if !end.Equal(rawEnd) {
		end = end.Add(time.Hour)
	}
	return start, end
}

// RoundSlotMilli is RoundSlot over UTC-millisecond timestamps.
func RoundSlotMilli(rawStart, rawEnd int64) (int64, int64) {
	s, e := RoundSlot(time.UnixMilli(rawStart).UTC(), time.UnixMilli(rawEnd).UTC())
	return s.UnixMilli(), e.UnixMilli()
}
