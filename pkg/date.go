package pkg

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// Date is a calendar day serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD", s)
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ClockDuration is a duration serialized as HH:MM:SS.
type ClockDuration time.Duration

func (c ClockDuration) Duration() time.Duration {
	return time.Duration(c)
}

func (c ClockDuration) String() string {
	total := int64(time.Duration(c) / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// MaxClockSeconds is the longest duration a ClockDuration may hold, it matches
// the INTEGER column the elapsed time is stored in.
const MaxClockSeconds = math.MaxInt32

// ParseClockDuration accepts HH:MM:SS, MM:SS or plain seconds.
func ParseClockDuration(s string) (ClockDuration, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) > 3 || parts[0] == "" {
		return 0, fmt.Errorf("invalid duration %q, use HH:MM:SS", s)
	}

	var seconds int64
	for _, p := range parts {
		v, err := strconv.ParseInt(p, 10, 64)
		if err != nil || v < 0 {
			return 0, fmt.Errorf("invalid duration %q, use HH:MM:SS", s)
		}
		if v > MaxClockSeconds || seconds > (MaxClockSeconds-v)/60 {
			return 0, fmt.Errorf("duration %q is too long", s)
		}
		seconds = seconds*60 + v
	}
	return ClockDuration(time.Duration(seconds) * time.Second), nil
}

func (c ClockDuration) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *ClockDuration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	parsed, err := ParseClockDuration(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
