package timing

import (
	"fmt"
	"time"
)

// Formatted splits a duration into clock components.
type Formatted struct {
	Hours   uint32
	Minutes uint32
	Seconds uint32
}

// Format truncates duration to whole seconds and splits it.
func Format(duration time.Duration) Formatted {
	if duration < 0 {
		duration = 0
	}
	totalSeconds := int64(duration / time.Second)
	minutes := totalSeconds / 60
	return Formatted{
		Hours:   uint32(minutes / 60),
		Minutes: uint32(minutes % 60),
		Seconds: uint32(totalSeconds % 60),
	}
}

// Duration converts the components back into a duration.
func (formatted Formatted) Duration() time.Duration {
	seconds := int64(formatted.Hours)*3600 + int64(formatted.Minutes)*60 + int64(formatted.Seconds)
	return time.Duration(seconds) * time.Second
}

// String renders MM:SS, or H:MM:SS past one hour.
func (formatted Formatted) String() string {
	if formatted.Hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", formatted.Hours, formatted.Minutes, formatted.Seconds)
	}
	return fmt.Sprintf("%02d:%02d", formatted.Minutes, formatted.Seconds)
}

// FormatRemaining renders a countdown for status labels.
func FormatRemaining(remaining time.Duration) string {
	return Format(remaining).String()
}
