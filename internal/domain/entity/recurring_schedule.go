package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDayOfWeek   = errors.New("day of week must be between 1 (Monday) and 7 (Sunday)")
	ErrWindowOrder        = errors.New("start time must be before end time")
	ErrPaidWindowOutside  = errors.New("paid window must lie within the working window")
	ErrEffectiveDateOrder = errors.New("effective from must be before or equal to effective to")
)

// RecurringSchedule is a weekly-recurring window of nominal availability.
type RecurringSchedule struct {
	ID            int        `gorm:"primaryKey;autoIncrement" json:"id"`
	ProviderID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_schedule_provider_day" json:"provider_id"`
	DayOfWeek     int        `gorm:"not null;index:idx_schedule_provider_day" json:"day_of_week"`
	StartTime     string     `gorm:"type:time;not null" json:"start_time"`
	EndTime       string     `gorm:"type:time;not null" json:"end_time"`
	PaidStartTime *string    `gorm:"type:time" json:"paid_start_time,omitempty"`
	PaidEndTime   *string    `gorm:"type:time" json:"paid_end_time,omitempty"`
	Location      *string    `gorm:"type:varchar(50)" json:"location,omitempty"`
	EffectiveFrom time.Time  `gorm:"type:date;not null" json:"effective_from"`
	EffectiveTo   *time.Time `gorm:"type:date" json:"effective_to,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (RecurringSchedule) TableName() string {
	return "recurring_schedules"
}

// Validate checks the entry invariants.
func (s *RecurringSchedule) Validate() error {
	if s.DayOfWeek < 1 || s.DayOfWeek > 7 {
		return ErrInvalidDayOfWeek
	}
	start, err := ParseClock(s.StartTime)
	if err != nil {
		return err
	}
	end, err := ParseClock(s.EndTime)
	if err != nil {
		return err
	}
	if start >= end {
		return ErrWindowOrder
	}

	if (s.PaidStartTime == nil) != (s.PaidEndTime == nil) {
		return ErrPaidWindowOutside
	}
	if s.PaidStartTime != nil {
		paidStart, err := ParseClock(*s.PaidStartTime)
		if err != nil {
			return err
		}
		paidEnd, err := ParseClock(*s.PaidEndTime)
		if err != nil {
			return err
		}
		if paidStart < start || paidStart >= paidEnd || paidEnd > end {
			return ErrPaidWindowOutside
		}
	}

	if s.EffectiveTo != nil && DateKey(*s.EffectiveTo) < DateKey(s.EffectiveFrom) {
		return ErrEffectiveDateOrder
	}
	return nil
}

// AppliesOn reports whether the entry produces a window on date.
func (s *RecurringSchedule) AppliesOn(date time.Time) bool {
	if Weekday(date) != s.DayOfWeek {
		return false
	}
	day := DateKey(date)
	if DateKey(s.EffectiveFrom) > day {
		return false
	}
	return s.EffectiveTo == nil || DateKey(*s.EffectiveTo) >= day
}

// Window converts the entry into the concrete window it yields on a day.
func (s *RecurringSchedule) Window() AvailabilityWindow {
	w := AvailabilityWindow{
		ScheduleID: s.ID,
		Start:      MustParseClock(s.StartTime),
		End:        MustParseClock(s.EndTime),
		Location:   s.Location,
	}
	if s.PaidStartTime != nil && s.PaidEndTime != nil {
		paidStart := MustParseClock(*s.PaidStartTime)
		paidEnd := MustParseClock(*s.PaidEndTime)
		w.PaidStart = &paidStart
		w.PaidEnd = &paidEnd
	}
	return w
}

// AvailabilityWindow is one resolved window of a provider's day.
type AvailabilityWindow struct {
	ScheduleID int
	Start      ClockTime
	End        ClockTime
	PaidStart  *ClockTime
	PaidEnd    *ClockTime
	Location   *string
}

// Minutes returns the window duration.
func (w AvailabilityWindow) Minutes() int {
	return int(w.End - w.Start)
}
