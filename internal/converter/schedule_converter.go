package converter

import (
	"go-medical-booking/internal/delivery/dto"
	"go-medical-booking/internal/domain/entity"
)

// ScheduleToResponse converts a RecurringSchedule entity to ScheduleResponse DTO.
// Times are normalised to HH:MM whatever the column type returned.
func ScheduleToResponse(schedule *entity.RecurringSchedule) *dto.ScheduleResponse {
	if schedule == nil {
		return nil
	}

	response := &dto.ScheduleResponse{
		ID:            schedule.ID,
		ProviderID:    schedule.ProviderID,
		DayOfWeek:     schedule.DayOfWeek,
		StartTime:     normaliseClock(schedule.StartTime),
		EndTime:       normaliseClock(schedule.EndTime),
		Location:      schedule.Location,
		EffectiveFrom: schedule.EffectiveFrom.Format(entity.DateLayout),
		CreatedAt:     schedule.CreatedAt,
		UpdatedAt:     schedule.UpdatedAt,
	}
	if schedule.PaidStartTime != nil {
		v := normaliseClock(*schedule.PaidStartTime)
		response.PaidStartTime = &v
	}
	if schedule.PaidEndTime != nil {
		v := normaliseClock(*schedule.PaidEndTime)
		response.PaidEndTime = &v
	}
	if schedule.EffectiveTo != nil {
		v := schedule.EffectiveTo.Format(entity.DateLayout)
		response.EffectiveTo = &v
	}

	return response
}

func SchedulesToResponses(schedules []entity.RecurringSchedule) []dto.ScheduleResponse {
	responses := make([]dto.ScheduleResponse, len(schedules))
	for i := range schedules {
		responses[i] = *ScheduleToResponse(&schedules[i])
	}
	return responses
}

// WindowToResponse converts a resolved window
func WindowToResponse(w entity.AvailabilityWindow) dto.WindowResponse {
	response := dto.WindowResponse{
		ScheduleID:      w.ScheduleID,
		Start:           w.Start.String(),
		End:             w.End.String(),
		Location:        w.Location,
		DurationMinutes: w.Minutes(),
	}
	if w.PaidStart != nil && w.PaidEnd != nil {
		paidStart, paidEnd := w.PaidStart.String(), w.PaidEnd.String()
		response.PaidStart = &paidStart
		response.PaidEnd = &paidEnd
	}
	return response
}

func WindowsToResponses(windows []entity.AvailabilityWindow) []dto.WindowResponse {
	responses := make([]dto.WindowResponse, len(windows))
	for i, w := range windows {
		responses[i] = WindowToResponse(w)
	}
	return responses
}

func normaliseClock(s string) string {
	c, err := entity.ParseClock(s)
	if err != nil {
		return s
	}
	return c.String()
}
