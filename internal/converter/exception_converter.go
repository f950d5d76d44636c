package converter

import (
	"go-medical-booking/internal/delivery/dto"
	"go-medical-booking/internal/domain/entity"
)

func ExceptionToResponse(exception *entity.ScheduleException) *dto.ExceptionResponse {
	if exception == nil {
		return nil
	}

	return &dto.ExceptionResponse{
		ID:            exception.ID,
		ProviderID:    exception.ProviderID,
		ExceptionType: string(exception.ExceptionType),
		DateFrom:      exception.DateFrom.Format(entity.DateLayout),
		DateTo:        exception.DateTo.Format(entity.DateLayout),
		Reason:        exception.Reason,
		CreatedBy:     exception.CreatedBy,
		CreatedAt:     exception.CreatedAt,
	}
}

func ExceptionsToResponses(exceptions []entity.ScheduleException) []dto.ExceptionResponse {
	responses := make([]dto.ExceptionResponse, len(exceptions))
	for i := range exceptions {
		responses[i] = *ExceptionToResponse(&exceptions[i])
	}
	return responses
}

// BlackoutToResponse builds the blackout view. A nil exception means the day
// is not blacked out.
func BlackoutToResponse(exception *entity.ScheduleException) dto.BlackoutResponse {
	if exception == nil {
		return dto.BlackoutResponse{Blackout: false}
	}

	exceptionType := string(exception.ExceptionType)
	dateFrom := exception.DateFrom.Format(entity.DateLayout)
	dateTo := exception.DateTo.Format(entity.DateLayout)
	response := dto.BlackoutResponse{
		Blackout:    true,
		ExceptionID: &exception.ID,
		Type:        &exceptionType,
		DateFrom:    &dateFrom,
		DateTo:      &dateTo,
	}
	if exception.Reason != "" {
		reason := exception.Reason
		response.Reason = &reason
	}
	return response
}
