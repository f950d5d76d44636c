package entity

import "fmt"

// AppointmentStatus represents the life-cycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusWaiting     AppointmentStatus = "WAITING"
	AppointmentStatusInProgress  AppointmentStatus = "IN_PROGRESS"
	AppointmentStatusCompleted   AppointmentStatus = "COMPLETED"
	AppointmentStatusNoShow      AppointmentStatus = "NO_SHOW"
	AppointmentStatusCancelled   AppointmentStatus = "CANCELLED"
	AppointmentStatusRescheduled AppointmentStatus = "RESCHEDULED"
)

// AllAppointmentStatuses lists every status in declaration order.
var AllAppointmentStatuses = []AppointmentStatus{
	AppointmentStatusWaiting,
	AppointmentStatusInProgress,
	AppointmentStatusCompleted,
	AppointmentStatusNoShow,
	AppointmentStatusCancelled,
	AppointmentStatusRescheduled,
}

// UpcomingStatuses are the statuses a patient still has ahead of them.
var UpcomingStatuses = []AppointmentStatus{AppointmentStatusWaiting, AppointmentStatusInProgress}

// InactiveStatuses never take part in conflict detection.
var InactiveStatuses = []AppointmentStatus{AppointmentStatusCancelled, AppointmentStatusRescheduled}

func (s AppointmentStatus) IsValid() bool {
	for _, st := range AllAppointmentStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// HoldsSlot is false for statuses that released their time slot.
func (s AppointmentStatus) HoldsSlot() bool {
	return s != AppointmentStatusCancelled && s != AppointmentStatusRescheduled
}

// OccupiesWorkload reports whether the appointment counts as a booked slot in workload reports.
func (s AppointmentStatus) OccupiesWorkload() bool {
	return s == AppointmentStatusWaiting || s == AppointmentStatusInProgress || s == AppointmentStatusCompleted
}

// TransitionTable restricts which target statuses are reachable from each status.
// A nil table allows every transition.
type TransitionTable map[AppointmentStatus][]AppointmentStatus

// DefaultTransitionTable is the table used when strict transitions are enabled
// without a custom table.
func DefaultTransitionTable() TransitionTable {
	return TransitionTable{
		AppointmentStatusWaiting: {
			AppointmentStatusInProgress,
			AppointmentStatusCancelled,
			AppointmentStatusNoShow,
			AppointmentStatusRescheduled,
		},
		AppointmentStatusInProgress: {
			AppointmentStatusCompleted,
			AppointmentStatusCancelled,
		},
		AppointmentStatusCompleted:   {},
		AppointmentStatusNoShow:      {},
		AppointmentStatusCancelled:   {},
		AppointmentStatusRescheduled: {},
	}
}

// Allows reports whether from -> to is permitted.
func (t TransitionTable) Allows(from, to AppointmentStatus) bool {
	if t == nil {
		return true
	}
	for _, next := range t[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Validate rejects tables that mention unknown statuses.
func (t TransitionTable) Validate() error {
	for from, targets := range t {
		if !from.IsValid() {
			return fmt.Errorf("unknown status %q in transition table", from)
		}
		for _, to := range targets {
			if !to.IsValid() {
				return fmt.Errorf("unknown status %q in transitions of %s", to, from)
			}
		}
	}
	return nil
}
