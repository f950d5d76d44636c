package entity

import "github.com/shopspring/decimal"

// Workload is the derived slot utilisation of one provider on one day.
type Workload struct {
	TotalSlots  int
	Occupied    int
	Free        int
	LoadPercent decimal.Decimal
}

// ComputeWorkload derives slot counts from the day's windows. Each window
// contributes floor(minutes / slotMinutes) slots.
func ComputeWorkload(windows []AvailabilityWindow, slotMinutes, occupied int) Workload {
	total := 0
	if slotMinutes > 0 {
		for _, w := range windows {
			if m := w.Minutes(); m > 0 {
				total += m / slotMinutes
			}
		}
	}

	free := total - occupied
	if free < 0 {
		free = 0
	}

	load := decimal.Zero
	if total > 0 {
		load = decimal.NewFromInt(int64(occupied)).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(int64(total))).
			Round(2)
	}

	return Workload{
		TotalSlots:  total,
		Occupied:    occupied,
		Free:        free,
		LoadPercent: load,
	}
}
