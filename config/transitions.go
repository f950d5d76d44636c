package config

import (
	"fmt"
	"os"

	"go-medical-booking/internal/domain/entity"

	"gopkg.in/yaml.v3"
)

// transitionsFile is the YAML shape of a custom transition table:
//
//	transitions:
//	  WAITING: [IN_PROGRESS, CANCELLED]
//	  IN_PROGRESS: [COMPLETED]
type transitionsFile struct {
	Transitions map[string][]string `yaml:"transitions"`
}

// TransitionTable returns the table the lifecycle should enforce, or nil when
// every transition is allowed.
func (c BookingConfig) TransitionTable() (entity.TransitionTable, error) {
	if c.TransitionsFile != "" {
		return LoadTransitionTable(c.TransitionsFile)
	}
	if c.StrictTransitions {
		return entity.DefaultTransitionTable(), nil
	}
	return nil, nil
}

// LoadTransitionTable reads a YAML transition table from path.
func LoadTransitionTable(path string) (entity.TransitionTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transitions file: %w", err)
	}
	return ParseTransitionTable(raw)
}

func ParseTransitionTable(raw []byte) (entity.TransitionTable, error) {
	var file transitionsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse transitions file: %w", err)
	}

	table := make(entity.TransitionTable, len(file.Transitions))
	for from, targets := range file.Transitions {
		next := make([]entity.AppointmentStatus, 0, len(targets))
		for _, to := range targets {
			next = append(next, entity.AppointmentStatus(to))
		}
		table[entity.AppointmentStatus(from)] = next
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}
