package model

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// rawGroup, rawSubject and rawProfessor mirror the instance wire format
// (§6.2) field for field before any domain normalization is applied.
type rawGroup struct {
	Nombre       string `mapstructure:"nombre"`
	Turno        string `mapstructure:"turno"`
	Cuatrimestre int    `mapstructure:"cuatrimestre"`
}

type rawSubject struct {
	Nombre       string `mapstructure:"nombre"`
	Cuatrimestre int    `mapstructure:"cuatrimestre"`
	HorasSemana  int    `mapstructure:"horas_semana"`
}

type rawProfessor struct {
	Nombre                string             `mapstructure:"nombre"`
	MateriasImparte       []string           `mapstructure:"materias_imparte"`
	HorasDisponibles      int                `mapstructure:"horas_disponibles"`
	TurnoPreferido        string             `mapstructure:"turno_preferido"`
	DisponibilidadHoraria map[string][][]int `mapstructure:"disponibilidad_horaria"`
}

type rawInput struct {
	Grupos     []rawGroup     `mapstructure:"grupos"`
	Materias   []rawSubject   `mapstructure:"materias"`
	Profesores []rawProfessor `mapstructure:"profesores"`
}

// ProblemInstance is the fully normalized, typed form of a loaded instance:
// every subject's GroupsTaking is already populated.
type ProblemInstance struct {
	Groups     []Group
	Subjects   []Subject
	Professors []Professor
}

// LoadInstance reads and decodes a problem instance from a JSON file,
// following the teacher's own two-step decode: unmarshal into a generic
// map, then mapstructure.Decode into typed fields.
func LoadInstance(path string) (ProblemInstance, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return ProblemInstance{}, fmt.Errorf("cannot read input file: %w", err)
	}

	var generic map[string]any
	if err := json.Unmarshal(bytes, &generic); err != nil {
		return ProblemInstance{}, fmt.Errorf("cannot parse input file: %w", err)
	}

	var raw rawInput
	if err := mapstructure.Decode(generic, &raw); err != nil {
		return ProblemInstance{}, fmt.Errorf("cannot decode input file: %w", err)
	}

	return ProcessRawInstance(raw)
}

// ProcessRawInstance turns a decoded rawInput into a ProblemInstance,
// resolving shifts and joining subjects to the groups that take them.
func ProcessRawInstance(raw rawInput) (ProblemInstance, error) {
	groups := make([]Group, 0, len(raw.Grupos))
	for _, g := range raw.Grupos {
		shift, err := shiftFromSpanish(g.Turno)
		if err != nil {
			return ProblemInstance{}, fmt.Errorf("group %q: %w", g.Nombre, err)
		}
		groups = append(groups, Group{Name: g.Nombre, Term: g.Cuatrimestre, Shift: shift})
	}

	subjects := make([]Subject, 0, len(raw.Materias))
	for _, m := range raw.Materias {
		groupsTaking := lo.FilterMap(groups, func(g Group, _ int) (string, bool) {
			return g.Name, g.Term == m.Cuatrimestre
		})
		subjects = append(subjects, Subject{
			Name:         m.Nombre,
			Term:         m.Cuatrimestre,
			WeeklyHours:  m.HorasSemana,
			GroupsTaking: groupsTaking,
		})
	}

	professors := make([]Professor, 0, len(raw.Profesores))
	for _, p := range raw.Profesores {
		preferred, err := shiftPreferenceFromSpanish(p.TurnoPreferido)
		if err != nil {
			return ProblemInstance{}, fmt.Errorf("professor %q: %w", p.Nombre, err)
		}

		var availability map[string][]AvailabilityWindow
		if len(p.DisponibilidadHoraria) > 0 {
			availability = make(map[string][]AvailabilityWindow, len(p.DisponibilidadHoraria))
			for day, ranges := range p.DisponibilidadHoraria {
				windows := make([]AvailabilityWindow, 0, len(ranges))
				for _, r := range ranges {
					if len(r) != 2 {
						return ProblemInstance{}, fmt.Errorf("professor %q: malformed availability range for %s", p.Nombre, day)
					}
					windows = append(windows, AvailabilityWindow{Start: r[0], End: r[1]})
				}
				availability[day] = windows
			}
		}

		professors = append(professors, Professor{
			Name:           p.Nombre,
			SubjectsTaught: p.MateriasImparte,
			MaxHours:       p.HorasDisponibles,
			PreferredShift: preferred,
			Availability:   availability,
		})
	}

	return ProblemInstance{Groups: groups, Subjects: subjects, Professors: professors}, nil
}

func shiftFromSpanish(turno string) (Shift, error) {
	switch turno {
	case "Matutino":
		return Morning, nil
	case "Vespertino":
		return Evening, nil
	default:
		return Morning, fmt.Errorf("unrecognized turno %q", turno)
	}
}

func shiftPreferenceFromSpanish(turno string) (Shift, error) {
	if turno == "Ambos" {
		return Either, nil
	}
	return shiftFromSpanish(turno)
}
