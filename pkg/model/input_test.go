package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessRawInstance_JoinsSubjectsToGroupsByTerm(t *testing.T) {
	// Arrange
	raw := rawInput{
		Grupos: []rawGroup{
			{Nombre: "G1", Turno: "Matutino", Cuatrimestre: 1},
			{Nombre: "G2", Turno: "Vespertino", Cuatrimestre: 2},
		},
		Materias: []rawSubject{
			{Nombre: "Math", Cuatrimestre: 1, HorasSemana: 3},
		},
		Profesores: []rawProfessor{
			{Nombre: "P1", MateriasImparte: []string{"Math"}, HorasDisponibles: 10, TurnoPreferido: "Matutino"},
		},
	}

	// Act
	instance, err := ProcessRawInstance(raw)

	// Assert
	require.NoError(t, err)
	require.Len(t, instance.Subjects, 1)
	assert.Equal(t, []string{"G1"}, instance.Subjects[0].GroupsTaking)
}

func TestProcessRawInstance_RejectsUnknownTurno(t *testing.T) {
	// Arrange
	raw := rawInput{
		Grupos: []rawGroup{{Nombre: "G1", Turno: "Nocturno", Cuatrimestre: 1}},
	}

	// Act
	_, err := ProcessRawInstance(raw)

	// Assert
	require.Error(t, err)
}

func TestProcessRawInstance_ProfessorPreferenceAmbos(t *testing.T) {
	// Arrange
	raw := rawInput{
		Profesores: []rawProfessor{
			{Nombre: "P1", TurnoPreferido: "Ambos", HorasDisponibles: 5},
		},
	}

	// Act
	instance, err := ProcessRawInstance(raw)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, Either, instance.Professors[0].PreferredShift)
}

func TestProcessRawInstance_AvailabilityWindowsDecoded(t *testing.T) {
	// Arrange
	raw := rawInput{
		Profesores: []rawProfessor{
			{
				Nombre:           "P1",
				TurnoPreferido:   "Matutino",
				HorasDisponibles: 5,
				DisponibilidadHoraria: map[string][][]int{
					"Lunes": {{7, 10}, {12, 14}},
				},
			},
		},
	}

	// Act
	instance, err := ProcessRawInstance(raw)

	// Assert
	require.NoError(t, err)
	windows := instance.Professors[0].Availability["Lunes"]
	require.Len(t, windows, 2)
	assert.Equal(t, AvailabilityWindow{Start: 7, End: 10}, windows[0])
}
