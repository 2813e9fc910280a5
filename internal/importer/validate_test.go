package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateImportSchema_ValidMinimalSchema(t *testing.T) {
	schema := &ImportSchema{
		Items: []ItemImport{
			{Ref: "i1", Title: "Read", DurationMinutes: 30},
		},
	}
	errs := ValidateImportSchema(schema)
	assert.Empty(t, errs)
}

func TestValidateImportSchema_ItemMissingTitle(t *testing.T) {
	schema := &ImportSchema{
		Items: []ItemImport{{Ref: "i1", DurationMinutes: 30}},
	}
	errs := ValidateImportSchema(schema)
	assert.NotEmpty(t, errs)
}

func TestValidateImportSchema_ItemNonPositiveDuration(t *testing.T) {
	schema := &ImportSchema{
		Items: []ItemImport{{Ref: "i1", Title: "Read", DurationMinutes: 0}},
	}
	errs := ValidateImportSchema(schema)
	assert.NotEmpty(t, errs)
}

func TestValidateImportSchema_DuplicateItemRef(t *testing.T) {
	schema := &ImportSchema{
		Items: []ItemImport{
			{Ref: "i1", Title: "Read", DurationMinutes: 30},
			{Ref: "i1", Title: "Read again", DurationMinutes: 30},
		},
	}
	errs := ValidateImportSchema(schema)
	assert.NotEmpty(t, errs)
}

func TestValidateImportSchema_UnknownGoalRef(t *testing.T) {
	schema := &ImportSchema{
		Items: []ItemImport{
			{Ref: "i1", GoalRef: ptrStr("missing"), Title: "Read", DurationMinutes: 30},
		},
	}
	errs := ValidateImportSchema(schema)
	assert.NotEmpty(t, errs)
}

func TestValidateImportSchema_InvalidPriorityTier(t *testing.T) {
	schema := &ImportSchema{
		Items: []ItemImport{
			{Ref: "i1", Title: "Read", DurationMinutes: 30, PriorityTier: "urgent"},
		},
	}
	errs := ValidateImportSchema(schema)
	assert.NotEmpty(t, errs)
}

func TestValidateImportSchema_OccupationEndBeforeStart(t *testing.T) {
	schema := &ImportSchema{
		Occupations: []OccupationImport{
			{Ref: "o1", Title: "Bad", Start: "2026-03-09T11:00:00Z", End: "2026-03-09T10:00:00Z"},
		},
	}
	errs := ValidateImportSchema(schema)
	assert.NotEmpty(t, errs)
}

func TestValidateImportSchema_OccupationInvalidTimestampFormat(t *testing.T) {
	schema := &ImportSchema{
		Occupations: []OccupationImport{
			{Ref: "o1", Title: "Bad", Start: "2026-03-09", End: "2026-03-09T10:00:00Z"},
		},
	}
	errs := ValidateImportSchema(schema)
	assert.NotEmpty(t, errs)
}

func TestValidateImportSchema_DependencySelfReference(t *testing.T) {
	schema := &ImportSchema{
		Items: []ItemImport{{Ref: "i1", Title: "Read", DurationMinutes: 30}},
		Dependencies: []DependencyImport{
			{ItemRef: "i1", DependsOnRef: "i1"},
		},
	}
	errs := ValidateImportSchema(schema)
	assert.NotEmpty(t, errs)
}

func TestValidateImportSchema_DependencyUnknownRef(t *testing.T) {
	schema := &ImportSchema{
		Items: []ItemImport{{Ref: "i1", Title: "Read", DurationMinutes: 30}},
		Dependencies: []DependencyImport{
			{ItemRef: "i1", DependsOnRef: "missing"},
		},
	}
	errs := ValidateImportSchema(schema)
	assert.NotEmpty(t, errs)
}
