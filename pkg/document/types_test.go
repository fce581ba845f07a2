package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetEntities(t *testing.T) {
	tests := []struct {
		name    string
		docType DocumentType
		first   EntityType
		count   int
	}{
		{
			name:    "national id",
			docType: NationalID,
			first:   FullName,
			count:   7,
		},
		{
			name:    "tax id",
			docType: TaxID,
			first:   FullName,
			count:   5,
		},
		{
			name:    "driving license",
			docType: DrivingLicense,
			first:   FullName,
			count:   10,
		},
		{
			name:    "unknown type falls back to name only",
			docType: Other,
			first:   FullName,
			count:   1,
		},
		{
			name:    "unmapped string falls back to name only",
			docType: DocumentType("passport"),
			first:   FullName,
			count:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			targets := TargetEntities(tt.docType)
			require.Len(t, targets, tt.count)
			assert.Equal(t, tt.first, targets[0])
		})
	}
}

func TestTargetEntitiesReturnsCopy(t *testing.T) {
	a := TargetEntities(NationalID)
	a[0] = Email
	b := TargetEntities(NationalID)
	assert.Equal(t, FullName, b[0], "mutating a returned slice must not affect the table")
}

func TestExtractedEntityValidate(t *testing.T) {
	tests := []struct {
		name    string
		entity  ExtractedEntity
		wantErr bool
	}{
		{
			name: "valid entity",
			entity: ExtractedEntity{
				Type:       NationalIDNumber,
				Value:      "1234 5678 9012",
				Confidence: 0.95,
				Method:     MethodRegex,
			},
		},
		{
			name:    "missing type",
			entity:  ExtractedEntity{Value: "x", Confidence: 0.5},
			wantErr: true,
		},
		{
			name:    "missing value",
			entity:  ExtractedEntity{Type: FullName, Confidence: 0.5},
			wantErr: true,
		},
		{
			name:    "confidence above one",
			entity:  ExtractedEntity{Type: FullName, Value: "x", Confidence: 1.2},
			wantErr: true,
		},
		{
			name:    "negative confidence",
			entity:  ExtractedEntity{Type: FullName, Value: "x", Confidence: -0.1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entity.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExtractionResultEntity(t *testing.T) {
	res := &ExtractionResult{
		Entities: []ExtractedEntity{
			{Type: FullName, Value: "Ravi Kumar"},
			{Type: DateOfBirth, Value: "15 Jan 1990"},
		},
	}

	e, ok := res.Entity(DateOfBirth)
	require.True(t, ok)
	assert.Equal(t, "15 Jan 1990", e.Value)

	_, ok = res.Entity(Gender)
	assert.False(t, ok)
}
