package invoicing

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/frostline/hvac-office/internal/models"
)

func residentialClient() *models.Client {
	return &models.Client{ID: "c1", Name: "Ted Okafor", Type: models.ClientResidential}
}

func commercialClient() *models.Client {
	return &models.Client{ID: "c2", Name: "Hargrove Dental Group", Type: models.ClientCommercial}
}

func TestDerive_NoClient(t *testing.T) {
	_, err := Derive(models.Invoice{}, nil)
	assert.ErrorIs(t, err, ErrClientRequired)
}

func TestDerive_MaintenanceSchedulesSixMonthsOut(t *testing.T) {
	issue := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	inv := models.Invoice{
		IssueDate: issue,
		Items: []models.InvoiceItem{
			{Description: "Tune-up", Quantity: 1, UnitPrice: 149, IsMaintenance: true},
		},
	}

	derived, err := Derive(inv, residentialClient())
	assert.NoError(t, err)
	assert.NotNil(t, derived.NextMaintenanceDate)
	assert.Equal(t, time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC), *derived.NextMaintenanceDate)
	assert.NotNil(t, derived.LastMaintenanceDate)
	assert.Equal(t, issue, *derived.LastMaintenanceDate)
}

func TestDerive_MonthArithmeticNormalizesRollover(t *testing.T) {
	// Aug 31 + 6 months has no Feb 31; AddDate normalizes into March.
	issue := time.Date(2025, time.August, 31, 0, 0, 0, 0, time.UTC)
	inv := models.Invoice{
		IssueDate: issue,
		Items:     []models.InvoiceItem{{IsMaintenance: true, Quantity: 1, UnitPrice: 1}},
	}

	derived, err := Derive(inv, residentialClient())
	assert.NoError(t, err)
	assert.Equal(t, issue.AddDate(0, 6, 0), *derived.NextMaintenanceDate)
}

func TestDerive_TogglingMaintenanceOffClearsDates(t *testing.T) {
	issue := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	inv := models.Invoice{
		IssueDate: issue,
		Items:     []models.InvoiceItem{{IsMaintenance: true, Quantity: 1, UnitPrice: 100}},
	}

	derived, err := Derive(inv, residentialClient())
	assert.NoError(t, err)
	assert.NotNil(t, derived.NextMaintenanceDate)

	// Edit: flag turned off, re-save must undo the schedule.
	derived.Items[0].IsMaintenance = false
	rederived, err := Derive(derived, residentialClient())
	assert.NoError(t, err)
	assert.Nil(t, rederived.NextMaintenanceDate)
	assert.Nil(t, rederived.LastMaintenanceDate)
}

func TestDerive_NewEquipmentAppendsWarrantyNoteOnce(t *testing.T) {
	inv := models.Invoice{
		Items: []models.InvoiceItem{{Description: "Condenser", Quantity: 1, UnitPrice: 2890, IsNewEquipment: true}},
	}

	derived, err := Derive(inv, residentialClient())
	assert.NoError(t, err)
	assert.Contains(t, derived.Notes, WarrantyNote)

	// Re-save must not duplicate the sentence.
	again, err := Derive(derived, residentialClient())
	assert.NoError(t, err)
	assert.Equal(t, derived.Notes, again.Notes)
	assert.Equal(t, 1, strings.Count(again.Notes, WarrantyNote))
}

func TestDerive_RecommendationIntervalByClientType(t *testing.T) {
	inv := models.Invoice{
		Items: []models.InvoiceItem{{IsNewEquipment: true, Quantity: 1, UnitPrice: 500}},
	}

	commercial, err := Derive(inv, commercialClient())
	assert.NoError(t, err)
	assert.Contains(t, commercial.Notes, "3 months")

	residential, err := Derive(inv, residentialClient())
	assert.NoError(t, err)
	assert.Contains(t, residential.Notes, "6 months")
}

func TestDerive_NotesOrderAndUserTextPreserved(t *testing.T) {
	inv := models.Invoice{
		Notes: "Gate code is 4411.",
		Items: []models.InvoiceItem{{IsNewEquipment: true, Quantity: 1, UnitPrice: 500}},
	}

	derived, err := Derive(inv, commercialClient())
	assert.NoError(t, err)

	userIdx := strings.Index(derived.Notes, "Gate code is 4411.")
	warrantyIdx := strings.Index(derived.Notes, WarrantyNote)
	recIdx := strings.Index(derived.Notes, MaintenanceRecommendation(commercialClient()))
	assert.Equal(t, 0, userIdx)
	assert.Greater(t, warrantyIdx, userIdx)
	assert.Greater(t, recIdx, warrantyIdx)
	assert.Contains(t, derived.Notes, "\n\n")
}

func TestDerive_NotesNotRetractedWhenFlagCleared(t *testing.T) {
	inv := models.Invoice{
		Items: []models.InvoiceItem{{IsNewEquipment: true, Quantity: 1, UnitPrice: 500}},
	}

	derived, err := Derive(inv, residentialClient())
	assert.NoError(t, err)
	assert.Contains(t, derived.Notes, WarrantyNote)

	// Clearing the flag keeps the previously added sentence.
	derived.Items[0].IsNewEquipment = false
	rederived, err := Derive(derived, residentialClient())
	assert.NoError(t, err)
	assert.Contains(t, rederived.Notes, WarrantyNote)
}

func TestDerive_NegativeValuesPassThrough(t *testing.T) {
	inv := models.Invoice{
		Items: []models.InvoiceItem{{Description: "Credit", Quantity: -1, UnitPrice: 50}},
	}

	derived, err := Derive(inv, residentialClient())
	assert.NoError(t, err)
	assert.Equal(t, -50.0, derived.Total())
}

func TestNextNumber(t *testing.T) {
	assert.Equal(t, "INV-0001", NextNumber(0))
	assert.Equal(t, "INV-0002", NextNumber(1))
	assert.Equal(t, "INV-0123", NextNumber(122))
}
