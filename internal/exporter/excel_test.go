package exporter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"kosh/internal/models"
)

func TestExportEmptySelection(t *testing.T) {
	data, err := New().Export(nil)
	assert.ErrorIs(t, err, ErrEmptySelection)
	assert.Nil(t, data)

	data, err = New().Export([]models.Transaction{})
	assert.ErrorIs(t, err, ErrEmptySelection)
	assert.Nil(t, data)
}

func TestExportWorkbook(t *testing.T) {
	records := []models.Transaction{
		{
			Date:            "15/01/2024",
			Name:            "Ravi Kumar",
			TransactionType: models.TransactionTypeDeposit,
			Amount:          1234.5,
			AadharNumber:    "1234 5678 9012",
			Phone:           "9876543210",
		},
		{
			Date:            "not-a-date",
			Name:            "Meera",
			TransactionType: models.TransactionTypeATM,
			Amount:          50,
		},
	}

	data, err := New().Export(records)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	t.Run("header row", func(t *testing.T) {
		rows, err := f.GetRows(SheetName)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t,
			[]string{"Date", "Name", "Transaction Type", "Amount", "Aadhar Number", "Phone Number"},
			rows[0])
	})

	t.Run("parseable date renders as formatted date cell", func(t *testing.T) {
		got, err := f.GetCellValue(SheetName, "A2")
		require.NoError(t, err)
		assert.Equal(t, "15/01/2024", got)

		cellType, err := f.GetCellType(SheetName, "A2")
		require.NoError(t, err)
		assert.NotEqual(t, excelize.CellTypeSharedString, cellType)
	})

	t.Run("unparsable date stays literal text", func(t *testing.T) {
		got, err := f.GetCellValue(SheetName, "A3")
		require.NoError(t, err)
		assert.Equal(t, "not-a-date", got)
	})

	t.Run("amount carries thousands format", func(t *testing.T) {
		got, err := f.GetCellValue(SheetName, "D2")
		require.NoError(t, err)
		assert.Equal(t, "1,234.50", got)
	})

	t.Run("missing identity and phone render as N/A", func(t *testing.T) {
		aadhar, err := f.GetCellValue(SheetName, "E3")
		require.NoError(t, err)
		phone, err2 := f.GetCellValue(SheetName, "F3")
		require.NoError(t, err2)
		assert.Equal(t, models.NotAvailable, aadhar)
		assert.Equal(t, models.NotAvailable, phone)
	})
}
