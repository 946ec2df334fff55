package questionbank

import (
	"bytes"
	"testing"

	"sat-prep/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportWorkbook(t *testing.T) {
	bank := newScenarioBank()

	f, err := ExportWorkbook(bank)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"math", "reading", "writing"}, f.GetSheetList())

	rows, err := f.GetRows("math")
	require.NoError(t, err)
	require.Len(t, rows, 1+bank.Count(domain.SectionMath))
	assert.Equal(t, exportHeaders, rows[0])
	assert.Equal(t, "alg-00", rows[1][0])
	assert.Equal(t, "Algebra", rows[1][1])
	assert.Equal(t, "A) a\nB) b", rows[1][4])
	assert.Equal(t, "A", rows[1][5])

	writing, err := f.GetRows("writing")
	require.NoError(t, err)
	assert.Len(t, writing, 1)
}

func TestExportWorkbook_RoundTripsThroughBuffer(t *testing.T) {
	f, err := ExportWorkbook(newScenarioBank())
	require.NoError(t, err)

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	reopened, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer reopened.Close()

	rows, err := reopened.GetRows("reading")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "r-2", rows[2][0])
}
