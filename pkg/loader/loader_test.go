package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ajitpratap0/tableslim/pkg/dataset"
	"github.com/ajitpratap0/tableslim/pkg/errors"
)

const sampleCSV = "id,name,score\n1,alice,1.5\n2,bob,2.25\n3,alice,3.75\n"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_CSV(t *testing.T) {
	path := writeFile(t, "data.csv", sampleCSV)

	ds, err := Load(context.Background(), path, ',')
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name", "score"}, ds.Names())
	assert.Equal(t, 3, ds.NumRows())
	assert.Equal(t, dataset.ColumnTypeInt64, ds.Column(0).Type())
	assert.Equal(t, dataset.ColumnTypeString, ds.Column(1).Type())
	assert.Equal(t, dataset.ColumnTypeFloat64, ds.Column(2).Type())
	assert.Equal(t, int64(2), ds.Column(0).Get(1))
	assert.Equal(t, "alice", ds.Column(1).Get(2))
	assert.Equal(t, 2.25, ds.Column(2).Get(1))
}

func TestLoad_CSVCustomSeparator(t *testing.T) {
	path := writeFile(t, "data.csv", "a;b\n1;x\n2;y\n")

	ds, err := Load(context.Background(), path, ';')
	require.NoError(t, err)
	assert.Equal(t, 2, ds.NumColumns())
	assert.Equal(t, 2, ds.NumRows())
	assert.Equal(t, "x", ds.Column(1).Get(0))
}

func TestLoad_CSVHeaderOnly(t *testing.T) {
	path := writeFile(t, "empty.csv", "id,name,score\n")

	ds, err := Load(context.Background(), path, ',')
	require.NoError(t, err)
	assert.Equal(t, 3, ds.NumColumns())
	assert.Equal(t, 0, ds.NumRows())
	assert.Equal(t, []string{"id", "name", "score"}, ds.Names())
}

func TestLoad_CSVEmptyFile(t *testing.T) {
	path := writeFile(t, "empty.csv", "")

	_, err := Load(context.Background(), path, ',')
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeData))
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	// The path is never opened: the file does not exist, yet the error is
	// unsupported_format, not a read failure.
	path := filepath.Join(t.TempDir(), "does-not-exist.txt")

	_, err := Load(context.Background(), path, ',')
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeUnsupportedFormat))
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.csv")

	_, err := Load(context.Background(), path, ',')
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeFile))
}

func TestLoad_CompressedCSV(t *testing.T) {
	t.Run("gzip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data.csv.gz")
		f, err := os.Create(path)
		require.NoError(t, err)
		gw := gzip.NewWriter(f)
		_, err = gw.Write([]byte(sampleCSV))
		require.NoError(t, err)
		require.NoError(t, gw.Close())
		require.NoError(t, f.Close())

		ds, err := Load(context.Background(), path, ',')
		require.NoError(t, err)
		assert.Equal(t, 3, ds.NumRows())
		assert.Equal(t, dataset.ColumnTypeInt64, ds.Column(0).Type())
	})

	t.Run("zstd", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data.csv.zst")
		f, err := os.Create(path)
		require.NoError(t, err)
		zw, err := zstd.NewWriter(f)
		require.NoError(t, err)
		_, err = zw.Write([]byte(sampleCSV))
		require.NoError(t, err)
		require.NoError(t, zw.Close())
		require.NoError(t, f.Close())

		ds, err := Load(context.Background(), path, ',')
		require.NoError(t, err)
		assert.Equal(t, 3, ds.NumRows())
	})

	t.Run("lz4", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data.csv.lz4")
		f, err := os.Create(path)
		require.NoError(t, err)
		lw := lz4.NewWriter(f)
		_, err = lw.Write([]byte(sampleCSV))
		require.NoError(t, err)
		require.NoError(t, lw.Close())
		require.NoError(t, f.Close())

		ds, err := Load(context.Background(), path, ',')
		require.NoError(t, err)
		assert.Equal(t, 3, ds.NumRows())
	})
}

func TestLoad_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"id", "name", "score"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{1, "alice", 1.5}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{2, "bob", 2.25}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	ds, err := Load(context.Background(), path, ',')
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name", "score"}, ds.Names())
	assert.Equal(t, 2, ds.NumRows())
	assert.Equal(t, dataset.ColumnTypeInt64, ds.Column(0).Type())
	assert.Equal(t, dataset.ColumnTypeString, ds.Column(1).Type())
	assert.Equal(t, dataset.ColumnTypeFloat64, ds.Column(2).Type())
}

func TestLoad_XLSXRaggedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ragged.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"a", "b"}))
	// Second cell left empty; GetRows trims trailing blanks
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"x"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	ds, err := Load(context.Background(), path, ',')
	require.NoError(t, err)
	assert.Equal(t, 2, ds.NumColumns())
	assert.Equal(t, 1, ds.NumRows())
	assert.Equal(t, "", ds.Column(1).Get(0))
}
