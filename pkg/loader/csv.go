package loader

import (
	"context"
	"encoding/csv"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/ajitpratap0/tableslim/pkg/dataset"
	"github.com/ajitpratap0/tableslim/pkg/errors"
)

// compressionCodec identifies the wrapping applied to a delimited file.
type compressionCodec int

const (
	compressionNone compressionCodec = iota
	compressionGzip
	compressionZstd
	compressionLZ4
)

// loadCSV parses a delimited file. The first record is the header; every
// following record is one row. Field counts must be consistent.
func loadCSV(ctx context.Context, path string, sep rune, codec compressionCodec) (*dataset.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeFile, "failed to open input file")
	}
	defer file.Close()

	reader, closeCodec, err := decompress(file, codec)
	if err != nil {
		return nil, err
	}
	if closeCodec != nil {
		defer closeCodec()
	}

	cr := csv.NewReader(reader)
	cr.Comma = sep

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New(errors.ErrorTypeData, "input file is empty")
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeData, "failed to read header row")
	}

	var rows [][]string
	for {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeInternal, "load canceled")
		}
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeData, "failed to read row")
		}
		rows = append(rows, record)
	}

	return buildDataset(header, transpose(header, rows))
}

// decompress wraps the raw file reader with the codec's decompressor.
func decompress(file *os.File, codec compressionCodec) (io.Reader, func(), error) {
	switch codec {
	case compressionNone:
		return file, nil, nil
	case compressionGzip:
		gr, err := gzip.NewReader(file)
		if err != nil {
			return nil, nil, errors.Wrap(err, errors.ErrorTypeData, "invalid gzip stream")
		}
		return gr, func() { _ = gr.Close() }, nil
	case compressionZstd:
		zr, err := zstd.NewReader(file)
		if err != nil {
			return nil, nil, errors.Wrap(err, errors.ErrorTypeData, "invalid zstd stream")
		}
		return zr.IOReadCloser(), zr.Close, nil
	case compressionLZ4:
		return lz4.NewReader(file), nil, nil
	default:
		return nil, nil, errors.New(errors.ErrorTypeInternal, "unknown compression codec")
	}
}
