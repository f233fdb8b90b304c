package transcode

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vvka-141/hashify/internal/digest"
	"github.com/vvka-141/hashify/internal/logging"
	"github.com/vvka-141/hashify/pkg/hashify"
)

// Result summarizes a completed run.
type Result struct {
	Rows      int64  `json:"rows"`
	Hashed    int64  `json:"hashed"`
	Skipped   int64  `json:"skipped_empty"`
	Column    string `json:"column"`
	Algorithm string `json:"algorithm"`
	Output    string `json:"output"`
}

// Transcoder copies a CSV file row by row, replacing the target column's
// values with digests computed by Algorithm. All other columns pass through
// byte-identical; the header is written verbatim.
type Transcoder struct {
	Algorithm digest.Algorithm
	Column    string
	Logger    hashify.Logger
}

// Run streams inputPath to outputPath. The output file is created (or
// truncated) only after the input has been opened and the target column
// verified against the header, so validation failures leave no output
// behind. On any later failure the partially written output is not
// guaranteed to be valid.
func (t *Transcoder) Run(inputPath, outputPath string) (Result, error) {
	if t.Logger == nil {
		t.Logger = logging.NewNullLogger()
	}

	in, err := openInput(inputPath)
	if err != nil {
		return Result{}, err
	}
	defer in.Close()

	reader := csv.NewReader(in)
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Result{}, fmt.Errorf("read header: %s is empty", inputPath)
		}
		return Result{}, fmt.Errorf("read header: %w", err)
	}

	// Header match is case-sensitive and exact.
	col := -1
	for i, name := range header {
		if name == t.Column {
			col = i
			break
		}
	}
	if col < 0 {
		return Result{}, fmt.Errorf("%w: %q (available columns: %s)",
			hashify.ErrColumnNotFound, t.Column, strings.Join(header, ", "))
	}

	t.Logger.Verbose("hashing column %q (index %d) with %s", t.Column, col, t.Algorithm.Name())

	out, err := openOutput(outputPath)
	if err != nil {
		return Result{}, err
	}

	res, err := t.copyRows(reader, out, header, col)
	if cerr := out.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close output %s: %w", outputPath, cerr)
	}
	if err != nil {
		return Result{}, err
	}

	res.Column = t.Column
	res.Algorithm = t.Algorithm.Name()
	res.Output = outputPath
	return res, nil
}

// copyRows writes the header and every transformed data row to w.
// The reader enforces a uniform field count against the header, so the
// target index is always in range for rows it yields.
func (t *Transcoder) copyRows(reader *csv.Reader, w io.Writer, header []string, col int) (Result, error) {
	var res Result

	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return res, fmt.Errorf("write header: %w", err)
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, fmt.Errorf("read row %d: %w", res.Rows+1, err)
		}

		if value := record[col]; value != "" {
			record[col] = t.Algorithm.Sum([]byte(value))
			res.Hashed++
		} else {
			// Empty stays empty. Hashing "" would fabricate a non-empty
			// digest where the source had no value.
			res.Skipped++
		}

		if err := writer.Write(record); err != nil {
			return res, fmt.Errorf("write row %d: %w", res.Rows+1, err)
		}

		res.Rows++
		if res.Rows%hashify.ProgressRowInterval == 0 {
			t.Logger.Verbose("processed %d rows (%d hashed, %d empty)", res.Rows, res.Hashed, res.Skipped)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return res, fmt.Errorf("flush output: %w", err)
	}
	return res, nil
}
