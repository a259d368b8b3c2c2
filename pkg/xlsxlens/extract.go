package xlsxlens

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/h2non/filetype"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/ukaji3/xlsxlens-go/pkg/xlsxlens/models"
	"github.com/ukaji3/xlsxlens-go/pkg/xlsxlens/parser"
)

// headerSize is the number of leading bytes inspected to recognize a workbook.
const headerSize = 262

// Extract parses the first sheet of the workbook at path within the
// opts.Render row/column window. Values and formats come from two
// independent parses joined later by coordinate.
func Extract(path string, opts Options) (*models.WorkbookData, error) {
	return extract(path, opts.Render.MaxRows, opts.Render.MaxCols, opts.logger())
}

func extract(path string, maxRows, maxCols int, log *zap.Logger) (*models.WorkbookData, error) {
	if err := checkSource(path); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &SourceError{Path: path, Err: fmt.Errorf("%w: %w", ErrInvalidFormat, err)}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &SourceError{Path: path, Err: fmt.Errorf("%w: workbook has no sheets", ErrInvalidFormat)}
	}
	sheetName := sheets[0]

	rows, values, err := parser.ExtractValues(f, sheetName, maxRows, maxCols)
	if err != nil {
		return nil, NewExtractionError(sheetName, "values", err)
	}
	rich, err := parser.ExtractRich(path, sheetName, maxRows, maxCols)
	if err != nil {
		return nil, NewExtractionError(sheetName, "rich", err)
	}

	log.Debug("Sheet extracted",
		zap.String("sheet", sheetName),
		zap.Int("rows", len(rows)),
		zap.Int("value_cells", len(values)),
		zap.Int("rich_cells", len(rich)))

	return &models.WorkbookData{
		BookName: filepath.Base(path),
		Sheet: models.SheetData{
			Name:            sheetName,
			Rows:            rows,
			Values:          values,
			Rich:            rich,
			TableCandidates: parser.DetectTables(rows, parser.DefaultTableParams()),
		},
	}, nil
}

// checkSource verifies that path is a regular file starting with zip magic.
func checkSource(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &SourceError{Path: path, Err: ErrFileNotFound}
		}
		return &SourceError{Path: path, Err: err}
	}
	if fi.IsDir() {
		return &SourceError{Path: path, Err: fmt.Errorf("%w: is a directory", ErrInvalidFormat)}
	}

	file, err := os.Open(path)
	if err != nil {
		return &SourceError{Path: path, Err: err}
	}
	defer file.Close()

	head := make([]byte, headerSize)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return &SourceError{Path: path, Err: err}
	}
	head = head[:n]
	if !filetype.Is(head, "xlsx") && !filetype.Is(head, "zip") {
		return &SourceError{Path: path, Err: fmt.Errorf("%w: not a zip container", ErrInvalidFormat)}
	}
	return nil
}
