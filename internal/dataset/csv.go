package dataset

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/schollz/progressbar/v3"
)

// frame is a column-oriented view of a raw source.
type frame struct {
	source string
	names  []string
	cols   map[string][]string
	rows   int
}

// column looks up a column by trimmed, case-insensitive name.
func (f *frame) column(name string) ([]string, bool) {
	for _, n := range f.names {
		if strings.EqualFold(strings.TrimSpace(n), name) {
			return f.cols[n], true
		}
	}
	return nil, false
}

func readCSV(ctx context.Context, path string, progress io.Writer) (*frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only dataset.
			_ = cerr
		}
	}()

	source := filepath.Base(path)
	var r io.Reader = file
	if progress != nil {
		info, err := file.Stat()
		if err != nil {
			return nil, fmt.Errorf("failed to stat dataset: %w", err)
		}
		bar := progressbar.NewOptions64(info.Size(),
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("loading "+source),
			progressbar.OptionShowBytes(true),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
		defer func() {
			_ = bar.Finish()
		}()
		r = io.TeeReader(file, bar)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	df := dataframe.ReadCSV(bytes.NewReader(data),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
	)
	if df.Err != nil {
		if names, ok := headerOnly(data); ok {
			return emptyFrame(source, names), nil
		}
		return nil, &DataFormatError{Source: source, Err: df.Err}
	}

	f := &frame{
		source: source,
		names:  df.Names(),
		cols:   make(map[string][]string, df.Ncol()),
		rows:   df.Nrow(),
	}
	for _, name := range f.names {
		f.cols[name] = df.Col(name).Records()
	}
	return f, nil
}

// headerOnly returns the column names of a CSV that has a header row and no
// data rows.
func headerOnly(data []byte) ([]string, bool) {
	raw := dataframe.ReadCSV(bytes.NewReader(data),
		dataframe.HasHeader(false),
		dataframe.DetectTypes(false),
	)
	if raw.Err != nil || raw.Nrow() != 1 {
		return nil, false
	}
	records := raw.Records()
	if len(records) < 2 {
		return nil, false
	}
	return records[1], true
}

func emptyFrame(source string, names []string) *frame {
	f := &frame{
		source: source,
		names:  names,
		cols:   make(map[string][]string, len(names)),
	}
	for _, name := range names {
		f.cols[name] = []string{}
	}
	return f
}
