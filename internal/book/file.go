package book

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jacksmith/cb/internal/model"
)

// SkippedLine describes a line that Load could not turn into a contact.
type SkippedLine struct {
	Number int    // 1-based line number
	Text   string // the raw line
	Err    error  // why it was skipped (model.ErrShortRecord, model.ErrInvalidID)
}

// LoadResult summarizes a Load or Read call.
type LoadResult struct {
	// OpenErr is set when the file could not be opened. The book is left
	// as it was and Load still returns a nil error.
	OpenErr error
	// Loaded counts the contacts admitted into the book.
	Loaded int
	// Skipped lists malformed lines, in file order.
	Skipped []SkippedLine
}

// Load reads contacts from path and appends them to the book.
//
// A file that does not exist or cannot be opened is not an error: the
// result carries OpenErr and the book is unchanged. Lines with fewer than
// four fields or a non-numeric id are skipped and reported. Blank lines
// are ignored. Each admitted contact moves the id counter past its id.
func (b *Book) Load(path string) (LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return LoadResult{OpenErr: err}, nil
	}
	defer f.Close()

	res, err := b.Read(f)
	if err != nil {
		return res, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return res, nil
}

// Read parses record lines from r and appends them to the book.
// Lines may be of any length. Contacts admitted before a read error stay
// in the book.
func (b *Book) Read(r io.Reader) (LoadResult, error) {
	var res LoadResult

	br := bufio.NewReader(r)
	lineNo := 0
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return res, err
		}
		if line == "" && err == io.EOF {
			return res, nil
		}

		lineNo++
		line = strings.TrimSuffix(line, "\n")
		if strings.TrimSpace(line) != "" {
			c, derr := model.DecodeRecord(line)
			if derr != nil {
				res.Skipped = append(res.Skipped, SkippedLine{Number: lineNo, Text: line, Err: derr})
			} else {
				b.admit(c)
				res.Loaded++
			}
		}

		if err == io.EOF {
			return res, nil
		}
	}
}

// Save writes every contact to path, one record line each, replacing any
// existing file. On failure the book itself is unchanged.
func (b *Book) Save(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to open %s for writing: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if err := b.Write(f); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Write encodes every contact to w, one "\n"-terminated record line each.
func (b *Book) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, c := range b.contacts {
		bw.WriteString(c.RecordString())
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
