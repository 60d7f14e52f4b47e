package rle

import (
	"bufio"
	"io"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/lifelattice/model"
	"github.com/sheikhrachel/lifelattice/rules"
)

const (
	commentPrefix = "#"
	terminator    = '!'

	tagDead = 'b'
	tagLive = 'o'
	tagRow  = '$'
)

const (
	// maxCells bounds the declared width*height so a hostile header cannot exhaust memory
	maxCells = 1 << 24

	initialLineBuffer = 64 * 1024
)

var (
	// ErrMissingData is returned when the input holds no header or no cell data
	ErrMissingData = errors.New("no non-comment data in run-length encoding")
	// ErrMalformedHeader is returned when the header line does not match x=<w>, y=<h>[, rule=<r>]
	ErrMalformedHeader = errors.New("invalid header line format")
	// ErrInvalidDimensions is returned when the declared width or height is not positive
	ErrInvalidDimensions = errors.New("grid width and height must be greater than zero")
	// ErrRowOverflow is returned when runs place cells outside the declared grid
	ErrRowOverflow = errors.New("too many cells in row")
)

var headerPattern = regexp.MustCompile(`(?i)^x\s*=\s*([+-]?\d+)\s*,\s*y\s*=\s*([+-]?\d+)\s*(?:,\s*rule\s*=\s*(\S+))?$`)

// Pattern is a decoded seed matrix together with its rule text
type Pattern struct {
	Width  int
	Height int
	Rule   string
	Cells  [][]bool
}

// Lattice builds a simulation lattice seeded with the pattern
func (p *Pattern) Lattice() (*model.Lattice, error) {
	return model.New(p.Cells, p.Rule)
}

// Load decodes the pattern file at path
func Load(path string) (*Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[Load] failed to open pattern file: %+v", path)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[Load] failed to decode pattern file: %+v", path)
	}
	return p, nil
}

// DecodeString decodes a pattern held in memory
func DecodeString(s string) (*Pattern, error) {
	return Decode(strings.NewReader(s))
}

/*
Decode reads a run-length encoded pattern:

	# comment lines
	x = <width>, y = <height>[, rule = <rule>]
	<run><tag>...!

Tags are b (dead), o (live) and $ (end of row). A missing run count means 1.
The body may span several lines and anything after ! is ignored. Without a
rule clause the pattern uses Conway's rule.
*/
func Decode(r io.Reader) (*Pattern, error) {
	sc := bufio.NewScanner(r)
	// bodies are often written on a single line, so lines are unbounded
	sc.Buffer(make([]byte, 0, initialLineBuffer), math.MaxInt)

	header, err := headerLine(sc)
	if err != nil {
		return nil, err
	}
	p, err := parseHeader(header)
	if err != nil {
		return nil, err
	}

	body, err := cellString(sc)
	if err != nil {
		return nil, err
	}
	if err = p.fill(body); err != nil {
		return nil, err
	}
	return p, nil
}

// headerLine advances past comment and blank lines and returns the first other line
func headerLine(sc *bufio.Scanner) (string, error) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		return line, nil
	}
	if err := sc.Err(); err != nil {
		return "", errors.Wrap(err, "[headerLine] failed to read pattern")
	}
	return "", errors.WithStack(ErrMissingData)
}

func parseHeader(line string) (*Pattern, error) {
	m := headerPattern.FindStringSubmatch(line)
	if m == nil {
		return nil, errors.Wrapf(ErrMalformedHeader, "[parseHeader] header: %q", line)
	}

	width, errW := strconv.Atoi(m[1])
	height, errH := strconv.Atoi(m[2])
	if errW != nil || errH != nil || width < 1 || height < 1 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[parseHeader] x=%s, y=%s", m[1], m[2])
	}
	if width > maxCells/height {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[parseHeader] %dx%d exceeds %d cells", width, height, maxCells)
	}

	rule := rules.Conway
	if m[3] != "" {
		if _, err := rules.Parse(m[3]); err != nil {
			return nil, errors.Wrap(err, "[parseHeader] rule clause")
		}
		rule = m[3]
	}

	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Pattern{Width: width, Height: height, Rule: rule, Cells: cells}, nil
}

// cellString joins the remaining lines up to the terminator
func cellString(sc *bufio.Scanner) (string, error) {
	var sb strings.Builder
	for sc.Scan() {
		line := sc.Text()
		if i := strings.IndexByte(line, terminator); i > -1 {
			sb.WriteString(line[:i])
			break
		}
		sb.WriteString(line)
	}
	if err := sc.Err(); err != nil {
		return "", errors.Wrap(err, "[cellString] failed to read pattern")
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", errors.Wrap(ErrMissingData, "[cellString] no cell data")
	}
	return sb.String(), nil
}

// fill applies the run tokens in body to the seed matrix. Characters that are
// not part of a <count><tag> token are skipped and drop any pending count.
func (p *Pattern) fill(body string) error {
	row, col := 0, 0
	run := 0
	for i := 0; i < len(body); i++ {
		ch := body[i]
		switch {
		case ch >= '1' && ch <= '9', ch == '0' && run > 0:
			if run <= p.Width+p.Height {
				run = run*10 + int(ch-'0')
			}
		case ch == tagDead, ch == tagLive:
			n := max(run, 1)
			run = 0
			if row >= p.Height || col+n > p.Width {
				return errors.Wrapf(ErrRowOverflow, "[fill] run of %d at row %d, column %d exceeds %dx%d",
					n, row, col, p.Width, p.Height)
			}
			for range n {
				p.Cells[row][col] = ch == tagLive
				col++
			}
		case ch == tagRow:
			row += max(run, 1)
			col = 0
			run = 0
		default:
			run = 0
		}
	}
	return nil
}
