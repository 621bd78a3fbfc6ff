// postwork-OpenColorIO-Configs - camera input color spaces for OpenColorIO
// Copyright (C) 2025  PostWork.io Developers
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package lut

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/postwork-io/postwork-OpenColorIO-Configs/internal/float"
)

// Writer stores lookup tables.
type Writer interface {
	// WriteLUT1D stores l under the given path.
	WriteLUT1D(path string, l *LUT1D) error
}

// FileWriter writes lookup tables as SPI 1D files to the file system.
// The zero value is ready to use.
type FileWriter struct{}

// WriteLUT1D implements the [Writer] interface.
// An existing file is overwritten.
func (FileWriter) WriteLUT1D(path string, l *LUT1D) error {
	buf := &bytes.Buffer{}
	err := Encode(buf, l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// ReadFile reads an SPI 1D file.
func ReadFile(path string) (*LUT1D, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return Decode(fd)
}

// Encode writes l in SPI 1D format.
// The output only depends on the contents of l.
func Encode(w io.Writer, l *LUT1D) error {
	if l.Components < 1 || l.Components > 3 {
		return fmt.Errorf("spi1d: invalid number of components %d", l.Components)
	}
	if len(l.Samples)%l.Components != 0 {
		return errors.New("spi1d: incomplete last entry")
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Version 1")
	fmt.Fprintf(bw, "From %s %s\n",
		strconv.FormatFloat(l.From[0], 'f', 6, 64),
		strconv.FormatFloat(l.From[1], 'f', 6, 64))
	fmt.Fprintf(bw, "Length %d\n", l.Len())
	fmt.Fprintf(bw, "Components %d\n", l.Components)
	fmt.Fprintln(bw, "{")
	for i := 0; i < len(l.Samples); i += l.Components {
		bw.WriteString("       ")
		for _, v := range l.Samples[i : i+l.Components] {
			bw.WriteByte(' ')
			bw.WriteString(float.Single(v))
		}
		bw.WriteByte('\n')
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

// Decode reads a lookup table in SPI 1D format.
func Decode(r io.Reader) (*LUT1D, error) {
	scanner := bufio.NewScanner(r)
	lineNo := 0

	res := &LUT1D{
		From:       [2]float64{0, 1},
		Components: 1,
	}
	length := -1
	inData := false
	done := false
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if done {
			return nil, newFormatError(lineNo, "unexpected data after closing brace")
		}

		if inData {
			if fields[0] == "}" {
				done = true
				continue
			}
			if len(fields) != res.Components {
				return nil, newFormatError(lineNo, "expected %d values, got %d", res.Components, len(fields))
			}
			for _, f := range fields {
				v, err := strconv.ParseFloat(f, 32)
				if err != nil {
					return nil, newFormatError(lineNo, "invalid value %q", f)
				}
				res.Samples = append(res.Samples, float32(v))
			}
			continue
		}

		switch fields[0] {
		case "Version":
			if len(fields) != 2 || fields[1] != "1" {
				return nil, newFormatError(lineNo, "unsupported version")
			}
		case "From":
			if len(fields) != 3 {
				return nil, newFormatError(lineNo, "malformed From line")
			}
			for i := range 2 {
				x, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, newFormatError(lineNo, "invalid domain value %q", fields[i+1])
				}
				res.From[i] = x
			}
			if res.From[0] >= res.From[1] {
				return nil, newFormatError(lineNo, "empty domain")
			}
		case "Length":
			n, err := parseCount(fields)
			if err != nil {
				return nil, newFormatError(lineNo, "malformed Length line")
			}
			length = n
		case "Components":
			n, err := parseCount(fields)
			if err != nil || n > 3 {
				return nil, newFormatError(lineNo, "malformed Components line")
			}
			res.Components = n
		case "{":
			if length < 0 {
				return nil, newFormatError(lineNo, "missing Length line")
			}
			if length > math.MaxInt/res.Components {
				return nil, newFormatError(lineNo, "Length %d too large", length)
			}
			res.Samples = make([]float32, 0, min(length*res.Components, maxPrealloc))
			inData = true
		default:
			return nil, newFormatError(lineNo, "unexpected keyword %q", fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if !done {
		return nil, newFormatError(0, "unexpected end of file")
	}
	if res.Len() != length {
		return nil, newFormatError(0, "expected %d entries, got %d", length, res.Len())
	}
	return res, nil
}

// maxPrealloc bounds the sample storage reserved from the Length header
// before any data has been read.
const maxPrealloc = 1 << 16

func parseCount(fields []string) (int, error) {
	if len(fields) != 2 {
		return 0, errors.New("wrong number of fields")
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, errors.New("count out of range")
	}
	return n, nil
}
