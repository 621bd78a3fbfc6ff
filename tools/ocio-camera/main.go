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

package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/postwork-io/postwork-OpenColorIO-Configs/camera"
	"github.com/postwork-io/postwork-OpenColorIO-Configs/colorspace"
	"github.com/postwork-io/postwork-OpenColorIO-Configs/curve"
	"github.com/postwork-io/postwork-OpenColorIO-Configs/internal/float"
	"github.com/postwork-io/postwork-OpenColorIO-Configs/internal/memfs"
	"github.com/postwork-io/postwork-OpenColorIO-Configs/lut"
	"github.com/postwork-io/postwork-OpenColorIO-Configs/tools/internal/buildinfo"
	"github.com/postwork-io/postwork-OpenColorIO-Configs/tools/internal/profile"
)

const toolName = "ocio-camera"

func main() {
	cmd := newCommand(os.Stdout, os.Stderr)
	err := cmd.flags.Parse(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	} else if err != nil {
		os.Exit(1)
	}
	if cmd.flags.NArg() > 0 {
		cmd.flags.Usage()
		os.Exit(1)
	}

	if err := cmd.run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type command struct {
	flags   *flag.FlagSet
	profile *profile.Flags

	dir        string
	resolution int
	asJSON     bool
	list       bool
	check      bool
	gamut      string
	transfer   string
	aliases    []string
	curves     map[string]curve.Func

	stdout io.Writer
	log    *log.Logger
}

func newCommand(stdout, stderr io.Writer) *command {
	c := &command{
		stdout: stdout,
		log:    log.New(stderr, toolName+": ", 0),
		curves: make(map[string]curve.Func),
	}

	fs := flag.NewFlagSet(toolName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&c.dir, "dir", ".", "write LUT files to `directory`")
	fs.IntVar(&c.resolution, "res", 4096, "number of entries in 1D LUTs")
	fs.BoolVar(&c.asJSON, "json", false, "print the color spaces as JSON")
	fs.BoolVar(&c.list, "list", false, "list the color spaces without writing files")
	fs.BoolVar(&c.check, "check", false, "compare the written LUTs to the analytic curves")
	fs.StringVar(&c.gamut, "gamut", "", "generate a single color space using this `gamut`")
	fs.StringVar(&c.transfer, "transfer", "", "generate a single color space using this transfer `function`")
	fs.Func("alias", "add an alias to the color space given by -gamut/-transfer (repeatable)", func(s string) error {
		c.aliases = append(c.aliases, s)
		return nil
	})
	fs.Func("curve", "register a transfer function given as `name=expr` in x (repeatable)", c.addCurve)
	c.profile = profile.Register(fs)

	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "%s: generate camera input color spaces\n", toolName)
		fmt.Fprintf(out, "%s\n\n", buildinfo.Short(toolName))
		fmt.Fprintf(out, "Usage:\n")
		fmt.Fprintf(out, "  %s [options]\n\n", toolName)
		fmt.Fprintf(out, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nExamples:\n")
		fmt.Fprintf(out, "  %s -dir luts -json\n", toolName)
		fmt.Fprintf(out, "  %s -gamut F-Gamut -transfer '' -alias lin_fgamut\n", toolName)
		fmt.Fprintf(out, "  %s -curve 'Square=x*x' -transfer Square -check\n", toolName)
	}
	c.flags = fs
	return c
}

func (c *command) addCurve(s string) error {
	name, expr, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return errors.New("expected name=expr")
	}
	fn, err := curve.Script(expr)
	if err != nil {
		return err
	}
	c.curves[name] = fn
	return nil
}

func (c *command) run() error {
	stop, err := c.profile.Start()
	if err != nil {
		return err
	}
	defer stop()

	if c.resolution < 2 {
		return fmt.Errorf("invalid LUT resolution %d, need at least 2", c.resolution)
	}
	if c.check && c.list {
		c.log.Print("warning: -check is ignored with -list, no LUT files are written")
	}

	vendor := c.vendor()
	entries := vendor.Catalog
	if c.gamut != "" || c.transfer != "" {
		gamutOK, transferOK := vendor.Known(c.gamut, c.transfer)
		if !gamutOK {
			c.log.Printf("warning: unknown gamut %q, no matrix generated", c.gamut)
		}
		if !transferOK {
			c.log.Printf("warning: unknown transfer function %q, no LUT generated", c.transfer)
		}
		entries = []camera.Entry{{Gamut: c.gamut, Transfer: c.transfer, Aliases: c.aliases}}
	}
	vendor.Catalog = entries

	var w lut.Writer
	if c.list {
		w = memfs.New()
	} else {
		err := os.MkdirAll(c.dir, 0o755)
		if err != nil {
			return err
		}
		w = &loggingWriter{w: lut.FileWriter{}, log: c.log}
	}

	spaces, err := vendor.CreateCatalog(c.dir, c.resolution, w)
	if err != nil {
		return err
	}

	if c.list {
		if err := c.printList(spaces); err != nil {
			return err
		}
	}
	if c.check && !c.list {
		if err := c.checkLUTs(vendor, entries); err != nil {
			return err
		}
	}
	if c.asJSON {
		enc := json.NewEncoder(c.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(spaces)
	}
	return nil
}

// vendor returns a copy of the built-in vendor, extended by the curves
// given on the command line.
func (c *command) vendor() *camera.Vendor {
	v := *camera.Fujifilm
	if len(c.curves) > 0 {
		v.Curves = v.Curves.Clone()
		for name, fn := range c.curves {
			v.Curves.Register(name, fn)
		}
	}
	return &v
}

func (c *command) printList(spaces []*colorspace.ColorSpace) error {
	var out io.Writer = c.stdout
	var tw *tabwriter.Writer
	if f, ok := c.stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		tw = tabwriter.NewWriter(c.stdout, 0, 8, 2, ' ', 0)
		out = tw
		fmt.Fprintln(out, "NAME\tALIASES\tTRANSFORM ID\tTO REFERENCE")
	}
	for _, cs := range spaces {
		var steps []string
		for _, t := range cs.ToReference {
			steps = append(steps, t.TransformType())
		}
		id := cs.TransformID
		if id == "" {
			id = "-"
		}
		fmt.Fprintf(out, "%s\t%s\t%s\t%s\n",
			cs.Name, strings.Join(cs.Aliases, ","), id, strings.Join(steps, ","))
	}
	if tw != nil {
		return tw.Flush()
	}
	return nil
}

// checkLUTs reads back the LUT files and reports the largest deviation
// between the interpolated table and the analytic curve.
func (c *command) checkLUTs(v *camera.Vendor, entries []camera.Entry) error {
	seen := make(map[string]bool)
	for _, e := range entries {
		fn, ok := v.Curves.Lookup(e.Transfer)
		if !ok || e.Transfer == "" || seen[e.Transfer] {
			continue
		}
		seen[e.Transfer] = true

		fname := camera.LUTName(e.Transfer)
		table, err := lut.ReadFile(filepath.Join(c.dir, fname))
		if err != nil {
			return err
		}
		maxErr := 0.0
		n := 16 * table.Len()
		for i := 0; i <= n; i++ {
			x := float64(i) / float64(n)
			maxErr = math.Max(maxErr, math.Abs(table.Apply(x)-fn(x)))
		}
		fmt.Fprintf(c.stdout, "%s: %d entries, max error %s\n",
			fname, table.Len(), float.Format(maxErr, 9))
	}
	return nil
}

type loggingWriter struct {
	w   lut.Writer
	log *log.Logger
}

func (lw *loggingWriter) WriteLUT1D(path string, l *lut.LUT1D) error {
	err := lw.w.WriteLUT1D(path, l)
	if err != nil {
		return err
	}
	lw.log.Printf("wrote %s (%d entries)", path, l.Len())
	return nil
}
