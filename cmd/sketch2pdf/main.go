// seehuhn.de/go/sketch - a shape rasterisation library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

// Command sketch2pdf converts a saved sketch document to a single-page
// vector PDF.
//
// Usage:
//
//	sketch2pdf [-o out.pdf] [-width 800] [-height 600] drawing.json
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/internal/pdfout"
)

func main() {
	out := flag.String("o", "", "output PDF file (default: input with .pdf suffix)")
	width := flag.Int("width", 800, "page width in points")
	height := flag.Int("height", 600, "page height in points")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: sketch2pdf [-o out.pdf] drawing.json")
		os.Exit(2)
	}
	inPath := flag.Arg(0)

	outPath := *out
	if outPath == "" {
		outPath = strings.TrimSuffix(inPath, ".json") + ".pdf"
	}

	var doc sketch.Document
	if err := doc.LoadFile(inPath); err != nil {
		fmt.Fprintln(os.Stderr, "sketch2pdf:", err)
		os.Exit(1)
	}

	err := pdfout.WritePDF(outPath, *width, *height, doc.Shapes, doc.ClipWindow)
	if err != nil {
		fmt.Fprintln(os.Stderr, "sketch2pdf:", err)
		os.Exit(1)
	}
}
