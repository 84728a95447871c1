// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"bufio"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"io/fs"
	"os"

	"cogentcore.org/svgir/config"
	"golang.org/x/net/html/charset"
)

// Open loads the SVG file with the given name.
// See [LoadContext].
func Open(filename string, cfg *config.Config) (*Result, error) {
	fi, err := os.Stat(filename)
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("svg.Open: file is a directory: %v", filename)
	}
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return Read(bufio.NewReader(fp), cfg)
}

// OpenFS loads the SVG file with the given name from the given filesystem.
// See [LoadContext].
func OpenFS(fsys fs.FS, filename string, cfg *config.Config) (*Result, error) {
	fp, err := fsys.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return Read(bufio.NewReader(fp), cfg)
}

// Read loads SVG from the given reader.
// See [LoadContext].
func Read(r io.Reader, cfg *config.Config) (*Result, error) {
	return LoadContext(context.Background(), r, cfg)
}

// LoadContext loads SVG from the given reader with the given
// configuration, or the default one if it is nil. It builds the
// tree from the XML elements and then resolves it: see
// [Loader.FinishContext]. To process a string, pass a
// strings.Reader.
//
// Malformed values, dangling and circular references and duplicate ids
// are recorded in the [Result] and do not stop the load. An error is
// only returned for an XML syntax error, a document without an <svg>
// element, one exceeding the configured limits, or a done context.
func LoadContext(ctx context.Context, r io.Reader, cfg *config.Config) (*Result, error) {
	l := NewLoader(cfg)
	decoder := xml.NewDecoder(r)
	decoder.Strict = false
	decoder.AutoClose = xml.HTMLAutoClose
	decoder.Entity = xml.HTMLEntity
	decoder.CharsetReader = charset.NewReaderLabel
	for {
		t, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("svg: parsing error: %w", err)
		}
		switch se := t.(type) {
		case xml.StartElement:
			if err := l.StartElement(se.Name.Local, se.Attr); err != nil {
				return nil, err
			}
		case xml.EndElement:
			l.EndElement(se.Name.Local)
		case xml.CharData:
			l.CharData(se)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return l.FinishContext(ctx)
}
