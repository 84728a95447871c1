// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"github.com/h2non/filetype"
)

// SetHref sets the image reference. A data URI is decoded into Data,
// and anything else is kept in Href for the renderer to load.
func (d *ImageData) SetHref(href string) error {
	h := strings.TrimSpace(href)
	d.Href = h
	d.MimeType = ""
	d.Data = nil
	rest, ok := strings.CutPrefix(h, "data:")
	if !ok {
		return nil
	}
	d.Href = ""
	mime, data, err := DecodeDataURI(rest)
	if err != nil {
		return err
	}
	d.Data = data
	d.MimeType = mime
	if mime == "" || mime == "application/octet-stream" {
		if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown {
			d.MimeType = kind.MIME.Value
		}
	}
	return nil
}

// DecodeDataURI decodes the part of a data URI after "data:", of the form
// [mediatype][;base64],data. Without ;base64 the data is percent-encoded
// text, as with ;utf8.
func DecodeDataURI(uri string) (mime string, data []byte, err error) {
	header, payload, ok := strings.Cut(uri, ",")
	if !ok {
		return "", nil, fmt.Errorf("data URI without data")
	}
	params := strings.Split(header, ";")
	mime = strings.TrimSpace(params[0])
	isBase64 := false
	for _, p := range params[1:] {
		if strings.TrimSpace(p) == "base64" {
			isBase64 = true
		}
	}
	if isBase64 {
		// line breaks and spaces are common in embedded images
		payload = strings.Join(strings.Fields(payload), "")
		data, err = base64.StdEncoding.DecodeString(payload)
		if err != nil {
			data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		}
		if err != nil {
			return "", nil, fmt.Errorf("invalid base64 image data: %w", err)
		}
		return mime, data, nil
	}
	s, err := url.PathUnescape(payload)
	if err != nil {
		return "", nil, fmt.Errorf("invalid image data: %w", err)
	}
	return mime, []byte(s), nil
}
