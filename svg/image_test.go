// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngHeader is the start of a PNG file, enough to sniff its type.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01")

func TestDecodeDataURI(t *testing.T) {
	mime, data, err := DecodeDataURI("image/svg+xml;utf8,<svg%20/>")
	require.NoError(t, err)
	assert.Equal(t, "image/svg+xml", mime)
	assert.Equal(t, "<svg />", string(data))

	enc := base64.StdEncoding.EncodeToString(pngHeader)
	mime, data, err = DecodeDataURI("image/png;base64," + enc[:10] + "\n  " + enc[10:])
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)
	assert.Equal(t, pngHeader, data)

	_, _, err = DecodeDataURI("image/png;base64")
	assert.Error(t, err)
	_, _, err = DecodeDataURI("image/png;base64,!!!")
	assert.Error(t, err)
	_, _, err = DecodeDataURI("text/plain,%zz")
	assert.Error(t, err)
}

func TestImageHref(t *testing.T) {
	enc := base64.StdEncoding.EncodeToString(pngHeader)
	res := load(t, `<svg>
  <image id="sniffed" href="data:;base64,`+enc+`" width="10" height="10"/>
  <image id="linked" xlink:href="pics/cat.jpg" x="1" y="2"/>
  <image id="bad" href="data:image/png;base64,@@@"/>
</svg>`)
	d := res.Document

	sn, ok := Data[*ImageData](mustNode(t, d, "sniffed"))
	require.True(t, ok)
	assert.Equal(t, "image/png", sn.MimeType)
	assert.Equal(t, pngHeader, sn.Data)
	assert.Empty(t, sn.Href)

	ln, _ := Data[*ImageData](mustNode(t, d, "linked"))
	assert.Equal(t, "pics/cat.jpg", ln.Href)
	assert.Nil(t, ln.Data)
	assert.Equal(t, float32(2), ln.Y.Dots)

	perrs := errorsOf[*ParseError](res.Errors)
	require.Len(t, perrs, 1)
	assert.Equal(t, "image", perrs[0].Elem)
	assert.Equal(t, "href", perrs[0].Attr)
}
