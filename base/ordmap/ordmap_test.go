// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	var om Map[string, int]
	om.Add("b", 1)
	om.Add("a", 2)
	om.Add("c", 3)
	om.Add("a", 4)

	assert.Equal(t, 3, om.Len())
	assert.Equal(t, []string{"b", "a", "c"}, om.Keys())
	assert.Equal(t, 4, om.ValueByKey("a"))
	assert.Equal(t, 1, om.IndexByKey("a"))
	assert.Equal(t, -1, om.IndexByKey("z"))
	assert.Equal(t, "c", om.KeyByIndex(2))
	assert.Equal(t, 3, om.ValueByIndex(2))

	_, ok := om.ValueByKeyTry("z")
	assert.False(t, ok)
}

func TestAddNew(t *testing.T) {
	var om Map[string, string]
	assert.True(t, om.AddNew("x", "first"))
	assert.False(t, om.AddNew("x", "second"))
	assert.Equal(t, "first", om.ValueByKey("x"))
	assert.True(t, om.Has("x"))
	assert.Equal(t, 1, om.Len())
}

func TestAll(t *testing.T) {
	var om Map[string, int]
	om.Add("one", 1)
	om.Add("two", 2)
	om.Add("three", 3)
	var keys []string
	sum := 0
	for k, v := range om.All() {
		keys = append(keys, k)
		sum += v
		if k == "two" {
			break
		}
	}
	assert.Equal(t, []string{"one", "two"}, keys)
	assert.Equal(t, 3, sum)

	var nilMap *Map[string, int]
	assert.Equal(t, 0, nilMap.Len())
	assert.False(t, nilMap.Has("one"))
	for range nilMap.All() {
		t.Fatal("nil map should not iterate")
	}
}
