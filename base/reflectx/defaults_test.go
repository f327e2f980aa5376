// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type level int

func (l *level) UnmarshalText(text []byte) error {
	*l = level(len(text))
	return nil
}

type inner struct {
	Ratio float32 `default:"0.25"`
}

type config struct {
	Name    string        `default:"layout.json"`
	Color   bool          `default:"true"`
	Count   int           `default:"0x10"`
	Wait    time.Duration `default:"1.5s"`
	Level   level         `default:"info"`
	Inner   inner
	Plain   string
	private int `default:"3"`
}

func TestSetFromDefaultTags(t *testing.T) {
	c := &config{Plain: "kept"}
	assert.NoError(t, SetFromDefaultTags(c))
	assert.Equal(t, "layout.json", c.Name)
	assert.True(t, c.Color)
	assert.Equal(t, 16, c.Count)
	assert.Equal(t, 1500*time.Millisecond, c.Wait)
	assert.Equal(t, level(4), c.Level)
	assert.Equal(t, float32(0.25), c.Inner.Ratio)
	assert.Equal(t, "kept", c.Plain)
	assert.Equal(t, 0, c.private)

	assert.Error(t, SetFromDefaultTags(config{}))

	type bad struct {
		N int `default:"many"`
		M []int `default:"1"`
	}
	err := SetFromDefaultTags(&bad{})
	assert.ErrorContains(t, err, "field N")
	assert.ErrorContains(t, err, "field M")
}
