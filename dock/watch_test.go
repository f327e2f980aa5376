// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dock

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "layout.json")
	require.NoError(t, Save(st(1, "A"), fn))

	got := make(chan Layout, 10)
	w, err := Watch(context.Background(), fn, func(l Layout) { got <- l })
	require.NoError(t, err)
	defer w.Close()

	// other files in the directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(fn), "other.json"), []byte("{}"), 0o644))
	require.NoError(t, Save(sample(), fn))

	timeout := time.After(5 * time.Second)
	for {
		select {
		case l := <-got:
			if shape(l) == shape(sample()) {
				return
			}
		case <-timeout:
			t.Fatal("layout not reloaded")
		}
	}
}

func TestWatchContext(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, Save(st(1, "A"), fn))
	ctx, cancel := context.WithCancel(context.Background())
	w, err := Watch(ctx, fn, func(l Layout) {})
	require.NoError(t, err)
	cancel()
	assert.NoError(t, w.Close())

	_, err = Watch(context.Background(), filepath.Join(t.TempDir(), "missing", "layout.json"), func(l Layout) {})
	assert.Error(t, err)
}
