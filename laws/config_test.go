// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package laws_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/prelude/laws"
)

func TestParseConfigKeepsDefaults(t *testing.T) {
	cfg, err := laws.ParseConfig([]byte("samples: 500\n"))
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.Samples)
	assert.Equal(t, laws.DefaultConfig().Seed, cfg.Seed)
}

func TestParseConfigRejectsInvalid(t *testing.T) {
	_, err := laws.ParseConfig([]byte("samples: 0\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, laws.ErrInvalidConfig))

	_, err = laws.ParseConfig([]byte("samples: [1, 2"))
	assert.True(t, errors.Is(err, laws.ErrInvalidConfig))
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lawcheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("samples: 20\nseed: 9\n"), 0o600))

	cfg, err := laws.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, laws.Config{Samples: 20, Seed: 9}, cfg)

	_, err = laws.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
