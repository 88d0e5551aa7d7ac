// SPDX-License-Identifier: MIT

package metadata_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ppvstat/metadata"
	"github.com/katalvlaran/ppvstat/units"
)

func testSchema() metadata.Schema {
	return metadata.Schema{
		{Key: "dx", Description: "Angular length of a pixel", Default: units.Bare(1)},
		{Key: "bmaj", Description: "Beam major axis, sigma", Default: units.Bare(0)},
		{Key: "dist", Default: units.Bare(1)},
		{Key: "bunit", Description: "Unit of intensity", Default: units.Bare(1), Strict: true},
	}
}

func TestField_String(t *testing.T) {
	t.Parallel()

	s := testSchema()
	assert.Equal(t, "dx (Angular length of a pixel)", s[0].String())
	assert.Equal(t, "dist (no description)", s[2].String())
}

func TestSchema_KeysAndField(t *testing.T) {
	t.Parallel()

	s := testSchema()
	assert.Equal(t, []string{"dx", "bmaj", "dist", "bunit"}, s.Keys())

	f, ok := s.Field("bmaj")
	require.True(t, ok)
	assert.Equal(t, "Beam major axis, sigma", f.Description)
	_, ok = s.Field("nope")
	assert.False(t, ok)
}

func TestSchema_Require(t *testing.T) {
	t.Parallel()

	s := testSchema()
	strict, err := s.Require("dx", "dist")
	require.NoError(t, err)
	assert.True(t, strict[0].Strict)
	assert.True(t, strict[2].Strict)
	assert.False(t, s[0].Strict, "Require must not mutate the receiver")

	_, err = s.Require("velocity")
	assert.ErrorIs(t, err, metadata.ErrUnknownField)
}

func TestSchema_Get(t *testing.T) {
	t.Parallel()

	s := testSchema()
	rec := metadata.Record{"dx": units.New(0.5, units.Arcsecond), "bunit": units.New(1, units.Symbol("K"))}

	v, err := s.Get(rec, "dx")
	require.NoError(t, err)
	assert.Equal(t, units.New(0.5, units.Arcsecond), v)

	v, err = s.Get(rec, "bmaj")
	require.NoError(t, err)
	assert.Equal(t, units.Bare(0), v, "absent non-strict reads as default")

	_, err = s.Get(metadata.Record{}, "bunit")
	assert.ErrorIs(t, err, metadata.ErrMissingRequired)
	assert.Contains(t, err.Error(), "bunit (Unit of intensity)")

	_, err = s.Get(rec, "nope")
	assert.ErrorIs(t, err, metadata.ErrUnknownField)
}

func TestSchema_Missing(t *testing.T) {
	t.Parallel()

	s := testSchema()
	missing := s.Missing(metadata.Record{"dx": units.Bare(2), "extra": units.Bare(9)})
	keys := make([]string, len(missing))
	for i, f := range missing {
		keys[i] = f.Key
	}
	assert.Equal(t, []string{"bmaj", "dist", "bunit"}, keys)
}

func TestSchema_ValidateWarnsPerMissingField(t *testing.T) {
	t.Parallel()

	logger, hook := test.NewNullLogger()
	s := testSchema()
	rec := metadata.Record{"dx": units.Bare(1), "dist": units.Bare(1), "bunit": units.Bare(1)}

	require.NoError(t, s.Validate(rec, logger))
	entries := hook.AllEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, logrus.WarnLevel, entries[0].Level)
	assert.Equal(t, "missing metadata, using default", entries[0].Message)
	assert.Equal(t, "bmaj (Beam major axis, sigma)", entries[0].Data["field"])
	assert.Equal(t, "0", entries[0].Data["default"])
}

func TestSchema_ValidateStrictAggregates(t *testing.T) {
	t.Parallel()

	logger, hook := test.NewNullLogger()
	s, err := testSchema().Require("dx")
	require.NoError(t, err)

	err = s.Validate(metadata.Record{}, logger)
	require.Error(t, err)
	assert.ErrorIs(t, err, metadata.ErrMissingRequired)
	assert.Contains(t, err.Error(), "dx (Angular length of a pixel)")
	assert.Contains(t, err.Error(), "bunit (Unit of intensity)")
	assert.NotContains(t, err.Error(), "bmaj")
	assert.Empty(t, hook.AllEntries(), "a failing validation logs nothing")
}

func TestSchema_ValidateComplete(t *testing.T) {
	t.Parallel()

	logger, hook := test.NewNullLogger()
	rec := metadata.Record{}
	for _, k := range testSchema().Keys() {
		rec[k] = units.Bare(1)
	}
	require.NoError(t, testSchema().Validate(rec, logger))
	assert.Empty(t, hook.AllEntries())
}

func TestRecord_Clone(t *testing.T) {
	t.Parallel()

	rec := metadata.Record{"dx": units.Bare(1)}
	cp := rec.Clone()
	cp["dx"] = units.Bare(2)
	assert.Equal(t, units.Bare(1), rec["dx"])
}

func TestDecode_Forms(t *testing.T) {
	t.Parallel()

	rec, err := metadata.Decode([]byte(`
dx: 0.5 arcsec
dv:
  value: 0.2
  unit: km/s
vaxis: 0
dist: "3"
bunit: {value: 1, unit: K}
bmaj: .nan
`))
	require.NoError(t, err)
	assert.Equal(t, units.New(0.5, units.Arcsecond), rec["dx"])
	assert.Equal(t, units.New(0.2, units.MustParse("km s-1")), rec["dv"])
	assert.Equal(t, units.Bare(0), rec["vaxis"])
	assert.Equal(t, units.Bare(3), rec["dist"])
	assert.Equal(t, units.New(1, units.Symbol("K")), rec["bunit"])
	assert.True(t, math.IsNaN(rec["bmaj"].Value))
}

func TestDecode_JSON(t *testing.T) {
	t.Parallel()

	rec, err := metadata.Decode([]byte(`{"dx": "1 deg", "dv": 2}`))
	require.NoError(t, err)
	assert.Equal(t, units.New(1, units.Degree), rec["dx"])
	assert.Equal(t, units.Bare(2), rec["dv"])
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		in   string
	}{
		{"bool", "dx: true"},
		{"null", "dx:"},
		{"list", "dx: [1, 2]"},
		{"bad unit", "dx: 1 deg^x"},
		{"bad number", "dx: fast"},
		{"mapping without value", "dx: {unit: deg}"},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := metadata.Decode([]byte(tc.in))
			assert.ErrorIs(t, err, metadata.ErrBadValue)
			assert.Contains(t, err.Error(), `"dx"`)
		})
	}

	_, err := metadata.Decode([]byte("- 1\n- 2\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "md.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dx: 2 arcmin\n"), 0o600))
	rec, err := metadata.Load(path)
	require.NoError(t, err)
	assert.Equal(t, units.New(2, units.Arcminute), rec["dx"])

	_, err = metadata.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
