package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crate/internal/core/domain"
)

func TestParseGameVersion(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  domain.GameVersion
	}{
		{name: "plain", input: "1.20.0", want: domain.GameVersion{Major: 1, Minor: 20, Patch: 0}},
		{name: "v prefix", input: "v10.19.15", want: domain.GameVersion{Major: 10, Minor: 19, Patch: 15}},
		{name: "trailing variant", input: "v10.19.15-1.20.0", want: domain.GameVersion{Major: 10, Minor: 19, Patch: 15}},
		{name: "loader suffix", input: "101.190.230Fabric", want: domain.GameVersion{Major: 101, Minor: 190, Patch: 230}},
		{name: "major only", input: "2", want: domain.GameVersion{Major: 2, Minor: 0, Patch: 0}},
		{name: "major minor", input: "1.5", want: domain.GameVersion{Major: 1, Minor: 5, Patch: 0}},
		{name: "leading junk", input: "-6.57-forge+fabric", want: domain.GameVersion{Major: 6, Minor: 57, Patch: 0}},
		{name: "build metadata", input: "2.1.0+1.20.1", want: domain.GameVersion{Major: 2, Minor: 1, Patch: 0}},
		{name: "loader prefix", input: "quilt--2.4.21", want: domain.GameVersion{Major: 2, Minor: 4, Patch: 21}},
		{name: "prefix and suffix", input: "v8.1.20--Fabric", want: domain.GameVersion{Major: 8, Minor: 1, Patch: 20}},
		{name: "dot then junk", input: "1.x", want: domain.GameVersion{Major: 1, Minor: 0, Patch: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseGameVersion(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseGameVersion_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "empty", input: "", wantErr: domain.ErrVersionEmpty},
		{name: "no digits", input: "fabric", wantErr: domain.ErrVersionNoMajor},
		{name: "only punctuation", input: "--..", wantErr: domain.ErrVersionNoMajor},
		{name: "major overflow", input: "4294967296.0.0", wantErr: domain.ErrVersionOverflow},
		{name: "minor overflow", input: "1.99999999999", wantErr: domain.ErrVersionOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.ParseGameVersion(tt.input)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGameVersion_Compare(t *testing.T) {
	a := domain.GameVersion{Major: 1, Minor: 20, Patch: 1}

	assert.Equal(t, 0, a.Compare(domain.GameVersion{Major: 1, Minor: 20, Patch: 1}))
	assert.Equal(t, -1, a.Compare(domain.GameVersion{Major: 1, Minor: 20, Patch: 2}))
	assert.Equal(t, 1, a.Compare(domain.GameVersion{Major: 1, Minor: 19, Patch: 4}))
	assert.Equal(t, -1, a.Compare(domain.GameVersion{Major: 2, Minor: 0, Patch: 0}))
}

func TestGameVersion_String(t *testing.T) {
	v := domain.GameVersion{Major: 1, Minor: 20, Patch: 0}
	assert.Equal(t, "1.20.0", v.String())
}

func TestGameVersion_TextRoundTrip(t *testing.T) {
	v := domain.GameVersion{Major: 1, Minor: 21, Patch: 3}

	text, err := v.MarshalText()
	require.NoError(t, err)

	var got domain.GameVersion
	require.NoError(t, got.UnmarshalText(text))
	assert.Equal(t, v, got)
}
