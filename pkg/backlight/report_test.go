package backlight

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatText},
		{in: "text", want: FormatText},
		{in: "json", want: FormatJSON},
		{in: "yaml", want: FormatYAML},
		{in: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatus_Encode(t *testing.T) {
	fsys := newDevice(t, "120", "100", "255")
	s, err := Load(fsys, devicePath)
	require.NoError(t, err)

	want := Report{
		Path:             devicePath,
		ActualBrightness: 120,
		Brightness:       100,
		MaxBrightness:    255,
		Level:            39,
	}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, s.Encode(&buf, FormatText))
		assert.Equal(t, s.String()+"\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, s.Encode(&buf, FormatJSON))

		var got Report
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, want, got)
		assert.Contains(t, buf.String(), `"max_brightness": 255`)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, s.Encode(&buf, FormatYAML))

		var got Report
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, want, got)
		assert.Contains(t, buf.String(), "actual_brightness: 120\n")
	})

	t.Run("unknown", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, s.Encode(&buf, Format("xml")))
		assert.Empty(t, buf.String())
	})
}
