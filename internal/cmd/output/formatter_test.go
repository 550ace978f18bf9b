package output_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abcu/advisor/internal/cmd/output"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    output.Format
		wantErr bool
	}{
		{"table", output.FormatTable, false},
		{"JSON", output.FormatJSON, false},
		{"yaml", output.FormatYAML, false},
		{"wide", output.FormatWide, false},
		{"", output.Format(""), false},
		{"xml", output.Format(""), true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := output.ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	formatter := output.NewFormatter(output.FormatJSON)

	err := formatter.Format(&buf, map[string]int{"courses": 2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"courses": 2}`, buf.String())
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	formatter := output.NewFormatter(output.FormatYAML)

	err := formatter.Format(&buf, struct {
		ID    string `yaml:"id"`
		Title string `yaml:"title"`
	}{ID: "CSCI200", Title: "Intro"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "id: CSCI200")
	assert.Contains(t, buf.String(), "title: Intro")
}

func TestTableFormatterWithData(t *testing.T) {
	var buf bytes.Buffer
	formatter := output.NewFormatter(output.FormatTable)

	err := formatter.Format(&buf, output.Data{
		Headers: []string{"ID", "Title"},
		Rows:    [][]string{{"CSCI200", "Intro"}},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "CSCI200")
	assert.Contains(t, buf.String(), "Intro")
}

func TestTableFormatterReflectsStructs(t *testing.T) {
	type report struct {
		OK      bool     `json:"ok"`
		Courses int      `json:"courses"`
		Notes   []string `json:"notes"`
	}

	t.Run("single struct becomes property table", func(t *testing.T) {
		var buf bytes.Buffer
		formatter := output.NewFormatter(output.FormatTable)

		err := formatter.Format(&buf, report{OK: true, Courses: 3, Notes: []string{"a", "b"}})
		require.NoError(t, err)
		out := buf.String()
		assert.Contains(t, out, "Ok")
		assert.Contains(t, out, "Courses")
		assert.Contains(t, out, "a, b")
	})

	t.Run("struct slice becomes row table", func(t *testing.T) {
		var buf bytes.Buffer
		formatter := output.NewFormatter(output.FormatTable)

		err := formatter.Format(&buf, []report{{Courses: 1}, {Courses: 2}})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, strings.Count(buf.String(), "\n"), 2)
	})
}
