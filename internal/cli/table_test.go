// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestTable_String(t *testing.T) {
	t.Parallel()

	table := &Table{
		Headers: []string{"Tempo", "Shape"},
		Rows: []Row{
			{Label: "calm", Values: []string{"70", "swell"}},
			{Label: "tension", Values: []string{"140"}},
		},
	}

	want := "" +
		"         Tempo  Shape\n" +
		"calm        70  swell\n" +
		"tension    140      -\n"

	if got := table.String(); got != want {
		t.Errorf("String() =\n%q\nwant\n%q", got, want)
	}
}

func TestTable_Empty(t *testing.T) {
	t.Parallel()

	table := &Table{Headers: []string{"A"}}
	if got := table.String(); got != "" {
		t.Errorf("String() = %q, want empty", got)
	}
}

func TestPrintError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	PrintError(&buf, "no such mood")

	out := buf.String()
	if !strings.Contains(out, "Error:") || !strings.Contains(out, "no such mood") {
		t.Errorf("PrintError() = %q", out)
	}
}

func TestPrintField(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	PrintField(&buf, "Frames:", "44100")

	out := buf.String()
	if !strings.Contains(out, "Frames:") || !strings.Contains(out, "44100") {
		t.Errorf("PrintField() = %q", out)
	}
}
