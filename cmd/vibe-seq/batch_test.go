package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cliScript = `
sequences:
  - {name: s1, id: demo, kind: dna, symbols: ATGC}
steps:
  - {op: mutate, target: s1, position: 2, char: T}
  - {op: find, target: s1, motif: TT}
  - {op: mutate, target: s1, position: 4, char: A}
  - {op: complement, target: s1}
`

func TestBatch_Stdin(t *testing.T) {
	code, out, errOut := runCLI(t, cliScript, "batch", "-")
	require.Equal(t, ExitSuccess, code, errOut)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "#Step\tOp\tTarget\tOutcome\tValue\tError", lines[0])
	assert.Equal(t, "1\tmutate\ts1\tok\tATTC\t-", lines[2])
	assert.Equal(t, "2\tfind\ts1\tok\t1\t-", lines[3])
	assert.True(t, strings.HasPrefix(lines[4], "3\tmutate\ts1\tPositionOutOfRangeError\t-\t"))
	assert.Equal(t, "4\tcomplement\ts1\tok\tTAAG\t-", lines[5])

	assert.Contains(t, errOut, "Batch summary (5 steps)")
	assert.Contains(t, errOut, "PositionOutOfRangeError")
}

func TestBatch_StopOnError(t *testing.T) {
	code, out, errOut := runCLI(t, cliScript, "batch", "--continue-on-error=false", "-")
	assert.Equal(t, ExitError, code)
	assert.Equal(t, 5, strings.Count(out, "\n"), "header plus four executed steps")
	assert.Contains(t, errOut, "step 3 (mutate)")
	assert.Contains(t, errOut, "Batch summary (4 steps)")
}

func TestBatch_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cliScript), 0o644))

	code, _, errOut := runCLI(t, "", "batch", "--metrics", path)
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, errOut, `vibeseq_batch_steps_total{op="mutate",outcome="ok"} 1`)
	assert.Contains(t, errOut, `vibeseq_batch_sequences_created_total{kind="DNA"} 1`)
}

func TestBatch_BadScript(t *testing.T) {
	code, _, errOut := runCLI(t, "steps: [", "batch", "-")
	assert.Equal(t, ExitError, code)
	assert.Contains(t, errOut, "decode batch script")

	code, _, errOut = runCLI(t, "", "batch", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, ExitError, code)
	assert.Contains(t, errOut, "open batch script")
}
