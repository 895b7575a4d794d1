package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/guidance-schedule-api/internal/service"
)

func runCLI(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	now := time.Date(2026, time.October, 14, 10, 0, 0, 0, time.Local)
	cmd := NewRootCommand(Options{Clock: func() time.Time { return now }, Hours: service.DefaultWorkingHours()})
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestReplAddFlow(t *testing.T) {
	out, err := runCLI(t, "add\ndate 2026-10-15\ntime 09:30\nlist\nquit\n", "repl")
	require.NoError(t, err)
	assert.Contains(t, out, "pick a date\n")
	assert.Contains(t, out, "pick a time for 2026-10-15\n")
	assert.Contains(t, out, "[0] Thursday, 15 09:30\n")
}

func TestReplReportsRejectionsAndContinues(t *testing.T) {
	input := strings.Join([]string{
		"add",
		"date 2026-10-13",
		"date 2026-10-15",
		"time 17:00",
		"time 16:59",
		"delete 3",
		"import garbage",
		"list",
	}, "\n")
	out, err := runCLI(t, input, "repl")
	require.NoError(t, err)
	assert.Contains(t, out, "rejected: invalid_date\n")
	assert.Contains(t, out, "rejected: invalid_time\n")
	assert.Contains(t, out, "rejected: index_out_of_range\n")
	assert.Contains(t, out, "rejected: malformed_display_string\n")
	assert.Contains(t, out, "[0] Thursday, 15 16:59\n")
}

func TestReplEditInPlace(t *testing.T) {
	input := strings.Join([]string{
		"import Thursday, 15 09:30",
		"import Friday, 16 10:00",
		"menu 0",
		"edit 0",
		"date 2026-10-19",
		"time 11:00",
		"quit",
		"list",
	}, "\n")
	out, err := runCLI(t, input, "repl")
	require.NoError(t, err)
	assert.Contains(t, out, "entry 0: edit or delete\n")
	assert.Contains(t, out, "pick a date (was 2026-10-15)\n")
	assert.Contains(t, out, "pick a time for 2026-10-19 (was 09:30)\n")
	assert.True(t, strings.HasSuffix(out, "[0] Monday, 19 11:00\n[1] Friday, 16 10:00\n"))
}

func TestReplInputErrors(t *testing.T) {
	out, err := runCLI(t, "menu one\ntime 9\nfly\n", "repl")
	require.NoError(t, err)
	assert.Contains(t, out, `error: entry index must be an integer: "one"`)
	assert.Contains(t, out, `error: parse time "9"`)
	assert.Contains(t, out, `error: unknown command "fly"`)
}

func TestReplWorkingHourFlags(t *testing.T) {
	out, err := runCLI(t, "add\ndate 2026-10-15\ntime 07:15\nlist\n", "repl", "--start-hour", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "[0] Thursday, 15 07:15\n")
}

func TestFormatCommand(t *testing.T) {
	out, err := runCLI(t, "", "format", "2026-12-03", "14:05")
	require.NoError(t, err)
	assert.Equal(t, "Thursday, 03 14:05\n", out)

	_, err = runCLI(t, "", "format", "2026-12-03")
	assert.Error(t, err)
}
