package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkit/devicecode"
)

func runApp(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := newApp(strings.NewReader(stdin), &stdout, newLogger(&stderr))
	err := app.Run(context.Background(), append([]string{"devicecode"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestRun_PrintsOneLine(t *testing.T) {
	out, _, err := runApp(t, `{"brand":"Apple","model":"iPhone 13","system":"iOS 17.0","platform":"ios"}`)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 1)
	assert.NotEmpty(t, lines[0])
	assert.Empty(t, strings.Trim(lines[0], "0123456789abcdef"), "token should be lowercase hex")
}

func TestRun_MalformedJSON(t *testing.T) {
	out, _, err := runApp(t, `{"brand":"Apple",`)
	require.Error(t, err)
	assert.True(t, devicecode.IsErrorCode(err, devicecode.ErrInvalidDevice), "got %v", err)
	assert.Empty(t, out)
}

func TestRun_MissingField(t *testing.T) {
	out, _, err := runApp(t, `{"brand":"Apple"}`)
	require.Error(t, err)
	assert.True(t, devicecode.IsErrorCode(err, devicecode.ErrMissingField), "got %v", err)
	assert.Empty(t, out)
}

func TestRun_VerboseLogsToStderr(t *testing.T) {
	out, errOut, err := runApp(t, `{"brand":"B","model":"M","system":"S","platform":"P"}`, "--plaintext", "--open-id", "oTEST")
	require.NoError(t, err)
	assert.NotContains(t, out, "oid|_")
	assert.Contains(t, errOut, "device code generated")
	assert.Contains(t, errOut, "oid|_oTEST")
	assert.Contains(t, errOut, "trace=")
}

func TestRun_Segments(t *testing.T) {
	out, _, err := runApp(t, "", "segments")
	require.NoError(t, err)

	var segs devicecode.Segments
	require.NoError(t, json.Unmarshal([]byte(out), &segs))
	assert.Equal(t, "b|_", segs.Seg1)
	assert.Equal(t, "oid|_", segs.Seg5)
	assert.Len(t, segs.Alphabet, 62)
}

// envRunMain 置位时测试进程直接执行 main，用于验证真实的退出码
const envRunMain = "DEVICECODE_RUN_MAIN"

func TestMain_MalformedJSONExits(t *testing.T) {
	if os.Getenv(envRunMain) == "1" {
		os.Args = []string{"devicecode"}
		main()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestMain_MalformedJSONExits$")
	cmd.Env = append(os.Environ(), envRunMain+"=1")
	cmd.Stdin = strings.NewReader(`{"brand":"Apple",`)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "expected a non-zero exit, got %v", err)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "devicecode failed")
	assert.Contains(t, stderr.String(), "INVALID_DEVICE")
}
