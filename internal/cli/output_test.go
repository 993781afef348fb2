package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputFormatter_JSONSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	err := formatter.Success(map[string]int{"total_found": 3})
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotNil(t, resp.Data)
}

func TestOutputFormatter_JSONError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	require.NoError(t, formatter.Error(ErrCodeReadFailed, "ingestion failed", nil))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "E006", resp.Error.Code)
	assert.Equal(t, "ingestion failed", resp.Error.Message)
}

func TestOutputFormatter_TextError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "text",
		Writer: buf,
	}

	require.NoError(t, formatter.Error(ErrCodeConfig, "failed to load config", nil))
	assert.Contains(t, buf.String(), "Error [E002]")
	assert.Contains(t, buf.String(), "failed to load config")
}

func TestOutputFormatter_TextErrorVerbose(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format:  "text",
		Writer:  buf,
		Verbose: true,
	}

	require.NoError(t, formatter.Error(ErrCodeInput, "failed to open input", "no such file"))
	assert.Contains(t, buf.String(), "Details: no such file")
}

func TestOutputFormatter_Fail(t *testing.T) {
	cause := errors.New("broken pipe")

	t.Run("json writes error response", func(t *testing.T) {
		buf := &bytes.Buffer{}
		formatter := &OutputFormatter{Format: "json", Writer: buf}

		err := formatter.Fail(ExitFailure, ErrCodeReadFailed, "ingestion failed", cause)
		assert.Equal(t, ExitFailure, GetExitCode(err))
		assert.ErrorIs(t, err, cause)

		var resp CLIResponse
		require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
		assert.Equal(t, "error", resp.Status)
		assert.Equal(t, "broken pipe", resp.Error.Details)
	})

	t.Run("text writes nothing", func(t *testing.T) {
		buf := &bytes.Buffer{}
		formatter := &OutputFormatter{Format: "text", Writer: buf}

		err := formatter.Fail(ExitCommandError, ErrCodeConfig, "failed to load config", cause)
		assert.Equal(t, ExitCommandError, GetExitCode(err))
		assert.Equal(t, "failed to load config: broken pipe", err.Error())
		assert.Empty(t, buf.String())
	})
}

func TestOutputFormatter_VerboseLog(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		wantLog bool
	}{
		{"verbose_enabled", true, true},
		{"verbose_disabled", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			errOut := &bytes.Buffer{}
			formatter := &OutputFormatter{
				Format:    "text",
				Writer:    out,
				ErrWriter: errOut,
				Verbose:   tt.verbose,
			}

			formatter.VerboseLog("Recorded session %s", "s-1")

			assert.Empty(t, out.String())
			if tt.wantLog {
				assert.Contains(t, errOut.String(), "Recorded session s-1")
			} else {
				assert.Empty(t, errOut.String())
			}
		})
	}
}

func TestOutputFormatter_TranscriptWriter(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	text := &OutputFormatter{Format: "text", Writer: out, ErrWriter: errOut}
	assert.Same(t, out, text.TranscriptWriter())

	js := &OutputFormatter{Format: "json", Writer: out, ErrWriter: errOut}
	assert.Same(t, errOut, js.TranscriptWriter())

	noErr := &OutputFormatter{Format: "json", Writer: out}
	assert.Same(t, out, noErr.TranscriptWriter())
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad flag")))
	assert.Equal(t, ExitFailure, GetExitCode(fmt.Errorf("wrapped: %w", WrapExitError(ExitFailure, "x", nil))))
}
