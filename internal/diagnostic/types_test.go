package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnostics(t *testing.T) {
	t.Parallel()

	var d Diagnostics
	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddInfo(CodeCastExact, "exact", "u8 -> i16", "widen")
	d.AddWarning(CodeCastLossy, "lossy", "u32 -> u8", "narrow").Suggest("use policy %s", "strict")
	d.AddError(CodeValueMismatch, "expected 255, got 4", "u32 -> u8", "narrow")

	assert.True(t, d.HasErrors())
	assert.Equal(t, "1 error(s), 1 warning(s), 1 info(s)", d.Summary())
	assert.Equal(t, 1, d.Count(CodeCastLossy))
	assert.Equal(t, "narrow [u32 -> u8]: [EXPECT_VALUE_MISMATCH] expected 255, got 4", d.Error().Error())
	assert.Equal(t, "narrow [u32 -> u8]: [CAST_LOSSY] lossy (use policy strict)", d.Warnings[0].String())

	all := d.All()
	assert.Len(t, all, 3)
	assert.Equal(t, DiagnosticError, all[0].Severity)
	assert.Equal(t, DiagnosticInfo, all[2].Severity)

	var other Diagnostics
	other.AddError(CodeInvalidCase, "bad", "", "")
	d.Merge(other)
	assert.Len(t, d.Errors, 2)
	assert.Equal(t, "[INVALID_CASE] bad", d.Errors[1].String())

	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(7).String())
}
