package domain_test

import (
	"testing"

	"github.com/policyzen/policyzen_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatEndorsementNumber(t *testing.T) {
	assert.Equal(t, "POL-2026-001-END-0001", domain.FormatEndorsementNumber("POL-2026-001", 1))
	assert.Equal(t, "POL-2026-001-END-0042", domain.FormatEndorsementNumber("POL-2026-001", 42))
	// Sequence grows past the pad width without truncation.
	assert.Equal(t, "X-END-12345", domain.FormatEndorsementNumber("X", 12345))
}
