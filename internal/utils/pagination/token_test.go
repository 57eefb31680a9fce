package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeDateBasedToken(t *testing.T) {
	createdAt := time.Date(2025, 5, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeDateBasedToken(createdAt)
	assert.NotEmpty(t, token, "Token should not be empty")

	decoded, err := DecodeDateBasedToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.True(t, createdAt.Equal(decoded), "Timestamp should match after decode")

	// Zero time round trips too
	zero := time.Time{}
	decodedZero, err := DecodeDateBasedToken(EncodeDateBasedToken(zero))
	assert.NoError(t, err)
	assert.True(t, zero.Equal(decodedZero))
}

func TestDecodeDateBasedTokenInvalid(t *testing.T) {
	_, err := DecodeDateBasedToken("not-base64!!")
	assert.Error(t, err, "Invalid base64 should return an error")

	// Valid base64 but not a timestamp
	_, err = DecodeDateBasedToken("aGVsbG8=")
	assert.Error(t, err, "Non-timestamp payload should return an error")
}
