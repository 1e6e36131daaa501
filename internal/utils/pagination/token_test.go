package pagination_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadup-vn/leadup_backend/internal/utils/pagination"
)

func TestEncodeDecodeToken(t *testing.T) {
	txnDate := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, time.March, 10, 14, 30, 12, 345678000, time.UTC)

	token := pagination.EncodeToken(txnDate, createdAt)
	gotDate, gotCreated, err := pagination.DecodeToken(token)

	require.NoError(t, err)
	assert.True(t, txnDate.Equal(gotDate))
	assert.True(t, createdAt.Equal(gotCreated))
}

func TestDecodeToken_Invalid(t *testing.T) {
	_, _, err := pagination.DecodeToken("not-base64!!")
	assert.Error(t, err)

	_, _, err = pagination.DecodeToken("aGVsbG8=") // valid base64, wrong shape
	assert.Error(t, err)
}
