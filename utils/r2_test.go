package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUploadToR2InitFailureIsSticky(t *testing.T) {
	t.Setenv("R2_BUCKET", "")
	t.Setenv("R2_ACCOUNT_ID", "")
	t.Setenv("R2_PUBLIC_URL", "")

	_, err := UploadToR2([]byte("pdf bytes"), "bill_1.pdf", "application/pdf")
	require.Error(t, err)

	// Every subsequent call must see the same init failure instead of
	// proceeding with a nil client.
	_, err = UploadToR2([]byte("pdf bytes"), "bill_2.pdf", "application/pdf")
	require.Error(t, err)

	require.Error(t, DeleteFromR2("https://files.example.com/bill_1.pdf"))
}
