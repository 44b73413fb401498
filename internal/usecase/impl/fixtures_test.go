package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	mockSvc "wearsync/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newPrefixVault seals by prefixing, so tests can read what was stored.
func newPrefixVault(t *testing.T) *mockSvc.MockTokenVault {
	vault := mockSvc.NewMockTokenVault(t)
	vault.EXPECT().Encrypt(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, plaintext string) (string, error) {
			return "enc:" + plaintext, nil
		}).Maybe()
	vault.EXPECT().Decrypt(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, ciphertext string) (string, error) {
			plaintext, ok := strings.CutPrefix(ciphertext, "enc:")
			if !ok {
				return "", errors.New("not sealed by this vault")
			}

			return plaintext, nil
		}).Maybe()

	return vault
}

// newQuietRecorder accepts any metric.
func newQuietRecorder(t *testing.T) *mockSvc.MockMetricsRecorder {
	recorder := mockSvc.NewMockMetricsRecorder(t)
	recorder.EXPECT().ObserveTokenRefresh(mock.Anything).Maybe()
	recorder.EXPECT().ObserveSync(mock.Anything, mock.Anything).Maybe()
	recorder.EXPECT().ObserveProviderCall(mock.Anything, mock.Anything, mock.Anything).Maybe()

	return recorder
}

func intPtr(v int) *int { return &v }
