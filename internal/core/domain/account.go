package domain

import (
	"fmt"
	"strings"

	"github.com/avasiliev/fx_ledger_app/internal/apperrors"
)

const (
	maxAccountNameLen    = 255
	maxAccountSegments   = 64
	maxAccountSegmentLen = 64
)

// Account represents a ledger account addressed by a colon-delimited
// hierarchical path, e.g. "Assets:Cash".
type Account struct {
	AccountID    string `json:"accountID"` // Primary key (UUID)
	FullName     string `json:"fullName"`
	CurrencyCode string `json:"currencyCode"`
	AuditFields
}

// NormalizeAccountFullName validates and canonicalizes an account path:
// segments are trimmed and must be non-empty, each at most 64 characters,
// at most 64 segments, 255 characters total. Leading, trailing or doubled
// colons are rejected via the empty-segment rule.
func NormalizeAccountFullName(fullName string) (string, error) {
	trimmed := strings.TrimSpace(fullName)
	if trimmed == "" {
		return "", fmt.Errorf("%w: account name must not be empty", apperrors.ErrValidation)
	}
	segments := strings.Split(trimmed, ":")
	if len(segments) > maxAccountSegments {
		return "", fmt.Errorf("%w: account name has %d segments, max %d", apperrors.ErrValidation, len(segments), maxAccountSegments)
	}
	for i, segment := range segments {
		segments[i] = strings.TrimSpace(segment)
		if segments[i] == "" {
			return "", fmt.Errorf("%w: account name %q has an empty segment", apperrors.ErrValidation, fullName)
		}
		if len(segments[i]) > maxAccountSegmentLen {
			return "", fmt.Errorf("%w: account name segment %q exceeds %d characters", apperrors.ErrValidation, segments[i], maxAccountSegmentLen)
		}
	}
	normalized := strings.Join(segments, ":")
	if len(normalized) > maxAccountNameLen {
		return "", fmt.Errorf("%w: account name exceeds %d characters", apperrors.ErrValidation, maxAccountNameLen)
	}
	return normalized, nil
}

// NewAccount validates and builds an Account.
func NewAccount(accountID, fullName, currencyCode string) (Account, error) {
	normalizedName, err := NormalizeAccountFullName(fullName)
	if err != nil {
		return Account{}, err
	}
	normalizedCode, err := NormalizeCurrencyCode(currencyCode)
	if err != nil {
		return Account{}, err
	}
	return Account{AccountID: accountID, FullName: normalizedName, CurrencyCode: normalizedCode}, nil
}
