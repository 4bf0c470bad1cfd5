package codes_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qc-reception/codes"
)

func TestParseBoxCode(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    codes.BoxCode
		wantErr bool
	}{
		{
			name: "valid code",
			raw:  "7$SKU-100$12$CONSEC-001",
			want: codes.BoxCode{
				LabelID:        "7",
				SKU:            "SKU-100",
				ExpectedPairs:  12,
				SequenceNumber: "CONSEC-001",
			},
		},
		{
			name: "valid code with surrounding whitespace",
			raw:  "  42$ABC$3$SEQ-9\n",
			want: codes.BoxCode{
				LabelID:        "42",
				SKU:            "ABC",
				ExpectedPairs:  3,
				SequenceNumber: "SEQ-9",
			},
		},
		{
			name: "single pair",
			raw:  "1$X$1$S",
			want: codes.BoxCode{
				LabelID:        "1",
				SKU:            "X",
				ExpectedPairs:  1,
				SequenceNumber: "S",
			},
		},
		{
			name:    "too few fields",
			raw:     "7$SKU-100$12",
			wantErr: true,
		},
		{
			name:    "too many fields",
			raw:     "7$SKU-100$12$CONSEC-001$EXTRA",
			wantErr: true,
		},
		{
			name:    "non-numeric pair count",
			raw:     "7$SKU-100$twelve$CONSEC-001",
			wantErr: true,
		},
		{
			name:    "zero pair count",
			raw:     "7$SKU-100$0$CONSEC-001",
			wantErr: true,
		},
		{
			name:    "negative pair count",
			raw:     "7$SKU-100$-4$CONSEC-001",
			wantErr: true,
		},
		{
			name:    "empty string",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "empty field",
			raw:     "$SKU-100$12$CONSEC-001",
			wantErr: true,
		},
		{
			name:    "plain pair code",
			raw:     "PAIR-0001-ABC",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := codes.ParseBoxCode(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, codes.ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBoxCodeRoundTrip(t *testing.T) {
	// Any id$sku$n$seq with positive n must come back field for field.
	cases := []codes.BoxCode{
		{LabelID: "1", SKU: "SKU-A", ExpectedPairs: 1, SequenceNumber: "C-1"},
		{LabelID: "999", SKU: "NB-2210-BLK", ExpectedPairs: 48, SequenceNumber: "2025-08-0042"},
		{LabelID: "box", SKU: "sku with spaces", ExpectedPairs: 7, SequenceNumber: "seq"},
	}
	for _, c := range cases {
		raw := fmt.Sprintf("%s$%s$%d$%s", c.LabelID, c.SKU, c.ExpectedPairs, c.SequenceNumber)
		got, err := codes.ParseBoxCode(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, c, got)
	}
}

func TestNormalizePairCode(t *testing.T) {
	assert.Equal(t, "PAIR-01", codes.NormalizePairCode("  PAIR-01\r\n"))
	assert.Equal(t, "pair-01", codes.NormalizePairCode("pair-01"))
	assert.Equal(t, "", codes.NormalizePairCode("   "))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "QR-ABC123", codes.Normalize(" qr-abc123 "))
	assert.Equal(t, "X", codes.Normalize("\tx\n"))
}
