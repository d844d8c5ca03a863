package creditcard

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardType_String(t *testing.T) {
	tests := map[CardType]string{
		Unknown:         "Unknown",
		None:            "None",
		Visa:            "Visa",
		Mastercard:      "Mastercard",
		AmericanExpress: "AmericanExpress",
		Discover:        "Discover",
		DinersClub:      "DinersClub",
		Jcb:             "Jcb",
		CardType(42):    "CardType(42)",
	}
	for ct, want := range tests {
		assert.Equal(t, want, ct.String())
	}
}

func TestCardType_Values(t *testing.T) {
	assert.Equal(t, -1, int(Unknown))
	assert.Equal(t, 0, int(None))
	assert.Equal(t, 6, int(Jcb))
}

func TestParseCardType(t *testing.T) {
	tests := []struct {
		in      string
		want    CardType
		wantErr bool
	}{
		{"Visa", Visa, false},
		{"visa", Visa, false},
		{" MASTERCARD ", Mastercard, false},
		{"AmericanExpress", AmericanExpress, false},
		{"American Express", AmericanExpress, false},
		{"amex", AmericanExpress, false},
		{"Diners Club", DinersClub, false},
		{"jcb", Jcb, false},
		{"None", None, false},
		{"unknown", Unknown, false},
		{"maestro", Unknown, true},
		{"", Unknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCardType(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCardType_JSON(t *testing.T) {
	payload := struct {
		Type CardType `json:"type"`
	}{Type: DinersClub}

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"DinersClub"}`, string(data))

	var decoded struct {
		Type CardType `json:"type"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"type":"amex"}`), &decoded))
	assert.Equal(t, AmericanExpress, decoded.Type)

	assert.Error(t, json.Unmarshal([]byte(`{"type":"maestro"}`), &decoded))
}

func TestCardType_IsNetwork(t *testing.T) {
	for _, ct := range AllCardTypes() {
		assert.True(t, ct.IsNetwork(), ct.String())
	}
	assert.False(t, None.IsNetwork())
	assert.False(t, Unknown.IsNetwork())
}
