package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaxType(t *testing.T) {
	got, err := ParseTaxType(" Fixed ")
	require.NoError(t, err)
	assert.Equal(t, TaxTypeFixed, got)

	_, err = ParseTaxType("flat")
	assert.Error(t, err)
}

func TestTaxType_JSON(t *testing.T) {
	var tt TaxType
	require.NoError(t, json.Unmarshal([]byte(`"PERCENTAGE"`), &tt))
	assert.Equal(t, TaxTypePercentage, tt)
	assert.Error(t, json.Unmarshal([]byte(`"flat"`), &tt))

	out, err := json.Marshal(TaxType(""))
	require.NoError(t, err)
	assert.JSONEq(t, `"percentage"`, string(out))
}

func TestTaxType_Scan(t *testing.T) {
	var tt TaxType
	require.NoError(t, tt.Scan([]byte("fixed")))
	assert.Equal(t, TaxTypeFixed, tt)

	require.NoError(t, tt.Scan(nil))
	assert.Equal(t, TaxTypePercentage, tt)

	assert.Error(t, tt.Scan(42))

	v, err := TaxTypeFixed.Value()
	require.NoError(t, err)
	assert.Equal(t, "fixed", v)
}
