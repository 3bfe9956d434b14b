package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaxonIDs(t *testing.T) {
	ids, err := parseTaxonIDs([]string{"10239", "28883", "0"})
	require.NoError(t, err)
	assert.Equal(t, []int32{10239, 28883, 0}, ids)
}

func TestParseTaxonIDsBadArg(t *testing.T) {
	tests := []struct {
		msg string
		arg string
	}{
		{"not a number", "Zika"},
		{"empty string", ""},
		{"overflows int32", "99999999999"},
	}

	for _, v := range tests {
		_, err := parseTaxonIDs([]string{"10239", v.arg})

		var bad BadTaxonIDError
		require.ErrorAs(t, err, &bad, v.msg)
		assert.Equal(t, v.arg, bad.Arg, v.msg)
	}
}
