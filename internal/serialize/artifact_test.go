package serialize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pellham/nlgram/internal/fixtures"
)

func Test_Artifact_roundTrip(t *testing.T) {
	g, err := fixtures.Build("people-qa")
	require.NoError(t, err)

	want := FromGrammar(g)
	data, err := want.MarshalBinary()
	require.NoError(t, err)

	var got Artifact
	require.NoError(t, got.UnmarshalBinary(data))

	assert.Equal(t, want.Start, got.Start)
	assert.ElementsMatch(t, want.Deletables, got.Deletables)
	require.Len(t, got.Symbols, len(want.Symbols))
	for i := range want.Symbols {
		assert.Equal(t, want.Symbols[i].Name, got.Symbols[i].Name)
		assert.Equal(t, want.Symbols[i].Rules, got.Symbols[i].Rules)
	}
}

func Test_Artifact_ToJSON(t *testing.T) {
	g, err := fixtures.Build("ambig")
	require.NoError(t, err)

	a := FromGrammar(g)
	data, err := a.ToJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Start": "S"`)
}
