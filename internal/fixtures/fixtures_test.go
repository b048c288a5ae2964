package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Build(t *testing.T) {
	testCases := []struct {
		name      string
		fixture   string
		wantStart string
		expectErr bool
	}{
		{name: "people-qa", fixture: "people-qa", wantStart: "Query"},
		{name: "ambig", fixture: "ambig", wantStart: "S"},
		{name: "unknown fixture", fixture: "nope", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := Build(tc.fixture)
			if tc.expectErr {
				assert.Error(t, err)
				assert.Nil(t, g)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStart, g.Start())
		})
	}
}

func Test_Names_matchesBuild(t *testing.T) {
	for _, name := range Names {
		_, err := Build(name)
		assert.NoError(t, err)
	}
}
