package extractly

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult(t *testing.T) {
	result, err := Parse("{user.name:word} ({user.id:integer}) likes {:word}", "admin (123) likes go")
	require.NoError(t, err)

	assert.Equal(t, 3, result.Len())
	assert.Equal(t, []string{"admin", "123", "go"}, result.Positional())

	raw, err := result.Raw(1)
	require.NoError(t, err)
	assert.Equal(t, "123", raw)

	_, err = result.Raw(3)
	assert.True(t, errors.Is(err, ErrNoSuchField))
	_, err = result.Value(-1)
	assert.True(t, errors.Is(err, ErrNoSuchField))

	//lookup with the original dotted spelling and the normalized label
	for _, name := range []string{"user.id", "user__id"} {
		value, err := result.Named(name)
		require.NoError(t, err)
		id, err := value.Int()
		require.NoError(t, err)
		assert.Equal(t, int64(123), id)
	}

	_, err = result.Named("user")
	assert.True(t, errors.Is(err, ErrNoSuchField))
	_, err = result.NamedRaw("nonexistent")
	assert.True(t, errors.Is(err, ErrNoSuchField))

	assert.Equal(t, map[string]string{"user__name": "admin", "user__id": "123"}, result.NamedValues())

	converted := result.Converted()
	require.Equal(t, 3, len(converted))
	id, err := converted["user__id"].Int()
	require.NoError(t, err)
	assert.Equal(t, int64(123), id)
	word, err := converted["2"].Text()
	require.NoError(t, err)
	assert.Equal(t, "go", word)

	//typed access with a mismatched shape fails
	value, err := result.Named("user.name")
	require.NoError(t, err)
	_, err = value.Int()
	assert.NotNil(t, err)
}
