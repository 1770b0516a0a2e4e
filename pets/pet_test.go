package pets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdopt_DogReachesBothOperations(t *testing.T) {
	pet, err := Adopt(NewHandle(Dog{}))
	require.NoError(t, err)

	assert.Equal(t, "I'm coming back.", CallBack(pet))
	assert.Equal(t, "Bark", Provoke(pet))
}

func TestAdopt_CatReachesProvokeOnly(t *testing.T) {
	pet, err := Adopt(NewHandle(Cat{}))
	require.NoError(t, err)

	// CallBack(pet) does not compile — Cat is no Recaller, so the
	// Recaller-constrained gate never instantiates for Pet[Cat].
	assert.Equal(t, "Meow", Provoke(pet))
}

func TestAdopt_ConsumesHandle(t *testing.T) {
	h := NewHandle(Dog{})
	_, err := Adopt(h)
	require.NoError(t, err)
	assert.True(t, h.Moved())

	_, err = Adopt(h)
	assert.ErrorIs(t, err, ErrMoved)
}

func TestAdopt_PropagatesErrMovedFromTakenHandle(t *testing.T) {
	h := NewHandle(Cat{})
	_, err := h.Take()
	require.NoError(t, err)

	_, err = Adopt(h)
	assert.ErrorIs(t, err, ErrMoved)
}
