package reltype

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternReturnsSameIDForRepeatedName(t *testing.T) {
	in := New()
	a, err := in.Intern("IMPLIES")
	require.NoError(t, err)
	b, err := in.Intern("IMPLIES")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, 1, in.Len())
}

func TestInternAssignsDenseIDs(t *testing.T) {
	in := New()
	a, _ := in.Intern("IMPLIES")
	b, _ := in.Intern("SUPPORTS")
	c, _ := in.Intern("CONTRADICTS")
	assert.Equal(t, ID(0), a)
	assert.Equal(t, ID(1), b)
	assert.Equal(t, ID(2), c)
}

func TestNameOfValid(t *testing.T) {
	in := New()
	id, err := in.Intern("IMPLIES")
	require.NoError(t, err)
	name, ok := in.NameOf(id)
	assert.True(t, ok)
	assert.Equal(t, "IMPLIES", name)
}

func TestNameOfOutOfRange(t *testing.T) {
	in := New()
	_, ok := in.NameOf(999)
	assert.False(t, ok)
}

func TestInternOverflow(t *testing.T) {
	in := NewWithCapacity(MaxTypes)
	for i := 0; i < MaxTypes; i++ {
		_, err := in.Intern(fmt.Sprintf("REL_%d", i))
		require.NoError(t, err)
	}
	_, err := in.Intern("one_too_many")
	require.Error(t, err)
	var tooMany *ErrTooManyTypes
	assert.ErrorAs(t, err, &tooMany)
}
