package accounting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func taken(codes ...string) map[string]bool {
	m := make(map[string]bool, len(codes))
	for _, c := range codes {
		m[c] = true
	}
	return m
}

func TestNextChildCode_Level1(t *testing.T) {
	code, err := NextChildCode("", 1, taken())
	require.NoError(t, err)
	assert.Equal(t, "1000", code)

	code, err = NextChildCode("", 1, taken("1000", "2000"))
	require.NoError(t, err)
	assert.Equal(t, "3000", code)
}

func TestNextChildCode_DeeperLevels(t *testing.T) {
	code, err := NextChildCode("1000", 2, taken())
	require.NoError(t, err)
	assert.Equal(t, "1100", code)

	code, err = NextChildCode("1000", 2, taken("1100", "1200"))
	require.NoError(t, err)
	assert.Equal(t, "1300", code)

	code, err = NextChildCode("1100", 3, taken("1110"))
	require.NoError(t, err)
	assert.Equal(t, "1120", code)

	code, err = NextChildCode("1110", 4, taken())
	require.NoError(t, err)
	assert.Equal(t, "1111", code)
}

func TestNextChildCode_Exhausted(t *testing.T) {
	all := taken("1110", "1120", "1130", "1140", "1150", "1160", "1170", "1180", "1190")
	_, err := NextChildCode("1100", 3, all)
	assert.ErrorIs(t, err, ErrCodeExhausted)
}

func TestNextChildCode_InvalidLevel(t *testing.T) {
	_, err := NextChildCode("1000", 5, taken())
	assert.Error(t, err)
}

func TestRecodeSubtree_Move(t *testing.T) {
	a := NewArena(testAccounts())
	tk := taken("1000", "1100", "1110", "1200", "2000")
	// move "1100" (with child "1110") under "2000"
	codes, err := RecodeSubtree(a, 2, "2000", 2, tk)
	require.NoError(t, err)
	assert.Equal(t, "2100", codes[2])
	assert.Equal(t, "2110", codes[3])
	assert.True(t, CodeHasParentPrefix(codes[2], "2000"))
	assert.True(t, CodeHasParentPrefix(codes[3], codes[2]))
}

func TestRecodeSubtree_ReleasesOwnCodes(t *testing.T) {
	a := NewArena(testAccounts())
	tk := taken("1000", "1100", "1110", "1200", "2000")
	// re-parenting "1200" under its own parent again lands it back on its slot
	codes, err := RecodeSubtree(a, 4, "1000", 2, tk)
	require.NoError(t, err)
	assert.Equal(t, "1200", codes[4])
}

func TestRecodeSubtree_Exhausted(t *testing.T) {
	a := NewArena(testAccounts())
	tk := taken("1000", "1100", "1110", "1200", "2000",
		"2100", "2200", "2300", "2400", "2500", "2600", "2700", "2800", "2900")
	_, err := RecodeSubtree(a, 2, "2000", 2, tk)
	assert.ErrorIs(t, err, ErrCodeExhausted)
}

func TestCodeHasParentPrefix(t *testing.T) {
	assert.True(t, CodeHasParentPrefix("1100", "1000"))
	assert.True(t, CodeHasParentPrefix("1110", "1100"))
	assert.True(t, CodeHasParentPrefix("1111", "1110"))
	assert.False(t, CodeHasParentPrefix("2100", "1000"))
	assert.False(t, CodeHasParentPrefix("1000", "1000")) // an account is not its own child
}
