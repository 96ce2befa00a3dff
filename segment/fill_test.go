package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentFillHas(t *testing.T) {
	f := SubjAbove | ClipBelow
	assert.True(t, f.Has(SubjAbove))
	assert.True(t, f.Has(ClipBelow))
	assert.False(t, f.Has(SubjBelow))
	assert.False(t, f.Has(SubjBoth))
}

func TestSegmentFillString(t *testing.T) {
	assert.Equal(t, "None", None.String())
	assert.Equal(t, "SubjAbove", SubjAbove.String())
	assert.Equal(t, "SubjAbove|ClipBelow", (SubjAbove | ClipBelow).String())
	assert.Equal(t, "SubjAbove|SubjBelow|ClipAbove|ClipBelow", (SubjBoth | ClipBoth).String())
}
