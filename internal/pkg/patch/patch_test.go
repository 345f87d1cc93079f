//go:build unit

package patch_test

import (
	"testing"

	"parking-app/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	v := 7
	assert.Equal(t, 7, patch.Coalesce(&v, 3))
	assert.Equal(t, 3, patch.Coalesce[int](nil, 3))
}

func TestText(t *testing.T) {
	padded := "  12 MG Road "
	empty := ""

	assert.Equal(t, "12 MG Road", patch.Text(&padded, "old"))
	assert.Equal(t, "", patch.Text(&empty, "old"))
	assert.Equal(t, "old", patch.Text(nil, "old"))
}
