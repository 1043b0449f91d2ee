package contacts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectory_ContainsEmergencyServicesFirst(t *testing.T) {
	d := Directory()
	require.NotEmpty(t, d)
	assert.Equal(t, "Emergency Services", d[0].Name)
	assert.Equal(t, "911", d[0].Phone)
	assert.True(t, d[0].Available24h)
}

func TestDirectory_ReturnsACopy(t *testing.T) {
	d := Directory()
	d[0].Phone = "000"
	assert.Equal(t, "911", Directory()[0].Phone)
}
