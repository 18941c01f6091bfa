package detail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptor_RenderRequired_Missing(t *testing.T) {
	d := Descriptor{Name: "PROFILE", Type: TypeString, Value: Scalar("", false)}

	_, err := d.RenderRequired(Rust())
	require.ErrorIs(t, err, ErrMissingDetail)
	assert.NotErrorIs(t, err, ErrMissing)

	var ee *Error
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "PROFILE", ee.Subject())
	assert.Equal(t, "missing detail: PROFILE", err.Error())
}

func TestDescriptor_RenderOptional_Absent(t *testing.T) {
	d := Descriptor{Name: "PROFILE", Type: TypeString, Value: Scalar("", false)}

	line, err := d.RenderOptional(Rust())
	require.NoError(t, err)
	assert.Equal(t, `pub const PROFILE: Option<&'static str> = None;`, line)
}

func TestDescriptor_RenderRequired_Format(t *testing.T) {
	d := Descriptor{
		Name:  "CFG",
		Type:  TypeStringMap,
		Value: Map(Entry{Key: "A"}, Entry{Key: "A"}),
	}

	_, err := d.RenderRequired(Rust())
	assert.ErrorIs(t, err, ErrFormat)
	assert.NotErrorIs(t, err, ErrMissingDetail)
}
