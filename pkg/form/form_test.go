package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireName(values map[string]string) map[string]string {
	errs := map[string]string{}
	if values["name"] == "" {
		errs["name"] = "Name is required"
	}
	return errs
}

func TestSubmit_InvalidFormAbortsSilently(t *testing.T) {
	f := New(map[string]string{"name": ""}, requireName)

	called := false
	err := f.Submit(func(map[string]string) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, "Name is required", f.Errors["name"])
	assert.True(t, f.Touched["name"])
}

func TestSubmit_ValidFormInvokesCallback(t *testing.T) {
	f := New(map[string]string{"name": ""}, requireName)
	f.HandleChange("name", "North Paddock")

	var got map[string]string
	err := f.Submit(func(values map[string]string) error {
		got = values
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "North Paddock", got["name"])
	assert.Empty(t, f.Errors)
	assert.False(t, f.Submitting)
}

func TestHandleBlur_ValidatesTouchedField(t *testing.T) {
	f := New(map[string]string{"name": ""}, requireName)
	assert.Empty(t, f.Errors)

	f.HandleBlur("name")
	assert.True(t, f.Touched["name"])
	assert.Equal(t, "Name is required", f.Errors["name"])
}

func TestReset_RestoresInitialValues(t *testing.T) {
	f := New(map[string]string{"name": "seed"}, requireName)
	f.HandleChange("name", "changed")
	f.HandleBlur("name")

	f.Reset()
	assert.Equal(t, "seed", f.Values["name"])
	assert.Empty(t, f.Errors)
	assert.Empty(t, f.Touched)
}

func TestValid_NilValidator(t *testing.T) {
	f := New(nil, nil)
	assert.True(t, f.Valid())
}
