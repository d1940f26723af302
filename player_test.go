package onesignal

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNumeric(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, false},
		{"int", 1, true},
		{"zero", 0, true},
		{"int64", int64(5), true},
		{"uint8", uint8(2), true},
		{"float", 1.0, true},
		{"device type", DeviceTypeSafari, true},
		{"json number", json.Number("9"), true},
		{"invalid json number", json.Number("x"), false},
		{"numeric string", "11", true},
		{"padded numeric string", " 3 ", true},
		{"text", "android", false},
		{"empty string", "", false},
		{"bool", true, false},
		{"slice", []int{1}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, isNumeric(tt.value))
		})
	}
}

func TestCreatePlayerCall(t *testing.T) {
	t.Parallel()

	t.Run("missing device type", func(t *testing.T) {
		t.Parallel()

		_, err := createPlayerCall(testAppID, Params{"identifier": "token"})
		require.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), "device_type")
	})

	t.Run("non numeric device type", func(t *testing.T) {
		t.Parallel()

		_, err := createPlayerCall(testAppID, Params{"device_type": "ios"})
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("app id is always overwritten", func(t *testing.T) {
		t.Parallel()

		params := Params{"device_type": DeviceTypeIOS, "app_id": "other-app"}
		cl, err := createPlayerCall(testAppID, params)
		require.NoError(t, err)

		assert.Equal(t, MethodPost, cl.method)
		assert.Equal(t, "/players", cl.endpoint)
		assert.JSONEq(t, `{"app_id": "app-id", "device_type": 0}`, string(cl.body))
		assert.Equal(t, "other-app", params["app_id"], "caller params must not be modified")
	})
}

func TestEditPlayerCall(t *testing.T) {
	t.Parallel()

	t.Run("missing id", func(t *testing.T) {
		t.Parallel()

		_, err := editPlayerCall(testAppID, Params{"device_type": 1})
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("empty id", func(t *testing.T) {
		t.Parallel()

		_, err := editPlayerCall(testAppID, Params{"id": ""})
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("no device type required", func(t *testing.T) {
		t.Parallel()

		cl, err := editPlayerCall(testAppID, Params{"id": "abc", "tags": map[string]string{"vip": "1"}})
		require.NoError(t, err)

		assert.Equal(t, MethodPut, cl.method)
		assert.Equal(t, "/players/{id}", cl.endpoint)
		assert.Equal(t, map[string]string{"id": "abc"}, cl.pathParams)
		assert.JSONEq(t, `{"app_id": "app-id", "id": "abc", "tags": {"vip": "1"}}`, string(cl.body))
	})
}

func TestMethodString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "POST", MethodPost.String())
	assert.Equal(t, "PUT", MethodPut.String())
	assert.Equal(t, "Method(7)", Method(7).String())
}

func TestNewCall_UnencodableBody(t *testing.T) {
	t.Parallel()

	_, err := newCall(MethodPost, endpointNotifications, Params{"data": make(chan int)}, "", nil)
	require.ErrorIs(t, err, ErrValidation)
}

func TestParseResult(t *testing.T) {
	t.Parallel()

	result, err := ParseResult([]byte(`{"id": "n1", "recipients": 3, "errors": ["x"]}`))
	require.NoError(t, err)
	assert.Equal(t, "n1", result.ID())
	assert.Equal(t, 3, result.Recipients())
	assert.Equal(t, []any{"x"}, result.Errors())

	result, err = ParseResult([]byte("  "))
	require.NoError(t, err)
	assert.Nil(t, result)

	_, err = ParseResult([]byte(`<html>`))
	require.ErrorIs(t, err, ErrParse)
}

func TestExtractErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a; b", extractErrorMessage([]byte(`{"errors": ["a", "b"]}`)))
	assert.Equal(t, `{"errors": {"invalid_player_ids": ["p"]}}`, extractErrorMessage([]byte(`{"errors": {"invalid_player_ids": ["p"]}}`)))
	assert.Equal(t, "oops", extractErrorMessage([]byte("oops")))
	assert.Equal(t, "(empty error body)", extractErrorMessage(nil))
}
