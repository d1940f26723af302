package onesignal

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// DeviceType identifies the platform of a player.
type DeviceType int

const (
	DeviceTypeIOS             DeviceType = 0
	DeviceTypeAndroid         DeviceType = 1
	DeviceTypeAmazon          DeviceType = 2
	DeviceTypeWindowsPhone    DeviceType = 3
	DeviceTypeChromeApp       DeviceType = 4
	DeviceTypeChromeWeb       DeviceType = 5
	DeviceTypeWindowsPhoneWNS DeviceType = 6
	DeviceTypeSafari          DeviceType = 7
	DeviceTypeFirefox         DeviceType = 8
	DeviceTypeMacOS           DeviceType = 9
	DeviceTypeAlexa           DeviceType = 10
	DeviceTypeEmail           DeviceType = 11
	DeviceTypeHuaweiHMS       DeviceType = 13
	DeviceTypeSMS             DeviceType = 14
)

const (
	endpointNotifications = "/notifications"
	endpointPlayers       = "/players"
	endpointPlayer        = "/players/{id}"
)

func createPlayerCall(appID string, params Params) (*call, error) {
	if !isNumeric(params["device_type"]) {
		return nil, fmt.Errorf("%w: the device_type param is required as integer to create a player", ErrValidation)
	}

	return newCall(MethodPost, endpointPlayers, playerParams(appID, params), "", nil)
}

func editPlayerCall(appID string, params Params) (*call, error) {
	id := params["id"]
	if isBlank(id) {
		return nil, fmt.Errorf("%w: the id param is required to edit a player", ErrValidation)
	}

	return newCall(MethodPut, endpointPlayer, playerParams(appID, params), "", map[string]string{
		"id": fmt.Sprint(id),
	})
}

// playerParams always overwrites app_id with the configured one.
func playerParams(appID string, params Params) Params {
	p := params.clone()
	p["app_id"] = appID
	return p
}

func isNumeric(v any) bool {
	switch n := v.(type) {
	case nil:
		return false
	case DeviceType:
		return true
	case json.Number:
		_, err := n.Float64()
		return err == nil
	case string:
		_, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return err == nil
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
