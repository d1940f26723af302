package onesignal

import (
	"maps"
	"reflect"
)

// Params is a request body sent to the OneSignal API as a JSON object.
type Params map[string]any

// Segment names used by the notification builders.
const (
	SegmentAll = "All"

	// defaultSegment is applied by the custom path when a request carries
	// neither segments nor player ids.
	defaultSegment = "all"
)

func (p Params) clone() Params {
	out := make(Params, len(p)+4)
	maps.Copy(out, p)
	return out
}

// ensureAppID fills app_id when it is missing or blank. A non-blank value
// supplied by the caller is kept.
func ensureAppID(p Params, appID string) {
	if isBlank(p["app_id"]) {
		p["app_id"] = appID
	}
}

// defaultTargeting targets every subscriber when neither segments nor player
// ids are populated.
func defaultTargeting(p Params) {
	if isBlank(p["included_segments"]) && isBlank(p["include_player_ids"]) {
		p["included_segments"] = []string{defaultSegment}
	}
}

// mergeAdditional copies extra into p. Keys in extra always win.
func mergeAdditional(p, extra Params) {
	maps.Copy(p, extra)
}

// takeAPIKey removes the per-request key override from p and returns it.
func takeAPIKey(p Params) string {
	v, ok := p[apiKeyParam]
	if !ok {
		return ""
	}
	delete(p, apiKeyParam)

	key, _ := v.(string)
	return key
}

// isBlank reports whether v is nil, an empty string, false, a zero number or
// an empty slice or map.
func isBlank(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
