package onesignal

import (
	"strings"
	"time"
)

// Filter is a single OneSignal filter condition. Use [Or] between conditions
// to combine them with a logical OR.
type Filter struct {
	Field    string `json:"field,omitempty"`
	Key      string `json:"key,omitempty"`
	Relation string `json:"relation,omitempty"`
	Value    string `json:"value,omitempty"`
	Operator string `json:"operator,omitempty"`
}

// Or returns the filter operator that ORs the conditions around it.
func Or() Filter {
	return Filter{Operator: "OR"}
}

// Button is an action button shown with the notification.
type Button struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Icon string `json:"icon,omitempty"`
}

// ScheduleLayout is the send_after format produced by [WithScheduleAt].
const ScheduleLayout = "2006-01-02 15:04:05 GMT-0700"

// NotificationOption sets an optional notification field. A field is only
// present in the request when its option was supplied.
type NotificationOption func(Params)

// WithURL opens url when the notification is clicked.
func WithURL(url string) NotificationOption {
	return func(p Params) { p["url"] = url }
}

// WithData attaches an opaque payload delivered to the app. Nil is ignored.
func WithData(data any) NotificationOption {
	return func(p Params) {
		if data != nil {
			p["data"] = data
		}
	}
}

// WithButtons adds action buttons. Calling it without buttons is a no-op.
func WithButtons(buttons ...Button) NotificationOption {
	return func(p Params) {
		if buttons != nil {
			p["buttons"] = buttons
		}
	}
}

// WithSchedule delays delivery until schedule, in any format OneSignal
// accepts for send_after.
func WithSchedule(schedule string) NotificationOption {
	return func(p Params) { p["send_after"] = schedule }
}

// WithScheduleAt delays delivery until t.
func WithScheduleAt(t time.Time) NotificationOption {
	return WithSchedule(t.Format(ScheduleLayout))
}

func WithSmallIcon(icon string) NotificationOption {
	return func(p Params) { p["small_icon"] = icon }
}

func WithLargeIcon(icon string) NotificationOption {
	return func(p Params) { p["large_icon"] = icon }
}

func WithBigPicture(picture string) NotificationOption {
	return func(p Params) { p["big_picture"] = picture }
}

// WithAndroidAccentColor sets the ARGB accent color, e.g. "FFFF0000".
func WithAndroidAccentColor(color string) NotificationOption {
	return func(p Params) { p["android_accent_color"] = color }
}

// WithAndroidLEDColor sets the ARGB LED color.
func WithAndroidLEDColor(color string) NotificationOption {
	return func(p Params) { p["android_led_color"] = color }
}

// WithSound plays the bundled sound name: name.wav on iOS and name on Android.
func WithSound(name string) NotificationOption {
	return func(p Params) {
		p["ios_sound"] = name + ".wav"
		p["android_sound"] = name
	}
}

func contents(message string) map[string]string {
	return map[string]string{"en": message}
}

func newNotification(appID, message string, target Params, opts []NotificationOption) Params {
	p := Params{
		"app_id":   appID,
		"contents": contents(message),
	}
	mergeAdditional(p, target)

	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}

	return p
}

func toUserParams(appID, message, userID string, opts []NotificationOption) Params {
	return newNotification(appID, message, Params{
		"include_player_ids": []string{userID},
	}, opts)
}

func usingTagsParams(appID, message string, tags any, opts []NotificationOption) Params {
	return newNotification(appID, strings.ToValidUTF8(message, "?"), Params{
		"tags": tags,
	}, opts)
}

func toAllParams(appID, message string, opts []NotificationOption) Params {
	return newNotification(appID, message, Params{
		"included_segments": []string{SegmentAll},
	}, opts)
}

func toSegmentParams(appID, message, segment string, opts []NotificationOption) Params {
	return newNotification(appID, message, Params{
		"included_segments": []string{segment},
	}, opts)
}

func toFilteredSegmentParams(appID, message string, filters []Filter, segments []string, opts []NotificationOption) Params {
	if len(segments) == 0 {
		segments = []string{SegmentAll}
	}

	return newNotification(appID, message, Params{
		"filters":           filters,
		"included_segments": segments,
		"ios_badgeType":     "Increase",
		"ios_badgeCount":    1,
	}, opts)
}

// emailFilters appends the email condition to a copy of filters.
func emailFilters(filters []Filter, email string) []Filter {
	out := make([]Filter, 0, len(filters)+1)
	out = append(out, filters...)
	return append(out, Filter{Field: "email", Value: email})
}
