package onesignal

// apiKeyParam is the reserved notification field that overrides the REST API
// key for a single request. It is never sent in the body.
const apiKeyParam = "api_key"

// buildHeaders returns the per-request headers. OneSignal expects the raw REST
// API key after the Basic scheme, not a base64 user:password pair.
func buildHeaders(restAPIKey, overrideKey string) map[string]string {
	key := restAPIKey
	if overrideKey != "" {
		key = overrideKey
	}

	return map[string]string{
		"Authorization": "Basic " + key,
		"Content-Type":  "application/json",
	}
}
