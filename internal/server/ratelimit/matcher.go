package ratelimit

// unlimited marks an endpoint the limiter never throttles.
var unlimited = EndpointConfig{}

// MatchEndpoint resolves a request path and method to its endpoint
// configuration. Health checks are always unlimited so probes are never
// throttled. Returns nil when no configuration matches; the caller falls
// back to the limiter's defaults.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		u := unlimited
		return &u
	}

	for i := range configs {
		if configs[i].Path == path && configs[i].Method == method {
			return &configs[i]
		}
	}
	return nil
}
