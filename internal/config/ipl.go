package config

// IPLConfig controls how we talk to the upstream IPL matches API.
type IPLConfig struct {
	BaseURL     string
	Timeout     Duration
	MinInterval Duration // spacing between upstream calls; zero disables the limiter
}

func loadIPL() IPLConfig {
	return IPLConfig{
		BaseURL:     envOrDefault(envIPLBaseURL, defaultIPLBaseURL),
		Timeout:     durationEnvOrDefault(envIPLTimeout, defaultIPLTimeout),
		MinInterval: durationEnvOrDefault(envIPLMinInterval, 0),
	}
}
