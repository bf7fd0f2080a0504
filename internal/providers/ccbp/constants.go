package ccbp

import "time"

const (
	providerName       = "ccbp"
	defaultBaseURL     = "https://apis.ccbp.in/ipl/"
	defaultHTTPTimeout = 10 * time.Second
	maxErrorBodyBytes  = 512
)
