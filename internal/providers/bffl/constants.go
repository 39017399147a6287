package bffl

import "time"

const (
	providerName       = "bffl"
	defaultBaseURL     = "https://feed.bffl.example.com/api/v1"
	defaultHTTPTimeout = 10 * time.Second
)
