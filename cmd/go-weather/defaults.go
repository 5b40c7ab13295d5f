package main

import "time"

const (
	defaultIdleTTL         = 30 * time.Minute
	defaultHealthInterval  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultOutboundTimeout = 10 * time.Second
	defaultSuggestionsTTL  = 10 * time.Minute
)
