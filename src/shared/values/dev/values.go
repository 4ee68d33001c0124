package dev

// nothing is served here, the URLs just shouldn't leave the machine
const (
	OutputBaseURL = "http://localhost:5000/output"
	Port          = ":5000"
)
