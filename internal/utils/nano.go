package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

var (
	requestIDSize     = 16
	requestIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// RequestID returns a short correlation id attached to request logs.
func RequestID() string {
	return gonanoid.MustGenerate(requestIDAlphabet, requestIDSize)
}
