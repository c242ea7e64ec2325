// File: utils/constants.go
package utils

// RevokedTokenPrefix is the prefix used for Redis keys of revoked session tokens.
const RevokedTokenPrefix = "revoked:"

// DateLayout is the format of booking dates.
const DateLayout = "2006-01-02"
