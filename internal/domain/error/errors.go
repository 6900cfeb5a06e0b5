// Package error defines domain-specific errors for the EcoTrack application.
//
// Each area has its own error type carrying a code of the form AREA-XXYYYY,
// where XX groups related failures and YYYY identifies the specific one.
// Controllers map these codes to HTTP statuses.
package error

func describe(message string, err error) string {
	if err != nil {
		return message + ": " + err.Error()
	}
	return message
}
