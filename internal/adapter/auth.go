package adapter

import "encoding/base64"

// BasicAuthHeader returns the Authorization header value for Jira Cloud
// API-token authentication: "Basic " + base64("email:token").
func BasicAuthHeader(email, apiToken string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(email+":"+apiToken))
}
