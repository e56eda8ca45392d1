package api

import (
	"crypto/sha1"
	"fmt"
	"strconv"
	"strings"

	"auth-api/pkg/http"
)

// breachGatewayImpl implements BreachGateway against a k-anonymity range API:
// only the first 5 hex characters of the password's SHA-1 leave the process,
// the suffix is matched locally against the returned candidate list.
type breachGatewayImpl struct {
	httpClient *http.Client
}

// NewBreachGateway creates a new BreachGateway with an HTTP client
func NewBreachGateway(baseURL string, clientOptions http.ClientOptions) BreachGateway {
	return &breachGatewayImpl{
		httpClient: http.NewHttpClient(baseURL, clientOptions),
	}
}

func (b *breachGatewayImpl) CountBreaches(password string) (int, error) {
	sum := sha1.Sum([]byte(password))
	digest := strings.ToUpper(fmt.Sprintf("%x", sum))
	prefix, suffix := digest[:5], digest[5:]

	var body string
	_, _, _, err := b.httpClient.Request().
		WithMethod(http.GET).
		WithPath("/range/" + prefix).
		WithSuccessResp(&body).
		Execute()
	if err != nil {
		return 0, fmt.Errorf("breach range lookup failed: %w", err)
	}

	// Response lines are "SUFFIX:COUNT"
	for _, line := range strings.Split(body, "\n") {
		parts := strings.SplitN(strings.TrimSpace(line), ":", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(parts[0], suffix) {
			count, err := strconv.Atoi(parts[1])
			if err != nil {
				return 0, fmt.Errorf("malformed breach count %q: %w", parts[1], err)
			}
			return count, nil
		}
	}

	return 0, nil
}
