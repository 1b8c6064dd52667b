package middlewares

import (
	"testing"
)

func TestClassifySuspiciousActivity(t *testing.T) {
	browserAgent := "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	tests := []struct {
		name        string
		clientKey   string
		clientAgent string
		wantKind    string
	}{
		{
			name:        "regular browser is not flagged",
			clientKey:   "203.0.113.10",
			clientAgent: browserAgent,
			wantKind:    "",
		},
		{
			name:        "unresolvable client key is never flagged",
			clientKey:   "unknown",
			clientAgent: "curl/8.4.0",
			wantKind:    "",
		},
		{
			name:        "empty client key is never flagged",
			clientKey:   "",
			clientAgent: "curl/8.4.0",
			wantKind:    "",
		},
		{
			name:        "short agent from resolvable client",
			clientKey:   "203.0.113.10",
			clientAgent: "abc",
			wantKind:    "short_user_agent",
		},
		{
			name:        "curl matches deny list",
			clientKey:   "203.0.113.10",
			clientAgent: "curl/8.4.0 (x86_64-pc-linux-gnu)",
			wantKind:    "denied_user_agent",
		},
		{
			name:        "wget matches deny list",
			clientKey:   "203.0.113.10",
			clientAgent: "Wget/1.21.2 (linux-gnu)",
			wantKind:    "denied_user_agent",
		},
		{
			name:        "crawler matches deny list case insensitively",
			clientKey:   "203.0.113.10",
			clientAgent: "ExampleCRAWLER/2.0 (+http://example.com/crawler-info)",
			wantKind:    "denied_user_agent",
		},
		{
			name:        "spider matches deny list",
			clientKey:   "203.0.113.10",
			clientAgent: "Sogou web spider/4.0 compatible client",
			wantKind:    "denied_user_agent",
		},
		{
			name:        "empty agent from resolvable client is not flagged",
			clientKey:   "203.0.113.10",
			clientAgent: "",
			wantKind:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := ClassifySuspiciousActivity(tt.clientKey, tt.clientAgent)
			if tt.wantKind == "" {
				if event != nil {
					t.Errorf("ClassifySuspiciousActivity() = %+v, want nil", event)
				}
				return
			}
			if event == nil {
				t.Fatalf("ClassifySuspiciousActivity() = nil, want event of kind %s", tt.wantKind)
			}
			if event.Kind != tt.wantKind {
				t.Errorf("event kind = %s, want %s", event.Kind, tt.wantKind)
			}
			if event.ClientKey != tt.clientKey {
				t.Errorf("event clientKey = %s, want %s", event.ClientKey, tt.clientKey)
			}
		})
	}
}
