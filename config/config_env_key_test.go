package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"session": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_SESSION", want: "secretKey.session"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsPolicyGaps(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Session.CookieName != defaultSessionCookie {
		t.Fatalf("cookie name = %q, want %q", cfg.Session.CookieName, defaultSessionCookie)
	}
	if cfg.Notifications.TTL != defaultNotificationTTL {
		t.Fatalf("notification ttl = %v, want %v", cfg.Notifications.TTL, defaultNotificationTTL)
	}
	if cfg.Activities.Retention != defaultActivityRetention {
		t.Fatalf("activity retention = %v, want %v", cfg.Activities.Retention, defaultActivityRetention)
	}
	if cfg.Notifications.PageSize != defaultPageSize {
		t.Fatalf("page size = %d, want %d", cfg.Notifications.PageSize, defaultPageSize)
	}
}
